package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Sessions are anonymous: the app asks for one on first launch and holds
// the token for the lifetime of the ordering flow. No account, no
// password — a fresh session simply means a fresh cart handle.

func CreateSession(c *gin.Context) {
	sessionID := uuid.New().String()

	token, err := GenerateSessionToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sessionID,
		"token":      token,
	})
}
