package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("sessionID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session context"})
		return "", false
	}
	return id, true
}

// --------------------------------------------------
// Choose restaurant
// --------------------------------------------------
func (h *Handler) SetRestaurant(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req struct {
		RestaurantID string `json:"restaurant_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RestaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Conflict first, so the client can distinguish "clear your cart"
	// from "no such restaurant".
	if h.service.HasConflict(sid, req.RestaurantID) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "cart contains items from another restaurant",
		})
		return
	}

	ok, err := h.service.SetRestaurant(c.Request.Context(), sid, req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}

	c.JSON(http.StatusOK, h.service.Cart(sid))
}

// --------------------------------------------------
// Read cart
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart := h.service.Cart(sid)
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// --------------------------------------------------
// Add item
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req struct {
		MenuItemID string     `json:"menu_item_id"`
		Modifiers  Selections `json:"modifiers"`
		Quantity   int        `json:"quantity"`
		Notes      string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.MenuItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.service.AddItem(
		c.Request.Context(),
		sid,
		req.MenuItemID,
		req.Modifiers,
		req.Quantity,
		req.Notes,
	)
	switch {
	case errors.Is(err, ErrNoActiveCart):
		c.JSON(http.StatusConflict, gin.H{"error": "choose a restaurant first"})
		return
	case errors.Is(err, ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cart)
}

// --------------------------------------------------
// Update item (named operations, one per field)
// --------------------------------------------------
func (h *Handler) UpdateItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	itemID := c.Param("id")

	var req struct {
		Quantity  *int        `json:"quantity"`
		Modifiers *Selections `json:"modifiers"`
		Notes     *string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Quantity == nil && req.Modifiers == nil && req.Notes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	var (
		cart *Cart
		err  error
	)
	if req.Quantity != nil {
		cart, err = h.service.SetQuantity(sid, itemID, *req.Quantity)
	}
	if err == nil && req.Modifiers != nil {
		cart, err = h.service.SetModifiers(sid, itemID, *req.Modifiers)
	}
	if err == nil && req.Notes != nil {
		cart, err = h.service.SetNotes(sid, itemID, *req.Notes)
	}
	if errors.Is(err, ErrNoActiveCart) {
		c.JSON(http.StatusConflict, gin.H{"error": "choose a restaurant first"})
		return
	}

	// Unknown item ids are a silent no-op; the response is simply the
	// unchanged cart.
	c.JSON(http.StatusOK, cart)
}

// --------------------------------------------------
// Remove item / clear
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(sid, c.Param("id"))
	if errors.Is(err, ErrNoActiveCart) {
		c.JSON(http.StatusConflict, gin.H{"error": "choose a restaurant first"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) ClearCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart, err := h.service.Clear(sid)
	if errors.Is(err, ErrNoActiveCart) {
		c.JSON(http.StatusConflict, gin.H{"error": "choose a restaurant first"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// --------------------------------------------------
// Order summary
// --------------------------------------------------
func (h *Handler) GetSummary(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	summary := h.service.OrderSummary(sid)
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "nothing to summarize"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
