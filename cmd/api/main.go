package main

import (
	"context"
	"log"
	"os"
	"time"

	"hustl/internal/auth"
	"hustl/internal/cart"
	"hustl/internal/catalog"
	"hustl/internal/db"
	"hustl/internal/middleware"
	"hustl/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{"JWT_SECRET"}

	source := os.Getenv("CATALOG_SOURCE")
	if source == "" {
		source = "static"
	}
	switch source {
	case "static":
	case "postgres":
		required = append(required, "DATABASE_URL")
	case "r2":
		required = append(required,
			"R2_ACCESS_KEY",
			"R2_SECRET_KEY",
			"R2_BUCKET_NAME",
			"R2_ENDPOINT",
			"R2_CATALOG_KEY",
		)
	default:
		log.Fatalf("Unknown CATALOG_SOURCE: %s", source)
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := buildCatalog(source)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8081", "http://localhost:19006"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── SERVICES ─────────────────────────
	cartService := cart.NewService(catalogRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogRepo)
	cartHandler := cart.NewHandler(cartService)

	// ───────────────────────── SESSIONS ─────────────────────────
	r.POST("/sessions", auth.CreateSession)

	// ───────────────────────── PUBLIC BROWSE ─────────────────────────
	r.GET("/restaurants", catalogHandler.ListRestaurants)
	r.GET("/restaurants/:id", catalogHandler.GetRestaurant)

	// ───────────────────────── CART ROUTES ─────────────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware())
	{
		cartGroup.POST("/restaurant", cartHandler.SetRestaurant)
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/summary", cartHandler.GetSummary)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}

// --------------------------------------------------
// Catalog sources
// --------------------------------------------------
func buildCatalog(source string) catalog.Repository {
	switch source {
	case "postgres":
		pgDB := db.ConnectPostgres()
		return catalog.NewPostgresRepository(pgDB)

	case "r2":
		ctx := context.Background()

		r2Client, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}

		data, err := r2Client.Fetch(ctx, os.Getenv("R2_CATALOG_KEY"))
		if err != nil {
			log.Fatal("Catalog fetch failed:", err)
		}

		restaurants, err := catalog.ParseCatalog(data)
		if err != nil {
			log.Fatal("Catalog parse failed:", err)
		}
		return catalog.NewInMemoryRepository(restaurants...)

	default:
		return catalog.NewInMemoryRepository(catalog.DefaultRestaurants()...)
	}
}
