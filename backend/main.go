package main

import (
	"log"

	"kidlearn/backend/config"
	"kidlearn/backend/middleware"
	"kidlearn/backend/routes"
	"kidlearn/backend/storage"
	"kidlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize storage; seeding is synchronous so handlers never see
	// a partially-seeded store
	store := storage.NewMemStorage()
	if cfg.SeedSampleData {
		if err := store.SeedSampleData(); err != nil {
			log.Fatalf("Error seeding sample data: %v", err)
		}
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
