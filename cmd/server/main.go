package main

import (
	"context"
	"log"

	"github.com/anonto42/photofeed/backend/internal/router"
	"github.com/anonto42/photofeed/backend/internal/token"
	"github.com/anonto42/photofeed/backend/pkg/config"
	"github.com/anonto42/photofeed/backend/pkg/storage"
	"github.com/anonto42/photofeed/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Initialize the media store backing post image uploads
	ctx := context.Background()
	media, err := storage.NewS3MediaStore(ctx, cfg.S3Bucket, cfg.MediaBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	// Credential service holds the signing secret for the lifetime of the
	// process
	tokens := token.NewService(cfg.JWTSecret)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, media, tokens)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
