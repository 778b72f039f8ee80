package router

import (
	"log"

	"github.com/anonto42/photofeed/backend/internal/handlers"
	"github.com/anonto42/photofeed/backend/internal/middleware"
	"github.com/anonto42/photofeed/backend/internal/models"
	"github.com/anonto42/photofeed/backend/internal/repositories"
	"github.com/anonto42/photofeed/backend/internal/token"
	"github.com/anonto42/photofeed/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, media storage.MediaStore, tokens *token.Service) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.LikedPost{},
		&models.SavedPost{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	likedPostRepo := repositories.NewPostgresLikedPostRepository(pgdb)
	savedPostRepo := repositories.NewPostgresSavedPostRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)

	tokenAuth := middleware.TokenAuthMiddleware(tokens)

	// --- Auth routes ---
	authGroup := e.Group("/auth")
	authHandler := handlers.NewAuthHandler(userRepo, tokens)
	authHandler.RegisterAuthRoutes(authGroup, tokenAuth)
	log.Println("Auth routes configured.")

	// --- Post routes (token required) ---
	postGroup := e.Group("/post", tokenAuth)

	postHandler := handlers.NewPostHandler(postRepo, userRepo, media)
	postHandler.RegisterPostRoutes(postGroup)

	feedHandler := handlers.NewFeedHandler(postRepo, likedPostRepo, savedPostRepo)
	feedHandler.RegisterFeedRoutes(postGroup)

	likeHandler := handlers.NewLikeHandler(likedPostRepo, postRepo)
	likeHandler.RegisterLikeRoutes(postGroup)

	savedPostHandler := handlers.NewSavedPostHandler(savedPostRepo, postRepo)
	savedPostHandler.RegisterSavedPostRoutes(postGroup)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(postGroup)

	// Listing a post's comments is public; keep it outside the
	// token-protected group.
	publicPostGroup := e.Group("/post")
	commentHandler.RegisterPublicCommentRoutes(publicPostGroup)
	log.Println("Post routes configured.")

	log.Println("All routes configured.")
}
