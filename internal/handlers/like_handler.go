package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/photofeed/backend/internal/middleware"
	"github.com/anonto42/photofeed/backend/internal/models"
	"github.com/anonto42/photofeed/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles the like toggle
type LikeHandler struct {
	likedPostRepository repositories.LikedPostRepository
	postRepository      repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likedPostRepo repositories.LikedPostRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likedPostRepository: likedPostRepo,
		postRepository:      postRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/liked", h.ToggleLike)
}

// ToggleLike flips the viewer's like on a post and responds with the new
// state: true when the like now exists, false when it was removed.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var req models.ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(req.PostID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	active, err := h.likedPostRepository.Toggle(req.PostID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": active})
}
