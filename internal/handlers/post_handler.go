package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/anonto42/photofeed/backend/internal/middleware"
	"github.com/anonto42/photofeed/backend/internal/models"
	"github.com/anonto42/photofeed/backend/internal/repositories"
	"github.com/anonto42/photofeed/backend/pkg/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PostHandler handles post upload HTTP requests
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	media          storage.MediaStore
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, media storage.MediaStore) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		media:          media,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/upload", h.Upload)
}

// Upload stores the multipart image in the media store, then persists the
// post. If the post cannot be persisted the uploaded object is removed so
// no orphaned media survives the failure.
func (h *PostHandler) Upload(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Image file is required")
	}
	caption := c.FormValue("caption")

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer file.Close()

	postID := uuid.NewString()
	key := fmt.Sprintf("posts/%s/%s", postID, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	imageURL, err := h.media.Upload(c.Request().Context(), key, contentType, file)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post := &models.Post{
		ID:       postID,
		ImageURL: imageURL,
		Caption:  caption,
		UserID:   userID,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		if rmErr := h.media.Remove(c.Request().Context(), key); rmErr != nil {
			log.Printf("Failed to remove orphaned media object %s: %v\n", key, rmErr)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, models.PostWithAuthor{
		ID:        post.ID,
		ImageURL:  post.ImageURL,
		Caption:   post.Caption,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		User:      user.ToProjection(),
	})
}
