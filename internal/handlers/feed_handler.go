package handlers

import (
	"net/http"

	"github.com/anonto42/photofeed/backend/internal/middleware"
	"github.com/anonto42/photofeed/backend/internal/models"
	"github.com/anonto42/photofeed/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler assembles the denormalized feed views: every post with the
// viewer's interaction flags and counts, and the viewer's liked/saved
// listings.
type FeedHandler struct {
	postRepository      repositories.PostRepository
	likedPostRepository repositories.LikedPostRepository
	savedPostRepository repositories.SavedPostRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	likedPostRepo repositories.LikedPostRepository,
	savedPostRepo repositories.SavedPostRepository,
) *FeedHandler {
	return &FeedHandler{
		postRepository:      postRepo,
		likedPostRepository: likedPostRepo,
		savedPostRepository: savedPostRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/list", h.ListFeed)
	g.GET("/list/liked", h.ListLiked)
	g.GET("/list/saved", h.ListSaved)
}

// ListFeed returns every post enriched for the current viewer. The
// listing is unbounded, matching the API contract.
func (h *FeedHandler) ListFeed(c echo.Context) error {
	viewerID := middleware.UserIDFromContext(c)

	posts, err := h.postRepository.GetAllPostsWithRelations()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	feed := make([]models.FeedItem, len(posts))
	for i, p := range posts {
		feed[i] = buildFeedItem(&p, viewerID)
	}

	return c.JSON(http.StatusOK, feed)
}

// buildFeedItem folds a post's preloaded relations into the viewer's
// feed item.
func buildFeedItem(p *models.Post, viewerID string) models.FeedItem {
	likedByUser := false
	for _, l := range p.LikedPosts {
		if l.UserID == viewerID {
			likedByUser = true
			break
		}
	}

	savedByUser := false
	for _, s := range p.SavedPosts {
		if s.UserID == viewerID {
			savedByUser = true
			break
		}
	}

	comments := make([]models.CommentWithAuthor, len(p.Comments))
	for i, cm := range p.Comments {
		comments[i] = models.CommentWithAuthor{
			ID:        cm.ID,
			Content:   cm.Content,
			CreatedAt: cm.CreatedAt,
			UpdatedAt: cm.UpdatedAt,
			User:      cm.User.ToProjection(),
		}
	}

	return models.FeedItem{
		ID:          p.ID,
		ImageURL:    p.ImageURL,
		Caption:     p.Caption,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		LikedByUser: likedByUser,
		SavedByUser: savedByUser,
		LikesCount:  len(p.LikedPosts),
		SavesCount:  len(p.SavedPosts),
		Comments:    comments,
		User:        p.User.ToProjection(),
	}
}

// ListLiked returns the posts the viewer has liked, in the order the
// likes were created.
func (h *FeedHandler) ListLiked(c echo.Context) error {
	viewerID := middleware.UserIDFromContext(c)

	likes, err := h.likedPostRepository.GetByUserWithPosts(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	response := make([]models.PostWithAuthor, len(likes))
	for i, l := range likes {
		response[i] = l.Post.ToPostWithAuthor()
	}

	return c.JSON(http.StatusOK, response)
}

// ListSaved returns the posts the viewer has saved, in the order the
// saves were created.
func (h *FeedHandler) ListSaved(c echo.Context) error {
	viewerID := middleware.UserIDFromContext(c)

	saves, err := h.savedPostRepository.GetByUserWithPosts(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	response := make([]models.PostWithAuthor, len(saves))
	for i, s := range saves {
		response[i] = s.Post.ToPostWithAuthor()
	}

	return c.JSON(http.StatusOK, response)
}
