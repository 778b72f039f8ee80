package repositories

import (
	"errors"

	"github.com/anonto42/photofeed/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedPostRepository defines the interface for save toggle operations
type SavedPostRepository interface {
	Toggle(postID, userID string) (bool, error)
	GetByUserWithPosts(userID string) ([]models.SavedPost, error)
	CountByPostID(postID string) (int64, error)
}

// PostgresSavedPostRepository implements SavedPostRepository for PostgreSQL
type PostgresSavedPostRepository struct {
	db *gorm.DB
}

// NewPostgresSavedPostRepository creates a new PostgresSavedPostRepository
func NewPostgresSavedPostRepository(db *gorm.DB) *PostgresSavedPostRepository {
	return &PostgresSavedPostRepository{db: db}
}

// Toggle flips the save state for (userID, postID) and reports the new
// state. Race handling mirrors PostgresLikedPostRepository.Toggle: the
// unique index on (user_id, post_id) arbitrates, the losing writer is
// answered with the other writer's effect.
func (r *PostgresSavedPostRepository) Toggle(postID, userID string) (bool, error) {
	var active bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.SavedPost
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		if err == nil {
			active = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		active = true
		return tx.Create(&models.SavedPost{
			ID:     uuid.NewString(),
			PostID: postID,
			UserID: userID,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return active, nil
}

// GetByUserWithPosts retrieves the user's saves in the order they were
// created, each with the saved post and its author.
func (r *PostgresSavedPostRepository) GetByUserWithPosts(userID string) ([]models.SavedPost, error) {
	var saves []models.SavedPost
	err := r.db.
		Preload("Post").
		Preload("Post.User").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&saves).Error
	if err != nil {
		return nil, err
	}
	return saves, nil
}

// CountByPostID retrieves the number of saves on a post
func (r *PostgresSavedPostRepository) CountByPostID(postID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.SavedPost{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
