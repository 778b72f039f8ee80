package repositories

import (
	"errors"

	"github.com/anonto42/photofeed/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikedPostRepository defines the interface for like toggle operations
type LikedPostRepository interface {
	Toggle(postID, userID string) (bool, error)
	GetByUserWithPosts(userID string) ([]models.LikedPost, error)
	CountByPostID(postID string) (int64, error)
}

// PostgresLikedPostRepository implements LikedPostRepository for PostgreSQL
type PostgresLikedPostRepository struct {
	db *gorm.DB
}

// NewPostgresLikedPostRepository creates a new PostgresLikedPostRepository
func NewPostgresLikedPostRepository(db *gorm.DB) *PostgresLikedPostRepository {
	return &PostgresLikedPostRepository{db: db}
}

// Toggle flips the like state for (userID, postID) and reports the new
// state. The read and the conditional write run in one transaction.
//
// Two toggles can still race between transactions; the unique index on
// (user_id, post_id) decides the winner. A losing insert means a
// concurrent toggle just created the row, so the pair is active and we
// report true. A delete that removes nothing means a concurrent toggle
// got there first, so the pair is inactive and we report false. Either
// way the state flipped exactly once and neither caller sees an error.
func (r *PostgresLikedPostRepository) Toggle(postID, userID string) (bool, error) {
	var active bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.LikedPost
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		if err == nil {
			active = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		active = true
		return tx.Create(&models.LikedPost{
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

// GetByUserWithPosts retrieves the user's likes in the order they were
// created, each with the liked post and its author.
func (r *PostgresLikedPostRepository) GetByUserWithPosts(userID string) ([]models.LikedPost, error) {
	var likes []models.LikedPost
	err := r.db.
		Preload("Post").
		Preload("Post.User").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// CountByPostID retrieves the number of likes on a post
func (r *PostgresLikedPostRepository) CountByPostID(postID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.LikedPost{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
