package models

import "time"

// SavedPost marks a post as bookmarked by a user. Same toggle semantics as
// LikedPost, independent state.
type SavedPost struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_saved_user_post"`
	UserID    string    `json:"user_id" gorm:"index;uniqueIndex:idx_saved_user_post"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Post Post `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
