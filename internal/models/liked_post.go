package models

import "time"

// LikedPost marks a post as liked by a user. The row's existence is the
// entire "liked" state; the unique index keeps concurrent toggles from
// producing duplicates.
type LikedPost struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_liked_user_post"`
	UserID    string    `json:"user_id" gorm:"index;uniqueIndex:idx_liked_user_post"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Post Post `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// ToggleRequest defines the request body for flipping a like or save
type ToggleRequest struct {
	PostID string `json:"post_id" validate:"required"`
}
