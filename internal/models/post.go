package models

import "time"

// Post represents an uploaded image post. Authorship is fixed at creation.
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption" gorm:"size:255"`
	UserID    string    `json:"user_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User       User        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	LikedPosts []LikedPost `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	SavedPosts []SavedPost `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments   []Comment   `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
