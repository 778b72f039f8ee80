package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// User is an account holder. Password holds the bcrypt hash bytes and is
// never serialized.
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:100"`
	Email    string `json:"email" gorm:"size:100;uniqueIndex"` // Ensure email is unique across all users
	Password []byte `json:"-"`

	// Dependent rows are removed when the user is deleted.
	Posts      []Post      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	LikedPosts []LikedPost `json:"liked_posts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SavedPosts []SavedPost `json:"saved_posts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments   []Comment   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// SignupRequest defines the request body for creating a new account
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SigninRequest defines the request body for signing in
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthClaims are the claims carried by an x-auth-token credential.
type AuthClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}
