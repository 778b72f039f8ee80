package models

import "time"

// UserProjection is the view of a user embedded in responses. It carries
// only the fields safe to expose; the password hash never appears.
type UserProjection struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToProjection reduces a user to its response view.
func (u *User) ToProjection() UserProjection {
	return UserProjection{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// PostWithAuthor is a post joined with its author projection.
type PostWithAuthor struct {
	ID        string         `json:"id"`
	ImageURL  string         `json:"image_url"`
	Caption   string         `json:"caption"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	User      UserProjection `json:"user"`
}

// ToPostWithAuthor joins a post with its preloaded author.
func (p *Post) ToPostWithAuthor() PostWithAuthor {
	return PostWithAuthor{
		ID:        p.ID,
		ImageURL:  p.ImageURL,
		Caption:   p.Caption,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		User:      p.User.ToProjection(),
	}
}

// CommentWithAuthor is a comment joined with its author projection.
type CommentWithAuthor struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	User      UserProjection `json:"user"`
}

// FeedItem is a post enriched with the viewer's interaction flags,
// aggregate counts and the post's comments.
type FeedItem struct {
	ID          string              `json:"id"`
	ImageURL    string              `json:"image_url"`
	Caption     string              `json:"caption"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	LikedByUser bool                `json:"liked_by_user"`
	SavedByUser bool                `json:"saved_by_user"`
	LikesCount  int                 `json:"likes_count"`
	SavesCount  int                 `json:"saves_count"`
	Comments    []CommentWithAuthor `json:"comments"`
	User        UserProjection      `json:"user"`
}
