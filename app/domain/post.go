package domain

import (
	"fmt"
	"strings"
	"time"
)

// Post represents a published post addressed by its slug.
type Post struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedDate time.Time `json:"created_date"`
}

// NewPost creates an unsaved post with its slug derived from the title. The
// slug is computed exactly once here; later title updates never recompute it,
// so a slug can drift out of sync with its title. CreatedDate is assigned by
// the database on insert.
func NewPost(title, content string) (*Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content is required")
	}

	return &Post{
		Slug:    Slugify(title),
		Title:   title,
		Content: content,
	}, nil
}

// CreatePostRequest represents the post creation request body
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest represents the post update request body. The slug comes
// from the path, never from the body.
type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
