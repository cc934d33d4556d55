package domain

import (
	"fmt"
	"strings"
	"time"
)

// Draft represents an unpublished draft. Drafts share the shape and
// lifecycle of posts but live in their own table; operations on one never
// touch the other.
type Draft struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedDate time.Time `json:"created_date"`
}

// NewDraft creates an unsaved draft with its slug derived from the title.
func NewDraft(title, content string) (*Draft, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content is required")
	}

	return &Draft{
		Slug:    Slugify(title),
		Title:   title,
		Content: content,
	}, nil
}

// CreateDraftRequest represents the draft creation request body
type CreateDraftRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateDraftRequest represents the draft update request body
type UpdateDraftRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
