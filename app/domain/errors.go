package domain

import "errors"

// Content domain errors
var (
	// Resource errors
	ErrPostNotFound  = errors.New("post not found")
	ErrDraftNotFound = errors.New("draft not found")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")

	// Infrastructure errors
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// General errors
	ErrInternal = errors.New("internal error")
)
