package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"content-service/app/domain"
	"content-service/app/port"
)

// DraftRepository implements port.DraftRepositoryPort for PostgreSQL.
// Drafts live in their own table and never touch posts.
type DraftRepository struct {
	connector ConnectorIface
	logger    *slog.Logger
}

// NewDraftRepository creates a new PostgreSQL draft repository
func NewDraftRepository(connector ConnectorIface, logger *slog.Logger) port.DraftRepositoryPort {
	return &DraftRepository{
		connector: connector,
		logger:    logger.With("component", "draft_repository"),
	}
}

// List retrieves all drafts, newest first
func (r *DraftRepository) List(ctx context.Context) ([]*domain.Draft, error) {
	query := `
		SELECT slug, title, content, created_date
		FROM drafts
		ORDER BY created_date DESC`

	db, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer releaseConnection(ctx, db, r.logger)

	rows, err := db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list drafts", "error", err)
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	// An empty table serializes as [] rather than null
	drafts := make([]*domain.Draft, 0)
	for rows.Next() {
		var draft domain.Draft
		if err := rows.Scan(&draft.Slug, &draft.Title, &draft.Content, &draft.CreatedDate); err != nil {
			r.logger.Error("Failed to scan draft row", "error", err)
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		drafts = append(drafts, &draft)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating draft rows", "error", err)
		return nil, fmt.Errorf("error iterating drafts: %w", err)
	}

	r.logger.Info("Retrieved drafts", "count", len(drafts))
	return drafts, nil
}

// Create inserts a new draft and returns the stored row
func (r *DraftRepository) Create(ctx context.Context, draft *domain.Draft) (*domain.Draft, error) {
	query := `
		INSERT INTO drafts (slug, title, content)
		VALUES ($1, $2, $3)
		RETURNING slug, title, content, created_date`

	db, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer releaseConnection(ctx, db, r.logger)

	r.logger.Info("Creating draft", "slug", draft.Slug)

	var created domain.Draft
	err = db.QueryRow(ctx, query, draft.Slug, draft.Title, draft.Content).Scan(
		&created.Slug,
		&created.Title,
		&created.Content,
		&created.CreatedDate,
	)
	if err != nil {
		r.logger.Error("Failed to create draft", "slug", draft.Slug, "error", err)
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}

	r.logger.Info("Draft created successfully", "slug", created.Slug)
	return &created, nil
}

// Update rewrites title and content for the row addressed by slug and
// returns the updated row
func (r *DraftRepository) Update(ctx context.Context, slug, title, content string) (*domain.Draft, error) {
	query := `
		UPDATE drafts
		SET title = $1, content = $2
		WHERE slug = $3
		RETURNING slug, title, content, created_date`

	db, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer releaseConnection(ctx, db, r.logger)

	r.logger.Info("Updating draft", "slug", slug)

	var updated domain.Draft
	err = db.QueryRow(ctx, query, title, content, slug).Scan(
		&updated.Slug,
		&updated.Title,
		&updated.Content,
		&updated.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Draft not found for update", "slug", slug)
			return nil, domain.ErrDraftNotFound
		}
		r.logger.Error("Failed to update draft", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}

	r.logger.Info("Draft updated successfully", "slug", slug)
	return &updated, nil
}

// Delete removes the row addressed by slug and returns the deleted row
func (r *DraftRepository) Delete(ctx context.Context, slug string) (*domain.Draft, error) {
	query := `
		DELETE FROM drafts
		WHERE slug = $1
		RETURNING slug, title, content, created_date`

	db, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer releaseConnection(ctx, db, r.logger)

	r.logger.Info("Deleting draft", "slug", slug)

	var deleted domain.Draft
	err = db.QueryRow(ctx, query, slug).Scan(
		&deleted.Slug,
		&deleted.Title,
		&deleted.Content,
		&deleted.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Draft not found for deletion", "slug", slug)
			return nil, domain.ErrDraftNotFound
		}
		r.logger.Error("Failed to delete draft", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to delete draft: %w", err)
	}

	r.logger.Info("Draft deleted successfully", "slug", slug)
	return &deleted, nil
}
