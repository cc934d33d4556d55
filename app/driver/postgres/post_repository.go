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

// PostRepository implements port.PostRepositoryPort for PostgreSQL
type PostRepository struct {
	connector ConnectorIface
	logger    *slog.Logger
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(connector ConnectorIface, logger *slog.Logger) port.PostRepositoryPort {
	return &PostRepository{
		connector: connector,
		logger:    logger.With("component", "post_repository"),
	}
}

// List retrieves all posts, newest first
func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	query := `
		SELECT slug, title, content, created_date
		FROM posts
		ORDER BY created_date DESC`

	db, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer releaseConnection(ctx, db, r.logger)

	rows, err := db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list posts", "error", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	// An empty table serializes as [] rather than null
	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.Slug, &post.Title, &post.Content, &post.CreatedDate); err != nil {
			r.logger.Error("Failed to scan post row", "error", err)
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating post rows", "error", err)
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	r.logger.Info("Retrieved posts", "count", len(posts))
	return posts, nil
}

// Create inserts a new post and returns the stored row
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	query := `
		INSERT INTO posts (slug, title, content)
		VALUES ($1, $2, $3)
		RETURNING slug, title, content, created_date`

	db, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer releaseConnection(ctx, db, r.logger)

	r.logger.Info("Creating post", "slug", post.Slug)

	var created domain.Post
	err = db.QueryRow(ctx, query, post.Slug, post.Title, post.Content).Scan(
		&created.Slug,
		&created.Title,
		&created.Content,
		&created.CreatedDate,
	)
	if err != nil {
		r.logger.Error("Failed to create post", "slug", post.Slug, "error", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	r.logger.Info("Post created successfully", "slug", created.Slug)
	return &created, nil
}

// Update rewrites title and content for the row addressed by slug and
// returns the updated row
func (r *PostRepository) Update(ctx context.Context, slug, title, content string) (*domain.Post, error) {
	query := `
		UPDATE posts
		SET title = $1, content = $2
		WHERE slug = $3
		RETURNING slug, title, content, created_date`

	db, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer releaseConnection(ctx, db, r.logger)

	r.logger.Info("Updating post", "slug", slug)

	var updated domain.Post
	err = db.QueryRow(ctx, query, title, content, slug).Scan(
		&updated.Slug,
		&updated.Title,
		&updated.Content,
		&updated.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Post not found for update", "slug", slug)
			return nil, domain.ErrPostNotFound
		}
		r.logger.Error("Failed to update post", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	r.logger.Info("Post updated successfully", "slug", slug)
	return &updated, nil
}

// Delete removes the row addressed by slug and returns the deleted row
func (r *PostRepository) Delete(ctx context.Context, slug string) (*domain.Post, error) {
	query := `
		DELETE FROM posts
		WHERE slug = $1
		RETURNING slug, title, content, created_date`

	db, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer releaseConnection(ctx, db, r.logger)

	r.logger.Info("Deleting post", "slug", slug)

	var deleted domain.Post
	err = db.QueryRow(ctx, query, slug).Scan(
		&deleted.Slug,
		&deleted.Title,
		&deleted.Content,
		&deleted.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Post not found for deletion", "slug", slug)
			return nil, domain.ErrPostNotFound
		}
		r.logger.Error("Failed to delete post", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	r.logger.Info("Post deleted successfully", "slug", slug)
	return &deleted, nil
}
