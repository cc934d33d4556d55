package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"content-service/app/domain"
	"content-service/app/port"
)

// PostUsecase implements post management business logic
type PostUsecase struct {
	repo   port.PostRepositoryPort
	logger *slog.Logger
}

// NewPostUsecase creates a new post usecase
func NewPostUsecase(repo port.PostRepositoryPort, logger *slog.Logger) *PostUsecase {
	return &PostUsecase{
		repo:   repo,
		logger: logger.With("component", "post_usecase"),
	}
}

// ListPosts returns all posts, newest first
func (u *PostUsecase) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	return u.repo.List(ctx)
}

// CreatePost derives the slug from the title and stores the post
func (u *PostUsecase) CreatePost(ctx context.Context, req *domain.CreatePostRequest) (*domain.Post, error) {
	post, err := domain.NewPost(req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	u.logger.Info("creating post", "slug", post.Slug)
	return u.repo.Create(ctx, post)
}

// UpdatePost rewrites title and content of an existing post. The slug from
// the path stays authoritative and is never recomputed from the new title.
func (u *PostUsecase) UpdatePost(ctx context.Context, slug string, req *domain.UpdatePostRequest) (*domain.Post, error) {
	u.logger.Info("updating post", "slug", slug)
	return u.repo.Update(ctx, slug, req.Title, req.Content)
}

// DeletePost removes the post addressed by slug and returns the deleted row
func (u *PostUsecase) DeletePost(ctx context.Context, slug string) (*domain.Post, error) {
	u.logger.Info("deleting post", "slug", slug)
	return u.repo.Delete(ctx, slug)
}
