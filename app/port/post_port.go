package port

//go:generate mockgen -source=post_port.go -destination=../mocks/mock_post_port.go

import (
	"context"

	"content-service/app/domain"
)

// PostUsecase defines post management business logic interface
type PostUsecase interface {
	ListPosts(ctx context.Context) ([]*domain.Post, error)
	CreatePost(ctx context.Context, req *domain.CreatePostRequest) (*domain.Post, error)
	UpdatePost(ctx context.Context, slug string, req *domain.UpdatePostRequest) (*domain.Post, error)
	DeletePost(ctx context.Context, slug string) (*domain.Post, error)
}

// PostRepositoryPort defines post data access interface
type PostRepositoryPort interface {
	List(ctx context.Context) ([]*domain.Post, error)
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// Update rewrites title and content for the row addressed by slug.
	// The slug itself is immutable and never derived again from the title.
	Update(ctx context.Context, slug, title, content string) (*domain.Post, error)
	Delete(ctx context.Context, slug string) (*domain.Post, error)
}
