package port

//go:generate mockgen -source=draft_port.go -destination=../mocks/mock_draft_port.go

import (
	"context"

	"content-service/app/domain"
)

// DraftUsecase defines draft management business logic interface
type DraftUsecase interface {
	ListDrafts(ctx context.Context) ([]*domain.Draft, error)
	CreateDraft(ctx context.Context, req *domain.CreateDraftRequest) (*domain.Draft, error)
	UpdateDraft(ctx context.Context, slug string, req *domain.UpdateDraftRequest) (*domain.Draft, error)
	DeleteDraft(ctx context.Context, slug string) (*domain.Draft, error)
}

// DraftRepositoryPort defines draft data access interface
type DraftRepositoryPort interface {
	List(ctx context.Context) ([]*domain.Draft, error)
	Create(ctx context.Context, draft *domain.Draft) (*domain.Draft, error)
	// Update rewrites title and content for the row addressed by slug.
	// The slug itself is immutable and never derived again from the title.
	Update(ctx context.Context, slug, title, content string) (*domain.Draft, error)
	Delete(ctx context.Context, slug string) (*domain.Draft, error)
}
