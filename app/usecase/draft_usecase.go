package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"content-service/app/domain"
	"content-service/app/port"
)

// DraftUsecase implements draft management business logic. It mirrors the
// post flow against the drafts table; the two never interact.
type DraftUsecase struct {
	repo   port.DraftRepositoryPort
	logger *slog.Logger
}

// NewDraftUsecase creates a new draft usecase
func NewDraftUsecase(repo port.DraftRepositoryPort, logger *slog.Logger) *DraftUsecase {
	return &DraftUsecase{
		repo:   repo,
		logger: logger.With("component", "draft_usecase"),
	}
}

// ListDrafts returns all drafts, newest first
func (u *DraftUsecase) ListDrafts(ctx context.Context) ([]*domain.Draft, error) {
	return u.repo.List(ctx)
}

// CreateDraft derives the slug from the title and stores the draft
func (u *DraftUsecase) CreateDraft(ctx context.Context, req *domain.CreateDraftRequest) (*domain.Draft, error) {
	draft, err := domain.NewDraft(req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	u.logger.Info("creating draft", "slug", draft.Slug)
	return u.repo.Create(ctx, draft)
}

// UpdateDraft rewrites title and content of an existing draft. The slug from
// the path stays authoritative and is never recomputed from the new title.
func (u *DraftUsecase) UpdateDraft(ctx context.Context, slug string, req *domain.UpdateDraftRequest) (*domain.Draft, error) {
	u.logger.Info("updating draft", "slug", slug)
	return u.repo.Update(ctx, slug, req.Title, req.Content)
}

// DeleteDraft removes the draft addressed by slug and returns the deleted row
func (u *DraftUsecase) DeleteDraft(ctx context.Context, slug string) (*domain.Draft, error) {
	u.logger.Info("deleting draft", "slug", slug)
	return u.repo.Delete(ctx, slug)
}
