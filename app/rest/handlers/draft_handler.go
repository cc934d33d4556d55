package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"content-service/app/domain"
	"content-service/app/port"
	"content-service/app/utils/logger"
	"content-service/app/utils/validator"
)

// DraftHandler handles draft HTTP requests. Drafts live in their own table
// and never interact with published posts.
type DraftHandler struct {
	draftUsecase port.DraftUsecase
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftUsecase port.DraftUsecase, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{
		draftUsecase: draftUsecase,
		validator:    validator.New(),
		logger:       logger,
	}
}

// ListDrafts returns all drafts, newest first
// @Summary List drafts
// @Description List all drafts ordered by creation date descending
// @Tags drafts
// @Accept json
// @Produce json
// @Success 200 {array} domain.Draft
// @Failure 500 "Empty body"
// @Failure 503 "Empty body"
// @Router /api/drafts [get]
func (h *DraftHandler) ListDrafts(c echo.Context) error {
	ctx := c.Request().Context()

	drafts, err := h.draftUsecase.ListDrafts(ctx)
	if err != nil {
		h.logger.Error("failed to list drafts",
			"error", err,
			"request_id", logger.RequestIDFromContext(ctx))
		if errors.Is(err, domain.ErrDatabaseUnavailable) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		// List failures respond with a bare status, no body
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, drafts)
}

// CreateDraft creates a new draft
// @Summary Create draft
// @Description Create a draft; the slug is derived from the title once and never changes
// @Tags drafts
// @Accept json
// @Produce json
// @Param body body domain.CreateDraftRequest true "Draft creation request"
// @Success 201 {object} domain.Draft
// @Failure 400 {object} ErrorResponse
// @Failure 500 "Empty body"
// @Failure 503 "Empty body"
// @Router /api/drafts [post]
func (h *DraftHandler) CreateDraft(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.CreateDraftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			return c.JSON(http.StatusBadRequest, ValidationFailedResponse{
				Error:  "validation failed",
				Fields: valErr.Errors,
			})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed",
		})
	}

	draft, err := h.draftUsecase.CreateDraft(ctx, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Details: err.Error(),
			})
		}
		h.logger.Error("failed to create draft",
			"title", req.Title,
			"error", err,
			"request_id", logger.RequestIDFromContext(ctx))
		if errors.Is(err, domain.ErrDatabaseUnavailable) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		// Create failures respond with a bare status, no body
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, draft)
}

// UpdateDraft overwrites title and content of the draft addressed by slug.
// The slug itself never changes, even when the new title would produce a
// different one.
// @Summary Update draft
// @Description Update title and content of an existing draft
// @Tags drafts
// @Accept json
// @Produce json
// @Param slug path string true "Draft slug"
// @Param body body domain.UpdateDraftRequest true "Draft update request"
// @Success 201 {object} domain.Draft
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} DetailedErrorResponse
// @Failure 503 {object} DetailedErrorResponse
// @Router /api/drafts/{slug} [put]
func (h *DraftHandler) UpdateDraft(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	var req domain.UpdateDraftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			return c.JSON(http.StatusBadRequest, ValidationFailedResponse{
				Error:  "validation failed",
				Fields: valErr.Errors,
			})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed",
		})
	}

	draft, err := h.draftUsecase.UpdateDraft(ctx, slug, &req)
	if err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Draft not found",
			})
		}
		h.logger.Error("failed to update draft",
			"slug", slug,
			"error", err,
			"request_id", logger.RequestIDFromContext(ctx))
		if errors.Is(err, domain.ErrDatabaseUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, DetailedErrorResponse{
				Error:   "Service unavailable",
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, DetailedErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
	}

	// Updates respond with 201, matching the create path
	return c.JSON(http.StatusCreated, draft)
}

// DeleteDraft removes the draft addressed by slug
// @Summary Delete draft
// @Description Delete an existing draft by slug
// @Tags drafts
// @Accept json
// @Produce json
// @Param slug path string true "Draft slug"
// @Success 201 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} DetailedErrorResponse
// @Failure 503 {object} DetailedErrorResponse
// @Router /api/drafts/{slug} [delete]
func (h *DraftHandler) DeleteDraft(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	draft, err := h.draftUsecase.DeleteDraft(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Draft not found",
			})
		}
		h.logger.Error("failed to delete draft",
			"slug", slug,
			"error", err,
			"request_id", logger.RequestIDFromContext(ctx))
		if errors.Is(err, domain.ErrDatabaseUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, DetailedErrorResponse{
				Error:   "Service unavailable",
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, DetailedErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
	}

	h.logger.Info("draft deleted", "slug", draft.Slug, "title", draft.Title)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: fmt.Sprintf("Draft with slug %s deleted successfully", slug),
	})
}
