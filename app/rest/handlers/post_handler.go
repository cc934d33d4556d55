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

// PostHandler handles published post HTTP requests
type PostHandler struct {
	postUsecase port.PostUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(postUsecase port.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		validator:   validator.New(),
		logger:      logger,
	}
}

// ListPosts returns all posts, newest first
// @Summary List posts
// @Description List all published posts ordered by creation date descending
// @Tags posts
// @Accept json
// @Produce json
// @Success 200 {array} domain.Post
// @Failure 500 "Empty body"
// @Failure 503 "Empty body"
// @Router /api/posts [get]
func (h *PostHandler) ListPosts(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := h.postUsecase.ListPosts(ctx)
	if err != nil {
		h.logger.Error("failed to list posts",
			"error", err,
			"request_id", logger.RequestIDFromContext(ctx))
		if errors.Is(err, domain.ErrDatabaseUnavailable) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		// List failures respond with a bare status, no body
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, posts)
}

// CreatePost creates a new post
// @Summary Create post
// @Description Create a post; the slug is derived from the title once and never changes
// @Tags posts
// @Accept json
// @Produce json
// @Param body body domain.CreatePostRequest true "Post creation request"
// @Success 201 {object} domain.Post
// @Failure 400 {object} ErrorResponse
// @Failure 500 "Empty body"
// @Failure 503 "Empty body"
// @Router /api/posts [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.CreatePostRequest
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

	post, err := h.postUsecase.CreatePost(ctx, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Details: err.Error(),
			})
		}
		h.logger.Error("failed to create post",
			"title", req.Title,
			"error", err,
			"request_id", logger.RequestIDFromContext(ctx))
		if errors.Is(err, domain.ErrDatabaseUnavailable) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		// Create failures respond with a bare status, no body
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, post)
}

// UpdatePost overwrites title and content of the post addressed by slug.
// The slug itself never changes, even when the new title would produce a
// different one.
// @Summary Update post
// @Description Update title and content of an existing post
// @Tags posts
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param body body domain.UpdatePostRequest true "Post update request"
// @Success 201 {object} domain.Post
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} DetailedErrorResponse
// @Failure 503 {object} DetailedErrorResponse
// @Router /api/posts/{slug} [put]
func (h *PostHandler) UpdatePost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	var req domain.UpdatePostRequest
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

	post, err := h.postUsecase.UpdatePost(ctx, slug, &req)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Post not found",
			})
		}
		h.logger.Error("failed to update post",
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
	return c.JSON(http.StatusCreated, post)
}

// DeletePost removes the post addressed by slug
// @Summary Delete post
// @Description Delete an existing post by slug
// @Tags posts
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Success 201 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} DetailedErrorResponse
// @Failure 503 {object} DetailedErrorResponse
// @Router /api/posts/{slug} [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	post, err := h.postUsecase.DeletePost(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Post not found",
			})
		}
		h.logger.Error("failed to delete post",
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

	h.logger.Info("post deleted", "slug", post.Slug, "title", post.Title)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: fmt.Sprintf("Post with slug %s deleted successfully", slug),
	})
}
