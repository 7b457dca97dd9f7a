package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/taskboard/internal/domain"
	"github.com/sumire/taskboard/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListForTask returns a task's comments, newest first.
func (h *CommentHandler) ListForTask(c echo.Context) error {
	taskID, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.comments.ListTaskComments(c.Request().Context(), taskID)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, comments)
}

// Create adds a comment to a task, authored by the authenticated user.
func (h *CommentHandler) Create(c echo.Context) error {
	taskID, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	userID, ok := GetUserID(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	var req service.CommentCreateRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.comments.AddComment(c.Request().Context(), taskID, userID, req)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusCreated, comment)
}

// Update rewrites a comment's content.
func (h *CommentHandler) Update(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var req service.CommentCreateRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.comments.UpdateComment(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, comment)
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	if err := h.comments.DeleteComment(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
