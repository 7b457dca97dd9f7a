package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/taskboard/internal/domain"
	"github.com/sumire/taskboard/internal/service"
)

// TagHandler handles tag endpoints.
type TagHandler struct {
	tags *service.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tags *service.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

// List returns every tag ordered by name.
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.tags.ListTags(c.Request().Context())
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, tags)
}

// Create inserts a new tag.
func (h *TagHandler) Create(c echo.Context) error {
	var req service.TagCreateRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tag, err := h.tags.CreateTag(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusCreated, tag)
}

// Delete removes a tag.
func (h *TagHandler) Delete(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	if err := h.tags.DeleteTag(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListForTask returns the tags attached to a task, ordered by name.
func (h *TagHandler) ListForTask(c echo.Context) error {
	taskID, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	tags, err := h.tags.GetTaskTags(c.Request().Context(), taskID)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, tags)
}

// Attach links a tag to a task.
func (h *TagHandler) Attach(c echo.Context) error {
	taskID, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	tagID, err := paramInt64(c, "tagID")
	if err != nil {
		return err
	}

	if err := h.tags.AttachTag(c.Request().Context(), taskID, tagID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Detach unlinks a tag from a task.
func (h *TagHandler) Detach(c echo.Context) error {
	taskID, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	tagID, err := paramInt64(c, "tagID")
	if err != nil {
		return err
	}

	if err := h.tags.DetachTag(c.Request().Context(), taskID, tagID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
