package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/taskboard/internal/domain"
	"github.com/sumire/taskboard/internal/service"
)

// ProjectHandler handles project and membership endpoints.
type ProjectHandler struct {
	projects *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List returns every project the authenticated user owns or belongs to.
func (h *ProjectHandler) List(c echo.Context) error {
	username, ok := GetUsername(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	projects, err := h.projects.ListUserProjects(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, projects)
}

// Get returns a project with join-enriched detail.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projects.GetProject(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, project)
}

// Create inserts a new project owned by the authenticated user.
func (h *ProjectHandler) Create(c echo.Context) error {
	username, ok := GetUsername(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	var req service.ProjectCreateRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.projects.CreateProject(c.Request().Context(), req, username)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusCreated, project)
}

// Update rewrites a project's name and description.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var req service.ProjectCreateRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.projects.UpdateProject(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, project)
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	if err := h.projects.DeleteProject(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMembers returns a project's members with user info.
func (h *ProjectHandler) ListMembers(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	members, err := h.projects.ListMembers(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, members)
}

// AddMember adds a user to a project.
func (h *ProjectHandler) AddMember(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var req service.MemberAddRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.projects.AddMember(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusCreated, member)
}

// RemoveMember removes a user from a project.
func (h *ProjectHandler) RemoveMember(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	userID, err := paramInt64(c, "userID")
	if err != nil {
		return err
	}

	if err := h.projects.RemoveMember(c.Request().Context(), id, userID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
