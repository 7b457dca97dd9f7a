package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/taskboard/internal/domain"
	"github.com/sumire/taskboard/internal/service"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	tasks    *service.TaskService
	projects *service.ProjectService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *service.TaskService, projects *service.ProjectService) *TaskHandler {
	return &TaskHandler{tasks: tasks, projects: projects}
}

// List searches tasks by the optional project_id, status, priority and
// keyword query parameters. Absent filters are unconstrained.
func (h *TaskHandler) List(c echo.Context) error {
	projectID, err := queryInt64(c, "project_id")
	if err != nil {
		return err
	}

	tasks, err := h.tasks.SearchTasks(c.Request().Context(), service.TaskSearchRequest{
		ProjectID: projectID,
		Status:    queryString(c, "status"),
		Priority:  queryString(c, "priority"),
		Keyword:   queryString(c, "keyword"),
	})
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, tasks)
}

// Kanban returns a project's tasks grouped by status for the board view.
func (h *TaskHandler) Kanban(c echo.Context) error {
	projectID, err := queryInt64(c, "project_id")
	if err != nil {
		return err
	}
	if projectID == nil {
		return fmt.Errorf("%w: project_id is required", domain.ErrInvalidInput)
	}

	ctx := c.Request().Context()

	project, err := h.projects.GetProject(ctx, *projectID)
	if err != nil {
		return err
	}

	tasks, err := h.tasks.ListProjectTasks(ctx, *projectID)
	if err != nil {
		return err
	}

	groups := map[domain.TaskStatus][]domain.TaskDetail{
		domain.TaskStatusTodo:       {},
		domain.TaskStatusInProgress: {},
		domain.TaskStatusDone:       {},
	}
	for _, task := range tasks {
		groups[task.Status] = append(groups[task.Status], task)
	}

	return JSON(c, http.StatusOK, map[string]any{
		"project":     project,
		"todo":        groups[domain.TaskStatusTodo],
		"in_progress": groups[domain.TaskStatusInProgress],
		"done":        groups[domain.TaskStatusDone],
	})
}

// Overdue lists the authenticated user's unfinished tasks past their due date.
func (h *TaskHandler) Overdue(c echo.Context) error {
	userID, ok := GetUserID(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	tasks, err := h.tasks.OverdueTasks(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, tasks)
}

// Get returns a task with join-enriched detail.
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	task, err := h.tasks.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, task)
}

// Create inserts a new task.
func (h *TaskHandler) Create(c echo.Context) error {
	var req service.TaskCreateRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusCreated, task)
}

// Update rewrites a task's mutable fields.
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var req service.TaskUpdateRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.tasks.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusOK, task)
}

// UpdateStatus applies a status-only update.
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var body struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.Bind(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := c.Validate(&body); err != nil {
		return err
	}

	if err := h.tasks.UpdateTaskStatus(c.Request().Context(), id, body.Status); err != nil {
		return err
	}

	return JSON(c, http.StatusOK, map[string]any{
		"success": true,
		"message": "status updated",
	})
}

// Delete removes a task.
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	if err := h.tasks.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
