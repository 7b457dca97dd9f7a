package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sumire/taskboard/internal/domain"
)

// TaskStore defines the task data access interface consumed by services.
type TaskStore interface {
	Insert(ctx context.Context, task domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	FindByIDWithDetails(ctx context.Context, id int64) (*domain.TaskDetail, error)
	FindByProjectID(ctx context.Context, projectID int64) ([]domain.TaskDetail, error)
	Search(ctx context.Context, criteria domain.TaskSearchCriteria) ([]domain.TaskDetail, error)
	FindOverdue(ctx context.Context, userID int64) ([]domain.TaskDetail, error)
	Update(ctx context.Context, task domain.Task) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error
	Delete(ctx context.Context, id int64) error
}

// TaskCreateRequest carries the fields needed to create a task.
type TaskCreateRequest struct {
	ProjectID   int64      `json:"project_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Status      string     `json:"status" validate:"required"`
	Priority    string     `json:"priority" validate:"required"`
	AssigneeID  *int64     `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskUpdateRequest carries the mutable fields of a task. The owning
// project cannot be changed after creation.
type TaskUpdateRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Status      string     `json:"status" validate:"required"`
	Priority    string     `json:"priority" validate:"required"`
	AssigneeID  *int64     `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskSearchRequest narrows a task listing. Nil fields are unconstrained.
type TaskSearchRequest struct {
	ProjectID *int64
	Status    *string
	Priority  *string
	Keyword   *string
}

// TaskService orchestrates task operations.
type TaskService struct {
	tasks    TaskStore
	projects ProjectStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks TaskStore, projects ProjectStore) *TaskService {
	return &TaskService{tasks: tasks, projects: projects}
}

// CreateTask verifies the target project exists, coerces the enum fields and
// inserts the task, returning the record with its assigned ID.
func (s *TaskService) CreateTask(ctx context.Context, req TaskCreateRequest) (*domain.Task, error) {
	if _, err := s.projects.FindByID(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("verify project %d: %w", req.ProjectID, err)
	}

	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		return nil, err
	}
	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.Insert(ctx, domain.Task{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("task created", "id", task.ID, "project_id", task.ProjectID)
	return task, nil
}

// GetTask retrieves a task with join-enriched detail.
func (s *TaskService) GetTask(ctx context.Context, id int64) (*domain.TaskDetail, error) {
	return s.tasks.FindByIDWithDetails(ctx, id)
}

// ListProjectTasks lists a project's tasks in board order.
func (s *TaskService) ListProjectTasks(ctx context.Context, projectID int64) ([]domain.TaskDetail, error) {
	return s.tasks.FindByProjectID(ctx, projectID)
}

// SearchTasks lists tasks matching every supplied filter. Status and
// priority values are validated before the query is issued.
func (s *TaskService) SearchTasks(ctx context.Context, req TaskSearchRequest) ([]domain.TaskDetail, error) {
	criteria := domain.TaskSearchCriteria{
		ProjectID: req.ProjectID,
		Keyword:   req.Keyword,
	}
	if req.Status != nil {
		status, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		criteria.Status = &status
	}
	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		criteria.Priority = &priority
	}
	return s.tasks.Search(ctx, criteria)
}

// OverdueTasks lists the user's unfinished tasks past their due date.
func (s *TaskService) OverdueTasks(ctx context.Context, userID int64) ([]domain.TaskDetail, error) {
	return s.tasks.FindOverdue(ctx, userID)
}

// UpdateTask loads the task, overwrites its mutable fields from the request
// and persists the result.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, req TaskUpdateRequest) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		return nil, err
	}
	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Status = status
	task.Priority = priority
	task.AssigneeID = req.AssigneeID
	task.DueDate = req.DueDate

	updated, err := s.tasks.Update(ctx, *task)
	if err != nil {
		return nil, err
	}

	slog.Info("task updated", "id", id)
	return updated, nil
}

// UpdateTaskStatus validates the status symbol and applies a narrow
// status-only update. Any status may move to any other status.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	parsed, err := domain.ParseTaskStatus(status)
	if err != nil {
		return err
	}

	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.tasks.UpdateStatus(ctx, id, parsed); err != nil {
		return err
	}

	slog.Info("task status updated", "id", id, "status", parsed)
	return nil
}

// DeleteTask removes a task. Deleting an absent ID fails with
// domain.ErrNotFound rather than silently succeeding.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("task deleted", "id", id)
	return nil
}
