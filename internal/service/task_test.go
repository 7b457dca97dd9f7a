package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sumire/taskboard/internal/domain"
)

func TestCreateTask(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     TaskCreateRequest
		wantErr error
	}{
		{
			name: "valid request",
			req: TaskCreateRequest{
				ProjectID: 1,
				Title:     "write docs",
				Status:    "TODO",
				Priority:  "HIGH",
				DueDate:   &due,
			},
		},
		{
			name: "missing project",
			req: TaskCreateRequest{
				ProjectID: 99,
				Title:     "write docs",
				Status:    "TODO",
				Priority:  "HIGH",
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "unknown status",
			req: TaskCreateRequest{
				ProjectID: 1,
				Title:     "write docs",
				Status:    "BLOCKED",
				Priority:  "HIGH",
			},
			wantErr: errValidation,
		},
		{
			name: "unknown priority",
			req: TaskCreateRequest{
				ProjectID: 1,
				Title:     "write docs",
				Status:    "TODO",
				Priority:  "CRITICAL",
			},
			wantErr: errValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := newFakeTaskStore()
			projects := newFakeProjectStore()
			projects.add(domain.Project{Name: "docs", OwnerID: 1})
			svc := NewTaskService(tasks, projects)

			task, err := svc.CreateTask(context.Background(), tt.req)

			if tt.wantErr != nil {
				assertServiceErr(t, err, tt.wantErr)
				if len(tasks.inserted) != 0 {
					t.Fatalf("expected no insert, got %d", len(tasks.inserted))
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateTask: %v", err)
			}
			if task.ID <= 0 {
				t.Errorf("expected assigned id > 0, got %d", task.ID)
			}
			if task.Status != domain.TaskStatusTodo {
				t.Errorf("status = %s, want TODO", task.Status)
			}
			if task.Priority != domain.PriorityHigh {
				t.Errorf("priority = %s, want HIGH", task.Priority)
			}
			if task.DueDate == nil || !task.DueDate.Equal(due) {
				t.Errorf("due date = %v, want %v", task.DueDate, due)
			}
		})
	}
}

func TestCreateTaskRoundTrip(t *testing.T) {
	tasks := newFakeTaskStore()
	projects := newFakeProjectStore()
	project := projects.add(domain.Project{Name: "docs", OwnerID: 1})
	svc := NewTaskService(tasks, projects)

	desc := "first pass"
	created, err := svc.CreateTask(context.Background(), TaskCreateRequest{
		ProjectID:   project.ID,
		Title:       "write docs",
		Description: &desc,
		Status:      "IN_PROGRESS",
		Priority:    "MEDIUM",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	got, err := svc.GetTask(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "write docs" || got.Description == nil || *got.Description != desc {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Status != domain.TaskStatusInProgress || got.Priority != domain.PriorityMedium {
		t.Errorf("enum round trip mismatch: status=%s priority=%s", got.Status, got.Priority)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	svc := NewTaskService(newFakeTaskStore(), newFakeProjectStore())

	_, err := svc.GetTask(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTask(t *testing.T) {
	tasks := newFakeTaskStore()
	projects := newFakeProjectStore()
	project := projects.add(domain.Project{Name: "docs", OwnerID: 1})
	existing := tasks.add(domain.Task{
		ProjectID: project.ID,
		Title:     "old title",
		Status:    domain.TaskStatusTodo,
		Priority:  domain.PriorityLow,
	})
	svc := NewTaskService(tasks, projects)

	updated, err := svc.UpdateTask(context.Background(), existing.ID, TaskUpdateRequest{
		Title:    "new title",
		Status:   "DONE",
		Priority: "HIGH",
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if updated.Title != "new title" {
		t.Errorf("title = %s, want new title", updated.Title)
	}
	if updated.Status != domain.TaskStatusDone || updated.Priority != domain.PriorityHigh {
		t.Errorf("enums not updated: status=%s priority=%s", updated.Status, updated.Priority)
	}
	if updated.ProjectID != project.ID {
		t.Errorf("project id changed to %d", updated.ProjectID)
	}

	if _, err := svc.UpdateTask(context.Background(), 99, TaskUpdateRequest{
		Title: "x", Status: "TODO", Priority: "LOW",
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent task, got %v", err)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	tasks := newFakeTaskStore()
	existing := tasks.add(domain.Task{ProjectID: 1, Title: "t", Status: domain.TaskStatusTodo, Priority: domain.PriorityLow})
	svc := NewTaskService(tasks, newFakeProjectStore())

	before := tasks.tasks[existing.ID].UpdatedAt

	if err := svc.UpdateTaskStatus(context.Background(), existing.ID, "DONE"); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if got := tasks.statusSets[existing.ID]; got != domain.TaskStatusDone {
		t.Errorf("stored status = %s, want DONE", got)
	}
	if !tasks.tasks[existing.ID].UpdatedAt.After(before) {
		t.Errorf("updated_at not refreshed")
	}

	// Unknown symbols are rejected before any update is issued.
	err := svc.UpdateTaskStatus(context.Background(), existing.ID, "ARCHIVED")
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := tasks.statusSets[existing.ID]; got != domain.TaskStatusDone {
		t.Errorf("status changed by invalid update: %s", got)
	}

	if err := svc.UpdateTaskStatus(context.Background(), 99, "DONE"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent task, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	tasks := newFakeTaskStore()
	existing := tasks.add(domain.Task{ProjectID: 1, Title: "t", Status: domain.TaskStatusTodo, Priority: domain.PriorityLow})
	svc := NewTaskService(tasks, newFakeProjectStore())

	if err := svc.DeleteTask(context.Background(), existing.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := svc.GetTask(context.Background(), existing.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an absent id fails rather than silently succeeding.
	if err := svc.DeleteTask(context.Background(), existing.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(tasks.deleted) != 1 {
		t.Errorf("delete issued %d times, want 1", len(tasks.deleted))
	}
}

func TestSearchTasks(t *testing.T) {
	tasks := newFakeTaskStore()
	svc := NewTaskService(tasks, newFakeProjectStore())

	projectID := int64(7)
	status := "IN_PROGRESS"
	keyword := "docs"

	if _, err := svc.SearchTasks(context.Background(), TaskSearchRequest{
		ProjectID: &projectID,
		Status:    &status,
		Keyword:   &keyword,
	}); err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}

	if len(tasks.searched) != 1 {
		t.Fatalf("search issued %d times, want 1", len(tasks.searched))
	}
	criteria := tasks.searched[0]
	if criteria.ProjectID == nil || *criteria.ProjectID != projectID {
		t.Errorf("project filter not forwarded: %+v", criteria)
	}
	if criteria.Status == nil || *criteria.Status != domain.TaskStatusInProgress {
		t.Errorf("status filter not coerced: %+v", criteria)
	}
	if criteria.Priority != nil {
		t.Errorf("absent priority filter constrained: %+v", criteria)
	}
	if criteria.Keyword == nil || *criteria.Keyword != keyword {
		t.Errorf("keyword filter not forwarded: %+v", criteria)
	}

	bad := "URGENT"
	if _, err := svc.SearchTasks(context.Background(), TaskSearchRequest{Priority: &bad}); err == nil {
		t.Fatal("expected error for unknown priority filter")
	}
	if len(tasks.searched) != 1 {
		t.Errorf("invalid filter reached the store")
	}
}

// errValidation marks table entries expecting a *domain.ValidationError.
var errValidation = errors.New("validation error")

func assertServiceErr(t *testing.T, err, want error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(want, errValidation) {
		var validationErr *domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		return
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
