package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sumire/taskboard/internal/domain"
)

// TagStore defines the tag data access interface, including the task-tag
// association.
type TagStore interface {
	Insert(ctx context.Context, tag domain.Tag) (*domain.Tag, error)
	FindByID(ctx context.Context, id int64) (*domain.Tag, error)
	FindAll(ctx context.Context) ([]domain.Tag, error)
	FindByTaskID(ctx context.Context, taskID int64) ([]domain.Tag, error)
	Attach(ctx context.Context, taskID, tagID int64) error
	Detach(ctx context.Context, taskID, tagID int64) error
	Delete(ctx context.Context, id int64) error
}

// TagCreateRequest carries the fields needed to create a tag.
type TagCreateRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"required,hexcolor"`
}

// TagService orchestrates tag operations.
type TagService struct {
	tags  TagStore
	tasks TaskStore
}

// NewTagService creates a new TagService.
func NewTagService(tags TagStore, tasks TaskStore) *TagService {
	return &TagService{tags: tags, tasks: tasks}
}

// CreateTag inserts a new tag.
func (s *TagService) CreateTag(ctx context.Context, req TagCreateRequest) (*domain.Tag, error) {
	tag, err := s.tags.Insert(ctx, domain.Tag{Name: req.Name, Color: req.Color})
	if err != nil {
		return nil, err
	}

	slog.Info("tag created", "id", tag.ID, "name", tag.Name)
	return tag, nil
}

// ListTags lists every tag ordered by name.
func (s *TagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.FindAll(ctx)
}

// GetTaskTags lists the tags attached to a task, ordered by name.
func (s *TagService) GetTaskTags(ctx context.Context, taskID int64) ([]domain.Tag, error) {
	return s.tags.FindByTaskID(ctx, taskID)
}

// AttachTag verifies both the task and the tag exist, then links them.
func (s *TagService) AttachTag(ctx context.Context, taskID, tagID int64) error {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return fmt.Errorf("verify task %d: %w", taskID, err)
	}
	if _, err := s.tags.FindByID(ctx, tagID); err != nil {
		return fmt.Errorf("verify tag %d: %w", tagID, err)
	}
	return s.tags.Attach(ctx, taskID, tagID)
}

// DetachTag unlinks a tag from a task.
func (s *TagService) DetachTag(ctx context.Context, taskID, tagID int64) error {
	return s.tags.Detach(ctx, taskID, tagID)
}

// DeleteTag removes a tag. Deleting an absent ID fails with
// domain.ErrNotFound.
func (s *TagService) DeleteTag(ctx context.Context, id int64) error {
	if _, err := s.tags.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tags.Delete(ctx, id)
}
