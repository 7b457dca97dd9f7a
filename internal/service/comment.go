package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sumire/taskboard/internal/domain"
)

// CommentStore defines the comment data access interface.
type CommentStore interface {
	Insert(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	FindByTaskID(ctx context.Context, taskID int64) ([]domain.CommentDetail, error)
	Update(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// CommentCreateRequest carries the fields needed to create a comment.
type CommentCreateRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// CommentService orchestrates comment operations.
type CommentService struct {
	comments CommentStore
	tasks    TaskStore
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments CommentStore, tasks TaskStore) *CommentService {
	return &CommentService{comments: comments, tasks: tasks}
}

// AddComment verifies the task exists and inserts a comment authored by the
// given user.
func (s *CommentService) AddComment(ctx context.Context, taskID, userID int64, req CommentCreateRequest) (*domain.Comment, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, fmt.Errorf("verify task %d: %w", taskID, err)
	}

	comment, err := s.comments.Insert(ctx, domain.Comment{
		TaskID:  taskID,
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("comment added", "id", comment.ID, "task_id", taskID)
	return comment, nil
}

// ListTaskComments lists a task's comments, newest first.
func (s *CommentService) ListTaskComments(ctx context.Context, taskID int64) ([]domain.CommentDetail, error) {
	return s.comments.FindByTaskID(ctx, taskID)
}

// UpdateComment loads the comment, overwrites its content and persists the
// result.
func (s *CommentService) UpdateComment(ctx context.Context, id int64, req CommentCreateRequest) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	return s.comments.Update(ctx, *comment)
}

// DeleteComment removes a comment. Deleting an absent ID fails with
// domain.ErrNotFound.
func (s *CommentService) DeleteComment(ctx context.Context, id int64) error {
	if _, err := s.comments.FindByID(ctx, id); err != nil {
		return err
	}
	return s.comments.Delete(ctx, id)
}
