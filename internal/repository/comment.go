package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sumire/taskboard/internal/domain"
)

// CommentRepository handles comment data access operations.
type CommentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Insert persists a new comment and returns the stored record with its
// generated ID.
func (r *CommentRepository) Insert(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	var result domain.Comment
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO comments (task_id, user_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, task_id, user_id, content, created_at, updated_at`,
		comment.TaskID, comment.UserID, comment.Content,
	).StructScan(&result)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &result, nil
}

// FindByID retrieves a comment by its ID.
func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.GetContext(ctx, &comment,
		`SELECT id, task_id, user_id, content, created_at, updated_at
		 FROM comments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find comment by id %d: %w", id, err)
	}
	return &comment, nil
}

// FindByTaskID lists a task's comments with author info, newest first.
func (r *CommentRepository) FindByTaskID(ctx context.Context, taskID int64) ([]domain.CommentDetail, error) {
	comments := []domain.CommentDetail{}
	err := r.db.SelectContext(ctx, &comments,
		`SELECT c.id, c.task_id, c.user_id, c.content, c.created_at, c.updated_at,
		        u.username,
		        u.name AS user_name
		 FROM comments c
		 LEFT JOIN users u ON c.user_id = u.id
		 WHERE c.task_id = $1
		 ORDER BY c.created_at DESC`, taskID)
	if err != nil {
		return nil, fmt.Errorf("find comments by task %d: %w", taskID, err)
	}
	return comments, nil
}

// Update rewrites the comment content, refreshing updated_at.
func (r *CommentRepository) Update(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	var result domain.Comment
	err := r.db.QueryRowxContext(ctx,
		`UPDATE comments
		 SET content = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING id, task_id, user_id, content, created_at, updated_at`,
		comment.Content, comment.ID,
	).StructScan(&result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update comment %d: %w", comment.ID, err)
	}
	return &result, nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
