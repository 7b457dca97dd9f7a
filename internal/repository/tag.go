package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sumire/taskboard/internal/domain"
)

// TagRepository handles tag data access operations, including the
// task-tag association table.
type TagRepository struct {
	db *sqlx.DB
}

// NewTagRepository creates a new TagRepository.
func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Insert persists a new tag and returns the stored record with its
// generated ID.
func (r *TagRepository) Insert(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	var result domain.Tag
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO tags (name, color)
		 VALUES ($1, $2)
		 RETURNING id, name, color, created_at`,
		tag.Name, tag.Color,
	).StructScan(&result)
	if err != nil {
		return nil, fmt.Errorf("insert tag: %w", translateConstraint(err))
	}
	return &result, nil
}

// FindByID retrieves a tag by its ID.
func (r *TagRepository) FindByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.GetContext(ctx, &tag,
		`SELECT id, name, color, created_at FROM tags WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find tag by id %d: %w", id, err)
	}
	return &tag, nil
}

// FindAll retrieves every tag ordered by name.
func (r *TagRepository) FindAll(ctx context.Context) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	err := r.db.SelectContext(ctx, &tags,
		`SELECT id, name, color, created_at FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("find all tags: %w", err)
	}
	return tags, nil
}

// FindByTaskID lists a task's tags via the association table, ordered by name.
func (r *TagRepository) FindByTaskID(ctx context.Context, taskID int64) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	err := r.db.SelectContext(ctx, &tags,
		`SELECT t.id, t.name, t.color, t.created_at
		 FROM tags t
		 JOIN task_tags tt ON t.id = tt.tag_id
		 WHERE tt.task_id = $1
		 ORDER BY t.name`, taskID)
	if err != nil {
		return nil, fmt.Errorf("find tags by task %d: %w", taskID, err)
	}
	return tags, nil
}

// Attach links a tag to a task. Attaching the same pair twice surfaces as
// domain.ErrConflict through the composite primary key.
func (r *TagRepository) Attach(ctx context.Context, taskID, tagID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_tags (task_id, tag_id) VALUES ($1, $2)`,
		taskID, tagID)
	if err != nil {
		return fmt.Errorf("attach tag %d to task %d: %w", tagID, taskID, translateConstraint(err))
	}
	return nil
}

// Detach unlinks a tag from a task.
func (r *TagRepository) Detach(ctx context.Context, taskID, tagID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM task_tags WHERE task_id = $1 AND tag_id = $2`,
		taskID, tagID)
	if err != nil {
		return fmt.Errorf("detach tag %d from task %d: %w", tagID, taskID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a tag.
func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
