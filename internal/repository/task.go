package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sumire/taskboard/internal/domain"
)

// statusRankExpr orders tasks so active work surfaces first: TODO, then
// IN_PROGRESS, then DONE. This is a fixed board ordering, not an
// alphabetical sort of the status names.
const statusRankExpr = `CASE t.status
		WHEN 'TODO' THEN 1
		WHEN 'IN_PROGRESS' THEN 2
		WHEN 'DONE' THEN 3
	END`

// boardOrder is the listing order shared by FindByProjectID and Search:
// status rank first, newest first within each status group.
const boardOrder = statusRankExpr + `, t.created_at DESC`

// TaskRepository handles task data access operations.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Insert persists a new task and returns the stored record with its
// generated ID and store-assigned timestamps.
func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) (*domain.Task, error) {
	var result domain.Task
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO tasks (project_id, title, description, status, priority, assignee_id, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, project_id, title, description, status, priority, assignee_id, due_date, created_at, updated_at`,
		task.ProjectID, task.Title, task.Description, task.Status, task.Priority, task.AssigneeID, task.DueDate,
	).StructScan(&result)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &result, nil
}

// FindByID retrieves a task by its ID without join enrichment.
func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var task domain.Task
	err := r.db.GetContext(ctx, &task,
		`SELECT id, project_id, title, description, status, priority, assignee_id, due_date, created_at, updated_at
		 FROM tasks WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find task by id %d: %w", id, err)
	}
	return &task, nil
}

// FindByIDWithDetails retrieves a task enriched with the project name and
// assignee username. Absent foreign rows leave the derived fields nil.
func (r *TaskRepository) FindByIDWithDetails(ctx context.Context, id int64) (*domain.TaskDetail, error) {
	var task domain.TaskDetail
	err := r.db.GetContext(ctx, &task,
		`SELECT t.id, t.project_id, t.title, t.description, t.status, t.priority,
		        t.assignee_id, t.due_date, t.created_at, t.updated_at,
		        p.name AS project_name,
		        u.username AS assignee_name
		 FROM tasks t
		 LEFT JOIN projects p ON t.project_id = p.id
		 LEFT JOIN users u ON t.assignee_id = u.id
		 WHERE t.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find task details by id %d: %w", id, err)
	}
	return &task, nil
}

// FindByProjectID lists a project's tasks with the assignee username,
// ordered by status rank and then newest first within each status group.
func (r *TaskRepository) FindByProjectID(ctx context.Context, projectID int64) ([]domain.TaskDetail, error) {
	tasks := []domain.TaskDetail{}
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT t.id, t.project_id, t.title, t.description, t.status, t.priority,
		        t.assignee_id, t.due_date, t.created_at, t.updated_at,
		        u.username AS assignee_name
		 FROM tasks t
		 LEFT JOIN users u ON t.assignee_id = u.id
		 WHERE t.project_id = $1
		 ORDER BY `+boardOrder, projectID)
	if err != nil {
		return nil, fmt.Errorf("find tasks by project %d: %w", projectID, err)
	}
	return tasks, nil
}

// Search lists tasks matching every supplied criterion. Nil criteria fields
// are unconstrained; ordering matches FindByProjectID.
func (r *TaskRepository) Search(ctx context.Context, criteria domain.TaskSearchCriteria) ([]domain.TaskDetail, error) {
	query, args := buildSearchQuery(criteria)

	tasks := []domain.TaskDetail{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	return tasks, nil
}

// buildSearchQuery assembles the filtered listing query and its argument
// vector. Present criteria combine with AND; the keyword is matched against
// title and description through one shared placeholder.
func buildSearchQuery(criteria domain.TaskSearchCriteria) (string, []any) {
	query := `SELECT t.id, t.project_id, t.title, t.description, t.status, t.priority,
		        t.assignee_id, t.due_date, t.created_at, t.updated_at,
		        u.username AS assignee_name
		 FROM tasks t
		 LEFT JOIN users u ON t.assignee_id = u.id`

	var (
		conds []string
		args  []any
	)
	if criteria.ProjectID != nil {
		args = append(args, *criteria.ProjectID)
		conds = append(conds, fmt.Sprintf("t.project_id = $%d", len(args)))
	}
	if criteria.Status != nil {
		args = append(args, *criteria.Status)
		conds = append(conds, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if criteria.Priority != nil {
		args = append(args, *criteria.Priority)
		conds = append(conds, fmt.Sprintf("t.priority = $%d", len(args)))
	}
	if criteria.Keyword != nil {
		args = append(args, "%"+escapeLike(*criteria.Keyword)+"%")
		conds = append(conds, fmt.Sprintf("(t.title ILIKE $%d OR t.description ILIKE $%d)", len(args), len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY ` + boardOrder

	return query, args
}

// escapeLike backslash-escapes LIKE metacharacters so keyword input matches
// literally instead of acting as a pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// FindOverdue lists a user's unfinished tasks whose due date has passed,
// most overdue first.
func (r *TaskRepository) FindOverdue(ctx context.Context, userID int64) ([]domain.TaskDetail, error) {
	tasks := []domain.TaskDetail{}
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT t.id, t.project_id, t.title, t.description, t.status, t.priority,
		        t.assignee_id, t.due_date, t.created_at, t.updated_at,
		        p.name AS project_name
		 FROM tasks t
		 LEFT JOIN projects p ON t.project_id = p.id
		 WHERE t.assignee_id = $1
		   AND t.due_date < CURRENT_DATE
		   AND t.status <> 'DONE'
		 ORDER BY t.due_date`, userID)
	if err != nil {
		return nil, fmt.Errorf("find overdue tasks for user %d: %w", userID, err)
	}
	return tasks, nil
}

// Update rewrites every mutable task column, refreshing updated_at.
func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (*domain.Task, error) {
	var result domain.Task
	err := r.db.QueryRowxContext(ctx,
		`UPDATE tasks
		 SET title = $1,
		     description = $2,
		     status = $3,
		     priority = $4,
		     assignee_id = $5,
		     due_date = $6,
		     updated_at = NOW()
		 WHERE id = $7
		 RETURNING id, project_id, title, description, status, priority, assignee_id, due_date, created_at, updated_at`,
		task.Title, task.Description, task.Status, task.Priority, task.AssigneeID, task.DueDate, task.ID,
	).StructScan(&result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update task %d: %w", task.ID, err)
	}
	return &result, nil
}

// UpdateStatus touches only the status column plus updated_at.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("update status for task %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a task.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
