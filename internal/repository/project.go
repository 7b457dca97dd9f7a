package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sumire/taskboard/internal/domain"
)

// ProjectRepository handles project data access operations.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Insert persists a new project and returns the stored record with its
// generated ID.
func (r *ProjectRepository) Insert(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var result domain.Project
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO projects (name, description, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, description, owner_id, created_at, updated_at`,
		project.Name, project.Description, project.OwnerID,
	).StructScan(&result)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &result, nil
}

// FindByID retrieves a project by its ID without join enrichment.
func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project,
		`SELECT id, name, description, owner_id, created_at, updated_at
		 FROM projects WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find project by id %d: %w", id, err)
	}
	return &project, nil
}

// FindByIDWithDetails retrieves a project enriched with the owner's
// username. An absent owner row leaves the derived field nil.
func (r *ProjectRepository) FindByIDWithDetails(ctx context.Context, id int64) (*domain.ProjectDetail, error) {
	var project domain.ProjectDetail
	err := r.db.GetContext(ctx, &project,
		`SELECT p.id, p.name, p.description, p.owner_id, p.created_at, p.updated_at,
		        u.username AS owner_name
		 FROM projects p
		 LEFT JOIN users u ON p.owner_id = u.id
		 WHERE p.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find project details by id %d: %w", id, err)
	}
	return &project, nil
}

// FindByUserID lists every project the user owns or is a member of,
// deduplicated by project, newest first.
func (r *ProjectRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.ProjectDetail, error) {
	projects := []domain.ProjectDetail{}
	err := r.db.SelectContext(ctx, &projects,
		`SELECT DISTINCT p.id, p.name, p.description, p.owner_id, p.created_at, p.updated_at,
		        u.username AS owner_name
		 FROM projects p
		 LEFT JOIN users u ON p.owner_id = u.id
		 LEFT JOIN project_members pm ON p.id = pm.project_id
		 WHERE p.owner_id = $1 OR pm.user_id = $1
		 ORDER BY p.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("find projects for user %d: %w", userID, err)
	}
	return projects, nil
}

// Update rewrites the project's name and description, refreshing updated_at.
func (r *ProjectRepository) Update(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var result domain.Project
	err := r.db.QueryRowxContext(ctx,
		`UPDATE projects
		 SET name = $1, description = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING id, name, description, owner_id, created_at, updated_at`,
		project.Name, project.Description, project.ID,
	).StructScan(&result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update project %d: %w", project.ID, err)
	}
	return &result, nil
}

// Delete removes a project.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
