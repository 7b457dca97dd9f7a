package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sumire/taskboard/internal/domain"
)

// MemberRepository handles project membership data access operations.
type MemberRepository struct {
	db *sqlx.DB
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Insert persists a new membership and returns the stored record.
// Adding the same user twice surfaces as domain.ErrConflict.
func (r *MemberRepository) Insert(ctx context.Context, member domain.ProjectMember) (*domain.ProjectMember, error) {
	var result domain.ProjectMember
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO project_members (project_id, user_id, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, project_id, user_id, role, joined_at`,
		member.ProjectID, member.UserID, member.Role,
	).StructScan(&result)
	if err != nil {
		return nil, fmt.Errorf("insert project member: %w", translateConstraint(err))
	}
	return &result, nil
}

// FindByProjectID lists a project's members with user info, longest-standing
// member first.
func (r *MemberRepository) FindByProjectID(ctx context.Context, projectID int64) ([]domain.ProjectMemberDetail, error) {
	members := []domain.ProjectMemberDetail{}
	err := r.db.SelectContext(ctx, &members,
		`SELECT pm.id, pm.project_id, pm.user_id, pm.role, pm.joined_at,
		        u.username,
		        u.name AS user_name
		 FROM project_members pm
		 LEFT JOIN users u ON pm.user_id = u.id
		 WHERE pm.project_id = $1
		 ORDER BY pm.joined_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("find members by project %d: %w", projectID, err)
	}
	return members, nil
}

// Delete removes a user's membership from a project.
func (r *MemberRepository) Delete(ctx context.Context, projectID, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM project_members WHERE project_id = $1 AND user_id = $2`,
		projectID, userID)
	if err != nil {
		return fmt.Errorf("delete member %d from project %d: %w", userID, projectID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
