package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sumire/taskboard/internal/domain"
)

// ProjectStore defines the project data access interface consumed by services.
type ProjectStore interface {
	Insert(ctx context.Context, project domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	FindByIDWithDetails(ctx context.Context, id int64) (*domain.ProjectDetail, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.ProjectDetail, error)
	Update(ctx context.Context, project domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// MemberStore defines the membership data access interface.
type MemberStore interface {
	Insert(ctx context.Context, member domain.ProjectMember) (*domain.ProjectMember, error)
	FindByProjectID(ctx context.Context, projectID int64) ([]domain.ProjectMemberDetail, error)
	Delete(ctx context.Context, projectID, userID int64) error
}

// ProjectCreateRequest carries the fields needed to create a project.
type ProjectCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// MemberAddRequest carries the fields needed to add a project member.
type MemberAddRequest struct {
	UserID int64  `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

// ProjectService orchestrates project and membership operations.
type ProjectService struct {
	projects ProjectStore
	members  MemberStore
	users    UserStore
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projects ProjectStore, members MemberStore, users UserStore) *ProjectService {
	return &ProjectService{projects: projects, members: members, users: users}
}

// CreateProject resolves the acting user by username and inserts a project
// owned by them.
func (s *ProjectService) CreateProject(ctx context.Context, req ProjectCreateRequest, username string) (*domain.Project, error) {
	owner, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolve owner %s: %w", username, err)
	}

	project, err := s.projects.Insert(ctx, domain.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     owner.ID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("project created", "id", project.ID, "owner_id", owner.ID)
	return project, nil
}

// GetProject retrieves a project with join-enriched detail.
func (s *ProjectService) GetProject(ctx context.Context, id int64) (*domain.ProjectDetail, error) {
	return s.projects.FindByIDWithDetails(ctx, id)
}

// ListUserProjects lists every project the named user owns or belongs to.
func (s *ProjectService) ListUserProjects(ctx context.Context, username string) ([]domain.ProjectDetail, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolve user %s: %w", username, err)
	}
	return s.projects.FindByUserID(ctx, user.ID)
}

// UpdateProject loads the project, overwrites its name and description and
// persists the result.
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, req ProjectCreateRequest) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Name = req.Name
	project.Description = req.Description

	updated, err := s.projects.Update(ctx, *project)
	if err != nil {
		return nil, err
	}

	slog.Info("project updated", "id", id)
	return updated, nil
}

// DeleteProject removes a project. Deleting an absent ID fails with
// domain.ErrNotFound.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("project deleted", "id", id)
	return nil
}

// AddMember verifies both sides of the membership exist, coerces the role
// and inserts the record.
func (s *ProjectService) AddMember(ctx context.Context, projectID int64, req MemberAddRequest) (*domain.ProjectMember, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("verify project %d: %w", projectID, err)
	}
	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("verify user %d: %w", req.UserID, err)
	}

	role, err := domain.ParseProjectRole(req.Role)
	if err != nil {
		return nil, err
	}

	member, err := s.members.Insert(ctx, domain.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      role,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("project member added", "project_id", projectID, "user_id", req.UserID)
	return member, nil
}

// ListMembers lists a project's members. The project must exist.
func (s *ProjectService) ListMembers(ctx context.Context, projectID int64) ([]domain.ProjectMemberDetail, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("verify project %d: %w", projectID, err)
	}
	return s.members.FindByProjectID(ctx, projectID)
}

// RemoveMember removes a user from a project.
func (s *ProjectService) RemoveMember(ctx context.Context, projectID, userID int64) error {
	if err := s.members.Delete(ctx, projectID, userID); err != nil {
		return err
	}

	slog.Info("project member removed", "project_id", projectID, "user_id", userID)
	return nil
}
