package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/sumire/taskboard/internal/domain"
)

// UserStore defines the user data access interface consumed by services.
type UserStore interface {
	Insert(ctx context.Context, user domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, password string) error
}

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// UserUpdateRequest carries a user's mutable profile fields.
type UserUpdateRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=100"`
}

// PasswordChangeRequest carries the fields for a password change.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// UserService orchestrates account operations.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register hashes the password and inserts the account. Username and email
// uniqueness is enforced by the store; violations surface as
// domain.ErrConflict.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Insert(ctx, domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "id", user.ID, "username", user.Username)
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// ListUsers lists every user ordered by username.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// UpdateProfile loads the user, overwrites their email and display name and
// persists the result.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, req UserUpdateRequest) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Email = req.Email
	user.Name = req.Name

	return s.users.Update(ctx, *user)
}

// ChangePassword verifies the current password before applying a narrow
// password-only update with a fresh hash.
func (s *UserService) ChangePassword(ctx context.Context, id int64, req PasswordChangeRequest) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return fmt.Errorf("%w: current password does not match", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}

	slog.Info("password changed", "user_id", id)
	return nil
}
