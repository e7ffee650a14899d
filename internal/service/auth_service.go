package service

import (
	"context"
	"fmt"

	apperrors "propal/internal/errors"
	"propal/internal/model"
	"propal/internal/repository"
)

// AuthService checks credentials against the record store.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.SafeUser, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type authService struct {
	repo repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(repo repository.UserRepository) AuthService {
	return &authService{repo: repo}
}

// Login returns the safe projection of the record whose email and password
// both match exactly.
func (s *authService) Login(ctx context.Context, email, password string) (*model.SafeUser, error) {
	users, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			safe := u.Safe()
			return &safe, nil
		}
	}
	return nil, apperrors.ErrInvalidCredentials
}

// ChangePassword overwrites the password of userID once currentPassword
// matches, then rewrites the whole store.
func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	users, err := s.repo.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperrors.ErrUserNotFound
	}

	if users[idx].Password != currentPassword {
		return apperrors.ErrIncorrectPassword
	}

	users[idx].Password = newPassword
	if err := s.repo.WriteAll(ctx, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
