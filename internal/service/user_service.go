package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	apperrors "propal/internal/errors"
	"propal/internal/model"
	"propal/internal/repository"
)

// CreateUserInput carries the signup fields.
type CreateUserInput struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	Role        string
}

// UserService exposes user listing and signup.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.SafeUser, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*model.SafeUser, error)
	ImportUsers(ctx context.Context, users []model.User) (imported, skipped int, err error)
}

type userService struct {
	repo  repository.UserRepository
	newID func() string
}

// NewUserService builds a UserService on top of the record store.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo, newID: timeID}
}

// timeID derives an id from the wall clock in milliseconds. Two signups in the
// same millisecond get the same id.
func timeID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func (s *userService) ListUsers(ctx context.Context) ([]model.SafeUser, error) {
	users, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	safe := make([]model.SafeUser, 0, len(users))
	for _, u := range users {
		safe = append(safe, u.Safe())
	}
	return safe, nil
}

// CreateUser appends a new record unless the email is already present. The
// existence check and the write are separate store calls.
func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*model.SafeUser, error) {
	users, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	if findByEmail(users, in.Email) >= 0 {
		return nil, apperrors.ErrUserAlreadyExists
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	user := model.User{
		ID:          s.newID(),
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		PhoneNumber: in.PhoneNumber,
		Role:        role,
	}

	users = append(users, user)
	if err := s.repo.WriteAll(ctx, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}

	safe := user.Safe()
	return &safe, nil
}

// ImportUsers appends every record whose email is not yet stored and writes
// the store once. Records without an id get a fresh one. Records missing an
// email or password, or carrying an unknown role, are skipped.
func (s *userService) ImportUsers(ctx context.Context, incoming []model.User) (imported, skipped int, err error) {
	users, err := s.repo.ReadAll(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load users: %w", err)
	}

	for _, u := range incoming {
		if !importable(u) || findByEmail(users, u.Email) >= 0 {
			skipped++
			continue
		}
		if u.ID == "" {
			u.ID = s.newID() + "-" + strconv.Itoa(imported)
		}
		if u.Role == "" {
			u.Role = model.RoleUser
		}
		users = append(users, u)
		imported++
	}

	if imported == 0 {
		return 0, skipped, nil
	}
	if err := s.repo.WriteAll(ctx, users); err != nil {
		return 0, 0, fmt.Errorf("save users: %w", err)
	}
	return imported, skipped, nil
}

func importable(u model.User) bool {
	if u.Email == "" || u.Password == "" {
		return false
	}
	switch u.Role {
	case "", model.RoleAdmin, model.RoleUser:
		return true
	}
	return false
}

func findByEmail(users []model.User, email string) int {
	for i := range users {
		if users[i].Email == email {
			return i
		}
	}
	return -1
}
