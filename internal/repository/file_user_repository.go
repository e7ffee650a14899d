package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"propal/internal/model"
)

type fileUserRepository struct {
	path string
	log  *slog.Logger
}

// NewFileUserRepository builds a repository backed by a JSON array file at path.
func NewFileUserRepository(path string, log *slog.Logger) UserRepository {
	return &fileUserRepository{path: path, log: log}
}

func (r *fileUserRepository) ReadAll(ctx context.Context) ([]model.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.log.WarnContext(ctx, "read users file, returning empty list", "path", r.path, "error", err)
		return []model.User{}, nil
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		r.log.WarnContext(ctx, "parse users file, returning empty list", "path", r.path, "error", err)
		return []model.User{}, nil
	}
	return nonNil(users), nil
}

func (r *fileUserRepository) WriteAll(ctx context.Context, users []model.User) error {
	payload, err := json.MarshalIndent(nonNil(users), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}
