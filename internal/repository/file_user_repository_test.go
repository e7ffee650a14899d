package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propal/internal/logging"
	"propal/internal/model"
)

func TestFileUserRepository_ReadAll_FailsSoft(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, path string)
	}{
		{
			name:  "missing file",
			setup: func(t *testing.T, path string) {},
		},
		{
			name: "empty file",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, nil, 0o644))
			},
		},
		{
			name: "corrupt file",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte(`[{"id": "1",`), 0o644))
			},
		},
		{
			name: "json null",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "users.json")
			tt.setup(t, path)

			repo := NewFileUserRepository(path, logging.Discard())
			users, err := repo.ReadAll(context.Background())

			require.NoError(t, err)
			assert.NotNil(t, users)
			assert.Empty(t, users)
		})
	}
}

func TestFileUserRepository_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "users.json")
	repo := NewFileUserRepository(path, logging.Discard())
	ctx := context.Background()

	users := []model.User{
		{ID: "1700000000000", Username: "alice", Email: "alice@example.com", Password: "secret1", Role: model.RoleAdmin},
		{ID: "1700000000001", Username: "bob", Email: "bob@example.com", Password: "secret2", PhoneNumber: "+15550100", Role: model.RoleUser},
	}
	require.NoError(t, repo.WriteAll(ctx, users))

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestFileUserRepository_WriteAll_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := NewFileUserRepository(path, logging.Discard())
	ctx := context.Background()

	require.NoError(t, repo.WriteAll(ctx, []model.User{
		{ID: "1", Username: "alice", Email: "alice@example.com", Password: "secret1", Role: model.RoleUser},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "id": "1",
    "username": "alice",
    "email": "alice@example.com",
    "password": "secret1",
    "role": "user"
  }
]`, string(data))

	require.NoError(t, repo.WriteAll(ctx, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileUserRepository_WriteAll_Error(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file makes the write fail.
	path := filepath.Join(dir, "users.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	repo := NewFileUserRepository(path, logging.Discard())
	err := repo.WriteAll(context.Background(), []model.User{{ID: "1"}})
	assert.Error(t, err)
}
