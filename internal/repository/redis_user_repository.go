package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"propal/internal/model"
)

type redisUserRepository struct {
	client *redis.Client
	key    string
	log    *slog.Logger
}

// NewRedisUserRepository builds a repository that keeps the JSON array under a
// single Redis key.
func NewRedisUserRepository(client *redis.Client, key string, log *slog.Logger) UserRepository {
	return &redisUserRepository{client: client, key: key, log: log}
}

func (r *redisUserRepository) ReadAll(ctx context.Context) ([]model.User, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.key, err)
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		r.log.WarnContext(ctx, "parse users key, returning empty list", "key", r.key, "error", err)
		return []model.User{}, nil
	}
	return nonNil(users), nil
}

func (r *redisUserRepository) WriteAll(ctx context.Context, users []model.User) error {
	payload, err := json.Marshal(nonNil(users))
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", r.key, err)
	}
	return nil
}
