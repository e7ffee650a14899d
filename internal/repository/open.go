package repository

import (
	"context"
	"fmt"
	"log/slog"

	"propal/internal/config"
	"propal/internal/db"
)

// Open builds the record store selected by cfg.StoreBackend. The returned
// close function releases any connection the backend holds.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (UserRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case config.BackendFile:
		log.Info("using file record store", "path", cfg.UsersFile)
		return NewFileUserRepository(cfg.UsersFile, log), noop, nil

	case config.BackendRedis:
		client, err := db.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using redis record store", "addr", cfg.RedisAddr, "key", cfg.RedisKey)
		return NewRedisUserRepository(client, cfg.RedisKey, log), client.Close, nil

	case config.BackendMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("mysql handle: %w", err)
		}
		log.Info("using mysql record store")
		return NewGormUserRepository(gormDB), sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
