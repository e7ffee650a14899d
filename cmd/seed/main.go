package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"propal/internal/config"
	"propal/internal/logging"
	"propal/internal/repository"
	"propal/internal/service"
)

func main() {
	from := flag.String("from", "seed/users.json", "path or http(s) URL of a JSON array of users")
	timeout := flag.Duration("timeout", 30*time.Second, "overall time limit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, "error", "text").Error("load config", "error", err)
		os.Exit(1)
	}
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	err = run(ctx, cfg, log, *from)
	cancel()
	if err != nil {
		log.Error("seed users", "error", err)
		os.Exit(1)
	}
}

// run imports the users found at from into the configured store. The store
// is closed before returning and a close failure is reported with the result.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger, from string) (err error) {
	log.Info("loading seed users", "from", from)
	users, err := loadSeedUsers(ctx, from)
	if err != nil {
		return fmt.Errorf("load seed users: %w", err)
	}

	repo, closeStore, err := repository.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open %s record store: %w", cfg.StoreBackend, err)
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			log.Warn("close record store", "error", cerr)
			err = errors.Join(err, fmt.Errorf("close record store: %w", cerr))
		}
	}()

	imported, skipped, err := service.NewUserService(repo).ImportUsers(ctx, users)
	if err != nil {
		return err
	}

	log.Info("seed completed", "imported", imported, "skipped", skipped)
	return nil
}
