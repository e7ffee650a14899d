package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"

	"propal/docs"
	"propal/internal/config"
	"propal/internal/handler"
	"propal/internal/logging"
	"propal/internal/repository"
	"propal/internal/router"
	"propal/internal/service"
	"propal/internal/session"
)

// @title proPAL User API
// @version 1.0
// @description User store and cookie session handshake for the proPAL demo site.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, "error", "text").Error("load config", "error", err)
		os.Exit(1)
	}
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := repository.Open(ctx, cfg, log)
	if err != nil {
		log.Error("open record store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("close record store", "error", err)
		}
	}()

	var codec session.Codec = session.JSONCodec{}
	if cfg.SessionFormat == config.SessionJWT {
		codec = session.NewJWTCodec(cfg.JWTSecret, cfg.SessionTTL)
	}
	sessions := session.NewManager(cfg.SessionCookie, cfg.SessionTTL, codec)

	// Initialize services
	authService := service.NewAuthService(repo)
	userService := service.NewUserService(repo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions, log)
	userHandler := handler.NewUserHandler(userService, log)
	seedHandler := handler.NewSeedHandler(userService, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(
		e,
		cfg,
		log,
		sessions,
		userHandler,
		authHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
	}
	log.Info("swagger documentation available", "url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html")

	addr := ":" + cfg.ServerPort
	go func() {
		log.Info("server started", "addr", addr, "env", cfg.Env, "session_format", cfg.SessionFormat)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown", "error", err)
	}
	log.Info("server stopped")
}
