package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	specpkg "github.com/negociacion/admin/api"
	"github.com/negociacion/admin/internal/config"
	"github.com/negociacion/admin/internal/mockapi"
	"github.com/negociacion/admin/internal/mockapi/auth"
)

var version = "dev"

func main() {
	cfg, err := config.LoadMock()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)
	logger := slog.Default()

	svc := auth.NewService(cfg.BcryptCost, logger)
	if _, err := svc.AddAccount(cfg.AdminEmail, cfg.AdminPassword, "Administrador"); err != nil {
		slog.Error("failed to seed admin account", "error", err)
		os.Exit(1)
	}

	deps := mockapi.NewDeps(svc, logger)
	deps.RequireAuth = cfg.RequireAuth
	deps.Version = version
	deps.OpenAPISpec = specpkg.OpenAPISpec

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mockapi.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting mock API", "port", cfg.Port, "version", version, "requireAuth", cfg.RequireAuth, "adminEmail", cfg.AdminEmail)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
