package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/negociacion/admin/internal/apiclient"
	"github.com/negociacion/admin/internal/config"
	"github.com/negociacion/admin/internal/entity"
	"github.com/negociacion/admin/internal/session"
)

type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// app is what every command runs against.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	sessions *session.Manager
	api      *apiclient.Client
	term     *terminal
	out      io.Writer
}

func newApp(ctx context.Context, cfg *config.Config, store session.Store, std stdio) (*app, error) {
	logger := setupLogger(cfg.LogLevel, std.err)

	sessions := session.NewManager(store, logger)
	if err := sessions.Restore(ctx); err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	api := apiclient.New(cfg.APIURL,
		apiclient.WithTokenSource(sessions),
		apiclient.WithLogger(logger),
		apiclient.WithHeader("User-Agent", "negociacion-admin/"+cfg.Version),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		api:      api,
		term:     newTerminal(std.in, std.err, logger),
		out:      std.out,
	}, nil
}

// deps returns the table collaborators. assumeYes answers every confirmation
// prompt with yes.
func (a *app) deps(assumeYes bool) entity.Deps {
	var confirm entity.Confirmer = a.term
	if assumeYes {
		confirm = entity.ConfirmFunc(func(string) bool { return true })
	}
	return entity.Deps{View: a.term, Confirm: confirm, Logger: a.logger}
}

func setupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}
