package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/negociacion/admin/internal/config"
	"github.com/negociacion/admin/internal/session"
)

var version = "dev"

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"login":   runLogin,
	"logout":  runLogout,
	"whoami":  runWhoami,
	"clients": runClients,
	"team":    runTeam,
	"news":    runNews,
	"show":    runShow,
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `admin - Negociación admin panel CLI (version %s)

Usage:
  admin <command> [options]

Commands:
  login      Sign in and store the session
  logout     Remove the stored session
  whoami     Show the signed-in user
  clients    Manage clients (list, create, edit, delete)
  team       Manage team members (list, create, edit, delete)
  news       Manage news posts (list, create, edit, delete)
  show       Show a news post by slug

Environment:
  ADMIN_API_URL           Base URL of the admin API (required)
  ADMIN_SESSION_BACKEND   file or keyring (default file)
  ADMIN_SESSION_PATH      Session file path for the file backend
  ADMIN_DETAIL_ASSET_URL  Host serving news images
  ADMIN_LOG_LEVEL         debug, info, warn or error (default warn)

Run 'admin <command> -h' for command-specific help.
`, version)
}

func main() {
	os.Exit(run(os.Args[1:], stdio{in: os.Stdin, out: os.Stdout, err: os.Stderr}))
}

func run(args []string, std stdio) int {
	if len(args) < 1 {
		usage(std.err)
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "-h", "--help", "help":
		usage(std.out)
		return 0
	case "-v", "--version", "version":
		fmt.Fprintln(std.out, version)
		return 0
	}

	fn, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(std.err, "unknown command: %s\n\n", cmd)
		usage(std.err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(std.err, "error: loading configuration: %v\n", err)
		return 1
	}

	store, err := session.Open(cfg.SessionBackend, cfg.SessionPath)
	if err != nil {
		fmt.Fprintf(std.err, "error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, store, std)
	if err != nil {
		fmt.Fprintf(std.err, "error: %v\n", err)
		return 1
	}

	if err := fn(ctx, a, args[1:]); err != nil {
		fmt.Fprintf(std.err, "error: %v\n", err)
		return 1
	}
	return 0
}
