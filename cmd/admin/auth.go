package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/negociacion/admin/internal/login"
	"github.com/negociacion/admin/internal/session"
)

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "Account e-mail (prompted when empty)")
	remember := fs.Bool("remember", false, "Remember the user (kept for parity with the web form)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: admin login [options]\n\nSign in and store the session. The password is always prompted.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := login.New(a.api, a.sessions, a.term, a.term, a.logger)
	v.Email = *email
	v.Remember = *remember

	if v.Email == "" {
		e, err := a.term.Prompt("E-mail")
		if err != nil {
			return fmt.Errorf("reading e-mail: %w", err)
		}
		v.Email = e
	}
	password, err := a.term.Password("Contraseña")
	if err != nil {
		return err
	}
	v.Password = password

	return v.Submit(ctx)
}

func runLogout(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.sessions.End(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Sesión cerrada")
	return nil
}

func runWhoami(_ context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := a.sessions.Require()
	if errors.Is(err, session.ErrNoSession) {
		return fmt.Errorf("not logged in, run 'admin login'")
	}
	if err != nil {
		return err
	}

	out, err := yaml.JSONToYAML(s.User)
	if err != nil {
		return fmt.Errorf("rendering user: %w", err)
	}
	_, err = a.out.Write(out)
	return err
}
