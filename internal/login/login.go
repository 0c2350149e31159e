// Package login exchanges admin credentials for a session.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/negociacion/admin/internal/apiclient"
	"github.com/negociacion/admin/internal/session"
)

// DashboardRoute is where a successful login leads.
const DashboardRoute = "/dashboard"

const (
	defaultSuccess = "Login exitoso"
	defaultFailure = "Login fallido"
)

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(msg string)
}

// Navigator moves the user to another screen.
type Navigator interface {
	Navigate(route string)
}

// Response is the body of a successful POST /api/login.
type Response struct {
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Message string          `json:"message,omitempty"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// View holds the login form.
type View struct {
	Email    string
	Password string
	// Remember mirrors the "Recordar usuario" checkbox. It is not sent.
	Remember bool

	api      *apiclient.Client
	sessions *session.Manager
	alerts   Alerter
	nav      Navigator
	logger   *slog.Logger
}

// New creates an empty login View.
func New(api *apiclient.Client, sessions *session.Manager, alerts Alerter, nav Navigator, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	return &View{api: api, sessions: sessions, alerts: alerts, nav: nav, logger: logger}
}

// Submit posts the credentials. On success the token and user are stored,
// the server message (or a default) is shown and the user is sent to the
// dashboard. On failure the error is shown and nothing is stored.
func (v *View) Submit(ctx context.Context) error {
	resp, err := apiclient.Fetch[Response](ctx, v.api, "/api/login",
		apiclient.Method(http.MethodPost),
		apiclient.JSONBody(credentials{Email: v.Email, Password: v.Password}),
	)
	if err == nil {
		err = v.sessions.Begin(ctx, resp.Token, resp.User)
	}
	if err != nil {
		v.logger.Error("login failed", "email", v.Email, "error", err)
		msg := err.Error()
		if msg == "" {
			msg = defaultFailure
		}
		v.alerts.Alert(msg)
		return err
	}

	v.logger.Debug("session stored", "email", v.Email)
	msg := resp.Message
	if msg == "" {
		msg = defaultSuccess
	}
	v.alerts.Alert(msg)
	v.nav.Navigate(DashboardRoute)
	return nil
}
