package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Storage keys.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// ErrNoSession is returned when an operation needs a logged-in user.
var ErrNoSession = errors.New("no active session")

// Session is the authenticated state obtained at login.
type Session struct {
	Token string
	User  json.RawMessage
}

// Active reports whether the session holds a token.
func (s Session) Active() bool {
	return s.Token != ""
}

// Manager owns the current session and keeps it in sync with a Store.
type Manager struct {
	store  Store
	logger *slog.Logger

	mu      sync.RWMutex
	current Session
}

// NewManager creates a Manager with no active session. Call Restore to pick
// up a session persisted by a previous run.
func NewManager(store Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: store, logger: logger}
}

// Restore loads the persisted session, if any.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.store.Get(ctx, KeyToken)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading session token: %w", err)
	}

	var user json.RawMessage
	raw, err := m.store.Get(ctx, KeyUser)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return fmt.Errorf("reading session user: %w", err)
	default:
		user = json.RawMessage(raw)
	}

	m.mu.Lock()
	m.current = Session{Token: token, User: user}
	m.mu.Unlock()
	return nil
}

// Begin persists a freshly issued session and makes it current.
func (m *Manager) Begin(ctx context.Context, token string, user json.RawMessage) error {
	if len(user) == 0 {
		user = json.RawMessage("null")
	}
	prevUser, prevErr := m.store.Get(ctx, KeyUser)
	if prevErr != nil && !errors.Is(prevErr, ErrNotFound) {
		return fmt.Errorf("reading session user: %w", prevErr)
	}

	if err := m.store.Set(ctx, KeyUser, string(user)); err != nil {
		return fmt.Errorf("saving session user: %w", err)
	}
	if err := m.store.Set(ctx, KeyToken, token); err != nil {
		// Put the stored pair back the way it was so Restore never mixes runs.
		var rbErr error
		if prevErr == nil {
			rbErr = m.store.Set(ctx, KeyUser, prevUser)
		} else {
			rbErr = m.store.Delete(ctx, KeyUser)
		}
		if rbErr != nil {
			m.logger.Error("failed to roll back session user", "error", rbErr)
		}
		return fmt.Errorf("saving session token: %w", err)
	}

	m.mu.Lock()
	m.current = Session{Token: token, User: user}
	m.mu.Unlock()

	m.logger.Info("session started")
	return nil
}

// End removes the persisted session and clears the current one.
func (m *Manager) End(ctx context.Context) error {
	m.mu.Lock()
	m.current = Session{}
	m.mu.Unlock()

	var errs []error
	for _, key := range []string{KeyToken, KeyUser} {
		if err := m.store.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			errs = append(errs, fmt.Errorf("deleting %s: %w", key, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	m.logger.Info("session ended")
	return nil
}

// Current returns the active session, which may be empty.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Token returns the current bearer token or "".
func (m *Manager) Token() string {
	return m.Current().Token
}

// Require returns the current session or ErrNoSession.
func (m *Manager) Require() (Session, error) {
	s := m.Current()
	if !s.Active() {
		return Session{}, ErrNoSession
	}
	return s, nil
}
