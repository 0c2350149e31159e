// Package mocktest runs the mock API inside tests.
package mocktest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/negociacion/admin/internal/apiclient"
	"github.com/negociacion/admin/internal/mockapi"
	"github.com/negociacion/admin/internal/mockapi/auth"
)

// Seeded admin credentials.
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "s3cret"
	AdminName     = "Ada"
)

// Server is a running mock API.
type Server struct {
	*httptest.Server
	Deps mockapi.RouterDeps

	fail atomic.Bool

	mu       sync.Mutex
	requests []Request
}

// Request is a recorded call.
type Request struct {
	Method string
	Path   string
}

// Option customizes the server before it starts.
type Option func(*mockapi.RouterDeps)

// WithAuth turns on bearer token checks for mutating routes.
func WithAuth() Option {
	return func(d *mockapi.RouterDeps) { d.RequireAuth = true }
}

// New starts a mock API with one admin account and registers its shutdown
// with t.Cleanup.
func New(t testing.TB, opts ...Option) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := auth.NewService(bcrypt.MinCost, logger)
	if _, err := svc.AddAccount(AdminEmail, AdminPassword, AdminName); err != nil {
		t.Fatalf("seeding admin account: %v", err)
	}

	s := &Server{Deps: mockapi.NewDeps(svc, logger)}
	for _, opt := range opts {
		opt(&s.Deps)
	}

	router := mockapi.NewRouter(s.Deps)
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path})
		s.mu.Unlock()

		if s.fail.Load() {
			http.Error(w, `{"message":"forced failure"}`, http.StatusInternalServerError)
			return
		}
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Fail makes every following request answer 500 until called with false.
func (s *Server) Fail(fail bool) {
	s.fail.Store(fail)
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// API returns an API client pointed at the server.
func (s *Server) API(opts ...apiclient.Option) *apiclient.Client {
	return apiclient.New(s.URL, opts...)
}
