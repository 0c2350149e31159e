// Package mockapi is an in-memory rendition of the admin back-end, used for
// local development of the admin CLI and as the server in tests.
package mockapi

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/negociacion/admin/internal/clients"
	"github.com/negociacion/admin/internal/mockapi/auth"
	"github.com/negociacion/admin/internal/mockapi/handler"
	"github.com/negociacion/admin/internal/mockapi/middleware"
	"github.com/negociacion/admin/internal/mockapi/store"
	"github.com/negociacion/admin/internal/news"
	"github.com/negociacion/admin/internal/team"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Clients *store.Repository[clients.Client]
	Team    *store.Repository[team.Member]
	News    *store.Repository[news.Post]
	Files   *store.Files
	Auth    *auth.Service

	// RequireAuth guards every mutating route with a bearer token.
	RequireAuth bool

	Logger      *slog.Logger
	Version     string
	OpenAPISpec []byte
}

// NewDeps returns RouterDeps with empty repositories and the given auth service.
func NewDeps(svc *auth.Service, logger *slog.Logger) RouterDeps {
	if logger == nil {
		logger = slog.Default()
	}
	return RouterDeps{
		Clients: store.NewRepository(
			func(c *clients.Client) int64 { return c.ID },
			func(c *clients.Client, id int64) { c.ID = id },
		),
		Team: store.NewRepository(
			func(m *team.Member) int64 { return m.ID },
			func(m *team.Member, id int64) { m.ID = id },
		),
		News: store.NewRepository(
			func(p *news.Post) int64 { return p.ID },
			func(p *news.Post, id int64) { p.ID = id },
		),
		Files:   store.NewFiles(),
		Auth:    svc,
		Logger:  logger,
		Version: "dev",
	}
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	r.Get("/health", handler.NewHealthHandler(deps.Version).ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		r.Get("/openapi.json", handler.NewOpenAPIHandler(deps.OpenAPISpec, logger).ServeHTTP)
	}

	r.Get("/public/{name}", handler.NewPublicHandler(deps.Files).ServeHTTP)

	if deps.Auth != nil {
		r.Post("/api/login", handler.NewLoginHandler(deps.Auth, logger).ServeHTTP)
	}

	// guarded wraps mutating routes when RequireAuth is set.
	guarded := func(r chi.Router) chi.Router {
		if deps.RequireAuth && deps.Auth != nil {
			return r.With(middleware.RequireToken(deps.Auth))
		}
		return r
	}

	clientHandler := handler.NewClientHandler(deps.Clients, deps.Files, logger)
	r.Route("/api/clients", func(r chi.Router) {
		r.Get("/", clientHandler.List)
		w := guarded(r)
		w.Post("/create", clientHandler.Create)
		w.Put("/edit/{id}", clientHandler.Update)
		w.Delete("/delete/{id}", clientHandler.Delete)
	})

	teamHandler := handler.NewTeamHandler(deps.Team, deps.Files, logger)
	r.Route("/api/team", func(r chi.Router) {
		r.Get("/", teamHandler.List)
		w := guarded(r)
		w.Post("/", teamHandler.Create)
		w.Put("/{id}", teamHandler.Update)
		w.Delete("/{id}", teamHandler.Delete)
	})

	newsHandler := handler.NewNewsHandler(deps.News, deps.Files, logger)
	r.Route("/api/news", func(r chi.Router) {
		r.Get("/", newsHandler.List)
		r.Get("/{ref}", newsHandler.GetBySlug)
		w := guarded(r)
		w.Post("/", newsHandler.Create)
		w.Put("/{ref}", newsHandler.Update)
		w.Delete("/{ref}", newsHandler.Delete)
	})

	return r
}
