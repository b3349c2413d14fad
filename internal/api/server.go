// Copyright (c) 2026 Minar. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/minarbd/minar/internal/admin"
	"github.com/minarbd/minar/internal/content/audio"
	"github.com/minarbd/minar/internal/content/book"
	"github.com/minarbd/minar/internal/content/category"
	"github.com/minarbd/minar/internal/content/chapter"
	"github.com/minarbd/minar/internal/content/post"
	"github.com/minarbd/minar/internal/platform/config"
	"github.com/minarbd/minar/internal/platform/constants"
	"github.com/minarbd/minar/internal/platform/middleware"
	"github.com/minarbd/minar/internal/reader"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Admin handles the content-management login gate.
	Admin *admin.Handler

	// Book handles the catalogue and book detail pages.
	Book *book.Handler

	// Chapter handles tables of contents and chapter management.
	Chapter *chapter.Handler

	// Reader handles the paginated reading experience.
	Reader *reader.Handler

	// Post handles the article feed.
	Post *post.Handler

	// Audio handles the lecture archive.
	Audio *audio.Handler

	// Category handles the shared taxonomy.
	Category *category.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Every handler registers its own public and admin-guarded routes on
	// the shared versioned router.
	r.Route("/api/v1", func(api chi.Router) {
		h.Admin.RegisterRoutes(api)
		h.Book.RegisterRoutes(api)
		h.Chapter.RegisterRoutes(api)
		h.Reader.RegisterRoutes(api)
		h.Post.RegisterRoutes(api)
		h.Audio.RegisterRoutes(api)
		h.Category.RegisterRoutes(api)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
