// Copyright (c) 2026 Glowlab. All rights reserved.

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

	"github.com/glowlab/glowlab/internal/catalog/brand"
	"github.com/glowlab/glowlab/internal/catalog/category"
	"github.com/glowlab/glowlab/internal/catalog/ingredient"
	"github.com/glowlab/glowlab/internal/catalog/product"
	"github.com/glowlab/glowlab/internal/catalog/tag"
	"github.com/glowlab/glowlab/internal/dashboard"
	"github.com/glowlab/glowlab/internal/platform/config"
	"github.com/glowlab/glowlab/internal/platform/constants"
	"github.com/glowlab/glowlab/internal/platform/middleware"
	"github.com/glowlab/glowlab/internal/support/bug"
	"github.com/glowlab/glowlab/internal/users/auth"
	"github.com/glowlab/glowlab/internal/users/profile"
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

	// Auth handles the session lifecycle (login, refresh, logout).
	Auth *auth.Handler

	// Profile handles the caller's own profile and preferences.
	Profile *profile.Handler

	// Dashboard serves the back-office landing page.
	Dashboard *dashboard.Handler

	// Catalog domain: products, brands, ingredients, categories, tags.
	Product    *product.Handler
	Brand      *brand.Handler
	Ingredient *ingredient.Handler
	Category   *category.Handler
	Tag        *tag.Handler

	// Bug handles bug report filing and triage.
	Bug *bug.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Every route under /api/v1/admin sits behind [middleware.AdminGuard], which
// re-reads the caller's role from storage on each request.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, roles middleware.RoleLookup, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Self-service endpoints for any authenticated user.
		api.Group(func(user chi.Router) {
			user.Use(middleware.RequireAuth)
			h.Profile.RegisterRoutes(user)
			user.Route("/bug-reports", h.Bug.RegisterReportRoute)
		})

		// Back-office surface. Role is checked live on every request.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAuth)
			admin.Use(middleware.AdminGuard(roles))

			admin.Route("/dashboard", h.Dashboard.RegisterRoutes)
			admin.Route("/products", h.Product.RegisterRoutes)
			admin.Route("/brands", h.Brand.RegisterRoutes)
			admin.Route("/ingredients", h.Ingredient.RegisterRoutes)
			admin.Route("/categories", h.Category.RegisterRoutes)
			admin.Route("/tags", h.Tag.RegisterRoutes)
			admin.Route("/bug-reports", h.Bug.RegisterAdminRoutes)
		})
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
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
