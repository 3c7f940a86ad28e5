// Copyright (c) 2026 Glowlab. All rights reserved.

// Command api is the entry point for the Glowlab back-office API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Connect to object storage (MinIO / S3-compatible).
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowlab/glowlab/internal/api"
	"github.com/glowlab/glowlab/internal/catalog/brand"
	"github.com/glowlab/glowlab/internal/catalog/category"
	"github.com/glowlab/glowlab/internal/catalog/ingredient"
	"github.com/glowlab/glowlab/internal/catalog/product"
	"github.com/glowlab/glowlab/internal/catalog/relation"
	"github.com/glowlab/glowlab/internal/catalog/tag"
	"github.com/glowlab/glowlab/internal/dashboard"
	"github.com/glowlab/glowlab/internal/platform/config"
	"github.com/glowlab/glowlab/internal/platform/constants"
	"github.com/glowlab/glowlab/internal/platform/migration"
	pgstore "github.com/glowlab/glowlab/internal/platform/postgres"
	redisstore "github.com/glowlab/glowlab/internal/platform/redis"
	"github.com/glowlab/glowlab/internal/platform/sec"
	"github.com/glowlab/glowlab/internal/platform/storage"
	"github.com/glowlab/glowlab/internal/support/bug"
	"github.com/glowlab/glowlab/internal/users/auth"
	"github.com/glowlab/glowlab/internal/users/profile"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("product_review_flag", cfg.ProductReviewFlag),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Object Storage ─────────────────────────────────────────────────
	objectStore, err := storage.NewMinioStore(
		cfg.StorageEndpoint, cfg.StorageAccessKey, cfg.StorageSecretKey,
		cfg.StorageUseSSL, cfg.BucketCMS, log,
	)
	must(log, err, "connect to object storage")
	uploader := storage.NewUploader(objectStore, cfg.PublicStorageBaseURL)

	// ── 7. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 8. Health Handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		CheckStorage: func() error {
			return objectStore.Ping(context.Background())
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	profileRepository := profile.NewPostgresRepository(pool)
	profileService := profile.NewService(profileRepository, uploader, cfg.BucketCMS, log)

	sessionStore := auth.NewRedisSessionStore(rdb)
	authService := auth.NewService(profileRepository, sessionStore, jwtSvc, log)

	relationStore := relation.NewPostgresStore(pool)
	reconciler := relation.NewReconciler(relationStore, log)

	productService := product.NewService(
		product.NewPostgresRepository(pool), reconciler, relationStore,
		uploader, cfg.BucketCMS, cfg.ProductReviewFlag, log,
	)
	brandService := brand.NewService(brand.NewPostgresRepository(pool), uploader, cfg.BucketBrandLogos, log)
	ingredientService := ingredient.NewService(ingredient.NewPostgresRepository(pool), log)
	categoryService := category.NewService(category.NewPostgresRepository(pool), log)
	tagService := tag.NewService(tag.NewPostgresRepository(pool), log)

	dashboardService := dashboard.NewService(dashboard.NewPostgresRepository(pool), cfg.ProductReviewFlag, log)
	bugService := bug.NewService(bug.NewPostgresRepository(pool), log)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Profile:    profile.NewHandler(profileService),
		Dashboard:  dashboard.NewHandler(dashboardService),
		Product:    product.NewHandler(productService),
		Brand:      brand.NewHandler(brandService),
		Ingredient: ingredient.NewHandler(ingredientService),
		Category:   category.NewHandler(categoryService),
		Tag:        tag.NewHandler(tagService),
		Bug:        bug.NewHandler(bugService),
	}

	server := api.NewServer(context.Background(), cfg, log, jwtSvc, profileRepository, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
