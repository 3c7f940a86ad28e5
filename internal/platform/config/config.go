// Copyright (c) 2026 Glowlab. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, Storage) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/glowlab/glowlab/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Glowlab API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Cryptographic keys for session and identity signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Object Storage (Cloudflare R2 / S3-compatible)
	StorageEndpoint  string `env:"STORAGE_ENDPOINT"`
	StorageAccessKey string `env:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `env:"STORAGE_SECRET_KEY"`
	StorageUseSSL    bool   `env:"STORAGE_USE_SSL"    envDefault:"true"`

	// Buckets: product thumbnails and avatars live in the CMS bucket,
	// brand logos keep their own bucket for cache-invalidation reasons.
	BucketCMS        string `env:"STORAGE_BUCKET_CMS"         envDefault:"glowlab-cms"`
	BucketBrandLogos string `env:"STORAGE_BUCKET_BRAND_LOGOS" envDefault:"brand-logos"`

	// PublicStorageBaseURL is the CDN origin that serves uploaded objects,
	// e.g. "https://cdn.glowlab.app". Public object URLs are built from it.
	PublicStorageBaseURL string `env:"PUBLIC_STORAGE_BASE_URL"`

	// ProductReviewFlag toggles the "needs review" workflow on products.
	// When disabled the review column is ignored entirely.
	ProductReviewFlag bool `env:"PRODUCT_REVIEW_FLAG" envDefault:"true"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedExtraOrigins returns the additional CORS origins from
// EXTRA_ORIGINS, a comma-separated list (e.g. staging previews).
func (c *Config) AllowedExtraOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}
