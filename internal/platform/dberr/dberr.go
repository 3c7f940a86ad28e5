// Copyright (c) 2026 Glowlab. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glowlab/glowlab/internal/platform/apperr"
)

// Postgres SQLSTATEs this layer translates.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Unique violation mapping. The application-level duplicate guards are
	// soft checks; a concurrent writer can still trip a constraint, and that
	// must surface as a Conflict rather than a 500.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict("A record with the same value already exists")
	}

	// 3. Foreign-key violation mapping. Referenced rows (a brand with
	// products, a product on a missing brand) block the write.
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return apperr.Conflict("The record is referenced by or references other records")
	}

	// 4. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
