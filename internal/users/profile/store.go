// Copyright (c) 2026 Glowlab. All rights reserved.

package profile

import (
	"context"

	"github.com/glowlab/glowlab/internal/platform/sec"
)

// Repository defines the data access contract for user profiles.
//
// RoleByUserID additionally satisfies [middleware.RoleLookup], so the
// Postgres implementation is what the admin guard queries on every request.
type Repository interface {
	FindByID(context context.Context, id string) (*Profile, error)
	FindByEmail(context context.Context, email string) (*Profile, error)
	Update(context context.Context, profile *Profile) error
	UpdateAvatar(context context.Context, id, url string) error
	UpdatePassword(context context.Context, id, newHash string) error
	TouchLogin(context context.Context, id string) error
	RoleByUserID(context context.Context, userID string) (sec.UserRole, error)
}
