// Copyright (c) 2026 Glowlab. All rights reserved.

/*
Package profile manages user profiles: identity data, back-office
preferences, and the live role that the admin guard consults on every
protected request.
*/
package profile

import (
	"time"

	"github.com/glowlab/glowlab/internal/platform/sec"
)

// Profile is a registered user of the platform. PasswordHash never leaves
// the service layer.
type Profile struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	AvatarURL    *string      `json:"avatar_url"`

	// PreferredLocale and LandingRoute drive the back-office shell:
	// which translation loads and which screen opens after login.
	PreferredLocale string `json:"preferred_locale"`
	LandingRoute    string `json:"landing_route"`

	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UpdateInput is the payload for a partial profile update. Email, role and
// password have dedicated flows and are not editable here.
type UpdateInput struct {
	DisplayName     *string `json:"display_name"`
	PreferredLocale *string `json:"preferred_locale"`
	LandingRoute    *string `json:"landing_route"`
}

// Global field names for validation
const (
	FieldDisplayName     = "display_name"
	FieldPreferredLocale = "preferred_locale"
	FieldLandingRoute    = "landing_route"
)

// SupportedLocales lists the translations the back-office ships with.
var SupportedLocales = []string{"pl", "en"}
