// Copyright (c) 2026 Glowlab. All rights reserved.

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	// Short (15m) so that a leaked token has a narrow window.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the duration a session token remains valid.
	// Long-lived (30 days); back-office users stay signed in.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenLength is the byte length of the random refresh token.
	RefreshTokenLength = 32

	// MinPasswordLength applies to change-password input.
	MinPasswordLength = 8
)

// Global field names for validation
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)
