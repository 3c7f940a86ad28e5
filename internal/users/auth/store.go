// Copyright (c) 2026 Glowlab. All rights reserved.

package auth

import (
	"context"
	"time"

	"github.com/glowlab/glowlab/internal/users/profile"
)

// Session is one refresh-token session. Only the SHA-256 hash of the token
// is ever stored.
type Session struct {
	TokenHash string    `json:"-"`
	UserID    string    `json:"user_id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore is the persistence contract for refresh sessions.
//
// Sessions live in Redis with a TTL matching the refresh token lifetime;
// expiry doubles as garbage collection.
type SessionStore interface {
	Create(context context.Context, session *Session) error
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)
	Revoke(context context.Context, tokenHash string) error

	// RevokeAll terminates every session of the user.
	RevokeAll(context context.Context, userID string) error

	// RevokeOthers terminates every session of the user except keepHash.
	RevokeOthers(context context.Context, userID, keepHash string) error
}

// ProfileStore is the slice of the profile repository that authentication
// needs. Satisfied by [profile.PostgresRepository].
type ProfileStore interface {
	FindByID(context context.Context, id string) (*profile.Profile, error)
	FindByEmail(context context.Context, email string) (*profile.Profile, error)
	UpdatePassword(context context.Context, id, newHash string) error
	TouchLogin(context context.Context, id string) error
}

// TokenProvider defines the contract for minting access tokens.
// Satisfied by [sec.TokenService].
type TokenProvider interface {
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}
