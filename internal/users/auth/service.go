// Copyright (c) 2026 Glowlab. All rights reserved.

/*
Package auth implements back-office authentication: email/password login,
refresh-token sessions in Redis with rotation, and password changes.

There is no self-service registration; profiles are provisioned by
operations. The access token is a short-lived RS256 JWT, and the admin
guard re-reads the role from the database anyway, so a stale role claim
never widens access.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/sec"
	"github.com/glowlab/glowlab/internal/users/profile"
)

type Service struct {
	profiles ProfileStore
	sessions SessionStore
	tokens   TokenProvider
	logger   *slog.Logger
}

func NewService(profiles ProfileStore, sessions SessionStore, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		profiles: profiles,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// # Login

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Profile               *profile.Profile
}

// Login validates credentials and issues a token pair.
//
// Unknown email, wrong password, and deactivated account all produce the
// same generic Unauthorized, preventing account enumeration.
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	account, err := service.profiles.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !account.IsActive {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.establishSession(context, account, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	if err := service.profiles.TouchLogin(context, account.ID); err != nil {
		service.logger.Warn("auth_touch_login_failed",
			slog.String("user_id", account.ID),
			slog.Any("error", err),
		)
	}

	service.logger.Info("user_logged_in", slog.String("user_id", account.ID))
	return session, nil
}

// # Session Lifecycle

// RefreshSession rotates the refresh token: the old session is revoked
// before the new pair is issued, so a replayed token dies on first reuse.
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	if err := service.sessions.Revoke(context, session.TokenHash); err != nil {
		return nil, fmt.Errorf("auth_refresh_revoke_failed: %w", err)
	}

	account, err := service.profiles.FindByID(context, session.UserID)
	if err != nil || !account.IsActive {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	return service.establishSession(context, account, userAgent, ipAddress)
}

// Logout revokes the session behind the refresh token. Idempotent: an
// already-dead token is a successful logout.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.sessions.Revoke(context, sec.HashToken(refreshToken))
}

// LogoutAll terminates every session of the user on every device.
func (service *Service) LogoutAll(context context.Context, userID string) error {
	if err := service.sessions.RevokeAll(context, userID); err != nil {
		return fmt.Errorf("auth_logout_all_failed: %w", err)
	}

	service.logger.Info("user_logged_out_everywhere", slog.String("user_id", userID))
	return nil
}

// # Password Management

// ChangePassword verifies the current password, stores the new hash, and
// revokes every OTHER session so stolen devices are forced to re-login.
func (service *Service) ChangePassword(context context.Context, userID, currentPassword, newPassword, currentRefreshToken string) error {
	account, err := service.profiles.FindByID(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, account.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_change_password_hash_failed: %w", err)
	}

	if err := service.profiles.UpdatePassword(context, userID, hashedPassword); err != nil {
		return fmt.Errorf("auth_change_password_update_failed: %w", err)
	}

	if err := service.sessions.RevokeOthers(context, userID, sec.HashToken(currentRefreshToken)); err != nil {
		service.logger.Warn("auth_revoke_others_failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	service.logger.Info("user_changed_password", slog.String("user_id", userID))
	return nil
}

// # Internal

func (service *Service) establishSession(context context.Context, account *profile.Profile, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(account.ID, account.Email, string(account.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	session := &Session{
		TokenHash: sec.HashToken(refreshToken),
		UserID:    account.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
	if err := service.sessions.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Profile:               account,
	}, nil
}
