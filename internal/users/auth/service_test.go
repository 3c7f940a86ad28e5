// Copyright (c) 2026 Glowlab. All rights reserved.

package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/sec"
	"github.com/glowlab/glowlab/internal/users/auth"
	"github.com/glowlab/glowlab/internal/users/profile"
)

// memProfiles implements auth.ProfileStore.
type memProfiles struct {
	profiles map[string]*profile.Profile
}

func (m *memProfiles) FindByID(_ context.Context, id string) (*profile.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, apperr.NotFound("Profile")
	}
	return p, nil
}

func (m *memProfiles) FindByEmail(_ context.Context, email string) (*profile.Profile, error) {
	for _, p := range m.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Profile")
}

func (m *memProfiles) UpdatePassword(_ context.Context, id, newHash string) error {
	p, ok := m.profiles[id]
	if !ok {
		return apperr.NotFound("Profile")
	}
	p.PasswordHash = newHash
	return nil
}

func (m *memProfiles) TouchLogin(_ context.Context, id string) error {
	p, ok := m.profiles[id]
	if !ok {
		return apperr.NotFound("Profile")
	}
	now := time.Now()
	p.LastLoginAt = &now
	return nil
}

// memSessions implements auth.SessionStore.
type memSessions struct {
	sessions map[string]*auth.Session
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: map[string]*auth.Session{}}
}

func (m *memSessions) Create(_ context.Context, s *auth.Session) error {
	m.sessions[s.TokenHash] = s
	return nil
}

func (m *memSessions) FindByTokenHash(_ context.Context, hash string) (*auth.Session, error) {
	s, ok := m.sessions[hash]
	if !ok {
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}
	return s, nil
}

func (m *memSessions) Revoke(_ context.Context, hash string) error {
	delete(m.sessions, hash)
	return nil
}

func (m *memSessions) RevokeAll(_ context.Context, userID string) error {
	for hash, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, hash)
		}
	}
	return nil
}

func (m *memSessions) RevokeOthers(_ context.Context, userID, keepHash string) error {
	for hash, s := range m.sessions {
		if s.UserID == userID && hash != keepHash {
			delete(m.sessions, hash)
		}
	}
	return nil
}

// stubTokens mints predictable access tokens.
type stubTokens struct{}

func (stubTokens) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

const testUserID = "0198b9a2-0000-7000-8000-000000000001"

func fixtureAccount(t *testing.T, password string) *profile.Profile {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	return &profile.Profile{
		ID:           testUserID,
		Email:        "admin@glowlab.app",
		PasswordHash: hash,
		DisplayName:  "Ala",
		Role:         sec.RoleAdmin,
		IsActive:     true,
	}
}

func newService(t *testing.T, account *profile.Profile) (*auth.Service, *memSessions) {
	t.Helper()
	profiles := &memProfiles{profiles: map[string]*profile.Profile{}}
	if account != nil {
		profiles.profiles[account.ID] = account
	}
	sessions := newMemSessions()
	return auth.NewService(profiles, sessions, stubTokens{}, slog.New(slog.DiscardHandler)), sessions
}

func TestService_Login(t *testing.T) {
	account := fixtureAccount(t, "correct horse battery")
	service, sessions := newService(t, account)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@glowlab.app",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-for-"+testUserID, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Len(t, sessions.sessions, 1)
	assert.NotNil(t, account.LastLoginAt)

	// Only the hash of the refresh token may be stored.
	_, plainStored := sessions.sessions[session.RefreshToken]
	assert.False(t, plainStored)
	_, hashStored := sessions.sessions[sec.HashToken(session.RefreshToken)]
	assert.True(t, hashStored)
}

/*
TestService_Login_Rejections verifies that every failure mode produces the
same generic unauthorized error.
*/
func TestService_Login_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		inactive bool
	}{
		{name: "unknown_email", email: "nobody@glowlab.app", password: "whatever"},
		{name: "wrong_password", email: "admin@glowlab.app", password: "guess"},
		{name: "deactivated_account", email: "admin@glowlab.app", password: "correct horse battery", inactive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := fixtureAccount(t, "correct horse battery")
			account.IsActive = !tt.inactive
			service, _ := newService(t, account)

			_, err := service.Login(context.Background(), auth.LoginInput{
				Email:    tt.email,
				Password: tt.password,
			})

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "UNAUTHORIZED", appErr.Code)
			assert.Equal(t, "Invalid login credentials", appErr.Message)
		})
	}
}

func TestService_RefreshSession_Rotation(t *testing.T) {
	account := fixtureAccount(t, "correct horse battery")
	service, sessions := newService(t, account)

	initial, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@glowlab.app",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), initial.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, initial.RefreshToken, rotated.RefreshToken)
	assert.Len(t, sessions.sessions, 1, "old session must be revoked")

	// Replaying the consumed token must fail.
	_, err = service.RefreshSession(context.Background(), initial.RefreshToken, "", "")
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestService_Logout_Idempotent(t *testing.T) {
	service, _ := newService(t, nil)

	require.NoError(t, service.Logout(context.Background(), "never-issued"))
}

func TestService_ChangePassword(t *testing.T) {
	account := fixtureAccount(t, "old password 123")
	service, sessions := newService(t, account)

	current, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@glowlab.app",
		Password: "old password 123",
	})
	require.NoError(t, err)

	other, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@glowlab.app",
		Password: "old password 123",
	})
	require.NoError(t, err)
	require.Len(t, sessions.sessions, 2)

	t.Run("wrong_current_password", func(t *testing.T) {
		err := service.ChangePassword(context.Background(), testUserID, "guess", "new password 123", current.RefreshToken)

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})

	t.Run("success_revokes_other_sessions", func(t *testing.T) {
		err := service.ChangePassword(context.Background(), testUserID, "old password 123", "new password 123", current.RefreshToken)
		require.NoError(t, err)

		assert.True(t, sec.CheckPasswordHash("new password 123", account.PasswordHash))

		_, keptErr := sessions.FindByTokenHash(context.Background(), sec.HashToken(current.RefreshToken))
		assert.NoError(t, keptErr, "the calling session must survive")

		_, otherErr := sessions.FindByTokenHash(context.Background(), sec.HashToken(other.RefreshToken))
		assert.Error(t, otherErr, "all other sessions must be revoked")
	})
}

func TestService_LogoutAll(t *testing.T) {
	account := fixtureAccount(t, "old password 123")
	service, sessions := newService(t, account)

	for range 3 {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "admin@glowlab.app",
			Password: "old password 123",
		})
		require.NoError(t, err)
	}
	require.Len(t, sessions.sessions, 3)

	require.NoError(t, service.LogoutAll(context.Background(), testUserID))
	assert.Empty(t, sessions.sessions)
}
