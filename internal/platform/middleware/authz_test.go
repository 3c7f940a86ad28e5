// Copyright (c) 2026 Glowlab. All rights reserved.

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/platform/ctxkey"
	"github.com/glowlab/glowlab/internal/platform/middleware"
	"github.com/glowlab/glowlab/internal/platform/sec"
)

// stubRoleLookup returns a canned role or error for any user ID.
type stubRoleLookup struct {
	role sec.UserRole
	err  error
}

func (s *stubRoleLookup) RoleByUserID(_ context.Context, _ string) (sec.UserRole, error) {
	return s.role, s.err
}

// stubVerifier maps a fixed token string to fixed claims.
type stubVerifier struct {
	token  string
	claims *sec.AuthClaims
}

func (s *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr != s.token {
		return nil, errors.New("unknown token")
	}
	return s.claims, nil
}

// serveWithClaims runs the handler chain with optional claims pre-injected.
func serveWithClaims(handler http.Handler, claims *sec.AuthClaims) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	if claims != nil {
		ctx := context.WithValue(request.Context(), ctxkey.KeyUser, claims)
		request = request.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAdminGuard_FailClosed verifies that every non-success path of the
role lookup denies the request.
*/
func TestAdminGuard_FailClosed(t *testing.T) {
	adminClaims := &sec.AuthClaims{UserID: "user-1", Role: "admin"}

	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		lookup     *stubRoleLookup
		wantStatus int
	}{
		{
			name:       "anonymous_request",
			claims:     nil,
			lookup:     &stubRoleLookup{role: sec.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "lookup_error",
			claims:     adminClaims,
			lookup:     &stubRoleLookup{err: errors.New("connection refused")},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "profile_missing",
			claims:     adminClaims,
			lookup:     &stubRoleLookup{err: errors.New("no rows in result set")},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "member_role",
			claims:     &sec.AuthClaims{UserID: "user-2", Role: "member"},
			lookup:     &stubRoleLookup{role: sec.RoleMember},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "stale_admin_claim_demoted_in_db",
			// The JWT still says admin, but the live lookup says member.
			claims:     adminClaims,
			lookup:     &stubRoleLookup{role: sec.RoleMember},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "current_admin",
			claims:     adminClaims,
			lookup:     &stubRoleLookup{role: sec.RoleAdmin},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guarded := middleware.AdminGuard(tt.lookup)(okHandler())
			recorder := serveWithClaims(guarded, tt.claims)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestAuthenticate covers bearer token extraction and context injection.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &stubVerifier{
		token:  "valid-token",
		claims: &sec.AuthClaims{UserID: "user-1", Role: "admin"},
	}

	var captured *sec.AuthClaims
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured = middleware.GetUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	handler := middleware.Authenticate(verifier)(inner)

	t.Run("valid_bearer", func(t *testing.T) {
		captured = nil
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer valid-token")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "user-1", captured.UserID)
	})

	t.Run("anonymous_passes_through", func(t *testing.T) {
		captured = nil
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("malformed_header", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Token abc")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid_token", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer forged")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

/*
TestRequireAuth checks the authenticated-only gate.
*/
func TestRequireAuth(t *testing.T) {
	handler := middleware.RequireAuth(okHandler())

	t.Run("anonymous_rejected", func(t *testing.T) {
		recorder := serveWithClaims(handler, nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("authenticated_allowed", func(t *testing.T) {
		recorder := serveWithClaims(handler, &sec.AuthClaims{UserID: "user-1", Role: "member"})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
