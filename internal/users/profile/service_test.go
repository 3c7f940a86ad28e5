// Copyright (c) 2026 Glowlab. All rights reserved.

package profile_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/sec"
	"github.com/glowlab/glowlab/internal/users/profile"
)

type memRepo struct {
	profiles map[string]*profile.Profile
}

func newMemRepo(existing ...*profile.Profile) *memRepo {
	repo := &memRepo{profiles: map[string]*profile.Profile{}}
	for _, p := range existing {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (m *memRepo) FindByID(_ context.Context, id string) (*profile.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, apperr.NotFound("Profile")
	}
	return p, nil
}

func (m *memRepo) FindByEmail(_ context.Context, email string) (*profile.Profile, error) {
	for _, p := range m.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Profile")
}

func (m *memRepo) Update(_ context.Context, p *profile.Profile) error {
	if _, ok := m.profiles[p.ID]; !ok {
		return apperr.NotFound("Profile")
	}
	m.profiles[p.ID] = p
	return nil
}

func (m *memRepo) UpdateAvatar(_ context.Context, id, url string) error {
	p, ok := m.profiles[id]
	if !ok {
		return apperr.NotFound("Profile")
	}
	p.AvatarURL = &url
	return nil
}

func (m *memRepo) UpdatePassword(_ context.Context, id, newHash string) error {
	p, ok := m.profiles[id]
	if !ok {
		return apperr.NotFound("Profile")
	}
	p.PasswordHash = newHash
	return nil
}

func (m *memRepo) TouchLogin(_ context.Context, _ string) error {
	return nil
}

func (m *memRepo) RoleByUserID(_ context.Context, userID string) (sec.UserRole, error) {
	p, ok := m.profiles[userID]
	if !ok || !p.IsActive {
		return "", apperr.NotFound("Profile")
	}
	return p.Role, nil
}

func fixtureProfile() *profile.Profile {
	return &profile.Profile{
		ID:              "0198b9a2-0000-7000-8000-000000000001",
		Email:           "admin@glowlab.app",
		DisplayName:     "Ala",
		Role:            sec.RoleAdmin,
		PreferredLocale: "pl",
		LandingRoute:    "/dashboard",
		IsActive:        true,
	}
}

func newService(repo *memRepo) *profile.Service {
	return profile.NewService(repo, nil, "glowlab-cms", slog.New(slog.DiscardHandler))
}

func TestService_UpdateProfile_Partial(t *testing.T) {
	existing := fixtureProfile()
	repo := newMemRepo(existing)
	service := newService(repo)

	locale := "en"
	updated, err := service.UpdateProfile(context.Background(), existing.ID, &profile.UpdateInput{
		PreferredLocale: &locale,
	})

	require.NoError(t, err)
	assert.Equal(t, "en", updated.PreferredLocale)
	assert.Equal(t, "Ala", updated.DisplayName, "unset fields stay untouched")
	assert.Equal(t, "/dashboard", updated.LandingRoute)
}

func TestService_UpdateProfile_Validation(t *testing.T) {
	t.Run("unsupported_locale", func(t *testing.T) {
		service := newService(newMemRepo(fixtureProfile()))

		locale := "de"
		_, err := service.UpdateProfile(context.Background(), fixtureProfile().ID, &profile.UpdateInput{
			PreferredLocale: &locale,
		})

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("blank_display_name", func(t *testing.T) {
		service := newService(newMemRepo(fixtureProfile()))

		name := "   "
		_, err := service.UpdateProfile(context.Background(), fixtureProfile().ID, &profile.UpdateInput{
			DisplayName: &name,
		})

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestRepo_RoleByUserID_InactiveAccount(t *testing.T) {
	inactive := fixtureProfile()
	inactive.IsActive = false
	repo := newMemRepo(inactive)

	_, err := repo.RoleByUserID(context.Background(), inactive.ID)
	require.Error(t, err, "deactivated accounts must resolve to no role")
}
