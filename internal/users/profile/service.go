// Copyright (c) 2026 Glowlab. All rights reserved.

package profile

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/glowlab/glowlab/internal/platform/storage"
	"github.com/glowlab/glowlab/internal/platform/validate"
	"github.com/glowlab/glowlab/pkg/pointer"
)

// avatarFolder is the key prefix for avatars in the CMS bucket.
const avatarFolder = "avatars"

type Service struct {
	repo     Repository
	uploader *storage.Uploader
	bucket   string
	logger   *slog.Logger
}

func NewService(repo Repository, uploader *storage.Uploader, bucket string, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		bucket:   bucket,
		logger:   logger,
	}
}

func (service *Service) GetProfile(context context.Context, userID string) (*Profile, error) {
	return service.repo.FindByID(context, userID)
}

// UpdateProfile applies a partial update to the caller's own profile.
func (service *Service) UpdateProfile(context context.Context, userID string, input *UpdateInput) (*Profile, error) {
	profile, err := service.repo.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		profile.DisplayName = strings.TrimSpace(*input.DisplayName)
	}
	if input.PreferredLocale != nil {
		profile.PreferredLocale = *input.PreferredLocale
	}
	if input.LandingRoute != nil {
		profile.LandingRoute = *input.LandingRoute
	}

	validator := &validate.Validator{}
	validator.Required(FieldDisplayName, profile.DisplayName).
		MaxLen(FieldDisplayName, profile.DisplayName, 100).
		OneOf(FieldPreferredLocale, profile.PreferredLocale, SupportedLocales...).
		MaxLen(FieldLandingRoute, profile.LandingRoute, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, profile); err != nil {
		return nil, err
	}

	service.logger.Info("profile_updated", slog.String("user_id", userID))
	return profile, nil
}

// UploadAvatar stores a new avatar and persists its public URL. Keys embed
// the owner ID, so one object per user plus the upload timestamp.
func (service *Service) UploadAvatar(context context.Context, userID string, file io.Reader, size int64, filename, contentType string) (*Profile, error) {
	profile, err := service.repo.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	key := storage.OwnedKey(avatarFolder, userID, filename)
	avatarURL, err := service.uploader.Replace(context, service.bucket, key, file, size, contentType, false, pointer.Val(profile.AvatarURL))
	if err != nil && avatarURL == "" {
		return nil, err
	}
	if err != nil {
		service.logger.Warn("profile_avatar_cleanup_failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	if err := service.repo.UpdateAvatar(context, userID, avatarURL); err != nil {
		return nil, err
	}

	profile.AvatarURL = &avatarURL
	service.logger.Info("profile_avatar_uploaded", slog.String("user_id", userID))
	return profile, nil
}
