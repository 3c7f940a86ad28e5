// Copyright (c) 2026 Glowlab. All rights reserved.

package brand

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/storage"
	"github.com/glowlab/glowlab/internal/platform/validate"
	"github.com/glowlab/glowlab/pkg/pointer"
)

// logoFolder is the key prefix for brand logos inside the logo bucket.
const logoFolder = "brands"

type Service struct {
	repo       Repository
	uploader   *storage.Uploader
	logoBucket string
	logger     *slog.Logger
}

func NewService(repo Repository, uploader *storage.Uploader, logoBucket string, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		uploader:   uploader,
		logoBucket: logoBucket,
		logger:     logger,
	}
}

func (service *Service) ListBrands(context context.Context, filter Filter, limit, offset int) ([]*Brand, int, error) {
	return service.repo.ListBrands(context, filter, limit, offset)
}

func (service *Service) GetBrand(context context.Context, id int) (*Brand, error) {
	return service.repo.GetBrand(context, id)
}

func (service *Service) CreateBrand(context context.Context, brand *Brand) error {
	brand.Name = strings.TrimSpace(brand.Name)

	if err := service.validateBrand(brand); err != nil {
		return err
	}

	if err := service.guardDuplicateName(context, brand.Name, 0); err != nil {
		return err
	}

	if err := service.repo.CreateBrand(context, brand); err != nil {
		return err
	}

	service.logger.Info("brand_created", slog.String("name", brand.Name))
	return nil
}

func (service *Service) UpdateBrand(context context.Context, id int, brand *Brand) error {
	brand.ID = id
	brand.Name = strings.TrimSpace(brand.Name)

	if err := service.validateBrand(brand); err != nil {
		return err
	}

	if err := service.guardDuplicateName(context, brand.Name, id); err != nil {
		return err
	}

	if err := service.repo.UpdateBrand(context, brand); err != nil {
		return err
	}

	service.logger.Info("brand_updated", slog.Int("brand_id", brand.ID))
	return nil
}

func (service *Service) DeleteBrand(context context.Context, id int) error {
	if err := service.repo.DeleteBrand(context, id); err != nil {
		return err
	}

	service.logger.Warn("brand_deleted", slog.Int("brand_id", id))
	return nil
}

// MarkReviewed confirms an imported brand, clearing it from the review queue.
func (service *Service) MarkReviewed(context context.Context, id int) error {
	if err := service.repo.MarkReviewed(context, id); err != nil {
		return err
	}

	service.logger.Info("brand_reviewed", slog.Int("brand_id", id))
	return nil
}

// UploadLogo stores a new logo image and persists its public URL.
//
// Logos use random object keys, so overwrite is permitted; the previous
// logo object is removed after the new one is in place.
func (service *Service) UploadLogo(context context.Context, id int, file io.Reader, size int64, filename, contentType string) (*Brand, error) {
	brand, err := service.repo.GetBrand(context, id)
	if err != nil {
		return nil, err
	}

	key := storage.RandomKey(logoFolder, filename)
	logoURL, err := service.uploader.Replace(context, service.logoBucket, key, file, size, contentType, true, pointer.Val(brand.LogoURL))
	if err != nil && logoURL == "" {
		return nil, err
	}
	if err != nil {
		// Old object removal failed; keep going with the new URL.
		service.logger.Warn("brand_logo_cleanup_failed",
			slog.Int("brand_id", id),
			slog.Any("error", err),
		)
	}

	brand.LogoURL = &logoURL
	if err := service.repo.UpdateBrand(context, brand); err != nil {
		return nil, err
	}

	service.logger.Info("brand_logo_uploaded", slog.Int("brand_id", id))
	return brand, nil
}

func (service *Service) validateBrand(brand *Brand) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, brand.Name).MaxLen(FieldName, brand.Name, 160)
	if brand.Website != nil && *brand.Website != "" {
		validator.URL(FieldWebsite, *brand.Website)
	}

	return validator.Err()
}

// guardDuplicateName rejects names that collide case-insensitively with an
// existing brand. The database keeps a unique index on lower(name) as the
// backstop for concurrent writers.
func (service *Service) guardDuplicateName(context context.Context, name string, excludeID int) error {
	exists, err := service.repo.ExistsByName(context, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("A brand with this name already exists")
	}
	return nil
}
