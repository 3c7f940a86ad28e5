// Copyright (c) 2026 Glowlab. All rights reserved.

package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/validate"
	"github.com/glowlab/glowlab/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTags(context context.Context, filter Filter) ([]*Tag, error) {
	return service.repo.ListTags(context, filter)
}

func (service *Service) GetTag(context context.Context, id int) (*Tag, error) {
	return service.repo.GetTag(context, id)
}

func (service *Service) CreateTag(context context.Context, tag *Tag) error {
	tag.Name = strings.TrimSpace(tag.Name)

	validator := &validate.Validator{}
	if err := validator.Required(FieldName, tag.Name).MaxLen(FieldName, tag.Name, 80).Err(); err != nil {
		return err
	}

	exists, err := service.repo.ExistsByName(context, tag.Name, 0)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("A tag with this name already exists")
	}

	tag.Slug = slug.From(tag.Name)
	if err := service.repo.CreateTag(context, tag); err != nil {
		return err
	}

	service.logger.Info("tag_created", slog.String("name", tag.Name))
	return nil
}

func (service *Service) UpdateTag(context context.Context, id int, tag *Tag) error {
	tag.ID = id
	tag.Name = strings.TrimSpace(tag.Name)

	validator := &validate.Validator{}
	if err := validator.Required(FieldName, tag.Name).MaxLen(FieldName, tag.Name, 80).Err(); err != nil {
		return err
	}

	exists, err := service.repo.ExistsByName(context, tag.Name, id)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("A tag with this name already exists")
	}

	tag.Slug = slug.From(tag.Name)
	if err := service.repo.UpdateTag(context, tag); err != nil {
		return err
	}

	service.logger.Info("tag_updated", slog.Int("tag_id", tag.ID))
	return nil
}

func (service *Service) DeleteTag(context context.Context, id int) error {
	if err := service.repo.DeleteTag(context, id); err != nil {
		return err
	}

	service.logger.Warn("tag_deleted", slog.Int("tag_id", id))
	return nil
}
