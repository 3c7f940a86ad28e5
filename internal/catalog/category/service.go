// Copyright (c) 2026 Glowlab. All rights reserved.

package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/validate"
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

// ListCategories returns all categories arranged as root-anchored trees.
func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	flat, err := service.repo.ListCategories(context)
	if err != nil {
		return nil, err
	}
	return BuildTree(flat), nil
}

func (service *Service) GetCategory(context context.Context, id int) (*Category, error) {
	return service.repo.GetCategory(context, id)
}

// GetPath returns the breadcrumb from the root down to the category.
func (service *Service) GetPath(context context.Context, id int) ([]*Category, error) {
	flat, err := service.repo.ListCategories(context)
	if err != nil {
		return nil, err
	}

	path := Path(flat, id)
	if path == nil {
		return nil, apperr.NotFound("Category")
	}
	return path, nil
}

func (service *Service) CreateCategory(context context.Context, category *Category) error {
	category.Name = strings.TrimSpace(category.Name)

	if err := service.validateCategory(context, category); err != nil {
		return err
	}

	path, err := service.buildPath(context, category.Name, category.ParentID)
	if err != nil {
		return err
	}
	category.Path = path

	if err := service.repo.CreateCategory(context, category); err != nil {
		return err
	}

	service.logger.Info("category_created", slog.String("path", category.Path))
	return nil
}

func (service *Service) UpdateCategory(context context.Context, id int, category *Category) error {
	category.ID = id
	category.Name = strings.TrimSpace(category.Name)

	if category.ParentID != nil && *category.ParentID == id {
		return validate.RequiredError(FieldParentID, "A category cannot be its own parent")
	}

	if err := service.validateCategory(context, category); err != nil {
		return err
	}

	existing, err := service.repo.GetCategory(context, id)
	if err != nil {
		return err
	}

	path, err := service.buildPath(context, category.Name, category.ParentID)
	if err != nil {
		return err
	}
	category.Path = path

	if err := service.repo.UpdateCategory(context, category); err != nil {
		return err
	}

	// A rename or move shifts the whole subtree under the new prefix.
	if existing.Path != category.Path {
		if err := service.repo.RebaseDescendants(context, existing.Path, category.Path); err != nil {
			return err
		}
	}

	service.logger.Info("category_updated", slog.Int("category_id", category.ID))
	return nil
}

// buildPath derives the slash-delimited ancestry for a node under the given
// parent. Roots carry just their own name.
func (service *Service) buildPath(context context.Context, name string, parentID *int) (string, error) {
	if parentID == nil {
		return name, nil
	}

	parent, err := service.repo.GetCategory(context, *parentID)
	if err != nil {
		return "", err
	}
	return parent.Path + PathSeparator + name, nil
}

func (service *Service) DeleteCategory(context context.Context, id int) error {
	if err := service.repo.DeleteCategory(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.Int("category_id", id))
	return nil
}

func (service *Service) validateCategory(context context.Context, category *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, category.Name).MaxLen(FieldName, category.Name, 120)
	validator.Custom(FieldName, strings.Contains(category.Name, PathSeparator),
		"Must not contain '/'")

	if err := validator.Err(); err != nil {
		return err
	}

	// Parent must exist to avoid orphaned subtrees.
	if category.ParentID != nil {
		if _, err := service.repo.GetCategory(context, *category.ParentID); err != nil {
			return validate.RequiredError(FieldParentID, "Parent category does not exist")
		}
	}

	return nil
}
