// Copyright (c) 2026 Glowlab. All rights reserved.

package ingredient

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

func (service *Service) ListIngredients(context context.Context, filter Filter, limit, offset int) ([]*Ingredient, int, error) {
	return service.repo.ListIngredients(context, filter, limit, offset)
}

func (service *Service) GetIngredient(context context.Context, id int) (*Ingredient, error) {
	return service.repo.GetIngredient(context, id)
}

func (service *Service) CreateIngredient(context context.Context, ingredient *Ingredient) error {
	ingredient.Name = strings.TrimSpace(ingredient.Name)
	ingredient.Functions = normalizeFunctions(ingredient.Functions)

	if err := service.validateIngredient(ingredient); err != nil {
		return err
	}

	if err := service.guardDuplicateName(context, ingredient.Name, 0); err != nil {
		return err
	}

	if err := service.repo.CreateIngredient(context, ingredient); err != nil {
		return err
	}

	service.logger.Info("ingredient_created", slog.String("name", ingredient.Name))
	return nil
}

func (service *Service) UpdateIngredient(context context.Context, id int, ingredient *Ingredient) error {
	ingredient.ID = id
	ingredient.Name = strings.TrimSpace(ingredient.Name)
	ingredient.Functions = normalizeFunctions(ingredient.Functions)

	if err := service.validateIngredient(ingredient); err != nil {
		return err
	}

	if err := service.guardDuplicateName(context, ingredient.Name, id); err != nil {
		return err
	}

	if err := service.repo.UpdateIngredient(context, ingredient); err != nil {
		return err
	}

	service.logger.Info("ingredient_updated", slog.Int("ingredient_id", ingredient.ID))
	return nil
}

func (service *Service) DeleteIngredient(context context.Context, id int) error {
	if err := service.repo.DeleteIngredient(context, id); err != nil {
		return err
	}

	service.logger.Warn("ingredient_deleted", slog.Int("ingredient_id", id))
	return nil
}

// MarkReviewed confirms an imported ingredient, clearing it from the review queue.
func (service *Service) MarkReviewed(context context.Context, id int) error {
	if err := service.repo.MarkReviewed(context, id); err != nil {
		return err
	}

	service.logger.Info("ingredient_reviewed", slog.Int("ingredient_id", id))
	return nil
}

func (service *Service) validateIngredient(ingredient *Ingredient) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, ingredient.Name).MaxLen(FieldName, ingredient.Name, 200)
	if ingredient.INCIName != nil {
		validator.MaxLen(FieldINCIName, *ingredient.INCIName, 200)
	}
	validator.Custom(FieldRecommendation, !ingredient.Recommendation.Valid(),
		"Must be a rating from 0 to 5, 'alergen', 'konserwant', or null")

	return validator.Err()
}

// normalizeFunctions trims each tag and drops empties, keeping the author's
// order. An empty result collapses to nil so the column stays NULL.
func normalizeFunctions(functions []string) []string {
	var out []string
	for _, f := range functions {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (service *Service) guardDuplicateName(context context.Context, name string, excludeID int) error {
	exists, err := service.repo.ExistsByName(context, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("An ingredient with this name already exists")
	}
	return nil
}
