// Copyright (c) 2026 Glowlab. All rights reserved.

package ingredient

import "context"

type Repository interface {
	ListIngredients(context context.Context, f Filter, limit, offset int) ([]*Ingredient, int, error)
	GetIngredient(context context.Context, id int) (*Ingredient, error)
	CreateIngredient(context context.Context, i *Ingredient) error
	UpdateIngredient(context context.Context, i *Ingredient) error
	DeleteIngredient(context context.Context, id int) error

	// ExistsByName reports whether an ingredient with the same normalized
	// name already exists, optionally excluding one ID (for updates).
	ExistsByName(context context.Context, name string, excludeID int) (bool, error)

	// MarkReviewed clears the is_new flag.
	MarkReviewed(context context.Context, id int) error
}
