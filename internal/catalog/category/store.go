// Copyright (c) 2026 Glowlab. All rights reserved.

package category

import "context"

type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategory(context context.Context, id int) (*Category, error)
	CreateCategory(context context.Context, c *Category) error
	UpdateCategory(context context.Context, c *Category) error
	RebaseDescendants(context context.Context, oldPath, newPath string) error
	DeleteCategory(context context.Context, id int) error
}
