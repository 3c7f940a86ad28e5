// Copyright (c) 2026 Glowlab. All rights reserved.

package brand

import "context"

type Repository interface {
	ListBrands(context context.Context, f Filter, limit, offset int) ([]*Brand, int, error)
	GetBrand(context context.Context, id int) (*Brand, error)
	CreateBrand(context context.Context, b *Brand) error
	UpdateBrand(context context.Context, b *Brand) error
	DeleteBrand(context context.Context, id int) error

	// ExistsByName reports whether a brand with the same normalized name
	// already exists, optionally excluding one ID (for updates).
	ExistsByName(context context.Context, name string, excludeID int) (bool, error)

	// MarkReviewed clears the is_new flag.
	MarkReviewed(context context.Context, id int) error
}
