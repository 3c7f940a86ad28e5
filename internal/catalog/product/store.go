// Copyright (c) 2026 Glowlab. All rights reserved.

package product

import "context"

type Repository interface {
	ListProducts(context context.Context, f Filter, limit, offset int) ([]*Product, int, error)

	// SearchProducts runs the catalog.search_products full-text routine.
	SearchProducts(context context.Context, query string, limit, offset int) ([]*Product, int, error)

	GetProduct(context context.Context, id int) (*Product, error)
	CreateProduct(context context.Context, p *Product) error
	UpdateProduct(context context.Context, p *Product) error
	DeleteProduct(context context.Context, id int) error

	UpdateThumbnail(context context.Context, id int, url string) error
	SetReviewed(context context.Context, id int, reviewed bool) error

	// AssociationIDs returns the linked ingredient, category, and tag IDs.
	AssociationIDs(context context.Context, id int) (ingredients, categories, tags []int, err error)
}

// RoutineStore links junction members through a server-side SQL routine.
// Satisfied by [relation.PostgresStore].
type RoutineStore interface {
	AddViaRoutine(context context.Context, routine string, ownerID int, memberIDs []int) error
}
