// Copyright (c) 2026 Glowlab. All rights reserved.

package product

import "time"

// Product is a single catalog item: one physical cosmetic with its brand,
// composition, taxonomy placement, and marketing tags.
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	BrandID      int     `json:"brand_id"`
	BrandName    *string `json:"brand_name,omitempty"` // joined, read-only
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Barcode      *string `json:"barcode"`

	// TechnologistNote is the technologist's free-text opinion. Visible to
	// admins only, never exposed in the consumer app.
	TechnologistNote *string `json:"technologist_note"`

	// IsNew marks products imported from external feeds that an admin has
	// not confirmed yet. Ignored entirely when the review workflow is off.
	IsNew     bool      `json:"is_new"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Association IDs, populated on detail reads only.
	IngredientIDs []int `json:"ingredient_ids,omitempty"`
	CategoryIDs   []int `json:"category_ids,omitempty"`
	TagIDs        []int `json:"tag_ids,omitempty"`
}

// Filter holds the parameters for a paginated product listing.
type Filter struct {
	Query   string // Full-text search when at least 2 characters
	BrandID int    // 0 means any brand
	OnlyNew bool   // Restrict to the review queue
}

// CreateInput is the payload for creating a product with its associations.
type CreateInput struct {
	Name             string  `json:"name"`
	BrandID          int     `json:"brand_id"`
	Description      *string `json:"description"`
	Barcode          *string `json:"barcode"`
	TechnologistNote *string `json:"technologist_note"`
	IngredientIDs    []int   `json:"ingredient_ids"`
	CategoryIDs      []int   `json:"category_ids"`
	TagIDs           []int   `json:"tag_ids"`

	// AllowNoCategories must be set explicitly to create a product without
	// any category. An uncategorized product is invisible in the consumer
	// app's browse views, so leaving the set empty is usually a mistake.
	AllowNoCategories bool `json:"allow_no_categories"`
}

// UpdateInput is the payload for a partial product update.
// Nil fields are left unchanged; associations have their own endpoints.
type UpdateInput struct {
	Name             *string `json:"name"`
	BrandID          *int    `json:"brand_id"`
	Description      *string `json:"description"`
	Barcode          *string `json:"barcode"`
	TechnologistNote *string `json:"technologist_note"`
}

// Global field names for validation
const (
	FieldName       = "name"
	FieldBrandID    = "brand_id"
	FieldCategories = "category_ids"
	FieldBarcode    = "barcode"
)

// searchMinLength is the minimum query length that triggers full-text search.
const searchMinLength = 2
