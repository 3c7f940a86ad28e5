// Copyright (c) 2026 Glowlab. All rights reserved.

package tag

import "time"

// Tag is a free-form marketing attribute applied to products
// (e.g. "wegański", "bez SLS").
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	// Slug is derived from Name on every write; consumer-facing filter URLs
	// use it (e.g. "weganski").
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
}

// Filter holds the parameters for a tag search.
type Filter struct {
	Query string
}

const FieldName = "name"
