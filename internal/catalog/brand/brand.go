// Copyright (c) 2026 Glowlab. All rights reserved.

package brand

import "time"

// Brand represents a cosmetics manufacturer or product line owner.
type Brand struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Website *string `json:"website"`
	LogoURL *string `json:"logo_url"`

	// IsNew marks rows imported from external feeds that an admin
	// has not confirmed yet.
	IsNew     bool      `json:"is_new"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated brand search.
type Filter struct {
	Query string // Substring match against name
}

// Global field names for validation
const (
	FieldName    = "name"
	FieldWebsite = "website"
	FieldLogoURL = "logo_url"
)
