// Copyright (c) 2026 Glowlab. All rights reserved.

package ingredient

import (
	"encoding/json"
	"strconv"
	"time"
)

// Ingredient represents a single cosmetic ingredient (INCI entry).
type Ingredient struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	INCIName       *string        `json:"inci_name"`
	Description    *string        `json:"description"`
	Recommendation Recommendation `json:"recommendation"`

	// Functions is the ordered list of short function tags
	// ("nawilżający", "UV filter"). Order is the author's, not sorted.
	Functions []string `json:"functions"`

	// IsNew marks ingredients discovered during product imports that an
	// admin has not classified yet.
	IsNew     bool      `json:"is_new"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated ingredient search.
type Filter struct {
	Query string // Substring match against name and INCI name
}

// Global field names for validation
const (
	FieldName           = "name"
	FieldINCIName       = "inci_name"
	FieldRecommendation = "recommendation"
)

// Hazard labels accepted as non-numeric recommendations.
const (
	LabelAllergen     = "alergen"
	LabelPreservative = "konserwant"
)

// Recommendation classifies an ingredient for shoppers.
//
// The wire value is a union: an integer rating from 0 (avoid) to 5 (great),
// one of the hazard labels, or null for unclassified ingredients. The shape
// is historical; the consumer app renders ratings and labels differently,
// and existing data uses both.
type Recommendation struct {
	rating *int
	label  *string
}

// RatingRecommendation builds a numeric recommendation.
func RatingRecommendation(rating int) Recommendation {
	return Recommendation{rating: &rating}
}

// LabelRecommendation builds a label recommendation.
func LabelRecommendation(label string) Recommendation {
	return Recommendation{label: &label}
}

// IsNull reports whether the ingredient is unclassified.
func (r Recommendation) IsNull() bool {
	return r.rating == nil && r.label == nil
}

// Rating returns the numeric rating, if set.
func (r Recommendation) Rating() (int, bool) {
	if r.rating == nil {
		return 0, false
	}
	return *r.rating, true
}

// Label returns the hazard label, if set.
func (r Recommendation) Label() (string, bool) {
	if r.label == nil {
		return "", false
	}
	return *r.label, true
}

// Valid reports whether the value is inside the accepted union.
func (r Recommendation) Valid() bool {
	switch {
	case r.IsNull():
		return true
	case r.rating != nil:
		return *r.rating >= 0 && *r.rating <= 5
	default:
		return *r.label == LabelAllergen || *r.label == LabelPreservative
	}
}

// MarshalJSON emits a bare number, a bare string, or null.
func (r Recommendation) MarshalJSON() ([]byte, error) {
	switch {
	case r.rating != nil:
		return json.Marshal(*r.rating)
	case r.label != nil:
		return json.Marshal(*r.label)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts any member of the union. Range and label checks are
// deferred to [Recommendation.Valid] so decoding errors stay about shape.
func (r *Recommendation) UnmarshalJSON(data []byte) error {
	*r = Recommendation{}

	if string(data) == "null" {
		return nil
	}

	var rating int
	if err := json.Unmarshal(data, &rating); err == nil {
		r.rating = &rating
		return nil
	}

	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}

	// Later data generations encode the rating as a string ("0".."5");
	// digit strings are ratings, not labels.
	if rating, err := strconv.Atoi(label); err == nil {
		r.rating = &rating
		return nil
	}

	r.label = &label
	return nil
}

// StorageValue flattens the union into a nullable text column value.
func (r Recommendation) StorageValue() *string {
	switch {
	case r.rating != nil:
		s := strconv.Itoa(*r.rating)
		return &s
	case r.label != nil:
		s := *r.label
		return &s
	default:
		return nil
	}
}

// RecommendationFromStorage rebuilds the union from its column value.
// Unknown text is preserved as a label; validation happens on write, not read.
func RecommendationFromStorage(value *string) Recommendation {
	if value == nil {
		return Recommendation{}
	}
	if rating, err := strconv.Atoi(*value); err == nil {
		return RatingRecommendation(rating)
	}
	return LabelRecommendation(*value)
}
