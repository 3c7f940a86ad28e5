// Copyright (c) 2026 Glowlab. All rights reserved.

package ingredient_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/catalog/ingredient"
)

/*
TestRecommendation_Decode verifies every member of the wire union decodes.
*/
func TestRecommendation_Decode(t *testing.T) {
	t.Run("numeric_rating", func(t *testing.T) {
		var r ingredient.Recommendation
		require.NoError(t, json.Unmarshal([]byte(`4`), &r))

		rating, ok := r.Rating()
		assert.True(t, ok)
		assert.Equal(t, 4, rating)
		assert.True(t, r.Valid())
	})

	t.Run("string_encoded_rating", func(t *testing.T) {
		// The later data generation stores the 0-5 enum as strings.
		var r ingredient.Recommendation
		require.NoError(t, json.Unmarshal([]byte(`"3"`), &r))

		rating, ok := r.Rating()
		assert.True(t, ok)
		assert.Equal(t, 3, rating)
		assert.True(t, r.Valid())
	})

	t.Run("string_encoded_rating_out_of_range", func(t *testing.T) {
		var r ingredient.Recommendation
		require.NoError(t, json.Unmarshal([]byte(`"9"`), &r))
		assert.False(t, r.Valid())
	})

	t.Run("hazard_label", func(t *testing.T) {
		var r ingredient.Recommendation
		require.NoError(t, json.Unmarshal([]byte(`"alergen"`), &r))

		label, ok := r.Label()
		assert.True(t, ok)
		assert.Equal(t, "alergen", label)
		assert.True(t, r.Valid())
	})

	t.Run("null_is_unclassified", func(t *testing.T) {
		var r ingredient.Recommendation
		require.NoError(t, json.Unmarshal([]byte(`null`), &r))

		assert.True(t, r.IsNull())
		assert.True(t, r.Valid())
	})

	t.Run("decode_accepts_shape_validity_rejects_value", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"rating_too_high", `6`},
			{"rating_negative", `-1`},
			{"unknown_label", `"parabeny"`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var r ingredient.Recommendation
				require.NoError(t, json.Unmarshal([]byte(tt.raw), &r))
				assert.False(t, r.Valid())
			})
		}
	})

	t.Run("malformed_json", func(t *testing.T) {
		var r ingredient.Recommendation
		assert.Error(t, json.Unmarshal([]byte(`{"rating": 3}`), &r))
	})
}

/*
TestRecommendation_Encode checks the union serializes back to its bare form.
*/
func TestRecommendation_Encode(t *testing.T) {
	tests := []struct {
		name  string
		value ingredient.Recommendation
		want  string
	}{
		{"rating", ingredient.RatingRecommendation(0), `0`},
		{"label", ingredient.LabelRecommendation("konserwant"), `"konserwant"`},
		{"null", ingredient.Recommendation{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

/*
TestRecommendation_Storage covers flattening to and from the text column.
*/
func TestRecommendation_Storage(t *testing.T) {
	t.Run("rating_round_trip", func(t *testing.T) {
		stored := ingredient.RatingRecommendation(5).StorageValue()
		require.NotNil(t, stored)
		assert.Equal(t, "5", *stored)

		back := ingredient.RecommendationFromStorage(stored)
		rating, ok := back.Rating()
		assert.True(t, ok)
		assert.Equal(t, 5, rating)
	})

	t.Run("label_round_trip", func(t *testing.T) {
		stored := ingredient.LabelRecommendation("alergen").StorageValue()
		require.NotNil(t, stored)

		back := ingredient.RecommendationFromStorage(stored)
		label, ok := back.Label()
		assert.True(t, ok)
		assert.Equal(t, "alergen", label)
	})

	t.Run("null_round_trip", func(t *testing.T) {
		assert.Nil(t, ingredient.Recommendation{}.StorageValue())
		assert.True(t, ingredient.RecommendationFromStorage(nil).IsNull())
	})
}
