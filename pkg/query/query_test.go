// Copyright (c) 2026 Glowlab. All rights reserved.

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glowlab/glowlab/pkg/query"
)

func TestIntSlice(t *testing.T) {
	assert.Equal(t, []int{3, 7}, query.IntSlice([]string{"3", " 7 ", "x", ""}))
	assert.Nil(t, query.IntSlice([]string{"abc"}))
	assert.Nil(t, query.IntSlice(nil))
}

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"padded_and_empty", " a , ,b,", []string{"a", "b"}},
		{"single", "https://admin.glowlab.app", []string{"https://admin.glowlab.app"}},
		{"empty", "", nil},
		{"only_commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.StringSlice(tt.input))
		})
	}
}
