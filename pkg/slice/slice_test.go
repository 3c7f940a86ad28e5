// Copyright (c) 2026 Glowlab. All rights reserved.

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glowlab/glowlab/pkg/slice"
)

/*
TestDiff verifies set-difference semantics used by the relation reconciler.
*/
func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []int
		want []int
	}{
		{"disjoint", []int{1, 2}, []int{3, 4}, []int{1, 2}},
		{"overlap", []int{3, 9, 11}, []int{3, 9}, []int{11}},
		{"equal", []int{3, 9}, []int{9, 3}, nil},
		{"empty_a", nil, []int{1}, nil},
		{"empty_b", []int{5}, nil, []int{5}},
		{"duplicates_in_a", []int{7, 7, 8}, []int{8}, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slice.Diff(tt.a, tt.b))
		})
	}
}

func TestMap(t *testing.T) {
	doubled := slice.Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
	assert.Nil(t, slice.Map(nil, func(v int) int { return v }))
}

func TestFilter(t *testing.T) {
	even := slice.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
}
