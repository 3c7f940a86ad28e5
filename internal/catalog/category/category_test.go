// Copyright (c) 2026 Glowlab. All rights reserved.

package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/catalog/category"
)

func intPtr(v int) *int { return &v }

// fixture: Pielęgnacja(1) → Twarz(2) → Kremy(4); Makijaż(3)
func fixture() []*category.Category {
	return []*category.Category{
		{ID: 1, Name: "Pielęgnacja"},
		{ID: 2, Name: "Twarz", ParentID: intPtr(1)},
		{ID: 3, Name: "Makijaż"},
		{ID: 4, Name: "Kremy", ParentID: intPtr(2)},
	}
}

/*
TestBuildTree verifies the flat-to-tree arrangement.
*/
func TestBuildTree(t *testing.T) {
	roots := category.BuildTree(fixture())

	require.Len(t, roots, 2)
	assert.Equal(t, "Pielęgnacja", roots[0].Name)
	assert.Equal(t, "Makijaż", roots[1].Name)

	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Twarz", roots[0].Children[0].Name)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "Kremy", roots[0].Children[0].Children[0].Name)
}

/*
TestBuildTree_MissingParent checks that an unknown parent promotes the
node to a root instead of dropping it.
*/
func TestBuildTree_MissingParent(t *testing.T) {
	orphaned := []*category.Category{
		{ID: 7, Name: "Sieroca", ParentID: intPtr(99)},
	}

	roots := category.BuildTree(orphaned)

	require.Len(t, roots, 1)
	assert.Equal(t, "Sieroca", roots[0].Name)
}

/*
TestBreadcrumb covers splitting the stored path into display segments.
*/
func TestBreadcrumb(t *testing.T) {
	leaf := &category.Category{Name: "Kremy", Path: "Pielęgnacja/Twarz/Kremy"}
	assert.Equal(t, []string{"Pielęgnacja", "Twarz", "Kremy"}, leaf.Breadcrumb())
	assert.Equal(t, "Pielęgnacja", leaf.Root())

	root := &category.Category{Name: "Makijaż", Path: "Makijaż"}
	assert.Equal(t, []string{"Makijaż"}, root.Breadcrumb())
	assert.Equal(t, "Makijaż", root.Root())

	empty := &category.Category{}
	assert.Nil(t, empty.Breadcrumb())
	assert.Equal(t, "", empty.Root())
}

/*
TestGroupByRoot verifies bucketing by the first path segment.
*/
func TestGroupByRoot(t *testing.T) {
	flat := []*category.Category{
		{ID: 1, Name: "Pielęgnacja", Path: "Pielęgnacja"},
		{ID: 2, Name: "Twarz", Path: "Pielęgnacja/Twarz"},
		{ID: 3, Name: "Makijaż", Path: "Makijaż"},
		{ID: 4, Name: "Kremy", Path: "Pielęgnacja/Twarz/Kremy"},
	}

	groups := category.GroupByRoot(flat)

	require.Len(t, groups, 2)
	require.Len(t, groups["Pielęgnacja"], 3)
	assert.Equal(t, "Twarz", groups["Pielęgnacja"][1].Name)
	require.Len(t, groups["Makijaż"], 1)
}

/*
TestPath covers breadcrumb construction from root to leaf.
*/
func TestPath(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		path := category.Path(fixture(), 4)

		require.Len(t, path, 3)
		assert.Equal(t, "Pielęgnacja", path[0].Name)
		assert.Equal(t, "Twarz", path[1].Name)
		assert.Equal(t, "Kremy", path[2].Name)
	})

	t.Run("root", func(t *testing.T) {
		path := category.Path(fixture(), 3)

		require.Len(t, path, 1)
		assert.Equal(t, "Makijaż", path[0].Name)
	})

	t.Run("unknown_id", func(t *testing.T) {
		assert.Nil(t, category.Path(fixture(), 42))
	})

	t.Run("corrupted_cycle_terminates", func(t *testing.T) {
		cyclic := []*category.Category{
			{ID: 1, Name: "A", ParentID: intPtr(2)},
			{ID: 2, Name: "B", ParentID: intPtr(1)},
		}

		path := category.Path(cyclic, 1)
		assert.NotEmpty(t, path)
		assert.LessOrEqual(t, len(path), 2)
	})
}
