// Copyright (c) 2026 Glowlab. All rights reserved.

package category

import (
	"strings"
	"time"
)

// Category is a node in the product taxonomy tree (e.g. "Pielęgnacja" →
// "Twarz" → "Kremy"). Roots have a nil ParentID.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id"`

	// Path is the slash-delimited ancestry including the category's own
	// name ("Pielęgnacja/Twarz/Kremy"). It is derived from the parent on
	// every write; renames rebase the descendants' paths.
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"-"`

	// Children is populated by [BuildTree]; it is never stored.
	Children []*Category `json:"children,omitempty"`
}

// PathSeparator delimits the segments of [Category.Path].
const PathSeparator = "/"

// Breadcrumb splits the path into its display segments, root first.
func (c *Category) Breadcrumb() []string {
	if c.Path == "" {
		return nil
	}
	return strings.Split(c.Path, PathSeparator)
}

// Root returns the top-level segment of the path.
func (c *Category) Root() string {
	segments := c.Breadcrumb()
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}

// GroupByRoot buckets a flat category list by the first path segment,
// preserving input order within each bucket.
func GroupByRoot(flat []*Category) map[string][]*Category {
	groups := make(map[string][]*Category)
	for _, c := range flat {
		root := c.Root()
		groups[root] = append(groups[root], c)
	}
	return groups
}

// Global field names for validation
const (
	FieldName     = "name"
	FieldParentID = "parent_id"
)

// BuildTree arranges a flat category list into root-anchored trees.
//
// Categories whose parent is missing from the input are treated as roots
// rather than dropped, so a partially-loaded list still renders.
func BuildTree(flat []*Category) []*Category {
	byID := make(map[int]*Category, len(flat))
	for _, c := range flat {
		c.Children = nil
		byID[c.ID] = c
	}

	var roots []*Category
	for _, c := range flat {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		parent, ok := byID[*c.ParentID]
		if !ok {
			roots = append(roots, c)
			continue
		}
		parent.Children = append(parent.Children, c)
	}

	return roots
}

// Path returns the breadcrumb from the root down to the given category,
// inclusive. Returns nil when the ID is unknown.
//
// Cycles cannot occur in well-formed data, but a corrupted parent chain is
// cut off rather than looping forever.
func Path(flat []*Category, id int) []*Category {
	byID := make(map[int]*Category, len(flat))
	for _, c := range flat {
		byID[c.ID] = c
	}

	node, ok := byID[id]
	if !ok {
		return nil
	}

	var reversed []*Category
	seen := make(map[int]bool)
	for node != nil && !seen[node.ID] {
		seen[node.ID] = true
		reversed = append(reversed, node)
		if node.ParentID == nil {
			break
		}
		node = byID[*node.ParentID]
	}

	path := make([]*Category, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
