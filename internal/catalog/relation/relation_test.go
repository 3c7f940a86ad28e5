// Copyright (c) 2026 Glowlab. All rights reserved.

package relation_test

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/catalog/relation"
)

var testJoin = relation.JoinTable{
	Table:        "catalog.productingredient",
	OwnerColumn:  "productid",
	MemberColumn: "ingredientid",
}

// memStore keeps junction rows in memory and counts write calls.
type memStore struct {
	links       map[int][]int
	addCalls    int
	rmCalls     int
	failAdd     bool
	failRemove  bool
	failCurrent bool
}

func newMemStore(initial ...int) *memStore {
	return &memStore{links: map[int][]int{1: initial}}
}

func (m *memStore) Current(_ context.Context, _ relation.JoinTable, ownerID int) ([]int, error) {
	if m.failCurrent {
		// A broken read may surface alongside a truncated set; the error
		// must win so the diff never runs on partial data.
		return m.links[ownerID][:1], errors.New("connection reset")
	}
	return append([]int(nil), m.links[ownerID]...), nil
}

func (m *memStore) Add(_ context.Context, _ relation.JoinTable, ownerID int, memberIDs []int) error {
	m.addCalls++
	if m.failAdd {
		return errors.New("insert failed")
	}
	m.links[ownerID] = append(m.links[ownerID], memberIDs...)
	return nil
}

func (m *memStore) Remove(_ context.Context, _ relation.JoinTable, ownerID int, memberIDs []int) error {
	m.rmCalls++
	if m.failRemove {
		return errors.New("delete failed")
	}
	drop := make(map[int]bool, len(memberIDs))
	for _, id := range memberIDs {
		drop[id] = true
	}
	kept := m.links[ownerID][:0]
	for _, id := range m.links[ownerID] {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	m.links[ownerID] = kept
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

/*
TestDiff verifies the minimal delta computation.
*/
func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		current     []int
		desired     []int
		wantAdded   []int
		wantRemoved []int
	}{
		{"grow_only", []int{3, 9}, []int{3, 9, 11}, []int{11}, nil},
		{"shrink_only", []int{3, 9, 11}, []int{3, 9}, nil, []int{11}},
		{"swap", []int{1, 2}, []int{2, 3}, []int{3}, []int{1}},
		{"identical", []int{5, 6}, []int{6, 5}, nil, nil},
		{"from_empty", nil, []int{1, 2}, []int{1, 2}, nil},
		{"to_empty", []int{1, 2}, nil, nil, []int{1, 2}},
		{"duplicate_input", []int{1}, []int{2, 2, 1}, []int{2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := relation.Diff(tt.current, tt.desired)

			if tt.wantAdded == nil {
				assert.Empty(t, delta.Added)
			} else {
				assert.Equal(t, tt.wantAdded, delta.Added)
			}
			if tt.wantRemoved == nil {
				assert.Empty(t, delta.Removed)
			} else {
				assert.Equal(t, tt.wantRemoved, delta.Removed)
			}
		})
	}
}

/*
TestReconciler_Sync_Converges checks that the database state matches the
desired set after a sync, whatever the starting point.
*/
func TestReconciler_Sync_Converges(t *testing.T) {
	store := newMemStore(3, 9)
	reconciler := relation.NewReconciler(store, discard())

	delta, err := reconciler.Sync(context.Background(), testJoin, 1, []int{9, 11, 14})

	require.NoError(t, err)
	assert.Equal(t, []int{11, 14}, delta.Added)
	assert.Equal(t, []int{3}, delta.Removed)

	final := append([]int(nil), store.links[1]...)
	sort.Ints(final)
	assert.Equal(t, []int{9, 11, 14}, final)
}

/*
TestReconciler_Sync_Idempotent checks that re-submitting the same desired
set issues zero writes.
*/
func TestReconciler_Sync_Idempotent(t *testing.T) {
	store := newMemStore(3, 9)
	reconciler := relation.NewReconciler(store, discard())

	delta, err := reconciler.Sync(context.Background(), testJoin, 1, []int{9, 3})

	require.NoError(t, err)
	assert.True(t, delta.Empty())
	assert.Zero(t, store.addCalls)
	assert.Zero(t, store.rmCalls)
}

/*
TestReconciler_Sync_WriteBudget verifies a mixed change costs at most one
add call and one remove call.
*/
func TestReconciler_Sync_WriteBudget(t *testing.T) {
	store := newMemStore(1, 2, 3, 4)
	reconciler := relation.NewReconciler(store, discard())

	_, err := reconciler.Sync(context.Background(), testJoin, 1, []int{3, 4, 5, 6, 7})

	require.NoError(t, err)
	assert.Equal(t, 1, store.addCalls)
	assert.Equal(t, 1, store.rmCalls)
}

/*
TestReconciler_Sync_PartialFailure checks that a failed phase surfaces the
error while reporting what was actually applied.
*/
func TestReconciler_Sync_PartialFailure(t *testing.T) {
	t.Run("add_fails_nothing_applied", func(t *testing.T) {
		store := newMemStore(1)
		store.failAdd = true
		reconciler := relation.NewReconciler(store, discard())

		delta, err := reconciler.Sync(context.Background(), testJoin, 1, []int{1, 2})

		require.Error(t, err)
		assert.True(t, delta.Empty())
	})

	t.Run("current_read_fails_no_writes", func(t *testing.T) {
		store := newMemStore(1, 2, 3)
		store.failCurrent = true
		reconciler := relation.NewReconciler(store, discard())

		_, err := reconciler.Sync(context.Background(), testJoin, 1, []int{1})

		require.Error(t, err)
		assert.Zero(t, store.addCalls, "a truncated current set must not drive inserts")
		assert.Zero(t, store.rmCalls)
	})

	t.Run("remove_fails_adds_kept", func(t *testing.T) {
		store := newMemStore(1)
		store.failRemove = true
		reconciler := relation.NewReconciler(store, discard())

		delta, err := reconciler.Sync(context.Background(), testJoin, 1, []int{2})

		require.Error(t, err)
		// The insert went through and is reported; no rollback happens.
		assert.Equal(t, []int{2}, delta.Added)
		assert.Empty(t, delta.Removed)
		assert.Contains(t, store.links[1], 2)
		assert.Contains(t, store.links[1], 1)
	})
}
