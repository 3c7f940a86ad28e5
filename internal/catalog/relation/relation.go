// Copyright (c) 2026 Glowlab. All rights reserved.

/*
Package relation synchronizes many-to-many associations between products and
their ingredients, categories, and tags.

Editing a product in the back-office sends the full desired set of linked IDs.
Instead of wiping and re-inserting the junction table, the reconciler computes
the minimal delta against the CURRENT database state and issues at most one
batched INSERT and one set-based DELETE. Untouched links keep their rows, and
two admins editing different associations of the same product do not stomp on
each other's work.

Failure handling is deliberately simple: phases are not wrapped in a
transaction, and a phase that fails after another succeeded reports exactly
what was applied. The next save converges the state again.
*/
package relation

import (
	stdctx "context"
	"log/slog"

	"github.com/glowlab/glowlab/pkg/slice"
)

// JoinTable describes one junction table the reconciler can operate on.
type JoinTable struct {
	Table        string
	OwnerColumn  string
	MemberColumn string
}

// Delta is the outcome of a reconciliation pass.
type Delta struct {
	Added   []int `json:"added"`
	Removed []int `json:"removed"`
}

// Empty reports whether the pass changed nothing.
func (d Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Diff computes the minimal change set turning current into desired.
//
// Duplicates in either input are ignored; links are a set.
func Diff(current, desired []int) Delta {
	return Delta{
		Added:   slice.Diff(desired, current),
		Removed: slice.Diff(current, desired),
	}
}

// Store is the persistence contract for junction rows.
type Store interface {
	// Current returns the member IDs currently linked to the owner.
	Current(context stdctx.Context, join JoinTable, ownerID int) ([]int, error)

	// Add links the given members to the owner. Must be a single round trip.
	Add(context stdctx.Context, join JoinTable, ownerID int, memberIDs []int) error

	// Remove unlinks the given members from the owner in one statement.
	Remove(context stdctx.Context, join JoinTable, ownerID int, memberIDs []int) error
}

// Reconciler drives association syncs against a [Store].
type Reconciler struct {
	store  Store
	logger *slog.Logger
}

func NewReconciler(store Store, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logger,
	}
}

// Sync converges the owner's links in the junction table towards desired.
//
// The database is re-read at the start of every call; the caller's idea of
// the current state is never trusted. A no-op delta issues zero writes.
//
// On partial failure the returned Delta reflects what was actually applied,
// alongside the error. Nothing is rolled back.
func (reconciler *Reconciler) Sync(context stdctx.Context, join JoinTable, ownerID int, desired []int) (Delta, error) {
	current, err := reconciler.store.Current(context, join, ownerID)
	if err != nil {
		return Delta{}, err
	}

	delta := Diff(current, desired)
	if delta.Empty() {
		return delta, nil
	}

	applied := Delta{}

	if len(delta.Added) > 0 {
		if err := reconciler.store.Add(context, join, ownerID, delta.Added); err != nil {
			return applied, err
		}
		applied.Added = delta.Added
	}

	if len(delta.Removed) > 0 {
		if err := reconciler.store.Remove(context, join, ownerID, delta.Removed); err != nil {
			return applied, err
		}
		applied.Removed = delta.Removed
	}

	reconciler.logger.Info("relations_synced",
		slog.String("table", join.Table),
		slog.Int("owner_id", ownerID),
		slog.Int("added", len(applied.Added)),
		slog.Int("removed", len(applied.Removed)),
	)

	return applied, nil
}
