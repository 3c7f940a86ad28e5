// Copyright (c) 2026 Glowlab. All rights reserved.

package relation

import (
	stdctx "context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glowlab/glowlab/internal/platform/database/schema"
	"github.com/glowlab/glowlab/internal/platform/dberr"
)

// Junction table descriptors for the product associations.
var (
	ProductIngredients = JoinTable{
		Table:        schema.ProductIngredient.Table,
		OwnerColumn:  schema.ProductIngredient.ProductID,
		MemberColumn: schema.ProductIngredient.IngredientID,
	}
	ProductCategories = JoinTable{
		Table:        schema.ProductCategory.Table,
		OwnerColumn:  schema.ProductCategory.ProductID,
		MemberColumn: schema.ProductCategory.CategoryID,
	}
	ProductTags = JoinTable{
		Table:        schema.ProductTag.Table,
		OwnerColumn:  schema.ProductTag.ProductID,
		MemberColumn: schema.ProductTag.TagID,
	}
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) Current(context stdctx.Context, join JoinTable, ownerID int) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		join.MemberColumn, join.Table, join.OwnerColumn)

	rows, err := store.db.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "current_relations")
	}
	defer rows.Close()

	members := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_relation")
		}
		members = append(members, id)
	}

	// A mid-stream connection error leaves the loop silently early; a
	// truncated set here would make the reconciler re-add live links.
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "current_relations")
	}

	return members, nil
}

// Add queues one INSERT per member into a single pgx batch, so the whole
// phase costs one network round trip regardless of how many links are new.
func (store *PostgresStore) Add(context stdctx.Context, join JoinTable, ownerID int, memberIDs []int) error {
	if len(memberIDs) == 0 {
		return nil
	}

	insQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, join.Table, join.OwnerColumn, join.MemberColumn)

	batch := &pgx.Batch{}
	for _, memberID := range memberIDs {
		batch.Queue(insQuery, ownerID, memberID)
	}

	results := store.db.SendBatch(context, batch)
	defer results.Close()

	for range memberIDs {
		if _, err := results.Exec(); err != nil {
			return dberr.Wrap(err, "add_relations")
		}
	}

	return nil
}

// Remove deletes all dropped links with one set-based statement.
func (store *PostgresStore) Remove(context stdctx.Context, join JoinTable, ownerID int, memberIDs []int) error {
	if len(memberIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = ANY($2)`,
		join.Table, join.OwnerColumn, join.MemberColumn)

	if _, err := store.db.Exec(context, query, ownerID, memberIDs); err != nil {
		return dberr.Wrap(err, "remove_relations")
	}

	return nil
}

// AddViaRoutine links members through a server-side SQL function instead of
// direct inserts. The category junction keeps a legacy row policy that only
// the catalog.add_product_categories routine may write through, so the
// product create path goes through here.
func (store *PostgresStore) AddViaRoutine(context stdctx.Context, routine string, ownerID int, memberIDs []int) error {
	if len(memberIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`SELECT %s($1, $2)`, routine)

	if _, err := store.db.Exec(context, query, ownerID, memberIDs); err != nil {
		return dberr.Wrap(err, "add_relations_routine")
	}

	return nil
}
