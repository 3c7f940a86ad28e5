// Copyright (c) 2026 Glowlab. All rights reserved.

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glowlab/glowlab/internal/platform/database/schema"
	"github.com/glowlab/glowlab/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name,
		schema.CatalogCategory.ParentID, schema.CatalogCategory.Path,
		schema.CatalogCategory.CreatedAt,
		schema.CatalogCategory.Table, schema.CatalogCategory.Path,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.Path, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (repository *PostgresRepository) GetCategory(context context.Context, id int) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name,
		schema.CatalogCategory.ParentID, schema.CatalogCategory.Path,
		schema.CatalogCategory.CreatedAt,
		schema.CatalogCategory.Table, schema.CatalogCategory.ID,
	)
	c := &Category{}

	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name, &c.ParentID, &c.Path, &c.CreatedAt)
	return c, dberr.Wrap(err, "get_category")
}

func (repository *PostgresRepository) CreateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		schema.CatalogCategory.Table, schema.CatalogCategory.Name, schema.CatalogCategory.ParentID,
		schema.CatalogCategory.Path, schema.CatalogCategory.CreatedAt,
		schema.CatalogCategory.ID, schema.CatalogCategory.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.Name, c.ParentID, c.Path).Scan(&c.ID, &c.CreatedAt)
	return dberr.Wrap(err, "create_category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1
	`,
		schema.CatalogCategory.Table, schema.CatalogCategory.Name,
		schema.CatalogCategory.ParentID, schema.CatalogCategory.Path,
		schema.CatalogCategory.ID,
	)

	cmd, err := repository.db.Exec(context, query, c.ID, c.Name, c.ParentID, c.Path)
	if err != nil {
		return dberr.Wrap(err, "update_category")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// RebaseDescendants rewrites the path prefix of every category beneath
// oldPath after a rename or move.
func (repository *PostgresRepository) RebaseDescendants(context context.Context, oldPath, newPath string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2 || substr(%s, length($1::text) + 1)
		WHERE %s LIKE $1 || '/%%'
	`,
		schema.CatalogCategory.Table, schema.CatalogCategory.Path,
		schema.CatalogCategory.Path, schema.CatalogCategory.Path,
	)

	_, err := repository.db.Exec(context, query, oldPath, newPath)
	return dberr.Wrap(err, "rebase_category_paths")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogCategory.Table, schema.CatalogCategory.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
