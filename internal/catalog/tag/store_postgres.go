// Copyright (c) 2026 Glowlab. All rights reserved.

package tag

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

func (repository *PostgresRepository) ListTags(context context.Context, f Filter) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s`,
		schema.CatalogTag.ID, schema.CatalogTag.Name, schema.CatalogTag.Slug,
		schema.CatalogTag.CreatedAt, schema.CatalogTag.Table,
	)

	args := []any{}
	if f.Query != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+f.Query+"%")
	}
	query += fmt.Sprintf(` ORDER BY %s ASC`, schema.CatalogTag.Name)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, nil
}

func (repository *PostgresRepository) GetTag(context context.Context, id int) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogTag.ID, schema.CatalogTag.Name, schema.CatalogTag.Slug,
		schema.CatalogTag.CreatedAt, schema.CatalogTag.Table, schema.CatalogTag.ID,
	)
	t := &Tag{}

	err := repository.db.QueryRow(context, query, id).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt)
	return t, dberr.Wrap(err, "get_tag")
}

func (repository *PostgresRepository) CreateTag(context context.Context, t *Tag) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, NOW())
		RETURNING %s, %s
	`,
		schema.CatalogTag.Table, schema.CatalogTag.Name, schema.CatalogTag.Slug,
		schema.CatalogTag.CreatedAt,
		schema.CatalogTag.ID, schema.CatalogTag.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, t.Name, t.Slug).Scan(&t.ID, &t.CreatedAt)
	return dberr.Wrap(err, "create_tag")
}

func (repository *PostgresRepository) UpdateTag(context context.Context, t *Tag) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		schema.CatalogTag.Table, schema.CatalogTag.Name, schema.CatalogTag.Slug,
		schema.CatalogTag.ID,
	)

	cmd, err := repository.db.Exec(context, query, t.ID, t.Name, t.Slug)
	if err != nil {
		return dberr.Wrap(err, "update_tag")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteTag(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogTag.Table, schema.CatalogTag.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tag")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ExistsByName(context context.Context, name string, excludeID int) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s WHERE lower(%s) = lower($1) AND %s <> $2
		)
	`, schema.CatalogTag.Table, schema.CatalogTag.Name, schema.CatalogTag.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, name, excludeID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "tag_exists_by_name")
	}
	return exists, nil
}
