// Copyright (c) 2026 Glowlab. All rights reserved.

package brand

import (
	"context"
	"fmt"
	"strconv"

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

func (repository *PostgresRepository) ListBrands(context context.Context, f Filter, limit, offset int) ([]*Brand, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE TRUE
	`,
		schema.CatalogBrand.ID, schema.CatalogBrand.Name, schema.CatalogBrand.Website,
		schema.CatalogBrand.LogoURL, schema.CatalogBrand.IsNew,
		schema.CatalogBrand.CreatedAt, schema.CatalogBrand.UpdatedAt,
		schema.CatalogBrand.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.CatalogBrand.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		query += ` AND name ILIKE $1`
		countQuery += ` AND name ILIKE $1`
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.CatalogBrand.Name) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_brands")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_brands")
	}
	defer rows.Close()

	var brands []*Brand
	for rows.Next() {
		b := &Brand{}
		if err := rows.Scan(&b.ID, &b.Name, &b.Website, &b.LogoURL, &b.IsNew, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_brand")
		}
		brands = append(brands, b)
	}

	return brands, total, nil
}

func (repository *PostgresRepository) GetBrand(context context.Context, id int) (*Brand, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogBrand.ID, schema.CatalogBrand.Name, schema.CatalogBrand.Website,
		schema.CatalogBrand.LogoURL, schema.CatalogBrand.IsNew,
		schema.CatalogBrand.CreatedAt, schema.CatalogBrand.UpdatedAt,
		schema.CatalogBrand.Table, schema.CatalogBrand.ID,
	)
	b := &Brand{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&b.ID, &b.Name, &b.Website, &b.LogoURL, &b.IsNew, &b.CreatedAt, &b.UpdatedAt,
	)

	return b, dberr.Wrap(err, "get_brand")
}

func (repository *PostgresRepository) CreateBrand(context context.Context, b *Brand) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CatalogBrand.Table, schema.CatalogBrand.Name, schema.CatalogBrand.Website,
		schema.CatalogBrand.LogoURL, schema.CatalogBrand.IsNew,
		schema.CatalogBrand.CreatedAt, schema.CatalogBrand.UpdatedAt,
		schema.CatalogBrand.ID, schema.CatalogBrand.CreatedAt, schema.CatalogBrand.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, b.Name, b.Website, b.LogoURL, b.IsNew).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return dberr.Wrap(err, "create_brand")
}

func (repository *PostgresRepository) UpdateBrand(context context.Context, b *Brand) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogBrand.Table, schema.CatalogBrand.Name, schema.CatalogBrand.Website,
		schema.CatalogBrand.LogoURL, schema.CatalogBrand.UpdatedAt,
		schema.CatalogBrand.ID, schema.CatalogBrand.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, b.ID, b.Name, b.Website, b.LogoURL).Scan(&b.UpdatedAt)
	return dberr.Wrap(err, "update_brand")
}

func (repository *PostgresRepository) DeleteBrand(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogBrand.Table, schema.CatalogBrand.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_brand")
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
	`, schema.CatalogBrand.Table, schema.CatalogBrand.Name, schema.CatalogBrand.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, name, excludeID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "brand_exists_by_name")
	}
	return exists, nil
}

func (repository *PostgresRepository) MarkReviewed(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE, %s = NOW() WHERE %s = $1`,
		schema.CatalogBrand.Table, schema.CatalogBrand.IsNew, schema.CatalogBrand.UpdatedAt, schema.CatalogBrand.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "mark_brand_reviewed")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
