// Copyright (c) 2026 Glowlab. All rights reserved.

package ingredient

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

func (repository *PostgresRepository) ListIngredients(context context.Context, f Filter, limit, offset int) ([]*Ingredient, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE TRUE
	`,
		schema.CatalogIngredient.ID, schema.CatalogIngredient.Name, schema.CatalogIngredient.INCIName,
		schema.CatalogIngredient.Description, schema.CatalogIngredient.Functions,
		schema.CatalogIngredient.Recommendation,
		schema.CatalogIngredient.IsNew, schema.CatalogIngredient.CreatedAt, schema.CatalogIngredient.UpdatedAt,
		schema.CatalogIngredient.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.CatalogIngredient.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		query += ` AND (name ILIKE $1 OR inciname ILIKE $1)`
		countQuery += ` AND (name ILIKE $1 OR inciname ILIKE $1)`
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.CatalogIngredient.Name) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_ingredients")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_ingredients")
	}
	defer rows.Close()

	var ingredients []*Ingredient
	for rows.Next() {
		i := &Ingredient{}
		var recommendation *string
		if err := rows.Scan(&i.ID, &i.Name, &i.INCIName, &i.Description, &i.Functions, &recommendation, &i.IsNew, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_ingredient")
		}
		i.Recommendation = RecommendationFromStorage(recommendation)
		ingredients = append(ingredients, i)
	}

	return ingredients, total, nil
}

func (repository *PostgresRepository) GetIngredient(context context.Context, id int) (*Ingredient, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogIngredient.ID, schema.CatalogIngredient.Name, schema.CatalogIngredient.INCIName,
		schema.CatalogIngredient.Description, schema.CatalogIngredient.Functions,
		schema.CatalogIngredient.Recommendation,
		schema.CatalogIngredient.IsNew, schema.CatalogIngredient.CreatedAt, schema.CatalogIngredient.UpdatedAt,
		schema.CatalogIngredient.Table, schema.CatalogIngredient.ID,
	)
	i := &Ingredient{}
	var recommendation *string

	err := repository.db.QueryRow(context, query, id).Scan(
		&i.ID, &i.Name, &i.INCIName, &i.Description, &i.Functions, &recommendation, &i.IsNew, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_ingredient")
	}

	i.Recommendation = RecommendationFromStorage(recommendation)
	return i, nil
}

func (repository *PostgresRepository) CreateIngredient(context context.Context, i *Ingredient) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CatalogIngredient.Table, schema.CatalogIngredient.Name, schema.CatalogIngredient.INCIName,
		schema.CatalogIngredient.Description, schema.CatalogIngredient.Functions,
		schema.CatalogIngredient.Recommendation, schema.CatalogIngredient.IsNew,
		schema.CatalogIngredient.CreatedAt, schema.CatalogIngredient.UpdatedAt,
		schema.CatalogIngredient.ID, schema.CatalogIngredient.CreatedAt, schema.CatalogIngredient.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		i.Name, i.INCIName, i.Description, i.Functions, i.Recommendation.StorageValue(), i.IsNew,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	return dberr.Wrap(err, "create_ingredient")
}

func (repository *PostgresRepository) UpdateIngredient(context context.Context, i *Ingredient) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogIngredient.Table, schema.CatalogIngredient.Name, schema.CatalogIngredient.INCIName,
		schema.CatalogIngredient.Description, schema.CatalogIngredient.Functions,
		schema.CatalogIngredient.Recommendation, schema.CatalogIngredient.UpdatedAt,
		schema.CatalogIngredient.ID, schema.CatalogIngredient.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		i.ID, i.Name, i.INCIName, i.Description, i.Functions, i.Recommendation.StorageValue(),
	).Scan(&i.UpdatedAt)
	return dberr.Wrap(err, "update_ingredient")
}

func (repository *PostgresRepository) DeleteIngredient(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogIngredient.Table, schema.CatalogIngredient.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_ingredient")
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
	`, schema.CatalogIngredient.Table, schema.CatalogIngredient.Name, schema.CatalogIngredient.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, name, excludeID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "ingredient_exists_by_name")
	}
	return exists, nil
}

func (repository *PostgresRepository) MarkReviewed(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE, %s = NOW() WHERE %s = $1`,
		schema.CatalogIngredient.Table, schema.CatalogIngredient.IsNew,
		schema.CatalogIngredient.UpdatedAt, schema.CatalogIngredient.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "mark_ingredient_reviewed")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
