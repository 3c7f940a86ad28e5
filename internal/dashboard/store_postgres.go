// Copyright (c) 2026 Glowlab. All rights reserved.

package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

// Counts runs all five totals in one statement. count(*) on these tables is
// fast enough for an admin page; no caching.
func (repository *PostgresRepository) Counts(context context.Context) (Counts, error) {
	query := fmt.Sprintf(`
		SELECT
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s)
	`,
		schema.CatalogProduct.Table,
		schema.CatalogBrand.Table,
		schema.CatalogIngredient.Table,
		schema.CatalogCategory.Table,
		schema.CatalogTag.Table,
	)

	var counts Counts
	err := repository.db.QueryRow(context, query).Scan(
		&counts.Products, &counts.Brands, &counts.Ingredients, &counts.Categories, &counts.Tags,
	)
	if err != nil {
		return Counts{}, dberr.Wrap(err, "dashboard_counts")
	}
	return counts, nil
}

// ReviewQueue fetches the needs-review sections in one round trip: the
// product backlog count plus the brand and ingredient queues ordered by name.
func (repository *PostgresRepository) ReviewQueue(context context.Context) (ReviewQueue, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = TRUE`,
		schema.CatalogProduct.Table, schema.CatalogProduct.IsNew,
	)
	brandQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = TRUE ORDER BY %s ASC`,
		schema.CatalogBrand.ID, schema.CatalogBrand.Name,
		schema.CatalogBrand.Table, schema.CatalogBrand.IsNew, schema.CatalogBrand.Name,
	)
	ingredientQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = TRUE ORDER BY %s ASC`,
		schema.CatalogIngredient.ID, schema.CatalogIngredient.Name,
		schema.CatalogIngredient.Table, schema.CatalogIngredient.IsNew, schema.CatalogIngredient.Name,
	)

	batch := &pgx.Batch{}
	batch.Queue(countQuery)
	batch.Queue(brandQuery)
	batch.Queue(ingredientQuery)

	results := repository.db.SendBatch(context, batch)
	defer results.Close()

	var queue ReviewQueue
	if err := results.QueryRow().Scan(&queue.Products); err != nil {
		return ReviewQueue{}, dberr.Wrap(err, "dashboard_review_count")
	}

	var err error
	if queue.Brands, err = collectReviewItems(results); err != nil {
		return ReviewQueue{}, dberr.Wrap(err, "dashboard_review_brands")
	}
	if queue.Ingredients, err = collectReviewItems(results); err != nil {
		return ReviewQueue{}, dberr.Wrap(err, "dashboard_review_ingredients")
	}

	return queue, nil
}

func collectReviewItems(results pgx.BatchResults) ([]ReviewItem, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []ReviewItem{}
	for rows.Next() {
		var item ReviewItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (repository *PostgresRepository) RecentProducts(context context.Context, limit int) ([]RecentProduct, error) {
	p := schema.CatalogProduct
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, b.%s, p.%s, p.%s
		FROM %s p
		LEFT JOIN %s b ON b.%s = p.%s
		ORDER BY p.%s DESC
		LIMIT $1
	`,
		p.ID, p.Name, schema.CatalogBrand.Name, p.ThumbnailURL, p.CreatedAt,
		p.Table,
		schema.CatalogBrand.Table, schema.CatalogBrand.ID, p.BrandID,
		p.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "dashboard_recent_products")
	}
	defer rows.Close()

	var recent []RecentProduct
	for rows.Next() {
		var rp RecentProduct
		if err := rows.Scan(&rp.ID, &rp.Name, &rp.BrandName, &rp.ThumbnailURL, &rp.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_recent_product")
		}
		recent = append(recent, rp)
	}

	return recent, nil
}
