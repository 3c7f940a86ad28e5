// Copyright (c) 2026 Glowlab. All rights reserved.

package product

import (
	"context"
	"fmt"
	"strconv"

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

// productColumns is the SELECT list shared by every read, qualified with the
// product alias and joined against brand for the display name.
func productColumns() string {
	p := schema.CatalogProduct
	return fmt.Sprintf(
		"p.%s, p.%s, p.%s, b.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s",
		p.ID, p.Name, p.BrandID, schema.CatalogBrand.Name,
		p.Description, p.ThumbnailURL, p.Barcode, p.TechnologistNote,
		p.IsNew, p.CreatedAt, p.UpdatedAt,
	)
}

func scanProduct(row pgx.Row) (*Product, error) {
	p := &Product{}
	err := row.Scan(
		&p.ID, &p.Name, &p.BrandID, &p.BrandName,
		&p.Description, &p.ThumbnailURL, &p.Barcode, &p.TechnologistNote,
		&p.IsNew, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (repository *PostgresRepository) ListProducts(context context.Context, f Filter, limit, offset int) ([]*Product, int, error) {
	p := schema.CatalogProduct
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		LEFT JOIN %s b ON b.%s = p.%s
		WHERE TRUE
	`,
		productColumns(),
		p.Table,
		schema.CatalogBrand.Table, schema.CatalogBrand.ID, p.BrandID,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s p WHERE TRUE`, p.Table)

	args := []any{}
	countArgs := []any{}

	if f.BrandID != 0 {
		clause := fmt.Sprintf(" AND p.%s = $", p.BrandID) + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.BrandID)
		countArgs = append(countArgs, f.BrandID)
	}

	if f.OnlyNew {
		clause := fmt.Sprintf(" AND p.%s = TRUE", p.IsNew)
		query += clause
		countQuery += clause
	}

	query += fmt.Sprintf(" ORDER BY p.%s DESC LIMIT $", p.CreatedAt) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_products")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, product)
	}

	return products, total, nil
}

// SearchProducts delegates matching and ranking to the catalog.search_products
// routine, which applies trigram matching across name, brand and barcode.
func (repository *PostgresRepository) SearchProducts(context context.Context, term string, limit, offset int) ([]*Product, int, error) {
	p := schema.CatalogProduct
	query := fmt.Sprintf(`
		SELECT %s
		FROM catalog.search_products($1) s
		JOIN %s p ON p.%s = s.%s
		LEFT JOIN %s b ON b.%s = p.%s
		ORDER BY s.rank DESC, p.%s ASC
		LIMIT $2 OFFSET $3
	`,
		productColumns(),
		p.Table, p.ID, p.ID,
		schema.CatalogBrand.Table, schema.CatalogBrand.ID, p.BrandID,
		p.Name,
	)
	countQuery := `SELECT count(*) FROM catalog.search_products($1)`

	var total int
	if err := repository.db.QueryRow(context, countQuery, term).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_search_products")
	}

	rows, err := repository.db.Query(context, query, term, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_products")
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, product)
	}

	return products, total, nil
}

func (repository *PostgresRepository) GetProduct(context context.Context, id int) (*Product, error) {
	p := schema.CatalogProduct
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		LEFT JOIN %s b ON b.%s = p.%s
		WHERE p.%s = $1
	`,
		productColumns(),
		p.Table,
		schema.CatalogBrand.Table, schema.CatalogBrand.ID, p.BrandID,
		p.ID,
	)

	product, err := scanProduct(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_product")
	}
	return product, nil
}

func (repository *PostgresRepository) CreateProduct(context context.Context, p *Product) error {
	t := schema.CatalogProduct
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s, %s, %s
	`,
		t.Table, t.Name, t.BrandID, t.Description, t.Barcode, t.TechnologistNote,
		t.CreatedAt, t.UpdatedAt,
		t.ID, t.IsNew, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.Name, p.BrandID, p.Description, p.Barcode, p.TechnologistNote).
		Scan(&p.ID, &p.IsNew, &p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) UpdateProduct(context context.Context, p *Product) error {
	t := schema.CatalogProduct
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.BrandID, t.Description, t.Barcode, t.TechnologistNote,
		t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Name, p.BrandID, p.Description, p.Barcode, p.TechnologistNote).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_product")
}

func (repository *PostgresRepository) DeleteProduct(context context.Context, id int) error {
	t := schema.CatalogProduct
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UpdateThumbnail(context context.Context, id int, url string) error {
	t := schema.CatalogProduct
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.ThumbnailURL, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, url)
	if err != nil {
		return dberr.Wrap(err, "update_product_thumbnail")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetReviewed(context context.Context, id int, reviewed bool) error {
	t := schema.CatalogProduct
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.IsNew, t.UpdatedAt, t.ID,
	)

	// reviewed=true clears the isnew flag.
	cmd, err := repository.db.Exec(context, query, id, !reviewed)
	if err != nil {
		return dberr.Wrap(err, "set_product_reviewed")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// AssociationIDs loads the three junction sets in a single batch round trip.
func (repository *PostgresRepository) AssociationIDs(context context.Context, id int) ([]int, []int, []int, error) {
	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY 1`,
		schema.ProductIngredient.IngredientID, schema.ProductIngredient.Table, schema.ProductIngredient.ProductID), id)
	batch.Queue(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY 1`,
		schema.ProductCategory.CategoryID, schema.ProductCategory.Table, schema.ProductCategory.ProductID), id)
	batch.Queue(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY 1`,
		schema.ProductTag.TagID, schema.ProductTag.Table, schema.ProductTag.ProductID), id)

	results := repository.db.SendBatch(context, batch)
	defer results.Close()

	sets := make([][]int, 3)
	for i := range sets {
		ids, err := collectIDs(results)
		if err != nil {
			return nil, nil, nil, dberr.Wrap(err, "product_association_ids")
		}
		sets[i] = ids
	}

	return sets[0], sets[1], sets[2], nil
}

func collectIDs(results pgx.BatchResults) ([]int, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func itos(i int) string {
	return strconv.Itoa(i)
}
