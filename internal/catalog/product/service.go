// Copyright (c) 2026 Glowlab. All rights reserved.

package product

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/glowlab/glowlab/internal/catalog/relation"
	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/storage"
	"github.com/glowlab/glowlab/internal/platform/validate"
	"github.com/glowlab/glowlab/pkg/pointer"
)

const (
	// thumbFolder is the key prefix for product thumbnails in the CMS bucket.
	thumbFolder = "thumbs"

	// categoryRoutine seeds the category junction on the create path.
	// The junction table carries a legacy row policy that only this routine
	// may insert through; updates bypass it via the reconciler, which runs
	// as the service role.
	categoryRoutine = "catalog.add_product_categories"
)

type Service struct {
	repo       Repository
	reconciler *relation.Reconciler
	routines   RoutineStore
	uploader   *storage.Uploader
	cmsBucket  string

	// reviewEnabled gates the whole is_new workflow.
	reviewEnabled bool

	logger *slog.Logger
}

func NewService(
	repo Repository,
	reconciler *relation.Reconciler,
	routines RoutineStore,
	uploader *storage.Uploader,
	cmsBucket string,
	reviewEnabled bool,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		reconciler:    reconciler,
		routines:      routines,
		uploader:      uploader,
		cmsBucket:     cmsBucket,
		reviewEnabled: reviewEnabled,
		logger:        logger,
	}
}

// # Listing & Search

// ListProducts returns a paginated product page. A query of at least two
// characters switches from the plain filtered listing to full-text search;
// shorter queries are ignored rather than rejected, matching how the
// back-office search box fires on every keystroke.
func (service *Service) ListProducts(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	query := strings.TrimSpace(filter.Query)
	if len([]rune(query)) >= searchMinLength {
		return service.repo.SearchProducts(context, query, limit, offset)
	}

	filter.Query = ""
	return service.repo.ListProducts(context, filter, limit, offset)
}

func (service *Service) GetProduct(context context.Context, id int) (*Product, error) {
	product, err := service.repo.GetProduct(context, id)
	if err != nil {
		return nil, err
	}

	ingredients, categories, tags, err := service.repo.AssociationIDs(context, id)
	if err != nil {
		return nil, err
	}

	product.IngredientIDs = ingredients
	product.CategoryIDs = categories
	product.TagIDs = tags
	return product, nil
}

// # Mutations

// CreateProduct inserts the product row and seeds its associations.
//
// Ingredient and tag links go through the reconciler store; category links
// go through the SQL routine (see categoryRoutine). The row insert is the
// only mandatory step: association failures are reported but leave the
// created product in place, and a follow-up save converges the links.
func (service *Service) CreateProduct(context context.Context, input *CreateInput) (*Product, error) {
	input.Name = strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 250)
	validator.Positive(FieldBrandID, int64(input.BrandID))
	if input.Barcode != nil && *input.Barcode != "" {
		validator.MaxLen(FieldBarcode, *input.Barcode, 14)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if len(input.CategoryIDs) == 0 && !input.AllowNoCategories {
		return nil, apperr.Unprocessable("Product has no categories; set allow_no_categories to create it anyway")
	}

	product := &Product{
		Name:             input.Name,
		BrandID:          input.BrandID,
		Description:      input.Description,
		Barcode:          input.Barcode,
		TechnologistNote: input.TechnologistNote,
	}
	if err := service.repo.CreateProduct(context, product); err != nil {
		return nil, err
	}

	if _, err := service.reconciler.Sync(context, relation.ProductIngredients, product.ID, input.IngredientIDs); err != nil {
		return product, err
	}
	if err := service.routines.AddViaRoutine(context, categoryRoutine, product.ID, input.CategoryIDs); err != nil {
		return product, err
	}
	if _, err := service.reconciler.Sync(context, relation.ProductTags, product.ID, input.TagIDs); err != nil {
		return product, err
	}

	product.IngredientIDs = input.IngredientIDs
	product.CategoryIDs = input.CategoryIDs
	product.TagIDs = input.TagIDs

	service.logger.Info("product_created",
		slog.Int("product_id", product.ID),
		slog.String("name", product.Name),
	)
	return product, nil
}

// UpdateProduct applies a partial update to the product row.
func (service *Service) UpdateProduct(context context.Context, id int, input *UpdateInput) (*Product, error) {
	product, err := service.repo.GetProduct(context, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.BrandID != nil {
		product.BrandID = *input.BrandID
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.TechnologistNote != nil {
		product.TechnologistNote = input.TechnologistNote
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, product.Name).MaxLen(FieldName, product.Name, 250)
	validator.Positive(FieldBrandID, int64(product.BrandID))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateProduct(context, product); err != nil {
		return nil, err
	}

	service.logger.Info("product_updated", slog.Int("product_id", id))
	return product, nil
}

func (service *Service) DeleteProduct(context context.Context, id int) error {
	if err := service.repo.DeleteProduct(context, id); err != nil {
		return err
	}

	service.logger.Warn("product_deleted", slog.Int("product_id", id))
	return nil
}

// # Review Workflow

// SetReviewed toggles the review flag. When the workflow is disabled by
// configuration the endpoint refuses rather than silently writing a column
// nobody reads.
func (service *Service) SetReviewed(context context.Context, id int, reviewed bool) error {
	if !service.reviewEnabled {
		return apperr.Unprocessable("The product review workflow is disabled")
	}

	if err := service.repo.SetReviewed(context, id, reviewed); err != nil {
		return err
	}

	service.logger.Info("product_review_set",
		slog.Int("product_id", id),
		slog.Bool("reviewed", reviewed),
	)
	return nil
}

// # Association Sync

func (service *Service) SyncIngredients(context context.Context, id int, desired []int) (relation.Delta, error) {
	return service.syncAssociation(context, relation.ProductIngredients, id, desired)
}

func (service *Service) SyncCategories(context context.Context, id int, desired []int) (relation.Delta, error) {
	return service.syncAssociation(context, relation.ProductCategories, id, desired)
}

func (service *Service) SyncTags(context context.Context, id int, desired []int) (relation.Delta, error) {
	return service.syncAssociation(context, relation.ProductTags, id, desired)
}

func (service *Service) syncAssociation(context context.Context, join relation.JoinTable, id int, desired []int) (relation.Delta, error) {
	// Owner must exist; a sync against a deleted product is a 404, not a
	// silent insert of dangling junction rows.
	if _, err := service.repo.GetProduct(context, id); err != nil {
		return relation.Delta{}, err
	}

	return service.reconciler.Sync(context, join, id, desired)
}

// # Imagery

// UploadThumbnail stores a new thumbnail and persists its public URL.
//
// Thumbnail keys embed the product ID and upload time and are never
// overwritten; the previous object is removed after the new one lands.
func (service *Service) UploadThumbnail(context context.Context, id int, file io.Reader, size int64, filename, contentType string) (*Product, error) {
	product, err := service.repo.GetProduct(context, id)
	if err != nil {
		return nil, err
	}

	key := storage.OwnedKey(thumbFolder, strconv.Itoa(id), filename)
	thumbnailURL, err := service.uploader.Replace(context, service.cmsBucket, key, file, size, contentType, false, pointer.Val(product.ThumbnailURL))
	if err != nil && thumbnailURL == "" {
		return nil, err
	}
	if err != nil {
		service.logger.Warn("product_thumbnail_cleanup_failed",
			slog.Int("product_id", id),
			slog.Any("error", err),
		)
	}

	if err := service.repo.UpdateThumbnail(context, id, thumbnailURL); err != nil {
		return nil, err
	}

	product.ThumbnailURL = &thumbnailURL
	service.logger.Info("product_thumbnail_uploaded", slog.Int("product_id", id))
	return product, nil
}
