// Copyright (c) 2026 Glowlab. All rights reserved.

package product

import (
	stdctx "context"
	"net/http"
	"strconv"

	"github.com/glowlab/glowlab/internal/catalog/relation"
	requestutil "github.com/glowlab/glowlab/internal/platform/request"
	"github.com/glowlab/glowlab/internal/platform/respond"
	"github.com/glowlab/glowlab/pkg/convert"
	"github.com/glowlab/glowlab/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

// syncFunc is a service association replacement method.
type syncFunc func(context stdctx.Context, id int, desired []int) (relation.Delta, error)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the product endpoints. The router group is already
// behind the admin guard.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listProducts)
	router.Get("/{id}", handler.getProduct)
	router.Post("/", handler.createProduct)
	router.Patch("/{id}", handler.updateProduct)
	router.Delete("/{id}", handler.deleteProduct)
	router.Post("/{id}/review", handler.setReviewed)
	router.Post("/{id}/thumbnail", handler.uploadThumbnail)
	router.Put("/{id}/ingredients", handler.syncIngredients)
	router.Put("/{id}/categories", handler.syncCategories)
	router.Put("/{id}/tags", handler.syncTags)
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query:   queryParams.Get("q"),
		OnlyNew: convert.ToBool(queryParams.Get("only_new")),
		BrandID: convert.ToInt(queryParams.Get("brand_id")),
	}

	products, total, err := handler.service.ListProducts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	productID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.GetProduct(request.Context(), productID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.CreateProduct(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, product)
}

func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	productID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.UpdateProduct(request.Context(), productID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	productID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteProduct(request.Context(), productID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setReviewed(writer http.ResponseWriter, request *http.Request) {
	productID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := struct {
		Reviewed bool `json:"reviewed"`
	}{Reviewed: true}
	if request.ContentLength > 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	if err := handler.service.SetReviewed(request.Context(), productID, input.Reviewed); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) uploadThumbnail(writer http.ResponseWriter, request *http.Request) {
	productID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, header, err := requestutil.File(request, "thumbnail")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	product, err := handler.service.UploadThumbnail(request.Context(), productID,
		file, header.Size, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

// syncBody is the payload for the association replacement endpoints.
type syncBody struct {
	IDs []int `json:"ids"`
}

// # Association Endpoints

func (handler *Handler) syncIngredients(writer http.ResponseWriter, request *http.Request) {
	handler.sync(writer, request, handler.service.SyncIngredients)
}

func (handler *Handler) syncCategories(writer http.ResponseWriter, request *http.Request) {
	handler.sync(writer, request, handler.service.SyncCategories)
}

func (handler *Handler) syncTags(writer http.ResponseWriter, request *http.Request) {
	handler.sync(writer, request, handler.service.SyncTags)
}

func (handler *Handler) sync(writer http.ResponseWriter, request *http.Request, fn syncFunc) {
	productID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body syncBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	delta, err := fn(request.Context(), productID, body.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, delta)
}

func pathID(request *http.Request) (int, error) {
	return strconv.Atoi(requestutil.ID(request, "id"))
}
