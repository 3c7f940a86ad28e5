// Copyright (c) 2026 Glowlab. All rights reserved.

package brand

import (
	"net/http"
	"strconv"

	requestutil "github.com/glowlab/glowlab/internal/platform/request"
	"github.com/glowlab/glowlab/internal/platform/respond"
	"github.com/glowlab/glowlab/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the brand endpoints. The router group is already
// behind the admin guard; no per-route role checks are needed here.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listBrands)
	router.Get("/{id}", handler.getBrand)
	router.Post("/", handler.createBrand)
	router.Patch("/{id}", handler.updateBrand)
	router.Delete("/{id}", handler.deleteBrand)
	router.Post("/{id}/review", handler.markReviewed)
	router.Post("/{id}/logo", handler.uploadLogo)
}

func (handler *Handler) listBrands(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	brands, total, err := handler.service.ListBrands(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, brands, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getBrand(writer http.ResponseWriter, request *http.Request) {
	brandID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	brand, err := handler.service.GetBrand(request.Context(), brandID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, brand)
}

func (handler *Handler) createBrand(writer http.ResponseWriter, request *http.Request) {
	var input Brand
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateBrand(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateBrand(writer http.ResponseWriter, request *http.Request) {
	brandID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Brand
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateBrand(request.Context(), brandID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteBrand(writer http.ResponseWriter, request *http.Request) {
	brandID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBrand(request.Context(), brandID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) markReviewed(writer http.ResponseWriter, request *http.Request) {
	brandID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.MarkReviewed(request.Context(), brandID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) uploadLogo(writer http.ResponseWriter, request *http.Request) {
	brandID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, header, err := requestutil.File(request, "logo")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	brand, err := handler.service.UploadLogo(request.Context(), brandID,
		file, header.Size, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, brand)
}

func pathID(request *http.Request) (int, error) {
	return strconv.Atoi(requestutil.ID(request, "id"))
}
