// Copyright (c) 2026 Glowlab. All rights reserved.

package category

import (
	"net/http"
	"strconv"

	requestutil "github.com/glowlab/glowlab/internal/platform/request"
	"github.com/glowlab/glowlab/internal/platform/respond"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Get("/{id}", handler.getCategory)
	router.Get("/{id}/path", handler.getPath)
	router.Post("/", handler.createCategory)
	router.Patch("/{id}", handler.updateCategory)
	router.Delete("/{id}", handler.deleteCategory)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	tree, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tree)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.GetCategory(request.Context(), categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) getPath(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	breadcrumb, err := handler.service.GetPath(request.Context(), categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, breadcrumb)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCategory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCategory(request.Context(), categoryID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCategory(request.Context(), categoryID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func pathID(request *http.Request) (int, error) {
	return strconv.Atoi(requestutil.ID(request, "id"))
}
