// Copyright (c) 2026 Glowlab. All rights reserved.

package ingredient

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listIngredients)
	router.Get("/{id}", handler.getIngredient)
	router.Post("/", handler.createIngredient)
	router.Patch("/{id}", handler.updateIngredient)
	router.Delete("/{id}", handler.deleteIngredient)
	router.Post("/{id}/review", handler.markReviewed)
}

func (handler *Handler) listIngredients(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	ingredients, total, err := handler.service.ListIngredients(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, ingredients, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getIngredient(writer http.ResponseWriter, request *http.Request) {
	ingredientID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ingredient, err := handler.service.GetIngredient(request.Context(), ingredientID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ingredient)
}

func (handler *Handler) createIngredient(writer http.ResponseWriter, request *http.Request) {
	var input Ingredient
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateIngredient(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateIngredient(writer http.ResponseWriter, request *http.Request) {
	ingredientID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Ingredient
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateIngredient(request.Context(), ingredientID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteIngredient(writer http.ResponseWriter, request *http.Request) {
	ingredientID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteIngredient(request.Context(), ingredientID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) markReviewed(writer http.ResponseWriter, request *http.Request) {
	ingredientID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.MarkReviewed(request.Context(), ingredientID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func pathID(request *http.Request) (int, error) {
	return strconv.Atoi(requestutil.ID(request, "id"))
}
