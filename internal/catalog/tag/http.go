// Copyright (c) 2026 Glowlab. All rights reserved.

package tag

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
	router.Get("/", handler.listTags)
	router.Get("/{id}", handler.getTag)
	router.Post("/", handler.createTag)
	router.Patch("/{id}", handler.updateTag)
	router.Delete("/{id}", handler.deleteTag)
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{Query: request.URL.Query().Get("q")}

	tags, err := handler.service.ListTags(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	tagID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.GetTag(request.Context(), tagID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var input Tag
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateTag(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateTag(writer http.ResponseWriter, request *http.Request) {
	tagID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Tag
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateTag(request.Context(), tagID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteTag(writer http.ResponseWriter, request *http.Request) {
	tagID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTag(request.Context(), tagID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
