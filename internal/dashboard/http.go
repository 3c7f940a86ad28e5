// Copyright (c) 2026 Glowlab. All rights reserved.

package dashboard

import (
	"net/http"

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
	router.Get("/", handler.overview)
}

func (handler *Handler) overview(writer http.ResponseWriter, request *http.Request) {
	overview, err := handler.service.Overview(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, overview)
}
