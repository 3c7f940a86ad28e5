// Copyright (c) 2026 Glowlab. All rights reserved.

package bug

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

// RegisterReportRoute mounts the filing endpoint for any authenticated user.
func (handler *Handler) RegisterReportRoute(router chi.Router) {
	router.Post("/", handler.createReport)
}

// RegisterAdminRoutes mounts the triage endpoints behind the admin guard.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listReports)
	router.Get("/{id}", handler.getReport)
	router.Patch("/{id}/status", handler.updateStatus)
	router.Delete("/{id}", handler.deleteReport)
}

func (handler *Handler) createReport(writer http.ResponseWriter, request *http.Request) {
	reporterID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.CreateReport(request.Context(), reporterID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, report)
}

func (handler *Handler) listReports(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Status: request.URL.Query().Get("status"),
	}

	reports, total, err := handler.service.ListReports(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reports, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getReport(writer http.ResponseWriter, request *http.Request) {
	reportID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.GetReport(request.Context(), reportID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	reportID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateStatus(request.Context(), reportID, input.Status); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteReport(writer http.ResponseWriter, request *http.Request) {
	reportID, err := pathID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteReport(request.Context(), reportID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func pathID(request *http.Request) (int, error) {
	return strconv.Atoi(requestutil.ID(request, "id"))
}
