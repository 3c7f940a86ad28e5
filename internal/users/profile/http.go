// Copyright (c) 2026 Glowlab. All rights reserved.

package profile

import (
	"net/http"

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

// RegisterRoutes mounts the self-service profile endpoints. The group is
// behind RequireAuth; every route acts on the caller's own profile.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/me", handler.getProfile)
	router.Patch("/me", handler.updateProfile)
	router.Post("/me/avatar", handler.uploadAvatar)
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.UpdateProfile(request.Context(), userID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) uploadAvatar(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, header, err := requestutil.File(request, "avatar")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	profile, err := handler.service.UploadAvatar(request.Context(), userID,
		file, header.Size, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}
