// Copyright (c) 2026 Minar. All rights reserved.

package audio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minarbd/minar/internal/platform/middleware"
	requestutil "github.com/minarbd/minar/internal/platform/request"
	"github.com/minarbd/minar/internal/platform/respond"
	"github.com/minarbd/minar/internal/platform/sec"
	"github.com/minarbd/minar/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the lecture archive.
type Handler struct {
	service *Service
}

// NewHandler constructs a new audio [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches lecture endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Discovery endpoints
	api.Get("/audio", handler.ListLectures)
	api.Get("/audio/{id}", handler.GetLecture)

	// Admin protected endpoints
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/audio", handler.CreateLecture)
		admin.Patch("/audio/{id}", handler.UpdateLecture)
		admin.Delete("/audio/{id}", handler.DeleteLecture)
	})
}

/*
GET /api/v1/audio.

Description: Returns the paginated lecture archive, newest first. An
optional category query param filters by category id.
*/
func (handler *Handler) ListLectures(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	categoryID := request.URL.Query().Get("category")

	lectures, total, err := handler.service.ListLectures(request.Context(), categoryID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, lectures, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/audio/{id}.
*/
func (handler *Handler) GetLecture(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	found, err := handler.service.GetLecture(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// # Admin Mutations

// lectureRequest defines the inbound JSON schema for create and update.
type lectureRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AudioURL    string `json:"audio_url"`
	Duration    int    `json:"duration"`
	CategoryID  string `json:"category_id"`
}

func (r *lectureRequest) toLecture() *Lecture {
	return &Lecture{
		Title:       r.Title,
		Description: r.Description,
		AudioURL:    r.AudioURL,
		Duration:    r.Duration,
		CategoryID:  r.CategoryID,
	}
}

/*
POST /api/v1/audio.
*/
func (handler *Handler) CreateLecture(writer http.ResponseWriter, request *http.Request) {
	var input lectureRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created := input.toLecture()
	if err := handler.service.CreateLecture(request.Context(), created); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/audio/{id}.
*/
func (handler *Handler) UpdateLecture(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input lectureRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated := input.toLecture()
	updated.ID = id

	if err := handler.service.UpdateLecture(request.Context(), updated); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/audio/{id}.
*/
func (handler *Handler) DeleteLecture(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteLecture(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
