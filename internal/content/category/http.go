// Copyright (c) 2026 Minar. All rights reserved.

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minarbd/minar/internal/platform/middleware"
	requestutil "github.com/minarbd/minar/internal/platform/request"
	"github.com/minarbd/minar/internal/platform/respond"
	"github.com/minarbd/minar/internal/platform/sec"
)

// Handler implements the HTTP layer for the taxonomy.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches category endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/categories", handler.ListCategories)

	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/categories", handler.CreateCategory)
		admin.Patch("/categories/{id}", handler.UpdateCategory)
		admin.Delete("/categories/{id}", handler.DeleteCategory)
	})
}

/*
GET /api/v1/categories.

Description: Returns the complete taxonomy ordered by name.
*/
func (handler *Handler) ListCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

// categoryRequest defines the inbound JSON schema for create and update.
type categoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

/*
POST /api/v1/categories.
*/
func (handler *Handler) CreateCategory(writer http.ResponseWriter, request *http.Request) {
	var input categoryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created := &Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := handler.service.CreateCategory(request.Context(), created); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/categories/{id}.
*/
func (handler *Handler) UpdateCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input categoryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated := &Category{
		ID:          id,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := handler.service.UpdateCategory(request.Context(), updated); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/categories/{id}.
*/
func (handler *Handler) DeleteCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteCategory(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
