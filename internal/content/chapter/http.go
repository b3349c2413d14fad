// Copyright (c) 2026 Minar. All rights reserved.

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minarbd/minar/internal/platform/middleware"
	requestutil "github.com/minarbd/minar/internal/platform/request"
	"github.com/minarbd/minar/internal/platform/respond"
	"github.com/minarbd/minar/internal/platform/sec"
)

const (
	FieldItems = "items"
	FieldTotal = "total"
)

// # Handler Implementation

// Handler implements the HTTP layer for chapter management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches chapter endpoints to the root API router.
// Chapter endpoints span both /books/id/{bookID}/... and /chapters/... prefixes.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Discovery endpoints
	api.Get("/books/id/{bookID}/chapters", handler.ListChapters)

	// Admin protected endpoints
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/books/id/{bookID}/chapters", handler.CreateChapter)
		admin.Get("/chapters/{id}", handler.GetChapter)
		admin.Patch("/chapters/{id}", handler.UpdateChapter)
		admin.Delete("/chapters/{id}", handler.DeleteChapter)
	})
}

// # Chapter Retrieval

/*
GET /api/v1/books/id/{bookID}/chapters.

Description: Returns the complete ordered table of contents. Never
paginated — the reader needs the full sequence for boundary math.
*/
func (handler *Handler) ListChapters(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "bookID")

	summaries, err := handler.service.ListChapters(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldItems: summaries,
		FieldTotal: len(summaries),
	})
}

/*
GET /api/v1/chapters/{id}.

Description: Admin edit form load — returns the chapter including its raw
content blob with pagebreak markers intact.
*/
func (handler *Handler) GetChapter(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	found, err := handler.service.GetChapterByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// # Chapter Mutations

// chapterRequest defines the inbound JSON schema for create and update.
type chapterRequest struct {
	Number  int    `json:"chapter_number"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

/*
POST /api/v1/books/id/{bookID}/chapters.

Response:
  - 201: Chapter: Created chapter object
  - 400: VALIDATION_ERROR: Invalid payload
  - 409: CONFLICT: Duplicate chapter number within the book
*/
func (handler *Handler) CreateChapter(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "bookID")

	var input chapterRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created := &Chapter{
		BookID:  bookID,
		Number:  input.Number,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := handler.service.CreateChapter(request.Context(), created); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/chapters/{id}.
*/
func (handler *Handler) UpdateChapter(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input chapterRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated := &Chapter{
		ID:      id,
		Number:  input.Number,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := handler.service.UpdateChapter(request.Context(), updated); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/chapters/{id}.
*/
func (handler *Handler) DeleteChapter(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteChapter(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
