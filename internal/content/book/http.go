// Copyright (c) 2026 Minar. All rights reserved.

/*
HTTP interface for the book catalogue.

# Routing Strategy

  - Public: catalogue browsing and book detail (GET).
  - Restricted: mutative endpoints requiring the Admin role (POST, PATCH, DELETE).

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minarbd/minar/internal/content/chapter"
	"github.com/minarbd/minar/internal/platform/middleware"
	requestutil "github.com/minarbd/minar/internal/platform/request"
	"github.com/minarbd/minar/internal/platform/respond"
	"github.com/minarbd/minar/internal/platform/sec"
	"github.com/minarbd/minar/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the book catalogue.
//
// It also consumes the chapter [chapter.Service]: the public book detail
// response embeds the table of contents so the frontend renders the whole
// page from one request.
type Handler struct {
	service  *Service
	chapters *chapter.Service
}

// NewHandler constructs a new book [Handler].
func NewHandler(service *Service, chapters *chapter.Service) *Handler {
	return &Handler{service: service, chapters: chapters}
}

// RegisterRoutes attaches book endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Discovery endpoints
	api.Get("/books", handler.ListBooks)
	api.Get("/books/{slug}", handler.GetBook)

	// Admin protected endpoints
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/books", handler.CreateBook)
		admin.Patch("/books/id/{id}", handler.UpdateBook)
		admin.Delete("/books/id/{id}", handler.DeleteBook)
	})
}

// # Catalogue Retrieval

/*
GET /api/v1/books.

Description: Returns the paginated catalogue. Anonymous callers only see
published books; an authenticated admin may pass drafts=true to include
unpublished work.
*/
func (handler *Handler) ListBooks(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{PublishedOnly: true}
	if request.URL.Query().Get("drafts") == "true" {
		if claims := requestutil.Claims(request); claims != nil && sec.Role(claims.Role).AtLeast(sec.RoleAdmin) {
			filter.PublishedOnly = false
		}
	}

	books, total, err := handler.service.ListBooks(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(params.Page, params.Limit, total))
}

// bookDetailResponse is the public book page payload: the book plus its
// table of contents and section availability for the reader entry links.
type bookDetailResponse struct {
	*Book
	Chapters       []*chapter.Summary `json:"chapters"`
	TotalChapters  int                `json:"total_chapters"`
	HasFrontMatter bool               `json:"has_front_matter"`
	HasBackMatter  bool               `json:"has_back_matter"`
}

/*
GET /api/v1/books/{slug}.

Description: Returns one book with its complete ordered chapter list.
Fires a best-effort view-count increment.

Response:
  - 200: bookDetailResponse
  - 404: NOT_FOUND: Book absent
*/
func (handler *Handler) GetBook(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	found, err := handler.service.GetBookBySlug(request.Context(), bookSlug, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summaries, err := handler.chapters.ListChapters(request.Context(), found.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookDetailResponse{
		Book:           found,
		Chapters:       summaries,
		TotalChapters:  len(summaries),
		HasFrontMatter: found.HasFrontMatter(),
		HasBackMatter:  found.HasBackMatter(),
	})
}

// # Admin Mutations

// bookRequest defines the inbound JSON schema for create and update.
type bookRequest struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Slug          string `json:"slug"`
	Author        string `json:"author"`
	Publisher     string `json:"publisher"`
	Description   string `json:"description"`
	CoverImage    string `json:"cover_image"`
	Price         string `json:"price"`
	Dedication    string `json:"dedication"`
	PublisherNote string `json:"publisher_note"`
	AuthorPreface string `json:"author_preface"`
	Conclusion    string `json:"conclusion"`
	QAContent     string `json:"qa_content"`
	IsPublished   bool   `json:"is_published"`
}

func (r *bookRequest) toBook() *Book {
	return &Book{
		Title:         r.Title,
		Subtitle:      r.Subtitle,
		Slug:          r.Slug,
		Author:        r.Author,
		Publisher:     r.Publisher,
		Description:   r.Description,
		CoverImage:    r.CoverImage,
		Price:         r.Price,
		Dedication:    r.Dedication,
		PublisherNote: r.PublisherNote,
		AuthorPreface: r.AuthorPreface,
		Conclusion:    r.Conclusion,
		QAContent:     r.QAContent,
		IsPublished:   r.IsPublished,
	}
}

/*
POST /api/v1/books.

Response:
  - 201: Book: Created book object
  - 400: VALIDATION_ERROR: Invalid payload
  - 409: CONFLICT: Duplicate slug
*/
func (handler *Handler) CreateBook(writer http.ResponseWriter, request *http.Request) {
	var input bookRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created := input.toBook()
	if err := handler.service.CreateBook(request.Context(), created); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/books/id/{id}.

Description: Full-document update in the admin panel's edit-form style:
the form always submits every field.
*/
func (handler *Handler) UpdateBook(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input bookRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated := input.toBook()
	updated.ID = id

	if err := handler.service.UpdateBook(request.Context(), updated); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/books/id/{id}.
*/
func (handler *Handler) DeleteBook(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteBook(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
