// Copyright (c) 2026 Minar. All rights reserved.

package post

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

// Handler implements the HTTP layer for articles.
type Handler struct {
	service *Service
}

// NewHandler constructs a new post [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches article endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Discovery endpoints
	api.Get("/posts", handler.ListPosts)
	api.Get("/posts/{slug}", handler.GetPost)

	// Admin protected endpoints
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/posts", handler.CreatePost)
		admin.Get("/posts/id/{id}", handler.GetPostByID)
		admin.Patch("/posts/id/{id}", handler.UpdatePost)
		admin.Delete("/posts/id/{id}", handler.DeletePost)
	})
}

// # Article Retrieval

/*
GET /api/v1/posts.

Description: Returns the paginated article feed, newest first. Anonymous
callers only see published articles; an authenticated admin may pass
drafts=true to include unpublished work. An optional category query param
filters by category slug.
*/
func (handler *Handler) ListPosts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{
		Status:       StatusPublished,
		CategorySlug: request.URL.Query().Get("category"),
	}
	if request.URL.Query().Get("drafts") == "true" {
		if claims := requestutil.Claims(request); claims != nil && sec.Role(claims.Role).AtLeast(sec.RoleAdmin) {
			filter.Status = ""
		}
	}

	posts, total, err := handler.service.ListPosts(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/posts/{slug}.

Description: Returns one article. Fires a best-effort view-count increment.

Response:
  - 200: Post
  - 404: NOT_FOUND: Article absent
*/
func (handler *Handler) GetPost(writer http.ResponseWriter, request *http.Request) {
	postSlug := requestutil.Param(request, "slug")

	found, err := handler.service.GetPostBySlug(request.Context(), postSlug, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

/*
GET /api/v1/posts/id/{id}.

Description: Admin edit form load — addressed by primary key so a slug
rename does not orphan the form.
*/
func (handler *Handler) GetPostByID(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	found, err := handler.service.GetPost(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// # Admin Mutations

// postRequest defines the inbound JSON schema for create and update.
type postRequest struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CategoryID string   `json:"category_id"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status"`
	ReadTime   int      `json:"read_time"`
}

func (r *postRequest) toPost() *Post {
	return &Post{
		Title:      r.Title,
		Slug:       r.Slug,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		CategoryID: r.CategoryID,
		Tags:       r.Tags,
		Status:     r.Status,
		ReadTime:   r.ReadTime,
	}
}

/*
POST /api/v1/posts.

Response:
  - 201: Post: Created article object
  - 400: VALIDATION_ERROR: Invalid payload
  - 409: CONFLICT: Duplicate slug
*/
func (handler *Handler) CreatePost(writer http.ResponseWriter, request *http.Request) {
	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created := input.toPost()
	if err := handler.service.CreatePost(request.Context(), created); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/posts/id/{id}.
*/
func (handler *Handler) UpdatePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated := input.toPost()
	updated.ID = id

	if err := handler.service.UpdatePost(request.Context(), updated); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/posts/id/{id}.
*/
func (handler *Handler) DeletePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeletePost(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
