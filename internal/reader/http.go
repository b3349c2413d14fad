// Copyright (c) 2026 Minar. All rights reserved.

package reader

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/minarbd/minar/internal/platform/request"
	"github.com/minarbd/minar/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the reader HTTP surface. All endpoints are public;
// the client identity arrives in the X-Reader-Client header (or a client
// query parameter) and is opaque, unauthenticated, and optional.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reader [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches reader endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/books/{slug}/reader/{num}", handler.ViewChapter)
	api.Get("/books/{slug}/reader/sections/{section}", handler.ViewSection)

	api.Get("/reader/preferences", handler.GetPreferences)
	api.Put("/reader/preferences", handler.UpdatePreference)
	api.Put("/reader/position", handler.SavePosition)
}

/*
GET /api/v1/books/{slug}/reader/{num}?page=N.

Description: The full chapter view: book header, chapter content paginated,
the resolved current page, navigation descriptors, overall progress, and
the client's display preferences. A malformed or missing page parameter
falls back to position resolution. page=-1 is the retreat descriptor the
navigation payload hands out for chapter crossings and opens the chapter's
last page.

Response:
  - 200: ChapterView
  - 404: NOT_FOUND: Book or chapter absent — terminal, no retry
*/
func (handler *Handler) ViewChapter(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	number, err := requestutil.IntParam(request, "num")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.ViewChapter(
		request.Context(),
		requestutil.ReaderClient(request),
		slug,
		number,
		requestutil.QueryInt(request, "page", 0),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

/*
GET /api/v1/books/{slug}/reader/sections/{section}.

Response:
  - 200: SectionView
  - 404: NOT_FOUND: Book absent, unknown section, or empty back matter
*/
func (handler *Handler) ViewSection(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.ViewSection(
		request.Context(),
		requestutil.ReaderClient(request),
		requestutil.Param(request, "slug"),
		requestutil.Param(request, "section"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// preferencesResponse bundles current settings with the selectable options.
type preferencesResponse struct {
	Preferences Preferences   `json:"preferences"`
	Fonts       []FontOption  `json:"fonts"`
	Themes      []ThemeOption `json:"themes"`
}

/*
GET /api/v1/reader/preferences.

Description: Returns the client's display settings, defaulted where absent
or where the state store is unavailable. Never fails on store errors.
*/
func (handler *Handler) GetPreferences(writer http.ResponseWriter, request *http.Request) {
	prefs, fonts, themes := handler.service.GetPreferences(
		request.Context(),
		requestutil.ReaderClient(request),
	)

	respond.OK(writer, preferencesResponse{
		Preferences: prefs,
		Fonts:       fonts,
		Themes:      themes,
	})
}

// preferenceRequest is the inbound JSON schema for one preference update.
type preferenceRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

/*
PUT /api/v1/reader/preferences.

Description: Writes one preference. Each setting persists independently so
a failed write never disturbs the others.

Response:
  - 204: Stored (or silently dropped when the store is unavailable)
  - 400: VALIDATION_ERROR: Unknown preference name or value
*/
func (handler *Handler) UpdatePreference(writer http.ResponseWriter, request *http.Request) {
	var input preferenceRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.service.UpdatePreference(
		request.Context(),
		requestutil.ReaderClient(request),
		input.Name,
		input.Value,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// positionRequest is the inbound JSON schema for an explicit position save.
type positionRequest struct {
	BookID        string `json:"book_id"`
	ChapterNumber int    `json:"chapter_number"`
	Page          int    `json:"page"`
}

/*
PUT /api/v1/reader/position.

Description: Explicit position save fired on intra-chapter page flips,
which render client-side without refetching. Best-effort: a store failure
still returns 204.
*/
func (handler *Handler) SavePosition(writer http.ResponseWriter, request *http.Request) {
	var input positionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.service.SavePosition(
		request.Context(),
		requestutil.ReaderClient(request),
		input.BookID,
		input.ChapterNumber,
		input.Page,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
