// Copyright (c) 2026 Minar. All rights reserved.

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/minarbd/minar/internal/platform/request"
	"github.com/minarbd/minar/internal/platform/respond"
)

// Handler implements the HTTP layer for the admin gate.
type Handler struct {
	service *Service
}

// NewHandler constructs a new admin [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the gate to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Post("/admin/login", handler.Login)
}

// loginRequest is the inbound JSON schema for the gate.
type loginRequest struct {
	Password string `json:"password"`
}

// loginResponse carries the issued session token.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

/*
POST /api/v1/admin/login.

Response:
  - 200: loginResponse: Session token for Authorization: Bearer
  - 401: UNAUTHORIZED: Wrong password
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.Login(input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
