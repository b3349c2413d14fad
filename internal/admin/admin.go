// Copyright (c) 2026 Minar. All rights reserved.

/*
Package admin implements the single authentication gate for the content
management surface.

There are no user accounts. One password, stored as a bcrypt hash in the
environment, unlocks an admin session token; every mutative content route
then checks the role carried by that token. Editors and visitors exist as
roles for future narrowing but are never issued today.
*/
package admin

import (
	"log/slog"

	"github.com/minarbd/minar/internal/platform/apperr"
	"github.com/minarbd/minar/internal/platform/constants"
	"github.com/minarbd/minar/internal/platform/sec"
)

// Service verifies the admin password and issues session tokens.
type Service struct {
	passwordHash string
	tokens       *sec.TokenService
	logger       *slog.Logger
}

// NewService constructs the admin gate.
func NewService(passwordHash string, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{passwordHash: passwordHash, tokens: tokens, logger: logger}
}

/*
Login exchanges the admin password for a session token.

Description: Compares against the configured bcrypt hash. A wrong password
is a plain 401 with no detail about why — the gate never confirms whether a
password was close.

Returns:
  - string: Signed RS256 JWT carrying the admin role
  - error: apperr.Unauthorized on mismatch
*/
func (service *Service) Login(password string) (string, error) {
	if !sec.CheckPasswordHash(password, service.passwordHash) {
		service.logger.Warn("admin_login_rejected")
		return "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := service.tokens.GenerateAccessToken(sec.RoleAdmin, constants.AdminTokenTTL)
	if err != nil {
		return "", apperr.Internal(err)
	}

	service.logger.Info("admin_login_succeeded")

	return token, nil
}
