// Copyright (c) 2026 Minar. All rights reserved.

package book

import (
	"context"
	"log/slog"

	"github.com/minarbd/minar/internal/platform/constants"
	"github.com/minarbd/minar/internal/platform/validate"
	"github.com/minarbd/minar/pkg/slug"
	"github.com/minarbd/minar/pkg/uuid"
)

const (
	FieldTitle  = "title"
	FieldSlug   = "slug"
	FieldAuthor = "author"
)

// # Service Layer

// Service orchestrates the business logic for the book catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Catalogue Operations

// ListBooks retrieves books for the public catalogue or the admin panel.
func (service *Service) ListBooks(ctx context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	return service.repo.List(ctx, filter, limit, offset)
}

// GetBook retrieves a book by its ID.
func (service *Service) GetBook(ctx context.Context, id string) (*Book, error) {
	return service.repo.FindByID(ctx, id)
}

// GetBookBySlug retrieves a book by its URL slug and, when trackView is set,
// fires a best-effort view-count increment.
//
// The increment is deliberately detached from the read: it runs on its own
// bounded context and a failure is logged, never surfaced. There is no
// atomicity between the fetch and the counter.
func (service *Service) GetBookBySlug(ctx context.Context, bookSlug string, trackView bool) (*Book, error) {
	found, err := service.repo.FindBySlug(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	if trackView {
		go service.RecordView(found.ID)
	}

	return found, nil
}

// RecordView bumps the view counter outside the request lifecycle. Safe to
// call from detached goroutines; failure is logged, never returned.
func (service *Service) RecordView(bookID string) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.SideEffectTimeout)
	defer cancel()

	if err := service.repo.IncrementViewCount(ctx, bookID, 1); err != nil {
		service.logger.Warn("book_view_count_failed",
			slog.String("book_id", bookID),
			slog.Any("error", err),
		)
	}
}

// # Admin Operations

// CreateBook validates and persists a new book.
//
// A missing slug is derived from the title; Bengali-only titles produce an
// empty derivation, in which case the slug stays required.
func (service *Service) CreateBook(ctx context.Context, book *Book) error {

	// Identity & mandatory field generation
	if book.ID == "" {
		book.ID = uuid.New()
	}
	if book.Slug == "" {
		book.Slug = slug.From(book.Title)
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, book.Title)
	validator.Required(FieldAuthor, book.Author)
	validator.Required(FieldSlug, book.Slug)
	validator.Slug(FieldSlug, book.Slug)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, book); err != nil {
		return err
	}

	service.logger.Info("book_created",
		slog.String("book_id", book.ID),
		slog.String("slug", book.Slug),
	)

	return nil
}

// UpdateBook validates and persists changes to an existing book.
func (service *Service) UpdateBook(ctx context.Context, book *Book) error {

	validator := &validate.Validator{}
	validator.Required(FieldTitle, book.Title)
	validator.Required(FieldSlug, book.Slug)
	validator.Slug(FieldSlug, book.Slug)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, book); err != nil {
		return err
	}

	service.logger.Info("book_updated", slog.String("book_id", book.ID))

	return nil
}

// DeleteBook removes a book and its chapters.
func (service *Service) DeleteBook(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("book_deleted", slog.String("book_id", id))

	return nil
}
