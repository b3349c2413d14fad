// Copyright (c) 2026 Minar. All rights reserved.

package chapter

import (
	"context"
	"log/slog"

	"github.com/minarbd/minar/internal/platform/validate"
	"github.com/minarbd/minar/pkg/uuid"
)

const (
	FieldBookID = "book_id"
	FieldNumber = "chapter_number"
	FieldTitle  = "title"
)

// # Service Layer

// Service orchestrates the business logic for chapters.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Chapter Operations

// ListChapters retrieves the complete ordered table of contents for a book.
func (service *Service) ListChapters(ctx context.Context, bookID string) ([]*Summary, error) {
	return service.repo.ListByBook(ctx, bookID)
}

// GetChapter retrieves one chapter, content included, by (book, number).
func (service *Service) GetChapter(ctx context.Context, bookID string, number int) (*Chapter, error) {
	return service.repo.FindByNumber(ctx, bookID, number)
}

// GetChapterByID retrieves one chapter by its primary key (admin panel).
func (service *Service) GetChapterByID(ctx context.Context, id string) (*Chapter, error) {
	return service.repo.FindByID(ctx, id)
}

// CreateChapter validates and persists a new chapter.
func (service *Service) CreateChapter(ctx context.Context, chapter *Chapter) error {

	if chapter.ID == "" {
		chapter.ID = uuid.New()
	}

	validator := &validate.Validator{}
	validator.Required(FieldBookID, chapter.BookID)
	validator.Required(FieldTitle, chapter.Title)
	validator.Positive(FieldNumber, chapter.Number)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, chapter); err != nil {
		return err
	}

	service.logger.Info("chapter_created",
		slog.String("chapter_id", chapter.ID),
		slog.String("book_id", chapter.BookID),
		slog.Int("number", chapter.Number),
	)

	return nil
}

// UpdateChapter validates and persists changes to an existing chapter.
func (service *Service) UpdateChapter(ctx context.Context, chapter *Chapter) error {

	validator := &validate.Validator{}
	validator.Required(FieldTitle, chapter.Title)
	validator.Positive(FieldNumber, chapter.Number)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, chapter); err != nil {
		return err
	}

	service.logger.Info("chapter_updated", slog.String("chapter_id", chapter.ID))

	return nil
}

// DeleteChapter removes a chapter.
func (service *Service) DeleteChapter(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("chapter_deleted", slog.String("chapter_id", id))

	return nil
}
