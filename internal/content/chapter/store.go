// Copyright (c) 2026 Minar. All rights reserved.

package chapter

import "context"

// # Chapter Data Access

// Repository defines the data access contract for chapters.
type Repository interface {

	// ListByBook returns ALL chapter summaries for a book ordered by
	// chapter number ascending. The list is never paginated: prev/next
	// boundary computation in the reader requires the full sequence.
	ListByBook(ctx context.Context, bookID string) ([]*Summary, error)

	// FindByNumber returns the chapter with the given (book, number) pair
	// including its content blob, or apperr.NotFound.
	FindByNumber(ctx context.Context, bookID string, number int) (*Chapter, error)

	// FindByID returns the chapter with the given ID, or apperr.NotFound.
	FindByID(ctx context.Context, id string) (*Chapter, error)

	// Create persists a new chapter.
	Create(ctx context.Context, chapter *Chapter) error

	// Update persists changes to an existing chapter.
	Update(ctx context.Context, chapter *Chapter) error

	// Delete removes a chapter.
	Delete(ctx context.Context, id string) error
}
