// Copyright (c) 2026 Minar. All rights reserved.

package book

import "context"

// # Book Data Access

// Repository defines the data access contract for books.
type Repository interface {

	// List returns books matching the filter, newest first, with the total
	// matching count for pagination metadata.
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Book, int, error)

	// FindByID returns the book with the given ID, or apperr.NotFound.
	FindByID(ctx context.Context, id string) (*Book, error)

	// FindBySlug returns the book with the given slug (equality match,
	// single row), or apperr.NotFound.
	FindBySlug(ctx context.Context, slug string) (*Book, error)

	// Create persists a new book.
	Create(ctx context.Context, book *Book) error

	// Update persists changes to an existing book.
	Update(ctx context.Context, book *Book) error

	// Delete removes a book and, via cascade, its chapters.
	Delete(ctx context.Context, id string) error

	// IncrementViewCount atomically bumps the view counter.
	//
	// Best-effort: callers fire it alongside a read and ignore ordering
	// relative to that read.
	IncrementViewCount(ctx context.Context, id string, delta int64) error
}
