// Copyright (c) 2026 Minar. All rights reserved.

package book

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minarbd/minar/internal/platform/apperr"
	"github.com/minarbd/minar/internal/platform/database/schema"
	"github.com/minarbd/minar/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed book store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// bookColumns is the SELECT column list shared by every single-row query.
func bookColumns(alias string) string {
	t := schema.ContentBook
	cols := t.Columns()
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// scanBook hydrates a Book from a row that selected bookColumns in order.
func scanBook(row pgx.Row) (*Book, error) {
	var book Book
	err := row.Scan(
		&book.ID, &book.Title, &book.Subtitle, &book.Slug, &book.Author,
		&book.Publisher, &book.Description, &book.CoverImage, &book.Price,
		&book.Dedication, &book.PublisherNote, &book.AuthorPreface,
		&book.Conclusion, &book.QAContent, &book.IsPublished, &book.ViewCount,
		&book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

/*
List returns books matching the filter, newest first.

Description: Uses a window function to return the total match count without
a second COUNT round-trip.
*/
func (repository *postgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s b
		WHERE 1=1
	`, bookColumns("b"), schema.ContentBook.Table))

	if filter.PublishedOnly {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = TRUE", schema.ContentBook.IsPublished))
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY b.%s DESC", schema.ContentBook.CreatedAt))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list books: %w", err)
	}
	defer rows.Close()

	var books []*Book
	var totalCount int

	for rows.Next() {
		var book Book
		err := rows.Scan(
			&book.ID, &book.Title, &book.Subtitle, &book.Slug, &book.Author,
			&book.Publisher, &book.Description, &book.CoverImage, &book.Price,
			&book.Dedication, &book.PublisherNote, &book.AuthorPreface,
			&book.Conclusion, &book.QAContent, &book.IsPublished, &book.ViewCount,
			&book.CreatedAt, &book.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan book: %w", err)
		}
		books = append(books, &book)
	}

	return books, totalCount, nil
}

// FindByID returns the book with the given primary key.
func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.%s = $1`,
		bookColumns("b"), schema.ContentBook.Table, schema.ContentBook.ID)

	book, err := scanBook(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Book")
		}
		return nil, fmt.Errorf("postgres: failed to find book by id: %w", err)
	}
	return book, nil
}

// FindBySlug returns the book addressed by its URL slug.
func (repository *postgresRepository) FindBySlug(ctx context.Context, slug string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.%s = $1`,
		bookColumns("b"), schema.ContentBook.Table, schema.ContentBook.Slug)

	book, err := scanBook(repository.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Book")
		}
		return nil, fmt.Errorf("postgres: failed to find book by slug: %w", err)
	}
	return book, nil
}

// Create inserts a new book row.
func (repository *postgresRepository) Create(ctx context.Context, book *Book) error {
	t := schema.ContentBook
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15
		)
	`,
		t.Table,
		t.ID, t.Title, t.Subtitle, t.Slug, t.Author, t.Publisher, t.Description, t.CoverImage, t.Price,
		t.Dedication, t.PublisherNote, t.AuthorPreface, t.Conclusion, t.QAContent, t.IsPublished,
	)

	_, err := repository.pool.Exec(ctx, query,
		book.ID, book.Title, book.Subtitle, book.Slug, book.Author,
		book.Publisher, book.Description, book.CoverImage, book.Price,
		book.Dedication, book.PublisherNote, book.AuthorPreface,
		book.Conclusion, book.QAContent, book.IsPublished,
	)
	if err != nil {
		return dberr.Wrap(err, "create book")
	}

	return nil
}

// Update rewrites every mutable column of an existing book.
func (repository *postgresRepository) Update(ctx context.Context, book *Book) error {
	t := schema.ContentBook
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = NOW()
		WHERE %s = $15
	`,
		t.Table,
		t.Title, t.Subtitle, t.Slug, t.Author, t.Publisher, t.Description, t.CoverImage, t.Price,
		t.Dedication, t.PublisherNote, t.AuthorPreface, t.Conclusion, t.QAContent, t.IsPublished,
		t.UpdatedAt,
		t.ID,
	)

	result, err := repository.pool.Exec(ctx, query,
		book.Title, book.Subtitle, book.Slug, book.Author, book.Publisher,
		book.Description, book.CoverImage, book.Price,
		book.Dedication, book.PublisherNote, book.AuthorPreface,
		book.Conclusion, book.QAContent, book.IsPublished,
		book.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update book")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}

	return nil
}

// Delete removes a book. Chapters cascade at the schema level.
func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentBook.Table, schema.ContentBook.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}

	return nil
}

// IncrementViewCount atomically updates a book's view counter.
func (repository *postgresRepository) IncrementViewCount(ctx context.Context, id string, delta int64) error {

	// Direct atomic increment to prevent race conditions during heavy traffic
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + $1 WHERE %s = $2`,
		schema.ContentBook.Table, schema.ContentBook.ViewCount, schema.ContentBook.ViewCount, schema.ContentBook.ID)

	_, err := repository.pool.Exec(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to increment book view count: %w", err)
	}

	return nil
}
