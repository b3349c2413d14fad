// Copyright (c) 2026 Minar. All rights reserved.

package chapter

import (
	"context"
	"errors"
	"fmt"

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

// NewRepository constructs a PostgreSQL backed chapter store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
ListByBook returns all chapter summaries for a book.

Description: Selects only (id, number, title) — content blobs can be large
and the table of contents never needs them. Ordered ascending by chapter
number, which is the book's reading order.
*/
func (repository *postgresRepository) ListByBook(ctx context.Context, bookID string) ([]*Summary, error) {
	t := schema.ContentChapter
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		t.ID, t.Number, t.Title,
		t.Table,
		t.BookID,
		t.Number,
	)

	rows, err := repository.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list chapters: %w", err)
	}
	defer rows.Close()

	var summaries []*Summary
	for rows.Next() {
		var summary Summary
		if err := rows.Scan(&summary.ID, &summary.Number, &summary.Title); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan chapter summary: %w", err)
		}
		summaries = append(summaries, &summary)
	}

	return summaries, nil
}

// FindByNumber returns a single chapter addressed by (book, chapter number).
func (repository *postgresRepository) FindByNumber(ctx context.Context, bookID string, number int) (*Chapter, error) {
	t := schema.ContentChapter
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		t.ID, t.BookID, t.Number, t.Title, t.Content, t.CreatedAt, t.UpdatedAt,
		t.Table,
		t.BookID, t.Number,
	)

	var chapter Chapter
	err := repository.pool.QueryRow(ctx, query, bookID, number).Scan(
		&chapter.ID, &chapter.BookID, &chapter.Number, &chapter.Title,
		&chapter.Content, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Chapter")
		}
		return nil, fmt.Errorf("postgres: failed to find chapter by number: %w", err)
	}

	return &chapter, nil
}

// FindByID returns a single chapter by primary key.
func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*Chapter, error) {
	t := schema.ContentChapter
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		t.ID, t.BookID, t.Number, t.Title, t.Content, t.CreatedAt, t.UpdatedAt,
		t.Table,
		t.ID,
	)

	var chapter Chapter
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&chapter.ID, &chapter.BookID, &chapter.Number, &chapter.Title,
		&chapter.Content, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Chapter")
		}
		return nil, fmt.Errorf("postgres: failed to find chapter by id: %w", err)
	}

	return &chapter, nil
}

// Create inserts a new chapter row.
func (repository *postgresRepository) Create(ctx context.Context, chapter *Chapter) error {
	t := schema.ContentChapter
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
	`,
		t.Table, t.ID, t.BookID, t.Number, t.Title, t.Content,
	)

	_, err := repository.pool.Exec(ctx, query,
		chapter.ID, chapter.BookID, chapter.Number, chapter.Title, chapter.Content,
	)
	if err != nil {
		return dberr.Wrap(err, "create chapter")
	}

	return nil
}

// Update rewrites a chapter's number, title, and content.
func (repository *postgresRepository) Update(ctx context.Context, chapter *Chapter) error {
	t := schema.ContentChapter
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = NOW()
		WHERE %s = $4
	`,
		t.Table,
		t.Number, t.Title, t.Content, t.UpdatedAt,
		t.ID,
	)

	result, err := repository.pool.Exec(ctx, query,
		chapter.Number, chapter.Title, chapter.Content, chapter.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update chapter")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Chapter")
	}

	return nil
}

// Delete removes a chapter row.
func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentChapter.Table, schema.ContentChapter.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete chapter: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Chapter")
	}

	return nil
}
