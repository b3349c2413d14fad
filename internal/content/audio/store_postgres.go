// Copyright (c) 2026 Minar. All rights reserved.

package audio

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minarbd/minar/internal/platform/apperr"
	"github.com/minarbd/minar/internal/platform/database/schema"
	"github.com/minarbd/minar/internal/platform/dberr"
	"github.com/minarbd/minar/pkg/pointer"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed lecture store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// List returns a page of lectures, newest first, optionally restricted to
// one category.
func (repository *postgresRepository) List(ctx context.Context, categoryID string, limit, offset int) ([]*Lecture, int, error) {
	t := schema.ContentAudio

	where := "TRUE"
	args := []any{}
	if categoryID != "" {
		args = append(args, categoryID)
		where = fmt.Sprintf("%s = $%d", t.CategoryID, len(args))
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`,
		t.ID, t.Title, t.Description, t.AudioURL, t.Duration, t.CategoryID, t.CreatedAt,
		t.Table,
		where,
		t.CreatedAt,
		len(args)-1, len(args),
	)

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list lectures: %w", err)
	}
	defer rows.Close()

	var lectures []*Lecture
	var total int
	for rows.Next() {
		lecture, err := scanLecture(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan lecture: %w", err)
		}
		lectures = append(lectures, lecture)
	}

	return lectures, total, nil
}

// FindByID returns one lecture by primary key.
func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*Lecture, error) {
	t := schema.ContentAudio
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		t.ID, t.Title, t.Description, t.AudioURL, t.Duration, t.CategoryID, t.CreatedAt,
		t.Table,
		t.ID,
	)

	lecture, err := scanLecture(repository.pool.QueryRow(ctx, query, id), nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Lecture")
		}
		return nil, fmt.Errorf("postgres: failed to find lecture: %w", err)
	}

	return lecture, nil
}

// scanLecture scans one lecture row; total is appended to the scan targets
// when the query carries a window count.
func scanLecture(row pgx.Row, total *int) (*Lecture, error) {
	var lecture Lecture
	var categoryID *string

	targets := []any{
		&lecture.ID, &lecture.Title, &lecture.Description, &lecture.AudioURL,
		&lecture.Duration, &categoryID, &lecture.CreatedAt,
	}
	if total != nil {
		targets = append(targets, total)
	}

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	lecture.CategoryID = pointer.Val(categoryID)

	return &lecture, nil
}

// Create inserts a new lecture row.
func (repository *postgresRepository) Create(ctx context.Context, lecture *Lecture) error {
	t := schema.ContentAudio
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		t.Table, t.ID, t.Title, t.Description, t.AudioURL, t.Duration, t.CategoryID,
	)

	_, err := repository.pool.Exec(ctx, query,
		lecture.ID, lecture.Title, lecture.Description, lecture.AudioURL,
		lecture.Duration, nullable(lecture.CategoryID),
	)
	if err != nil {
		return dberr.Wrap(err, "create lecture")
	}

	return nil
}

// Update rewrites a lecture's editable fields.
func (repository *postgresRepository) Update(ctx context.Context, lecture *Lecture) error {
	t := schema.ContentAudio
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $6
	`,
		t.Table,
		t.Title, t.Description, t.AudioURL, t.Duration, t.CategoryID,
		t.ID,
	)

	result, err := repository.pool.Exec(ctx, query,
		lecture.Title, lecture.Description, lecture.AudioURL, lecture.Duration,
		nullable(lecture.CategoryID), lecture.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update lecture")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Lecture")
	}

	return nil
}

// Delete removes a lecture row.
func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentAudio.Table, schema.ContentAudio.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete lecture: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Lecture")
	}

	return nil
}

// nullable maps the empty string to a SQL NULL.
func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
