// Copyright (c) 2026 Minar. All rights reserved.

package category

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

// NewRepository constructs a PostgreSQL backed category store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// List returns every category ordered by name. The taxonomy is small, so
// it is never paginated.
func (repository *postgresRepository) List(ctx context.Context) ([]*Category, error) {
	t := schema.ContentCategory
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		t.ID, t.Name, t.Slug, t.Description, t.CreatedAt,
		t.Table,
		t.Name,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var category Category
		err := rows.Scan(&category.ID, &category.Name, &category.Slug,
			&category.Description, &category.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan category: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

// FindByID returns one category by primary key.
func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*Category, error) {
	t := schema.ContentCategory
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		t.ID, t.Name, t.Slug, t.Description, t.CreatedAt,
		t.Table,
		t.ID,
	)

	var category Category
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.Slug,
		&category.Description, &category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category")
		}
		return nil, fmt.Errorf("postgres: failed to find category: %w", err)
	}

	return &category, nil
}

// Create inserts a new category row.
func (repository *postgresRepository) Create(ctx context.Context, category *Category) error {
	t := schema.ContentCategory
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
	`,
		t.Table, t.ID, t.Name, t.Slug, t.Description,
	)

	_, err := repository.pool.Exec(ctx, query,
		category.ID, category.Name, category.Slug, category.Description,
	)
	if err != nil {
		return dberr.Wrap(err, "create category")
	}

	return nil
}

// Update rewrites a category's editable fields.
func (repository *postgresRepository) Update(ctx context.Context, category *Category) error {
	t := schema.ContentCategory
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3
		WHERE %s = $4
	`,
		t.Table,
		t.Name, t.Slug, t.Description,
		t.ID,
	)

	result, err := repository.pool.Exec(ctx, query,
		category.Name, category.Slug, category.Description, category.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update category")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}

// Delete removes a category row. Articles and lectures referencing it fall
// back to uncategorised through the schema's ON DELETE SET NULL.
func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentCategory.Table, schema.ContentCategory.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}
