// Copyright (c) 2026 Minar. All rights reserved.

package post

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

// NewRepository constructs a PostgreSQL backed post store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// postColumns builds the SELECT list for a post row joined with its
// category. The LEFT JOIN keeps uncategorised posts visible.
func postColumns() string {
	p := schema.ContentPost
	c := schema.ContentCategory
	return fmt.Sprintf(
		"p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, COALESCE(c.%s, ''), COALESCE(c.%s, '')",
		p.ID, p.Slug, p.Title, p.Excerpt, p.Content, p.CategoryID, p.Tags,
		p.Status, p.ReadTime, p.ViewCount, p.CreatedAt, p.UpdatedAt,
		c.Name, c.Slug,
	)
}

// scanPost scans one joined post row. categoryID arrives as a nullable
// column, flattened to an empty string for the domain model.
func scanPost(row pgx.Row) (*Post, error) {
	var post Post
	var categoryID *string

	err := row.Scan(
		&post.ID, &post.Slug, &post.Title, &post.Excerpt, &post.Content,
		&categoryID, &post.Tags, &post.Status, &post.ReadTime,
		&post.ViewCount, &post.CreatedAt, &post.UpdatedAt,
		&post.CategoryName, &post.CategorySlug,
	)
	if err != nil {
		return nil, err
	}

	post.CategoryID = pointer.Val(categoryID)
	if post.Tags == nil {
		post.Tags = []string{}
	}

	return &post, nil
}

/*
List returns a filtered page of posts plus the unfiltered total.

Description: Uses the COUNT(*) OVER() window function to fetch the total
matching row count alongside the page itself, avoiding a second query.
*/
func (repository *postgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	p := schema.ContentPost
	c := schema.ContentCategory

	where := "TRUE"
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND p.%s = $%d", p.Status, len(args))
	}
	if filter.CategorySlug != "" {
		args = append(args, filter.CategorySlug)
		where += fmt.Sprintf(" AND c.%s = $%d", c.Slug, len(args))
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s p
		LEFT JOIN %s c ON c.%s = p.%s
		WHERE %s
		ORDER BY p.%s DESC
		LIMIT $%d OFFSET $%d
	`,
		postColumns(),
		p.Table,
		c.Table, c.ID, p.CategoryID,
		where,
		p.CreatedAt,
		len(args)-1, len(args),
	)

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*Post
	var total int
	for rows.Next() {
		var post Post
		var categoryID *string
		err := rows.Scan(
			&post.ID, &post.Slug, &post.Title, &post.Excerpt, &post.Content,
			&categoryID, &post.Tags, &post.Status, &post.ReadTime,
			&post.ViewCount, &post.CreatedAt, &post.UpdatedAt,
			&post.CategoryName, &post.CategorySlug,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan post: %w", err)
		}
		post.CategoryID = pointer.Val(categoryID)
		if post.Tags == nil {
			post.Tags = []string{}
		}
		posts = append(posts, &post)
	}

	return posts, total, nil
}

// FindBySlug returns one post addressed by its public slug.
func (repository *postgresRepository) FindBySlug(ctx context.Context, slug string) (*Post, error) {
	return repository.findBy(ctx, schema.ContentPost.Slug, slug)
}

// FindByID returns one post by primary key.
func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*Post, error) {
	return repository.findBy(ctx, schema.ContentPost.ID, id)
}

func (repository *postgresRepository) findBy(ctx context.Context, column, value string) (*Post, error) {
	p := schema.ContentPost
	c := schema.ContentCategory
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		LEFT JOIN %s c ON c.%s = p.%s
		WHERE p.%s = $1
	`,
		postColumns(),
		p.Table,
		c.Table, c.ID, p.CategoryID,
		column,
	)

	found, err := scanPost(repository.pool.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post")
		}
		return nil, fmt.Errorf("postgres: failed to find post: %w", err)
	}

	return found, nil
}

// Create inserts a new post row. A NULL category id is stored when the
// post is uncategorised.
func (repository *postgresRepository) Create(ctx context.Context, post *Post) error {
	p := schema.ContentPost
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		p.Table,
		p.ID, p.Slug, p.Title, p.Excerpt, p.Content, p.CategoryID,
		p.Tags, p.Status, p.ReadTime,
	)

	_, err := repository.pool.Exec(ctx, query,
		post.ID, post.Slug, post.Title, post.Excerpt, post.Content,
		nullable(post.CategoryID), post.Tags, post.Status, post.ReadTime,
	)
	if err != nil {
		return dberr.Wrap(err, "create post")
	}

	return nil
}

// Update rewrites a post's editable fields.
func (repository *postgresRepository) Update(ctx context.Context, post *Post) error {
	p := schema.ContentPost
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $9
	`,
		p.Table,
		p.Slug, p.Title, p.Excerpt, p.Content, p.CategoryID, p.Tags,
		p.Status, p.ReadTime, p.UpdatedAt,
		p.ID,
	)

	result, err := repository.pool.Exec(ctx, query,
		post.Slug, post.Title, post.Excerpt, post.Content,
		nullable(post.CategoryID), post.Tags, post.Status, post.ReadTime,
		post.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update post")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	return nil
}

// Delete removes a post row.
func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentPost.Table, schema.ContentPost.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	return nil
}

// IncrementViewCount bumps the read counter with a single atomic UPDATE.
func (repository *postgresRepository) IncrementViewCount(ctx context.Context, id string, delta int64) error {
	p := schema.ContentPost
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + $1 WHERE %s = $2`,
		p.Table, p.ViewCount, p.ViewCount, p.ID)

	_, err := repository.pool.Exec(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to increment post view count: %w", err)
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
