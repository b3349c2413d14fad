// Copyright (c) 2026 Minar. All rights reserved.

// Package post implements the article surface: Bengali-language essays and
// fatwa write-ups grouped by category.
package post

import (
	"context"
	"time"
)

// Status values for the publication lifecycle.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post is an article. Content is a rich-text HTML blob produced by the
// admin panel's editor.
type Post struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
	Content string `json:"content"`

	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`

	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	ReadTime  int       `json:"read_time"`
	ViewCount int64     `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows post list queries.
type Filter struct {
	// Status restricts to a lifecycle state; empty means any (admin only).
	Status string
	// CategorySlug restricts to a single category.
	CategorySlug string
}

// Repository defines the data access contract for posts.
type Repository interface {
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Post, int, error)
	FindBySlug(ctx context.Context, slug string) (*Post, error)
	FindByID(ctx context.Context, id string) (*Post, error)
	Create(ctx context.Context, post *Post) error
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string, delta int64) error
}
