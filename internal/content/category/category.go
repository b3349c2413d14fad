// Copyright (c) 2026 Minar. All rights reserved.

// Package category implements the shared taxonomy used by articles and
// lectures.
package category

import (
	"context"
	"time"
)

// Category is one taxonomy entry.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository defines the data access contract for categories.
type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
}
