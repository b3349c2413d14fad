// Copyright (c) 2026 Minar. All rights reserved.

// Package audio implements the lecture archive: recorded talks served as
// streamable audio files.
package audio

import (
	"context"
	"time"
)

// Lecture is one recorded talk. Duration is stored in whole seconds.
type Lecture struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AudioURL    string    `json:"audio_url"`
	Duration    int       `json:"duration"`
	CategoryID  string    `json:"category_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository defines the data access contract for lectures.
type Repository interface {
	List(ctx context.Context, categoryID string, limit, offset int) ([]*Lecture, int, error)
	FindByID(ctx context.Context, id string) (*Lecture, error)
	Create(ctx context.Context, lecture *Lecture) error
	Update(ctx context.Context, lecture *Lecture) error
	Delete(ctx context.Context, id string) error
}
