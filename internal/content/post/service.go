// Copyright (c) 2026 Minar. All rights reserved.

package post

import (
	"context"
	"log/slog"

	"github.com/minarbd/minar/internal/platform/constants"
	"github.com/minarbd/minar/internal/platform/validate"
	"github.com/minarbd/minar/pkg/slug"
	"github.com/minarbd/minar/pkg/uuid"
)

const (
	FieldTitle   = "title"
	FieldSlug    = "slug"
	FieldContent = "content"
	FieldStatus  = "status"
)

// # Service Layer

// Service orchestrates the business logic for articles.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Article Operations

// ListPosts retrieves a filtered page of articles.
func (service *Service) ListPosts(ctx context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	return service.repo.List(ctx, filter, limit, offset)
}

// GetPost retrieves an article by its primary key (admin panel).
func (service *Service) GetPost(ctx context.Context, id string) (*Post, error) {
	return service.repo.FindByID(ctx, id)
}

// GetPostBySlug retrieves an article by its URL slug and, when trackView is
// set, fires a best-effort read-count increment on a detached context.
func (service *Service) GetPostBySlug(ctx context.Context, postSlug string, trackView bool) (*Post, error) {
	found, err := service.repo.FindBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}

	if trackView {
		go service.trackView(found.ID)
	}

	return found, nil
}

// trackView bumps the view counter outside the request lifecycle.
func (service *Service) trackView(postID string) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.SideEffectTimeout)
	defer cancel()

	if err := service.repo.IncrementViewCount(ctx, postID, 1); err != nil {
		service.logger.Warn("post_view_count_failed",
			slog.String("post_id", postID),
			slog.Any("error", err),
		)
	}
}

// # Admin Operations

// CreatePost validates and persists a new article.
func (service *Service) CreatePost(ctx context.Context, post *Post) error {

	// Identity & mandatory field generation
	if post.ID == "" {
		post.ID = uuid.New()
	}
	if post.Slug == "" {
		post.Slug = slug.From(post.Title)
	}
	if post.Status == "" {
		post.Status = StatusDraft
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := service.validate(post); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, post); err != nil {
		return err
	}

	service.logger.Info("post_created",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
		slog.String("status", post.Status),
	)

	return nil
}

// UpdatePost validates and persists changes to an existing article.
func (service *Service) UpdatePost(ctx context.Context, post *Post) error {
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := service.validate(post); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, post); err != nil {
		return err
	}

	service.logger.Info("post_updated", slog.String("post_id", post.ID))

	return nil
}

// DeletePost removes an article.
func (service *Service) DeletePost(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("post_deleted", slog.String("post_id", id))

	return nil
}

func (service *Service) validate(post *Post) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, post.Title)
	validator.Required(FieldSlug, post.Slug)
	validator.Slug(FieldSlug, post.Slug)
	validator.Required(FieldContent, post.Content)
	validator.OneOf(FieldStatus, post.Status, StatusDraft, StatusPublished)
	return validator.Err()
}
