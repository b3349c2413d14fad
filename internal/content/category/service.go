// Copyright (c) 2026 Minar. All rights reserved.

package category

import (
	"context"
	"log/slog"

	"github.com/minarbd/minar/internal/platform/validate"
	"github.com/minarbd/minar/pkg/slug"
	"github.com/minarbd/minar/pkg/uuid"
)

const (
	FieldName = "name"
	FieldSlug = "slug"
)

// Service orchestrates the business logic for the taxonomy.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListCategories retrieves the complete taxonomy.
func (service *Service) ListCategories(ctx context.Context) ([]*Category, error) {
	return service.repo.List(ctx)
}

// GetCategory retrieves one category by its primary key.
func (service *Service) GetCategory(ctx context.Context, id string) (*Category, error) {
	return service.repo.FindByID(ctx, id)
}

// CreateCategory validates and persists a new category.
func (service *Service) CreateCategory(ctx context.Context, category *Category) error {

	if category.ID == "" {
		category.ID = uuid.New()
	}
	if category.Slug == "" {
		category.Slug = slug.From(category.Name)
	}

	if err := service.validate(category); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, category); err != nil {
		return err
	}

	service.logger.Info("category_created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return nil
}

// UpdateCategory validates and persists changes to an existing category.
func (service *Service) UpdateCategory(ctx context.Context, category *Category) error {
	if err := service.validate(category); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, category); err != nil {
		return err
	}

	service.logger.Info("category_updated", slog.String("category_id", category.ID))

	return nil
}

// DeleteCategory removes a category.
func (service *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("category_deleted", slog.String("category_id", id))

	return nil
}

func (service *Service) validate(category *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, category.Name)
	validator.Required(FieldSlug, category.Slug)
	validator.Slug(FieldSlug, category.Slug)
	return validator.Err()
}
