// Copyright (c) 2026 Minar. All rights reserved.

package audio

import (
	"context"
	"log/slog"

	"github.com/minarbd/minar/internal/platform/validate"
	"github.com/minarbd/minar/pkg/uuid"
)

const (
	FieldTitle    = "title"
	FieldAudioURL = "audio_url"
	FieldDuration = "duration"
)

// # Service Layer

// Service orchestrates the business logic for lectures.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListLectures retrieves a page of lectures, newest first.
func (service *Service) ListLectures(ctx context.Context, categoryID string, limit, offset int) ([]*Lecture, int, error) {
	return service.repo.List(ctx, categoryID, limit, offset)
}

// GetLecture retrieves one lecture by its primary key.
func (service *Service) GetLecture(ctx context.Context, id string) (*Lecture, error) {
	return service.repo.FindByID(ctx, id)
}

// CreateLecture validates and persists a new lecture.
func (service *Service) CreateLecture(ctx context.Context, lecture *Lecture) error {

	if lecture.ID == "" {
		lecture.ID = uuid.New()
	}

	if err := service.validate(lecture); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, lecture); err != nil {
		return err
	}

	service.logger.Info("lecture_created", slog.String("lecture_id", lecture.ID))

	return nil
}

// UpdateLecture validates and persists changes to an existing lecture.
func (service *Service) UpdateLecture(ctx context.Context, lecture *Lecture) error {
	if err := service.validate(lecture); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, lecture); err != nil {
		return err
	}

	service.logger.Info("lecture_updated", slog.String("lecture_id", lecture.ID))

	return nil
}

// DeleteLecture removes a lecture.
func (service *Service) DeleteLecture(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("lecture_deleted", slog.String("lecture_id", id))

	return nil
}

func (service *Service) validate(lecture *Lecture) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, lecture.Title)
	validator.Required(FieldAudioURL, lecture.AudioURL)
	validator.Positive(FieldDuration, lecture.Duration)
	return validator.Err()
}
