package service

import (
	"context"

	"gorm.io/gorm"

	"pracademy/internal/errors"
	"pracademy/internal/model"
	"pracademy/internal/repository"
)

// TutorialPatch carries the optional fields of a partial update. Nil
// means "leave unchanged".
type TutorialPatch struct {
	Title        *string
	Description  *string
	VideoURL     *string
	ThumbnailURL *string
	SubtitleURL  *string
	Category     *string
	Difficulty   *string
	Duration     *int
	Rating       *int
	Published    *bool
}

// TutorialService handles tutorial operations.
type TutorialService interface {
	List(ctx context.Context, category string, publishedOnly bool) ([]model.Tutorial, error)
	// Get returns the tutorial and bumps its view counter. The returned
	// row carries the pre-increment count, matching the historical wire
	// behavior.
	Get(ctx context.Context, id uint) (*model.Tutorial, error)
	Create(ctx context.Context, tutorial *model.Tutorial) error
	Update(ctx context.Context, id uint, patch TutorialPatch) (*model.Tutorial, error)
	Delete(ctx context.Context, id uint) error
}

type tutorialService struct {
	repo repository.TutorialRepository
}

// NewTutorialService creates a new tutorial service.
func NewTutorialService(repo repository.TutorialRepository) TutorialService {
	return &tutorialService{repo: repo}
}

// List returns tutorials, newest first.
func (s *tutorialService) List(ctx context.Context, category string, publishedOnly bool) ([]model.Tutorial, error) {
	return s.repo.List(ctx, category, publishedOnly)
}

// Get retrieves one tutorial and increments its views as a side effect
// of the read. Tutorials are never served from cache: the counter must
// reach the store on every read.
func (s *tutorialService) Get(ctx context.Context, id uint) (*model.Tutorial, error) {
	tutorial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTutorialNotFound
		}
		return nil, err
	}
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return tutorial, nil
}

// Create persists a new tutorial.
func (s *tutorialService) Create(ctx context.Context, tutorial *model.Tutorial) error {
	return s.repo.Create(ctx, tutorial)
}

// Update applies a partial update over the stored row.
func (s *tutorialService) Update(ctx context.Context, id uint, patch TutorialPatch) (*model.Tutorial, error) {
	tutorial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTutorialNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		tutorial.Title = *patch.Title
	}
	if patch.Description != nil {
		tutorial.Description = *patch.Description
	}
	if patch.VideoURL != nil {
		tutorial.VideoURL = *patch.VideoURL
	}
	if patch.ThumbnailURL != nil {
		tutorial.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.SubtitleURL != nil {
		tutorial.SubtitleURL = *patch.SubtitleURL
	}
	if patch.Category != nil {
		tutorial.Category = *patch.Category
	}
	if patch.Difficulty != nil {
		tutorial.Difficulty = *patch.Difficulty
	}
	if patch.Duration != nil {
		tutorial.Duration = *patch.Duration
	}
	if patch.Rating != nil {
		tutorial.Rating = *patch.Rating
	}
	if patch.Published != nil {
		tutorial.Published = *patch.Published
	}

	if err := s.repo.Update(ctx, tutorial); err != nil {
		return nil, err
	}
	return tutorial, nil
}

// Delete removes a tutorial; missing ids surface as not-found.
func (s *tutorialService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrTutorialNotFound
	}
	return nil
}
