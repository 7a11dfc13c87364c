package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pracademy/internal/cache"
	"pracademy/internal/errors"
	"pracademy/internal/model"
	"pracademy/internal/repository"
)

const appCacheTTL = 5 * time.Minute

// AppPatch carries the optional fields of a partial gallery update.
type AppPatch struct {
	Name          *string
	Description   *string
	ScreenshotURL *string
	PartyrockLink *string
	Category      *string
	Difficulty    *string
	UseCase       *string
	Rating        *int
	Featured      *bool
}

// AppService handles app gallery operations.
type AppService interface {
	List(ctx context.Context, category string) ([]model.AppGalleryItem, error)
	Get(ctx context.Context, id uint) (*model.AppGalleryItem, error)
	Create(ctx context.Context, app *model.AppGalleryItem) error
	Update(ctx context.Context, id uint, patch AppPatch) (*model.AppGalleryItem, error)
	Delete(ctx context.Context, id uint) error
}

type appService struct {
	repo  repository.AppRepository
	cache *cache.Client
}

// NewAppService creates a new app gallery service.
func NewAppService(repo repository.AppRepository, cache *cache.Client) AppService {
	return &appService{repo: repo, cache: cache}
}

func (s *appService) cacheKey(id uint) string {
	return fmt.Sprintf("app:%d", id)
}

// List returns gallery items, newest first.
func (s *appService) List(ctx context.Context, category string) ([]model.AppGalleryItem, error) {
	return s.repo.List(ctx, category)
}

// Get retrieves a gallery item by ID with fail-safe caching. Gallery
// items have no read side effects, so a cached read is equivalent to a
// store read.
func (s *appService) Get(ctx context.Context, id uint) (*model.AppGalleryItem, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.AppGalleryItem
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAppNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(app); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, appCacheTTL)
	}

	return app, nil
}

// Create persists a new gallery item.
func (s *appService) Create(ctx context.Context, app *model.AppGalleryItem) error {
	return s.repo.Create(ctx, app)
}

// Update applies a partial update and invalidates the cached copy.
func (s *appService) Update(ctx context.Context, id uint, patch AppPatch) (*model.AppGalleryItem, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAppNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		app.Name = *patch.Name
	}
	if patch.Description != nil {
		app.Description = *patch.Description
	}
	if patch.ScreenshotURL != nil {
		app.ScreenshotURL = *patch.ScreenshotURL
	}
	if patch.PartyrockLink != nil {
		app.PartyrockLink = *patch.PartyrockLink
	}
	if patch.Category != nil {
		app.Category = *patch.Category
	}
	if patch.Difficulty != nil {
		app.Difficulty = *patch.Difficulty
	}
	if patch.UseCase != nil {
		app.UseCase = *patch.UseCase
	}
	if patch.Rating != nil {
		app.Rating = *patch.Rating
	}
	if patch.Featured != nil {
		app.Featured = *patch.Featured
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return app, nil
}

// Delete removes a gallery item and invalidates the cached copy.
func (s *appService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrAppNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
