package service

import (
	"context"

	"gorm.io/gorm"

	"pracademy/internal/errors"
	"pracademy/internal/model"
	"pracademy/internal/repository"
)

// ProgressService handles the learning-path progress tracker.
type ProgressService interface {
	// Upsert records completion/watch time for one (user, tutorial)
	// pair. At most one row exists per pair; the later write wins.
	Upsert(ctx context.Context, userID, tutorialID uint, completed bool, watchTime int) (*model.UserProgress, error)
	ListByUser(ctx context.Context, userID uint) ([]model.UserProgress, error)
}

type progressService struct {
	repo         repository.ProgressRepository
	userRepo     repository.UserRepository
	tutorialRepo repository.TutorialRepository
}

// NewProgressService creates a new progress service.
func NewProgressService(
	repo repository.ProgressRepository,
	userRepo repository.UserRepository,
	tutorialRepo repository.TutorialRepository,
) ProgressService {
	return &progressService{
		repo:         repo,
		userRepo:     userRepo,
		tutorialRepo: tutorialRepo,
	}
}

// Upsert validates both foreign keys, then writes atomically.
func (s *progressService) Upsert(ctx context.Context, userID, tutorialID uint, completed bool, watchTime int) (*model.UserProgress, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.tutorialRepo.FindByID(ctx, tutorialID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTutorialNotFound
		}
		return nil, err
	}

	return s.repo.Upsert(ctx, &model.UserProgress{
		UserID:     userID,
		TutorialID: tutorialID,
		Completed:  completed,
		WatchTime:  watchTime,
	})
}

// ListByUser returns all progress rows for a user, most recent first.
func (s *progressService) ListByUser(ctx context.Context, userID uint) ([]model.UserProgress, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}
