package service

import (
	"context"

	"pracademy/internal/model"
	"pracademy/internal/repository"
)

const recentLimit = 5

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalTutorials  int64                  `json:"totalTutorials"`
	TotalApps       int64                  `json:"totalApps"`
	TotalViews      int64                  `json:"totalViews"`
	RecentTutorials []model.Tutorial       `json:"recentTutorials"`
	RecentApps      []model.AppGalleryItem `json:"recentApps"`
}

// StatsService builds the admin dashboard aggregate.
type StatsService interface {
	Stats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	tutorialRepo repository.TutorialRepository
	appRepo      repository.AppRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(tutorialRepo repository.TutorialRepository, appRepo repository.AppRepository) StatsService {
	return &statsService{tutorialRepo: tutorialRepo, appRepo: appRepo}
}

// Stats returns entity counts, the view sum, and the five most recent
// rows of each catalog (unpublished included, this is an admin view).
func (s *statsService) Stats(ctx context.Context) (*Stats, error) {
	totalTutorials, err := s.tutorialRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalApps, err := s.appRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.tutorialRepo.SumViews(ctx)
	if err != nil {
		return nil, err
	}

	tutorials, err := s.tutorialRepo.List(ctx, "", false)
	if err != nil {
		return nil, err
	}
	apps, err := s.appRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(tutorials) > recentLimit {
		tutorials = tutorials[:recentLimit]
	}
	if len(apps) > recentLimit {
		apps = apps[:recentLimit]
	}

	return &Stats{
		TotalTutorials:  totalTutorials,
		TotalApps:       totalApps,
		TotalViews:      totalViews,
		RecentTutorials: tutorials,
		RecentApps:      apps,
	}, nil
}
