package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pracademy/internal/model"
)

// ProgressRepository defines user progress persistence operations.
type ProgressRepository interface {
	Upsert(ctx context.Context, progress *model.UserProgress) (*model.UserProgress, error)
	ListByUser(ctx context.Context, userID uint) ([]model.UserProgress, error)
	FindByUserAndTutorial(ctx context.Context, userID, tutorialID uint) (*model.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Upsert writes the progress row for (UserID, TutorialID) in a single
// statement against the pair's unique index, so two concurrent writers
// cannot both insert. The later write wins.
func (r *progressRepository) Upsert(ctx context.Context, progress *model.UserProgress) (*model.UserProgress, error) {
	progress.LastWatched = time.Now()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "tutorial_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed", "watch_time", "last_watched",
		}),
	}).Create(progress).Error
	if err != nil {
		return nil, err
	}
	// Re-read so the caller sees the surviving row (and its id) after a
	// conflict resolution.
	return r.FindByUserAndTutorial(ctx, progress.UserID, progress.TutorialID)
}

// ListByUser returns all progress rows for a user.
func (r *progressRepository) ListByUser(ctx context.Context, userID uint) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_watched DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByUserAndTutorial returns the progress row for a pair.
func (r *progressRepository) FindByUserAndTutorial(ctx context.Context, userID, tutorialID uint) (*model.UserProgress, error) {
	var row model.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tutorial_id = ?", userID, tutorialID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
