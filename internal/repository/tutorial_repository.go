package repository

import (
	"context"

	"gorm.io/gorm"

	"pracademy/internal/model"
)

// TutorialRepository defines tutorial persistence operations.
type TutorialRepository interface {
	List(ctx context.Context, category string, publishedOnly bool) ([]model.Tutorial, error)
	FindByID(ctx context.Context, id uint) (*model.Tutorial, error)
	Create(ctx context.Context, tutorial *model.Tutorial) error
	Update(ctx context.Context, tutorial *model.Tutorial) error
	Delete(ctx context.Context, id uint) (bool, error)
	IncrementViews(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	SumViews(ctx context.Context) (int64, error)
}

type tutorialRepository struct {
	db *gorm.DB
}

// NewTutorialRepository creates a new tutorial repository.
func NewTutorialRepository(db *gorm.DB) TutorialRepository {
	return &tutorialRepository{db: db}
}

// List returns tutorials newest first. An empty category or the
// sentinel model.CategoryAll disables the category filter.
func (r *tutorialRepository) List(ctx context.Context, category string, publishedOnly bool) ([]model.Tutorial, error) {
	q := r.db.WithContext(ctx).Model(&model.Tutorial{})
	if category != "" && category != model.CategoryAll {
		q = q.Where("category = ?", category)
	}
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var tutorials []model.Tutorial
	if err := q.Order("created_at DESC").Find(&tutorials).Error; err != nil {
		return nil, err
	}
	return tutorials, nil
}

// FindByID finds a tutorial by ID.
func (r *tutorialRepository) FindByID(ctx context.Context, id uint) (*model.Tutorial, error) {
	var tutorial model.Tutorial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tutorial).Error; err != nil {
		return nil, err
	}
	return &tutorial, nil
}

// Create creates a new tutorial.
func (r *tutorialRepository) Create(ctx context.Context, tutorial *model.Tutorial) error {
	return r.db.WithContext(ctx).Create(tutorial).Error
}

// Update saves an existing tutorial.
func (r *tutorialRepository) Update(ctx context.Context, tutorial *model.Tutorial) error {
	return r.db.WithContext(ctx).Save(tutorial).Error
}

// Delete removes a tutorial. Returns false when no row matched.
func (r *tutorialRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Tutorial{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IncrementViews bumps the view counter in a single UPDATE so
// concurrent reads cannot lose increments.
func (r *tutorialRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Tutorial{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// Count returns the total number of tutorials.
func (r *tutorialRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Tutorial{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// SumViews returns the sum of view counters across all tutorials.
func (r *tutorialRepository) SumViews(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Tutorial{}).
		Select("COALESCE(SUM(views), 0)").Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}
