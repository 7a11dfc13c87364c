package repository

import (
	"context"

	"gorm.io/gorm"

	"pracademy/internal/model"
)

// AppRepository defines app gallery persistence operations.
type AppRepository interface {
	List(ctx context.Context, category string) ([]model.AppGalleryItem, error)
	FindByID(ctx context.Context, id uint) (*model.AppGalleryItem, error)
	Create(ctx context.Context, app *model.AppGalleryItem) error
	Update(ctx context.Context, app *model.AppGalleryItem) error
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type appRepository struct {
	db *gorm.DB
}

// NewAppRepository creates a new app gallery repository.
func NewAppRepository(db *gorm.DB) AppRepository {
	return &appRepository{db: db}
}

// List returns gallery items newest first, optionally filtered by
// category; the sentinel model.CategoryAll returns everything.
func (r *appRepository) List(ctx context.Context, category string) ([]model.AppGalleryItem, error) {
	q := r.db.WithContext(ctx).Model(&model.AppGalleryItem{})
	if category != "" && category != model.CategoryAll {
		q = q.Where("category = ?", category)
	}
	var apps []model.AppGalleryItem
	if err := q.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// FindByID finds a gallery item by ID.
func (r *appRepository) FindByID(ctx context.Context, id uint) (*model.AppGalleryItem, error) {
	var app model.AppGalleryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// Create creates a new gallery item.
func (r *appRepository) Create(ctx context.Context, app *model.AppGalleryItem) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// Update saves an existing gallery item.
func (r *appRepository) Update(ctx context.Context, app *model.AppGalleryItem) error {
	return r.db.WithContext(ctx).Save(app).Error
}

// Delete removes a gallery item. Returns false when no row matched.
func (r *appRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.AppGalleryItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Count returns the total number of gallery items.
func (r *appRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.AppGalleryItem{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
