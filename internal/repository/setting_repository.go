package repository

import (
	"context"

	"gorm.io/gorm"

	"pracademy/internal/model"
)

// SettingRepository manages the singleton settings row holding the
// mutable admin key.
type SettingRepository interface {
	Get(ctx context.Context) (*model.Setting, error)
	EnsureAdminKey(ctx context.Context, bootstrapKey string) error
	UpdateAdminKey(ctx context.Context, newKey string) error
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository.
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Get returns the settings row.
func (r *settingRepository) Get(ctx context.Context) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.WithContext(ctx).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// EnsureAdminKey seeds the settings row from the bootstrap key when no
// row exists yet. An existing row always wins over the environment.
func (r *settingRepository) EnsureAdminKey(ctx context.Context, bootstrapKey string) error {
	var setting model.Setting
	err := r.db.WithContext(ctx).First(&setting).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(&model.Setting{AdminKey: bootstrapKey}).Error
}

// UpdateAdminKey persists a new admin key, effective for the next
// request on every instance. The update is scoped to the singleton row
// by primary key.
func (r *settingRepository) UpdateAdminKey(ctx context.Context, newKey string) error {
	setting, err := r.Get(ctx)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(setting).
		Update("admin_key", newKey).Error
}
