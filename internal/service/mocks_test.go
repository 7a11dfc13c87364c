package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pracademy/internal/model"
)

// MockTutorialRepository is a mock implementation of repository.TutorialRepository.
type MockTutorialRepository struct {
	mock.Mock
}

func (m *MockTutorialRepository) List(ctx context.Context, category string, publishedOnly bool) ([]model.Tutorial, error) {
	args := m.Called(ctx, category, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tutorial), args.Error(1)
}

func (m *MockTutorialRepository) FindByID(ctx context.Context, id uint) (*model.Tutorial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tutorial), args.Error(1)
}

func (m *MockTutorialRepository) Create(ctx context.Context, tutorial *model.Tutorial) error {
	args := m.Called(ctx, tutorial)
	return args.Error(0)
}

func (m *MockTutorialRepository) Update(ctx context.Context, tutorial *model.Tutorial) error {
	args := m.Called(ctx, tutorial)
	return args.Error(0)
}

func (m *MockTutorialRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTutorialRepository) IncrementViews(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTutorialRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTutorialRepository) SumViews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAppRepository is a mock implementation of repository.AppRepository.
type MockAppRepository struct {
	mock.Mock
}

func (m *MockAppRepository) List(ctx context.Context, category string) ([]model.AppGalleryItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AppGalleryItem), args.Error(1)
}

func (m *MockAppRepository) FindByID(ctx context.Context, id uint) (*model.AppGalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppGalleryItem), args.Error(1)
}

func (m *MockAppRepository) Create(ctx context.Context, app *model.AppGalleryItem) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockAppRepository) Update(ctx context.Context, app *model.AppGalleryItem) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockAppRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockProgressRepository is a mock implementation of repository.ProgressRepository.
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Upsert(ctx context.Context, progress *model.UserProgress) (*model.UserProgress, error) {
	args := m.Called(ctx, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) ListByUser(ctx context.Context, userID uint) ([]model.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) FindByUserAndTutorial(ctx context.Context, userID, tutorialID uint) (*model.UserProgress, error) {
	args := m.Called(ctx, userID, tutorialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProgress), args.Error(1)
}

// MockSettingRepository is a mock implementation of repository.SettingRepository.
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context) (*model.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Setting), args.Error(1)
}

func (m *MockSettingRepository) EnsureAdminKey(ctx context.Context, bootstrapKey string) error {
	args := m.Called(ctx, bootstrapKey)
	return args.Error(0)
}

func (m *MockSettingRepository) UpdateAdminKey(ctx context.Context, newKey string) error {
	args := m.Called(ctx, newKey)
	return args.Error(0)
}
