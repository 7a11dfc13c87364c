package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"

	"pracademy/internal/model"
	"pracademy/internal/service"
)

// testValidator mirrors the validator wiring the router installs.
type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestValidator() *testValidator {
	return &testValidator{validator: validator.New()}
}

// MockTutorialService is a mock implementation of service.TutorialService.
type MockTutorialService struct {
	mock.Mock
}

func (m *MockTutorialService) List(ctx context.Context, category string, publishedOnly bool) ([]model.Tutorial, error) {
	args := m.Called(ctx, category, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tutorial), args.Error(1)
}

func (m *MockTutorialService) Get(ctx context.Context, id uint) (*model.Tutorial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tutorial), args.Error(1)
}

func (m *MockTutorialService) Create(ctx context.Context, tutorial *model.Tutorial) error {
	args := m.Called(ctx, tutorial)
	return args.Error(0)
}

func (m *MockTutorialService) Update(ctx context.Context, id uint, patch service.TutorialPatch) (*model.Tutorial, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tutorial), args.Error(1)
}

func (m *MockTutorialService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAppService is a mock implementation of service.AppService.
type MockAppService struct {
	mock.Mock
}

func (m *MockAppService) List(ctx context.Context, category string) ([]model.AppGalleryItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AppGalleryItem), args.Error(1)
}

func (m *MockAppService) Get(ctx context.Context, id uint) (*model.AppGalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppGalleryItem), args.Error(1)
}

func (m *MockAppService) Create(ctx context.Context, app *model.AppGalleryItem) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockAppService) Update(ctx context.Context, id uint, patch service.AppPatch) (*model.AppGalleryItem, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppGalleryItem), args.Error(1)
}

func (m *MockAppService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProgressService is a mock implementation of service.ProgressService.
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) Upsert(ctx context.Context, userID, tutorialID uint, completed bool, watchTime int) (*model.UserProgress, error) {
	args := m.Called(ctx, userID, tutorialID, completed, watchTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProgress), args.Error(1)
}

func (m *MockProgressService) ListByUser(ctx context.Context, userID uint) ([]model.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserProgress), args.Error(1)
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Verify(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAuthService) ChangeKey(ctx context.Context, currentKey, newKey string) error {
	args := m.Called(ctx, currentKey, newKey)
	return args.Error(0)
}
