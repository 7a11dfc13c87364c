package service

import (
	"context"
	"crypto/subtle"

	"pracademy/internal/errors"
	"pracademy/internal/repository"
)

const minAdminKeyLen = 6

// AuthService verifies and rotates the shared admin key. There is no
// session: every admin call re-proves the secret against the stored
// value, so a rotated key is live for the very next request on any
// instance.
type AuthService interface {
	Verify(ctx context.Context, key string) error
	ChangeKey(ctx context.Context, currentKey, newKey string) error
}

type authService struct {
	settings repository.SettingRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(settings repository.SettingRepository) AuthService {
	return &authService{settings: settings}
}

// Verify compares the supplied key against the stored admin key.
func (s *authService) Verify(ctx context.Context, key string) error {
	setting, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(setting.AdminKey)) != 1 {
		return errors.ErrInvalidAdminKey
	}
	return nil
}

// ChangeKey rotates the admin key after re-verifying the current one.
func (s *authService) ChangeKey(ctx context.Context, currentKey, newKey string) error {
	if err := s.Verify(ctx, currentKey); err != nil {
		return err
	}
	if len(newKey) < minAdminKeyLen {
		return errors.ErrWeakAdminKey
	}
	return s.settings.UpdateAdminKey(ctx, newKey)
}
