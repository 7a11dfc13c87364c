package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pracademy/internal/errors"
)

func TestAuthHandler_VerifyAdmin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		verifyErr      error
		expectedStatus int
		expectedOK     bool
	}{
		{
			name:           "correct key",
			body:           `{"adminKey":"correct-horse"}`,
			expectedStatus: http.StatusOK,
			expectedOK:     true,
		},
		{
			name:           "wrong key",
			body:           `{"adminKey":"guess"}`,
			verifyErr:      errors.ErrInvalidAdminKey,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := new(MockAuthService)
			mockAuth.On("Verify", mock.Anything, mock.AnythingOfType("string")).Return(tt.verifyErr)
			h := NewAuthHandler(mockAuth)

			c, rec := newTestContext(t, http.MethodPost, "/api/auth/admin", tt.body)
			require.NoError(t, h.VerifyAdmin(c))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var resp AdminAuthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedOK, resp.Success)
			mockAuth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_ChangePasswordUsesContextKey(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("ChangeKey", mock.Anything, "current-secret", "brand-new-key").Return(nil)
	h := NewAuthHandler(mockAuth)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/admin/change-password", `{"newPassword":"brand-new-key"}`)
	c.Set(AdminKeyContextKey, "current-secret")

	require.NoError(t, h.ChangePassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockAuth.AssertExpectations(t)
}
