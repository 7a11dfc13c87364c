package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pracademy/internal/errors"
	"pracademy/internal/service"
)

// AdminKeyContextKey is where the admin middleware stashes the verified
// key for handlers that need to re-present it (key rotation).
const AdminKeyContextKey = "adminKey"

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AdminLoginRequest carries the admin key for a verification check.
type AdminLoginRequest struct {
	AdminKey string `json:"adminKey" validate:"required"`
}

// ChangePasswordRequest carries the replacement admin key.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required"`
}

// AdminAuthResponse is the verification result body.
type AdminAuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerifyAdmin godoc
// @Summary Verify the admin key
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin key"
// @Success 200 {object} AdminAuthResponse
// @Failure 401 {object} AdminAuthResponse
// @Router /auth/admin [post]
func (h *AuthHandler) VerifyAdmin(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "잘못된 요청입니다.",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := h.authService.Verify(c.Request().Context(), req.AdminKey); err != nil {
		return c.JSON(http.StatusUnauthorized, AdminAuthResponse{
			Success: false,
			Message: "올바르지 않은 관리자 키입니다.",
		})
	}
	return c.JSON(http.StatusOK, AdminAuthResponse{
		Success: true,
		Message: "관리자 인증이 완료되었습니다.",
	})
}

// ChangePassword godoc
// @Summary Rotate the admin key
// @Tags auth
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body ChangePasswordRequest true "New admin key (min 6 chars)"
// @Success 200 {object} AdminAuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/admin/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "잘못된 요청입니다.",
			Code:    "INVALID_REQUEST",
		})
	}

	currentKey, _ := c.Get(AdminKeyContextKey).(string)
	if err := h.authService.ChangeKey(c.Request().Context(), currentKey, req.NewPassword); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, AdminAuthResponse{
		Success: true,
		Message: "관리자 비밀번호가 성공적으로 변경되었습니다.",
	})
}
