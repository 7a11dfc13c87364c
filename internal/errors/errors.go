package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTutorialNotFound is returned when a tutorial is not found.
	ErrTutorialNotFound = errors.New("tutorial not found")
	// ErrAppNotFound is returned when an app gallery item is not found.
	ErrAppNotFound = errors.New("app not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidAdminKey is returned when the supplied admin key does not match.
	ErrInvalidAdminKey = errors.New("invalid admin key")
	// ErrWeakAdminKey is returned when a new admin key fails the length rule.
	ErrWeakAdminKey = errors.New("admin key too short")
)

// ErrorResponse represents a standardized error response. Message is the
// user-facing (Korean) text; Code is a stable machine-readable tag.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrTutorialNotFound):
		return NewHTTPError(http.StatusNotFound, "튜토리얼을 찾을 수 없습니다.", "TUTORIAL_NOT_FOUND")
	case errors.Is(err, ErrAppNotFound):
		return NewHTTPError(http.StatusNotFound, "앱을 찾을 수 없습니다.", "APP_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "사용자를 찾을 수 없습니다.", "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidAdminKey):
		return NewHTTPError(http.StatusUnauthorized, "관리자 인증이 필요합니다.", "ADMIN_AUTH_REQUIRED")
	case errors.Is(err, ErrWeakAdminKey):
		return NewHTTPError(http.StatusBadRequest, "새 비밀번호는 최소 6자 이상이어야 합니다.", "WEAK_ADMIN_KEY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "서버 오류가 발생했습니다.", "INTERNAL_ERROR")
	}
}
