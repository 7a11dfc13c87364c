package router

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "pracademy/internal/errors"
	"pracademy/internal/handler"
	"pracademy/internal/service"
)

// HeaderAdminKey is the request header carrying the shared admin secret.
const HeaderAdminKey = "X-Admin-Key"

// adminKeyBody is the body-field fallback for clients that send the key
// as `adminKey` in the JSON payload instead of the header.
type adminKeyBody struct {
	AdminKey string `json:"adminKey"`
}

// AdminKey builds the middleware gating all mutating/admin routes. The
// key is taken from the X-Admin-Key header, falling back to an adminKey
// JSON body field, and checked against the stored secret on every call.
func AdminKey(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderAdminKey)
			if key == "" {
				key = adminKeyFromBody(c)
			}

			if err := authService.Verify(c.Request().Context(), key); err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(handler.AdminKeyContextKey, key)
			return next(c)
		}
	}
}

// adminKeyFromBody peeks at a JSON body for the adminKey field, leaving
// the body readable for the handler's own Bind.
func adminKeyFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil || !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return ""
	}
	payload, err := io.ReadAll(req.Body)
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(bytes.NewReader(payload))

	var body adminKeyBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.AdminKey
}
