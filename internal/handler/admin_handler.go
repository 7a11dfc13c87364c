package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pracademy/internal/errors"
	"pracademy/internal/service"
)

// AdminHandler handles the admin dashboard endpoints.
type AdminHandler struct {
	statsService service.StatsService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(statsService service.StatsService) *AdminHandler {
	return &AdminHandler{statsService: statsService}
}

// Stats godoc
// @Summary Admin dashboard aggregate
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} service.Stats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.statsService.Stats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}
