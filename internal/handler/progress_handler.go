package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pracademy/internal/errors"
	"pracademy/internal/service"
)

// ProgressHandler handles learning progress endpoints.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// UpsertProgressRequest records watch state for one tutorial.
type UpsertProgressRequest struct {
	UserID     uint `json:"userId" validate:"required"`
	TutorialID uint `json:"tutorialId" validate:"required"`
	Completed  bool `json:"completed"`
	WatchTime  int  `json:"watchTime" validate:"gte=0"`
}

// Upsert godoc
// @Summary Record progress for a (user, tutorial) pair
// @Tags progress
// @Accept json
// @Produce json
// @Param request body UpsertProgressRequest true "Progress data"
// @Success 200 {object} model.UserProgress
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /progress [post]
func (h *ProgressHandler) Upsert(c echo.Context) error {
	var req UpsertProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "잘못된 요청입니다.",
			Code:    "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "필수 항목이 누락되었습니다.",
			Code:    "VALIDATION_ERROR",
		})
	}

	progress, err := h.progressService.Upsert(c.Request().Context(), req.UserID, req.TutorialID, req.Completed, req.WatchTime)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, progress)
}

// ListByUser godoc
// @Summary List progress rows for a user
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} model.UserProgress
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /progress/{userId} [get]
func (h *ProgressHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "잘못된 ID입니다.",
			Code:    "INVALID_ID",
		})
	}
	rows, err := h.progressService.ListByUser(c.Request().Context(), uint(userID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rows)
}
