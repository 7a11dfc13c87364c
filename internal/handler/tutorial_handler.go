package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pracademy/internal/errors"
	"pracademy/internal/model"
	"pracademy/internal/service"
)

// TutorialHandler handles tutorial endpoints.
type TutorialHandler struct {
	tutorialService service.TutorialService
}

// NewTutorialHandler creates a new tutorial handler.
func NewTutorialHandler(tutorialService service.TutorialService) *TutorialHandler {
	return &TutorialHandler{tutorialService: tutorialService}
}

// CreateTutorialRequest represents a tutorial creation request.
// Views and rating start at zero; they are never client-assigned.
type CreateTutorialRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl" validate:"required"`
	ThumbnailURL string `json:"thumbnailUrl"`
	SubtitleURL  string `json:"subtitleUrl"`
	Category     string `json:"category" validate:"required"`
	Difficulty   string `json:"difficulty" validate:"required"`
	Duration     int    `json:"duration" validate:"gte=0"`
	Published    *bool  `json:"published"`
}

// UpdateTutorialRequest represents a partial tutorial update; absent
// fields are left unchanged.
type UpdateTutorialRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"videoUrl" validate:"omitempty,min=1"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	SubtitleURL  *string `json:"subtitleUrl"`
	Category     *string `json:"category" validate:"omitempty,min=1"`
	Difficulty   *string `json:"difficulty" validate:"omitempty,min=1"`
	Duration     *int    `json:"duration" validate:"omitempty,gte=0"`
	Rating       *int    `json:"rating" validate:"omitempty,gte=0,lte=50"`
	Published    *bool   `json:"published"`
}

// MessageResponse is the body of message-only success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// List godoc
// @Summary List published tutorials
// @Tags tutorials
// @Produce json
// @Param category query string false "Category filter; 전체 or empty returns all"
// @Success 200 {array} model.Tutorial
// @Failure 500 {object} errors.ErrorResponse
// @Router /tutorials [get]
func (h *TutorialHandler) List(c echo.Context) error {
	tutorials, err := h.tutorialService.List(c.Request().Context(), c.QueryParam("category"), true)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tutorials)
}

// ListAll godoc
// @Summary List all tutorials including unpublished
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param category query string false "Category filter; 전체 or empty returns all"
// @Success 200 {array} model.Tutorial
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/tutorials [get]
func (h *TutorialHandler) ListAll(c echo.Context) error {
	tutorials, err := h.tutorialService.List(c.Request().Context(), c.QueryParam("category"), false)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tutorials)
}

// Get godoc
// @Summary Get one tutorial; increments its view counter
// @Tags tutorials
// @Produce json
// @Param id path int true "Tutorial ID"
// @Success 200 {object} model.Tutorial
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tutorials/{id} [get]
func (h *TutorialHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	tutorial, err := h.tutorialService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tutorial)
}

// Create godoc
// @Summary Create a tutorial
// @Tags tutorials
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body CreateTutorialRequest true "Tutorial data"
// @Success 200 {object} model.Tutorial
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tutorials [post]
func (h *TutorialHandler) Create(c echo.Context) error {
	var req CreateTutorialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "튜토리얼 생성 중 오류가 발생했습니다.",
			Code:    "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "필수 항목이 누락되었습니다.",
			Code:    "VALIDATION_ERROR",
		})
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}
	tutorial := &model.Tutorial{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		SubtitleURL:  req.SubtitleURL,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		Duration:     req.Duration,
		Published:    published,
	}
	if err := h.tutorialService.Create(c.Request().Context(), tutorial); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tutorial)
}

// Update godoc
// @Summary Update a tutorial (partial)
// @Tags tutorials
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path int true "Tutorial ID"
// @Param request body UpdateTutorialRequest true "Fields to change"
// @Success 200 {object} model.Tutorial
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tutorials/{id} [put]
func (h *TutorialHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateTutorialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "튜토리얼 수정 중 오류가 발생했습니다.",
			Code:    "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "잘못된 수정 요청입니다.",
			Code:    "VALIDATION_ERROR",
		})
	}

	tutorial, err := h.tutorialService.Update(c.Request().Context(), id, service.TutorialPatch{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		SubtitleURL:  req.SubtitleURL,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		Duration:     req.Duration,
		Rating:       req.Rating,
		Published:    req.Published,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tutorial)
}

// Delete godoc
// @Summary Delete a tutorial
// @Tags tutorials
// @Produce json
// @Security AdminKey
// @Param id path int true "Tutorial ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tutorials/{id} [delete]
func (h *TutorialHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.tutorialService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "튜토리얼이 삭제되었습니다."})
}

// parseID extracts the :id path param as an unsigned integer.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "잘못된 ID입니다.",
			Code:    "INVALID_ID",
		})
	}
	return uint(id), nil
}
