package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pracademy/internal/errors"
	"pracademy/internal/model"
	"pracademy/internal/service"
)

// AppHandler handles app gallery endpoints.
type AppHandler struct {
	appService service.AppService
}

// NewAppHandler creates a new app gallery handler.
func NewAppHandler(appService service.AppService) *AppHandler {
	return &AppHandler{appService: appService}
}

// CreateAppRequest represents a gallery item creation request.
// Rating starts at zero and featured at false; neither is
// client-assigned on create.
type CreateAppRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	ScreenshotURL string `json:"screenshotUrl"`
	PartyrockLink string `json:"partyrockLink"`
	Category      string `json:"category" validate:"required"`
	Difficulty    string `json:"difficulty" validate:"required"`
	UseCase       string `json:"useCase"`
}

// UpdateAppRequest represents a partial gallery item update.
type UpdateAppRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Description   *string `json:"description"`
	ScreenshotURL *string `json:"screenshotUrl"`
	PartyrockLink *string `json:"partyrockLink"`
	Category      *string `json:"category" validate:"omitempty,min=1"`
	Difficulty    *string `json:"difficulty" validate:"omitempty,min=1"`
	UseCase       *string `json:"useCase"`
	Rating        *int    `json:"rating" validate:"omitempty,gte=0,lte=50"`
	Featured      *bool   `json:"featured"`
}

// List godoc
// @Summary List app gallery items
// @Tags apps
// @Produce json
// @Param category query string false "Category filter; 전체 or empty returns all"
// @Success 200 {array} model.AppGalleryItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /apps [get]
func (h *AppHandler) List(c echo.Context) error {
	apps, err := h.appService.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, apps)
}

// Get godoc
// @Summary Get one app gallery item
// @Tags apps
// @Produce json
// @Param id path int true "App ID"
// @Success 200 {object} model.AppGalleryItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /apps/{id} [get]
func (h *AppHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	app, err := h.appService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, app)
}

// Create godoc
// @Summary Create an app gallery item
// @Tags apps
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body CreateAppRequest true "App data"
// @Success 200 {object} model.AppGalleryItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /apps [post]
func (h *AppHandler) Create(c echo.Context) error {
	var req CreateAppRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "앱 생성 중 오류가 발생했습니다.",
			Code:    "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "필수 항목이 누락되었습니다.",
			Code:    "VALIDATION_ERROR",
		})
	}

	app := &model.AppGalleryItem{
		Name:          req.Name,
		Description:   req.Description,
		ScreenshotURL: req.ScreenshotURL,
		PartyrockLink: req.PartyrockLink,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		UseCase:       req.UseCase,
	}
	if err := h.appService.Create(c.Request().Context(), app); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, app)
}

// Update godoc
// @Summary Update an app gallery item (partial)
// @Tags apps
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path int true "App ID"
// @Param request body UpdateAppRequest true "Fields to change"
// @Success 200 {object} model.AppGalleryItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /apps/{id} [put]
func (h *AppHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateAppRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "앱 수정 중 오류가 발생했습니다.",
			Code:    "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "잘못된 수정 요청입니다.",
			Code:    "VALIDATION_ERROR",
		})
	}

	app, err := h.appService.Update(c.Request().Context(), id, service.AppPatch{
		Name:          req.Name,
		Description:   req.Description,
		ScreenshotURL: req.ScreenshotURL,
		PartyrockLink: req.PartyrockLink,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		UseCase:       req.UseCase,
		Rating:        req.Rating,
		Featured:      req.Featured,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, app)
}

// Delete godoc
// @Summary Delete an app gallery item
// @Tags apps
// @Produce json
// @Security AdminKey
// @Param id path int true "App ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /apps/{id} [delete]
func (h *AppHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.appService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "앱이 삭제되었습니다."})
}
