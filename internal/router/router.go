package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pracademy/docs"
	"pracademy/internal/config"
	"pracademy/internal/handler"
	"pracademy/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	tutorialHandler *handler.TutorialHandler,
	appHandler *handler.AppHandler,
	progressHandler *handler.ProgressHandler,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/tutorials", tutorialHandler.List)
	api.GET("/tutorials/:id", tutorialHandler.Get)
	api.GET("/apps", appHandler.List)
	api.GET("/apps/:id", appHandler.Get)
	api.POST("/auth/admin", authHandler.VerifyAdmin)
	api.POST("/progress", progressHandler.Upsert)
	api.GET("/progress/:userId", progressHandler.ListByUser)

	// Admin routes: every call re-proves the shared secret, there is no
	// session or token state.
	admin := api.Group("", AdminKey(authService))

	admin.GET("/admin/tutorials", tutorialHandler.ListAll)
	admin.POST("/tutorials", tutorialHandler.Create)
	admin.PUT("/tutorials/:id", tutorialHandler.Update)
	admin.PATCH("/tutorials/:id", tutorialHandler.Update)
	admin.DELETE("/tutorials/:id", tutorialHandler.Delete)

	admin.POST("/apps", appHandler.Create)
	admin.PUT("/apps/:id", appHandler.Update)
	admin.PATCH("/apps/:id", appHandler.Update)
	admin.DELETE("/apps/:id", appHandler.Delete)

	admin.POST("/auth/admin/change-password", authHandler.ChangePassword)
	admin.GET("/admin/stats", adminHandler.Stats)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
