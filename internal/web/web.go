// Package web serves the public marketing pages and the admin panel
// shell. Views are presentational: they render service output or call
// the JSON API from the browser, and own no business logic.
package web

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"pracademy/internal/model"
	"pracademy/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// TutorialCategories are the category suggestions shown as tabs. The
// server never rejects other values; these are client-side hints only.
var TutorialCategories = []string{model.CategoryAll, "기초", "응용", "고급"}

// AppCategories are the gallery tab suggestions.
var AppCategories = []string{model.CategoryAll, "교육", "비즈니스", "정부/공공"}

// Renderer adapts the embedded template set to echo.Renderer.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Handler renders the site pages.
type Handler struct {
	tutorialService service.TutorialService
	appService      service.AppService
}

// NewHandler creates the page handler.
func NewHandler(tutorialService service.TutorialService, appService service.AppService) *Handler {
	return &Handler{tutorialService: tutorialService, appService: appService}
}

// Register sets the renderer and mounts the page routes.
func (h *Handler) Register(e *echo.Echo) {
	e.Renderer = NewRenderer()
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))
	e.GET("/", h.Home)
	e.GET("/tutorials", h.Tutorials)
	e.GET("/apps", h.Apps)
	e.GET("/admin", h.Admin)
}

type homeData struct {
	Paths           []LearningPath
	FeaturedApps    []model.AppGalleryItem
	LatestTutorials []model.Tutorial
}

type tutorialsData struct {
	Categories []string
	Selected   string
	Tutorials  []model.Tutorial
}

type appsData struct {
	Categories []string
	Selected   string
	Apps       []model.AppGalleryItem
}

// Home renders the marketing page: learning paths, featured apps, and
// the latest published tutorials.
func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	apps, err := h.appService.List(ctx, "")
	if err != nil {
		return err
	}
	featured := make([]model.AppGalleryItem, 0, len(apps))
	for _, app := range apps {
		if app.Featured {
			featured = append(featured, app)
		}
	}

	tutorials, err := h.tutorialService.List(ctx, "", true)
	if err != nil {
		return err
	}
	if len(tutorials) > 6 {
		tutorials = tutorials[:6]
	}

	return c.Render(http.StatusOK, "home", homeData{
		Paths:           LearningPaths,
		FeaturedApps:    featured,
		LatestTutorials: tutorials,
	})
}

// Tutorials renders the tutorial grid with category tabs.
func (h *Handler) Tutorials(c echo.Context) error {
	selected := c.QueryParam("category")
	if selected == "" {
		selected = model.CategoryAll
	}
	tutorials, err := h.tutorialService.List(c.Request().Context(), selected, true)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "tutorials", tutorialsData{
		Categories: TutorialCategories,
		Selected:   selected,
		Tutorials:  tutorials,
	})
}

// Apps renders the app gallery grid with category tabs.
func (h *Handler) Apps(c echo.Context) error {
	selected := c.QueryParam("category")
	if selected == "" {
		selected = model.CategoryAll
	}
	apps, err := h.appService.List(c.Request().Context(), selected)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "apps", appsData{
		Categories: AppCategories,
		Selected:   selected,
		Apps:       apps,
	})
}

// Admin renders the admin panel shell. The admin key is entered in the
// browser, held in page memory only, and re-sent with every API call.
func (h *Handler) Admin(c echo.Context) error {
	return c.Render(http.StatusOK, "admin", nil)
}
