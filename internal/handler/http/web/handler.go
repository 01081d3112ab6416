// Package web отдает серверные страницы дашборда. Состояние страниц берется
// из того же сервиса сессий, что и JSON API, а действия пользователя
// отправляются из браузера в /api/v1.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/alert_dashboard/internal/config"
	v1 "github.com/shenikar/alert_dashboard/internal/handler/http/v1"
	"github.com/shenikar/alert_dashboard/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageOverview  = "overview"
	pageMap       = "map"
	pageEntity    = "entity"
	pageAlertInfo = "alert_info"
	pageError     = "error"
)

var pageNames = []string{pageOverview, pageMap, pageEntity, pageAlertInfo, pageError}

// navItem - пункт навигационной панели
type navItem struct {
	Title string
	Path  string
	Page  string
}

var navigation = []navItem{
	{Title: "Overview", Path: "/", Page: pageOverview},
	{Title: "Map", Path: "/map", Page: pageMap},
	{Title: "Entity", Path: "/entity", Page: pageEntity},
	{Title: "Alert Info", Path: "/alert-info", Page: pageAlertInfo},
}

// pageData - общие данные макета и данные конкретной страницы
type pageData struct {
	Title      string
	Page       string
	Nav        []navItem
	APIBase    string
	Operator   string
	StatusList []string
	Data       any
}

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	cfg              *config.Config
	pages            map[string]*template.Template
}

// NewHandler разбирает встроенные шаблоны; время на страницах
// показывается в зоне cfg.DisplayLocation.
func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger, cfg *config.Config) (*Handler, error) {
	loc := cfg.DisplayLocation
	if loc == nil {
		loc = time.UTC
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).
			Funcs(funcMap(loc)).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web: parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		cfg:              cfg,
		pages:            pages,
	}, nil
}

// RegisterRoutes регистрирует страницы дашборда
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	pages := r.Group("", v1.SessionMiddleware(h.logger))
	{
		pages.GET("/", h.overviewPage)
		pages.GET("/map", h.mapPage)
		pages.GET("/entity", h.entityPage)
		pages.GET("/alert-info", h.alertInfoPage)
		pages.GET("/alert-info/:id", h.alertInfoPage)
	}
}

func (h *Handler) overviewPage(c *gin.Context) {
	state, err := h.dashboardService.Overview(c.Request.Context(), v1.SessionID(c))
	if err != nil {
		h.fail(c, "overviewPage", err)
		return
	}
	h.render(c, http.StatusOK, pageOverview, "Overview", state)
}

func (h *Handler) mapPage(c *gin.Context) {
	markers, err := h.dashboardService.MapMarkers(c.Request.Context(), v1.SessionID(c))
	if err != nil {
		h.fail(c, "mapPage", err)
		return
	}
	h.render(c, http.StatusOK, pageMap, "Map", markers)
}

func (h *Handler) entityPage(c *gin.Context) {
	state, err := h.dashboardService.Entities(c.Request.Context(), v1.SessionID(c))
	if err != nil {
		h.fail(c, "entityPage", err)
		return
	}
	h.render(c, http.StatusOK, pageEntity, "Entity", state)
}

func (h *Handler) alertInfoPage(c *gin.Context) {
	state, err := h.dashboardService.AlertInfo(c.Request.Context(), v1.SessionID(c), c.Param("id"))
	if err != nil {
		h.fail(c, "alertInfoPage", err)
		return
	}
	h.render(c, http.StatusOK, pageAlertInfo, "Alert Info", state)
}

func (h *Handler) render(c *gin.Context, code int, page, title string, data any) {
	c.Render(code, render.HTML{
		Template: h.pages[page],
		Name:     "layout",
		Data: pageData{
			Title:      title,
			Page:       page,
			Nav:        navigation,
			APIBase:    "/api/v1",
			Operator:   h.cfg.OperatorName,
			StatusList: statusNames(),
			Data:       data,
		},
	})
}

// fail показывает страницу ошибки; отсутствие инцидента дает 404
func (h *Handler) fail(c *gin.Context, method string, err error) {
	log := h.logger.WithFields(logrus.Fields{
		"method":     method,
		"session_id": v1.SessionID(c),
		"path":       c.Request.URL.Path,
	})

	if errors.Is(err, service.ErrNotFound) {
		log.WithError(err).Warn("Page data not found")
		h.render(c, http.StatusNotFound, pageError, "Not found", "Incident not found")
		return
	}
	log.WithError(err).Error("Failed to load page data")
	h.render(c, http.StatusInternalServerError, pageError, "Error", "Failed to load dashboard data")
}
