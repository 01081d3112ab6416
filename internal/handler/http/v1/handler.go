package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/alert_dashboard/internal/config"
	"github.com/shenikar/alert_dashboard/internal/models"
	"github.com/shenikar/alert_dashboard/internal/service"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
	mapper           Mapper
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validate:         NewValidator(),
		cfg:              cfg,
		mapper:           NewMapper(cfg.DisplayLocation),
	}
}

// NewValidator создает валидатор с правилом incident_status
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("incident_status", func(fl validator.FieldLevel) bool {
		return models.IsKnownStatus(fl.Field().String())
	})
	return v
}

// bind разбирает и валидирует тело запроса; при ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// fail переводит ошибку сервиса в HTTP-ответ
func (h *Handler) fail(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Requested item not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNoSelection):
		log.WithError(err).Warn("Operation requires a selection")
		c.JSON(http.StatusConflict, gin.H{"error": "nothing selected"})
	default:
		log.WithError(err).Error("Dashboard service failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) log(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"session_id": SessionID(c),
	})
}

// @Summary Get overview state
// @Description Get the alert feed: incidents, selection and filter chips.
// @Tags Overview
// @Produce json
// @Success 200 {object} OverviewResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /overview [get]
func (h *Handler) getOverview(c *gin.Context) {
	state, err := h.dashboardService.Overview(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "getOverview"), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Overview(state))
}

// @Summary Refresh incidents
// @Description Reload incidents. A selection survives only if its ID is still present.
// @Tags Overview
// @Produce json
// @Success 200 {object} OverviewResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /overview/refresh [post]
func (h *Handler) refreshIncidents(c *gin.Context) {
	state, err := h.dashboardService.RefreshIncidents(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "refreshIncidents"), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Overview(state))
}

// @Summary Select incident
// @Description Select an incident in the feed and show its details.
// @Tags Overview
// @Accept json
// @Produce json
// @Param request body SelectIncidentRequest true "Incident to select"
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /overview/select [post]
func (h *Handler) selectIncident(c *gin.Context) {
	log := h.log(c, "selectIncident")
	var input SelectIncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	state, err := h.dashboardService.SelectIncident(c.Request.Context(), SessionID(c), input.IncidentID)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Overview(state))
}

// @Summary Close incident details
// @Description Clear the selection and hide the details panel.
// @Tags Overview
// @Produce json
// @Success 200 {object} OverviewResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /overview/close [post]
func (h *Handler) closeIncident(c *gin.Context) {
	state, err := h.dashboardService.CloseIncident(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "closeIncident"), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Overview(state))
}

// @Summary Update incident status
// @Description Change the status of the selected incident. The change is published as an event.
// @Tags Overview
// @Accept json
// @Produce json
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "No incident selected"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /overview/status [post]
func (h *Handler) updateStatus(c *gin.Context) {
	log := h.log(c, "updateStatus")
	var input UpdateStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.dashboardService.UpdateIncidentStatus(c.Request.Context(), SessionID(c), models.ParseStatus(input.Status), input.UpdatedBy)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Incident(updated))
}

// @Summary Examine selected incident
// @Description Request navigation to the details of the selected incident.
// @Tags Overview
// @Produce json
// @Success 200 {object} NavigationResponse
// @Failure 409 {object} map[string]string "No incident selected"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /overview/examine [post]
func (h *Handler) examineIncident(c *gin.Context) {
	target, err := h.dashboardService.ExamineIncident(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "examineIncident"), err)
		return
	}
	c.JSON(http.StatusOK, Navigation(target))
}

// @Summary Remove overview filter
// @Description Remove a filter chip. Removing an absent label is a no-op.
// @Tags Overview
// @Produce json
// @Param label path string true "Filter label"
// @Success 200 {object} OverviewResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /overview/filters/{label} [delete]
func (h *Handler) removeIncidentFilter(c *gin.Context) {
	state, err := h.dashboardService.RemoveIncidentFilter(c.Request.Context(), SessionID(c), c.Param("label"))
	if err != nil {
		h.fail(c, h.log(c, "removeIncidentFilter"), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Overview(state))
}

// @Summary Get entities state
// @Description Get tracked entities, selection and related incidents.
// @Tags Entities
// @Produce json
// @Success 200 {object} EntitiesResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /entities [get]
func (h *Handler) getEntities(c *gin.Context) {
	state, err := h.dashboardService.Entities(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "getEntities"), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Entities(state))
}

// @Summary Refresh entities
// @Tags Entities
// @Produce json
// @Success 200 {object} EntitiesResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /entities/refresh [post]
func (h *Handler) refreshEntities(c *gin.Context) {
	state, err := h.dashboardService.RefreshEntities(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "refreshEntities"), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Entities(state))
}

// @Summary Select entity
// @Description Select an entity and load its related incidents.
// @Tags Entities
// @Accept json
// @Produce json
// @Param request body SelectEntityRequest true "Entity to select"
// @Success 200 {object} EntitiesResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Entity not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /entities/select [post]
func (h *Handler) selectEntity(c *gin.Context) {
	log := h.log(c, "selectEntity")
	var input SelectEntityRequest
	if !h.bind(c, log, &input) {
		return
	}

	state, err := h.dashboardService.SelectEntity(c.Request.Context(), SessionID(c), input.EntityID)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Entities(state))
}

// @Summary Close entity details
// @Tags Entities
// @Produce json
// @Success 200 {object} EntitiesResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /entities/close [post]
func (h *Handler) closeEntity(c *gin.Context) {
	state, err := h.dashboardService.CloseEntity(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "closeEntity"), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Entities(state))
}

// @Summary View related incident
// @Description Request navigation to an incident related to the selected entity.
// @Tags Entities
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} NavigationResponse
// @Failure 404 {object} map[string]string "Incident is not related to the selection"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /entities/related/{id}/view [post]
func (h *Handler) viewRelatedIncident(c *gin.Context) {
	target, err := h.dashboardService.ViewRelatedIncident(c.Request.Context(), SessionID(c), c.Param("id"))
	if err != nil {
		h.fail(c, h.log(c, "viewRelatedIncident"), err)
		return
	}
	c.JSON(http.StatusOK, Navigation(target))
}

// @Summary Remove entities filter
// @Tags Entities
// @Produce json
// @Param label path string true "Filter label"
// @Success 200 {object} EntitiesResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /entities/filters/{label} [delete]
func (h *Handler) removeEntityFilter(c *gin.Context) {
	state, err := h.dashboardService.RemoveEntityFilter(c.Request.Context(), SessionID(c), c.Param("label"))
	if err != nil {
		h.fail(c, h.log(c, "removeEntityFilter"), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.Entities(state))
}

// @Summary Get alert info
// @Description Mount incident details. Without an ID the current, selected or first incident is used.
// @Tags AlertInfo
// @Produce json
// @Param id path string false "Incident ID"
// @Success 200 {object} AlertInfoResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alert-info/{id} [get]
func (h *Handler) getAlertInfo(c *gin.Context) {
	state, err := h.dashboardService.AlertInfo(c.Request.Context(), SessionID(c), c.Param("id"))
	if err != nil {
		h.fail(c, h.log(c, "getAlertInfo").WithField("incident_id", c.Param("id")), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.AlertInfo(state))
}

// @Summary Show entity card
// @Description Open the card of an entity associated with the mounted incident.
// @Tags AlertInfo
// @Accept json
// @Produce json
// @Param request body SelectEntityRequest true "Associated entity"
// @Success 200 {object} AlertInfoResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Entity is not associated"
// @Failure 409 {object} map[string]string "No incident mounted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alert-info/entity-card [post]
func (h *Handler) showEntityCard(c *gin.Context) {
	log := h.log(c, "showEntityCard")
	var input SelectEntityRequest
	if !h.bind(c, log, &input) {
		return
	}

	state, err := h.dashboardService.ShowEntityInfo(c.Request.Context(), SessionID(c), input.EntityID)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.AlertInfo(state))
}

// @Summary Collapse entity card
// @Tags AlertInfo
// @Produce json
// @Success 200 {object} AlertInfoResponse
// @Failure 409 {object} map[string]string "No incident mounted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alert-info/entity-card [delete]
func (h *Handler) collapseEntityCard(c *gin.Context) {
	state, err := h.dashboardService.CollapseEntityInfo(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "collapseEntityCard"), err)
		return
	}
	c.JSON(http.StatusOK, h.mapper.AlertInfo(state))
}

// @Summary Get playback state
// @Tags Playback
// @Produce json
// @Success 200 {object} viewstate.PlaybackState
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /playback [get]
func (h *Handler) getPlayback(c *gin.Context) {
	state, err := h.dashboardService.Playback(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "getPlayback"), err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Toggle playback
// @Tags Playback
// @Produce json
// @Success 200 {object} viewstate.PlaybackState
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /playback/toggle [post]
func (h *Handler) togglePlayback(c *gin.Context) {
	state, err := h.dashboardService.TogglePlayback(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "togglePlayback"), err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Seek video
// @Description Seek to a position in seconds, clamped to the video duration.
// @Tags Playback
// @Accept json
// @Produce json
// @Param request body PositionRequest true "Position in seconds"
// @Success 200 {object} viewstate.PlaybackState
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /playback/seek [post]
func (h *Handler) seekPlayback(c *gin.Context) {
	log := h.log(c, "seekPlayback")
	var input PositionRequest
	if !h.bind(c, log, &input) {
		return
	}

	state, err := h.dashboardService.SeekPlayback(c.Request.Context(), SessionID(c), *input.Position)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Report video metadata
// @Tags Playback
// @Accept json
// @Produce json
// @Param request body MetadataRequest true "Video duration in seconds"
// @Success 200 {object} viewstate.PlaybackState
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /playback/metadata [post]
func (h *Handler) loadPlaybackMetadata(c *gin.Context) {
	log := h.log(c, "loadPlaybackMetadata")
	var input MetadataRequest
	if !h.bind(c, log, &input) {
		return
	}

	state, err := h.dashboardService.LoadPlaybackMetadata(c.Request.Context(), SessionID(c), *input.Duration)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Report playback position
// @Tags Playback
// @Accept json
// @Produce json
// @Param request body PositionRequest true "Current position in seconds"
// @Success 200 {object} viewstate.PlaybackState
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /playback/timeupdate [post]
func (h *Handler) playbackTimeUpdate(c *gin.Context) {
	log := h.log(c, "playbackTimeUpdate")
	var input PositionRequest
	if !h.bind(c, log, &input) {
		return
	}

	state, err := h.dashboardService.PlaybackTimeUpdate(c.Request.Context(), SessionID(c), *input.Position)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Get map markers
// @Description Get a GeoJSON FeatureCollection of incidents and entities with coordinates.
// @Tags Map
// @Produce json
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/markers [get]
func (h *Handler) getMapMarkers(c *gin.Context) {
	fc, err := h.dashboardService.MapMarkers(c.Request.Context(), SessionID(c))
	if err != nil {
		h.fail(c, h.log(c, "getMapMarkers"), err)
		return
	}
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, fc)
}

// @Summary End session
// @Description Drop the dashboard state of the current session.
// @Tags System
// @Success 204 "No Content"
// @Router /session [delete]
func (h *Handler) endSession(c *gin.Context) {
	h.dashboardService.EndSession(SessionID(c))
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
