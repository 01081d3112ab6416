package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	// Все операции дашборда выполняются в рамках сессии
	dashboard := api.Group("", SessionMiddleware(h.logger))

	overview := dashboard.Group("/overview")
	{
		overview.GET("", h.getOverview)
		overview.POST("/refresh", h.refreshIncidents)
		overview.POST("/select", h.selectIncident)
		overview.POST("/close", h.closeIncident)
		overview.POST("/status", h.updateStatus)
		overview.POST("/examine", h.examineIncident)
		overview.DELETE("/filters/:label", h.removeIncidentFilter)
	}

	entities := dashboard.Group("/entities")
	{
		entities.GET("", h.getEntities)
		entities.POST("/refresh", h.refreshEntities)
		entities.POST("/select", h.selectEntity)
		entities.POST("/close", h.closeEntity)
		entities.POST("/related/:id/view", h.viewRelatedIncident)
		entities.DELETE("/filters/:label", h.removeEntityFilter)
	}

	alertInfo := dashboard.Group("/alert-info")
	{
		alertInfo.GET("", h.getAlertInfo)
		alertInfo.POST("/entity-card", h.showEntityCard)
		alertInfo.DELETE("/entity-card", h.collapseEntityCard)
		alertInfo.GET("/:id", h.getAlertInfo)
	}

	playback := dashboard.Group("/playback")
	{
		playback.GET("", h.getPlayback)
		playback.POST("/toggle", h.togglePlayback)
		playback.POST("/seek", h.seekPlayback)
		playback.POST("/metadata", h.loadPlaybackMetadata)
		playback.POST("/timeupdate", h.playbackTimeUpdate)
	}

	dashboard.GET("/map/markers", h.getMapMarkers)
	dashboard.DELETE("/session", h.endSession)
}
