package v1

import (
	"github.com/shenikar/alert_dashboard/internal/viewstate"
)

// SelectIncidentRequest DTO для выбора инцидента
// @Description DTO для выбора инцидента
type SelectIncidentRequest struct {
	IncidentID string `json:"incident_id" validate:"required,max=64"`
}

// UpdateStatusRequest DTO для смены статуса выбранного инцидента
// @Description DTO для смены статуса выбранного инцидента
type UpdateStatusRequest struct {
	Status    string `json:"status" validate:"required,incident_status"`
	UpdatedBy string `json:"updated_by,omitempty" validate:"max=255"`
}

// SelectEntityRequest DTO для выбора сущности или открытия ее карточки
// @Description DTO для выбора сущности или открытия ее карточки
type SelectEntityRequest struct {
	EntityID string `json:"entity_id" validate:"required,max=64"`
}

// PositionRequest DTO для перемотки и обновления позиции видео
// @Description DTO для перемотки и обновления позиции видео
type PositionRequest struct {
	Position *float64 `json:"position" validate:"required,gte=0"`
}

// MetadataRequest DTO с длительностью видео
// @Description DTO с длительностью видео
type MetadataRequest struct {
	Duration *float64 `json:"duration" validate:"required,gte=0"`
}

// LocationResponse DTO местоположения
// @Description DTO местоположения
type LocationResponse struct {
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
	Name string   `json:"name,omitempty"`
	Text string   `json:"text"`
}

// IncidentResponse DTO инцидента с отформатированными полями
// @Description DTO инцидента с отформатированными полями
type IncidentResponse struct {
	IncidentID     string           `json:"incident_id"`
	Status         string           `json:"status"`
	StatusColor    string           `json:"status_color"`
	About          string           `json:"about"`
	Location       LocationResponse `json:"location"`
	IncidentTime   string           `json:"incident_time"`
	LastUpdateTime string           `json:"last_update_time"`
	LastUpdatedBy  string           `json:"last_updated_by"`
	CropImage      string           `json:"crop_image,omitempty"`
}

// OverviewResponse DTO ленты тревог
// @Description DTO ленты тревог
type OverviewResponse struct {
	Items          []IncidentResponse `json:"items"`
	Selected       *IncidentResponse  `json:"selected"`
	DetailsVisible bool               `json:"details_visible"`
	DetailsDisplay string             `json:"details_display"`
	Filters        []string           `json:"filters"`
}

// EntityResponse DTO сущности
// @Description DTO сущности
type EntityResponse struct {
	EntityID    string           `json:"entity_id"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	StatusColor string           `json:"status_color"`
	Location    LocationResponse `json:"location"`
	LastSeen    string           `json:"last_seen"`
	Image       string           `json:"image,omitempty"`
}

// RelatedIncidentResponse DTO инцидента, связанного с сущностью
// @Description DTO инцидента, связанного с сущностью
type RelatedIncidentResponse struct {
	IncidentID  string `json:"incident_id"`
	Status      string `json:"status"`
	StatusColor string `json:"status_color"`
	About       string `json:"about"`
	Time        string `json:"time"`
	Date        string `json:"date"`
}

// EntitiesResponse DTO списка сущностей
// @Description DTO списка сущностей
type EntitiesResponse struct {
	Items          []EntityResponse          `json:"items"`
	Selected       *EntityResponse           `json:"selected"`
	Related        []RelatedIncidentResponse `json:"related"`
	DetailsVisible bool                      `json:"details_visible"`
	DetailsDisplay string                    `json:"details_display"`
	Filters        []string                  `json:"filters"`
}

// HistoryEntryResponse DTO строки истории инцидента
// @Description DTO строки истории инцидента
type HistoryEntryResponse struct {
	Time        string `json:"time"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	StatusColor string `json:"status_color"`
	About       string `json:"about"`
}

// EntityCardResponse DTO карточки сущности
// @Description DTO карточки сущности
type EntityCardResponse struct {
	EntityID string `json:"entity_id"`
	SeenTime string `json:"seen_time"`
}

// AlertInfoResponse DTO подробностей инцидента
// @Description DTO подробностей инцидента
type AlertInfoResponse struct {
	Incident              IncidentResponse        `json:"incident"`
	History               []HistoryEntryResponse  `json:"history"`
	EntityIDs             []string                `json:"entity_ids"`
	Card                  *EntityCardResponse     `json:"card"`
	MapPlaceholderVisible bool                    `json:"map_placeholder_visible"`
	MapPlaceholderDisplay string                  `json:"map_placeholder_display"`
	Position              float64                 `json:"position"`
	Playback              viewstate.PlaybackState `json:"playback"`
}

// NavigationResponse DTO запроса перехода
// @Description DTO запроса перехода
type NavigationResponse struct {
	View string `json:"view"`
	ID   string `json:"id"`
	Path string `json:"path"`
}
