package models

import (
	"time"
)

// Incident - инцидент (тревога), отображаемый на дашборде
type Incident struct {
	IncidentID     string    `json:"incident_id"`
	Status         Status    `json:"status"`
	About          string    `json:"about"`
	Location       Location  `json:"location"`
	IncidentTime   time.Time `json:"incident_time"`
	LastUpdateTime time.Time `json:"last_update_time"`
	LastUpdatedBy  string    `json:"last_updated_by"`
	Crop           string    `json:"crop,omitempty"` // base64 JPEG, пустая строка если кадра нет
}

// IncidentUpdate - строка истории изменений инцидента
type IncidentUpdate struct {
	Time   time.Time `json:"time"`
	Status Status    `json:"status"`
	About  string    `json:"about"`
}

// RelatedIncident - инцидент, связанный с сущностью
type RelatedIncident struct {
	IncidentID string    `json:"incident_id"`
	Status     Status    `json:"status"`
	About      string    `json:"about"`
	Time       time.Time `json:"time"`
}

// NavigationTarget - запрос на переход к другому представлению
type NavigationTarget struct {
	View string `json:"view"`
	ID   string `json:"id"`
}

const (
	ViewOverview  = "overview"
	ViewMap       = "map"
	ViewEntity    = "entity"
	ViewAlertInfo = "alert-info"
)
