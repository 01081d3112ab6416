package viewstate

import "github.com/shenikar/alert_dashboard/internal/models"

// OverviewState - снимок ленты тревог
type OverviewState struct {
	Items          []models.Incident `json:"items"`
	Selected       *models.Incident  `json:"selected"`
	DetailsVisible bool              `json:"details_visible"`
	Filters        []string          `json:"filters"`
}

// EntitiesState - снимок списка сущностей
type EntitiesState struct {
	Items          []models.Entity          `json:"items"`
	Selected       *models.Entity           `json:"selected"`
	Related        []models.RelatedIncident `json:"related"`
	DetailsVisible bool                     `json:"details_visible"`
	Filters        []string                 `json:"filters"`
}

// AlertInfoState - снимок подробностей инцидента вместе с плеером
type AlertInfoState struct {
	Incident              models.Incident         `json:"incident"`
	History               []models.IncidentUpdate `json:"history"`
	EntityIDs             []string                `json:"entity_ids"`
	Card                  *models.EntityCard      `json:"card"`
	MapPlaceholderVisible bool                    `json:"map_placeholder_visible"`
	Position              float64                 `json:"position"`
	Playback              PlaybackState           `json:"playback"`
}

func (v *IncidentView) Snapshot() OverviewState {
	state := OverviewState{
		Items:          v.Items(),
		DetailsVisible: v.DetailsVisible(),
		Filters:        v.Filters(),
	}
	if selected, ok := v.Selected(); ok {
		state.Selected = &selected
	}
	return state
}

func (v *EntityView) Snapshot() EntitiesState {
	state := EntitiesState{
		Items:          v.Items(),
		Related:        v.Related(),
		DetailsVisible: v.DetailsVisible(),
		Filters:        v.Filters(),
	}
	if selected, ok := v.Selected(); ok {
		state.Selected = &selected
	}
	return state
}

// AlertInfoSnapshot - снимок подробностей инцидента; пустой, если ничего не смонтировано
func (d *Dashboard) AlertInfoSnapshot() AlertInfoState {
	v := d.AlertInfo
	incident, _ := v.Incident()
	state := AlertInfoState{
		Incident:              incident,
		History:               v.History(),
		EntityIDs:             v.EntityIDs(),
		MapPlaceholderVisible: v.MapPlaceholderVisible(),
		Position:              v.Position(),
		Playback:              d.Player.State(),
	}
	if card, ok := v.Card(); ok {
		state.Card = &card
	}
	return state
}
