package v1

import (
	"net/url"
	"time"

	"github.com/shenikar/alert_dashboard/internal/formatter"
	"github.com/shenikar/alert_dashboard/internal/models"
	"github.com/shenikar/alert_dashboard/internal/viewstate"
)

// Mapper преобразует снимки представлений в DTO, показывая время в заданной зоне
type Mapper struct {
	loc *time.Location
}

func NewMapper(loc *time.Location) Mapper {
	if loc == nil {
		loc = time.UTC
	}
	return Mapper{loc: loc}
}

func (m Mapper) in(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(m.loc)
}

func toLocationResponse(location models.Location) LocationResponse {
	return LocationResponse{
		Lat:  location.Lat,
		Lng:  location.Lng,
		Name: location.Name,
		Text: formatter.LocationToString(&location),
	}
}

func (m Mapper) Incident(model models.Incident) IncidentResponse {
	resp := IncidentResponse{
		IncidentID:     model.IncidentID,
		Status:         model.Status.String(),
		StatusColor:    formatter.IncidentBadge.Color(model.Status),
		About:          model.About,
		Location:       toLocationResponse(model.Location),
		IncidentTime:   formatter.Compact(m.in(model.IncidentTime)),
		LastUpdateTime: formatter.Compact(m.in(model.LastUpdateTime)),
		LastUpdatedBy:  model.LastUpdatedBy,
	}
	if model.Crop != "" {
		resp.CropImage = formatter.Base64ToImage(model.Crop)
	}
	return resp
}

func (m Mapper) Incidents(items []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(items))
	for i, item := range items {
		responses[i] = m.Incident(item)
	}
	return responses
}

func (m Mapper) Overview(state viewstate.OverviewState) OverviewResponse {
	resp := OverviewResponse{
		Items:          m.Incidents(state.Items),
		DetailsVisible: state.DetailsVisible,
		DetailsDisplay: formatter.BooleanToVisibility(state.DetailsVisible),
		Filters:        nonNil(state.Filters),
	}
	if state.Selected != nil {
		selected := m.Incident(*state.Selected)
		resp.Selected = &selected
	}
	return resp
}

func (m Mapper) Entity(model models.Entity) EntityResponse {
	resp := EntityResponse{
		EntityID:    model.EntityID,
		Name:        model.Name,
		Type:        model.Type,
		Status:      model.Status.String(),
		StatusColor: formatter.EntityBadge.Color(model.Status),
		Location:    toLocationResponse(model.Location),
		LastSeen:    formatter.Compact(m.in(model.LastSeen)),
	}
	if model.Image != "" {
		resp.Image = formatter.Base64ToImage(model.Image)
	}
	return resp
}

func (m Mapper) Entities(state viewstate.EntitiesState) EntitiesResponse {
	resp := EntitiesResponse{
		Items:          make([]EntityResponse, len(state.Items)),
		Related:        make([]RelatedIncidentResponse, len(state.Related)),
		DetailsVisible: state.DetailsVisible,
		DetailsDisplay: formatter.BooleanToVisibility(state.DetailsVisible),
		Filters:        nonNil(state.Filters),
	}
	for i, item := range state.Items {
		resp.Items[i] = m.Entity(item)
	}
	for i, r := range state.Related {
		resp.Related[i] = RelatedIncidentResponse{
			IncidentID:  r.IncidentID,
			Status:      r.Status.String(),
			StatusColor: formatter.IncidentBadge.Color(r.Status),
			About:       r.About,
			Time:        formatter.VerboseClock(m.in(r.Time)),
			Date:        formatter.VerboseDate(m.in(r.Time)),
		}
	}
	if state.Selected != nil {
		selected := m.Entity(*state.Selected)
		resp.Selected = &selected
	}
	return resp
}

func (m Mapper) AlertInfo(state viewstate.AlertInfoState) AlertInfoResponse {
	resp := AlertInfoResponse{
		Incident:              m.Incident(state.Incident),
		History:               make([]HistoryEntryResponse, len(state.History)),
		EntityIDs:             nonNil(state.EntityIDs),
		MapPlaceholderVisible: state.MapPlaceholderVisible,
		MapPlaceholderDisplay: formatter.BooleanToVisibility(state.MapPlaceholderVisible),
		Position:              state.Position,
		Playback:              state.Playback,
	}
	for i, u := range state.History {
		resp.History[i] = HistoryEntryResponse{
			Time:        formatter.VerboseClock(m.in(u.Time)),
			Date:        formatter.VerboseDate(m.in(u.Time)),
			Status:      u.Status.String(),
			StatusColor: formatter.HistoryBadge.Color(u.Status),
			About:       u.About,
		}
	}
	if state.Card != nil {
		resp.Card = &EntityCardResponse{
			EntityID: state.Card.EntityID,
			SeenTime: formatter.Full(m.in(state.Card.SeenTime)),
		}
	}
	return resp
}

// Navigation дополняет запрос перехода путем страницы
func Navigation(target models.NavigationTarget) NavigationResponse {
	path := "/"
	switch target.View {
	case models.ViewMap:
		path = "/map"
	case models.ViewEntity:
		path = "/entity"
	case models.ViewAlertInfo:
		path = "/alert-info/" + url.PathEscape(target.ID)
	}
	return NavigationResponse{View: target.View, ID: target.ID, Path: path}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
