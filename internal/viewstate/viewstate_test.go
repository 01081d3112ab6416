package viewstate

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/alert_dashboard/internal/models"
)

// stubSource - источник данных для тестов состояния представлений
type stubSource struct {
	incidents []models.Incident
	entities  []models.Entity
	related   map[string][]models.RelatedIncident
	history   map[string][]models.IncidentUpdate
	links     map[string][]string

	incidentsErr error
	entitiesErr  error
	relatedErr   error
	entityErr    error

	relatedCalls int
}

func (s *stubSource) ListIncidents(_ context.Context) ([]models.Incident, error) {
	if s.incidentsErr != nil {
		return nil, s.incidentsErr
	}
	return s.incidents, nil
}

func (s *stubSource) ListEntities(_ context.Context) ([]models.Entity, error) {
	if s.entitiesErr != nil {
		return nil, s.entitiesErr
	}
	return s.entities, nil
}

func (s *stubSource) RelatedIncidents(_ context.Context, entityID string) ([]models.RelatedIncident, error) {
	s.relatedCalls++
	if s.relatedErr != nil {
		return nil, s.relatedErr
	}
	return s.related[entityID], nil
}

func (s *stubSource) GetIncident(_ context.Context, incidentID string) (*models.Incident, error) {
	for _, inc := range s.incidents {
		if inc.IncidentID == incidentID {
			inc := inc
			return &inc, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *stubSource) IncidentHistory(_ context.Context, incidentID string) ([]models.IncidentUpdate, error) {
	return s.history[incidentID], nil
}

func (s *stubSource) AssociatedEntities(_ context.Context, incidentID string) ([]string, error) {
	return s.links[incidentID], nil
}

func (s *stubSource) GetEntity(_ context.Context, entityID string) (*models.Entity, error) {
	if s.entityErr != nil {
		return nil, s.entityErr
	}
	for _, e := range s.entities {
		if e.EntityID == entityID {
			e := e
			return &e, nil
		}
	}
	return nil, models.ErrNotFound
}

var errSource = errors.New("source unavailable")

var fixedNow = time.Date(2025, time.July, 4, 20, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newStubSource() *stubSource {
	return &stubSource{
		incidents: []models.Incident{
			{IncidentID: "INC-001", Status: models.StatusActive, About: "Suspicious activity detected", LastUpdatedBy: "System"},
			{IncidentID: "INC-002", Status: models.StatusConfirmed, About: "Unauthorized access", LastUpdatedBy: "John Doe"},
		},
		entities: []models.Entity{
			{EntityID: "ENT-001", Name: "Person", Status: models.StatusActive, LastSeen: time.Date(2025, time.July, 4, 19, 30, 0, 0, time.UTC)},
			{EntityID: "ENT-002", Name: "Vehicle", Status: models.StatusUnknown},
		},
		related: map[string][]models.RelatedIncident{
			"ENT-001": {
				{IncidentID: "INC-001", Status: models.StatusActive},
				{IncidentID: "INC-005", Status: models.StatusConfirmed},
			},
		},
		history: map[string][]models.IncidentUpdate{
			"INC-001": {{Status: models.StatusActive, About: "Incident detected"}},
		},
		links: map[string][]string{
			"INC-001": {"ENT-001", "ENT-003"},
		},
	}
}
