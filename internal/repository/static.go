package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shenikar/alert_dashboard/internal/models"
)

// StaticRepository отдает фиксированный набор данных из памяти.
// Данные только читаются.
type StaticRepository struct {
	incidents []models.Incident
	entities  []models.Entity
	history   map[string][]models.IncidentUpdate
	links     map[string][]string
	related   map[string][]models.RelatedIncident
}

func NewStaticRepository() *StaticRepository {
	day := func(d, h, m int) time.Time {
		return time.Date(2025, time.July, d, h, m, 0, 0, time.UTC)
	}

	return &StaticRepository{
		incidents: []models.Incident{
			{
				IncidentID:     "INC-001",
				Status:         models.StatusActive,
				About:          "Suspicious activity detected",
				Location:       models.Point(34.0522, -118.2437),
				IncidentTime:   day(4, 18, 20),
				LastUpdateTime: day(4, 19, 30),
				LastUpdatedBy:  "System",
			},
			{
				IncidentID:     "INC-002",
				Status:         models.StatusConfirmed,
				About:          "Unauthorized access",
				Location:       models.Named("South Gate", 34.0522, -118.2437),
				IncidentTime:   day(4, 14, 15),
				LastUpdateTime: day(4, 14, 30),
				LastUpdatedBy:  "John Doe",
			},
			{
				IncidentID:     "INC-003",
				Status:         models.StatusFalse,
				About:          "System malfunction",
				Location:       models.Location{Name: "North Entrance"},
				IncidentTime:   day(3, 9, 45),
				LastUpdateTime: day(3, 10, 15),
				LastUpdatedBy:  "Jane Smith",
			},
		},
		entities: []models.Entity{
			{
				EntityID: "ENT-001",
				Name:     "Person",
				Type:     "Human",
				Location: models.Named("South Gate", 34.0522, -118.2437),
				LastSeen: day(4, 19, 30),
				Status:   models.StatusActive,
			},
			{
				EntityID: "ENT-002",
				Name:     "Vehicle",
				Type:     "Car",
				Location: models.Named("East Entrance", 34.0500, -118.2400),
				LastSeen: day(4, 18, 45),
				Status:   models.ParseStatus("Inactive"),
			},
			{
				EntityID: "ENT-003",
				Name:     "Object",
				Type:     "Package",
				Location: models.Named("North Gate", 34.0550, -118.2450),
				LastSeen: day(4, 17, 20),
				Status:   models.StatusUnknown,
			},
		},
		history: map[string][]models.IncidentUpdate{
			"INC-001": {
				{Time: day(4, 18, 20), Status: models.StatusActive, About: "Incident detected"},
				{Time: day(4, 18, 25), Status: models.StatusPending, About: "Under investigation"},
				{Time: day(4, 19, 30), Status: models.StatusActive, About: "Confirmed by operator"},
			},
			"INC-002": {
				{Time: day(4, 14, 15), Status: models.StatusActive, About: "Incident detected"},
				{Time: day(4, 14, 30), Status: models.StatusConfirmed, About: "Confirmed by John Doe"},
			},
		},
		links: map[string][]string{
			"INC-001": {"ENT-001", "ENT-002", "ENT-003"},
			"INC-002": {"ENT-001"},
		},
		related: map[string][]models.RelatedIncident{
			"ENT-001": {
				{IncidentID: "INC-001", Status: models.StatusActive, About: "Suspicious activity detected", Time: day(4, 18, 20)},
				{IncidentID: "INC-005", Status: models.StatusConfirmed, About: "Unauthorized access", Time: day(4, 14, 15)},
			},
			"ENT-002": {
				{IncidentID: "INC-001", Status: models.StatusActive, About: "Suspicious activity detected", Time: day(4, 18, 20)},
			},
		},
	}
}

func (r *StaticRepository) ListIncidents(_ context.Context) ([]models.Incident, error) {
	return slices.Clone(r.incidents), nil
}

func (r *StaticRepository) GetIncident(_ context.Context, incidentID string) (*models.Incident, error) {
	for _, incident := range r.incidents {
		if incident.IncidentID == incidentID {
			return &incident, nil
		}
	}
	return nil, fmt.Errorf("incident with id %s: %w", incidentID, models.ErrNotFound)
}

func (r *StaticRepository) IncidentHistory(_ context.Context, incidentID string) ([]models.IncidentUpdate, error) {
	return slices.Clone(r.history[incidentID]), nil
}

func (r *StaticRepository) AssociatedEntities(_ context.Context, incidentID string) ([]string, error) {
	return slices.Clone(r.links[incidentID]), nil
}

func (r *StaticRepository) ListEntities(_ context.Context) ([]models.Entity, error) {
	return slices.Clone(r.entities), nil
}

func (r *StaticRepository) GetEntity(_ context.Context, entityID string) (*models.Entity, error) {
	for _, entity := range r.entities {
		if entity.EntityID == entityID {
			return &entity, nil
		}
	}
	return nil, fmt.Errorf("entity with id %s: %w", entityID, models.ErrNotFound)
}

func (r *StaticRepository) RelatedIncidents(_ context.Context, entityID string) ([]models.RelatedIncident, error) {
	return slices.Clone(r.related[entityID]), nil
}
