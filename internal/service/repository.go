package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/alert_dashboard/internal/models"
)

// IncidentRepository определяет контракт источника инцидентов
type IncidentRepository interface {
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	GetIncident(ctx context.Context, incidentID string) (*models.Incident, error)
	IncidentHistory(ctx context.Context, incidentID string) ([]models.IncidentUpdate, error)
	AssociatedEntities(ctx context.Context, incidentID string) ([]string, error)
}

// EntityRepository определяет контракт источника сущностей
type EntityRepository interface {
	ListEntities(ctx context.Context) ([]models.Entity, error)
	GetEntity(ctx context.Context, entityID string) (*models.Entity, error)
	RelatedIncidents(ctx context.Context, entityID string) ([]models.RelatedIncident, error)
}

// detailSource объединяет оба репозитория для подробного представления инцидента
type detailSource struct {
	IncidentRepository
	EntityRepository
}

// invalidator реализуют источники с кешем снимков; явное обновление сбрасывает кеш
type invalidator interface {
	Invalidate(ctx context.Context) error
}

func invalidate(ctx context.Context, source any, log *logrus.Entry) {
	if inv, ok := source.(invalidator); ok {
		if err := inv.Invalidate(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate snapshot cache")
		}
	}
}
