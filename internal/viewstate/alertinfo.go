package viewstate

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/shenikar/alert_dashboard/internal/models"
)

// IncidentDetailSource поставляет данные для подробного представления инцидента
type IncidentDetailSource interface {
	GetIncident(ctx context.Context, incidentID string) (*models.Incident, error)
	IncidentHistory(ctx context.Context, incidentID string) ([]models.IncidentUpdate, error)
	AssociatedEntities(ctx context.Context, incidentID string) ([]string, error)
	GetEntity(ctx context.Context, entityID string) (*models.Entity, error)
}

// AlertInfoView - подробности одного инцидента: история, связанные сущности,
// карточка сущности и позиция видео.
type AlertInfoView struct {
	source    IncidentDetailSource
	player    *Playback
	now       func() time.Time
	incident  *models.Incident
	history   []models.IncidentUpdate
	entityIDs []string
	card      *models.EntityCard
	position  float64
	release   func()
}

func NewAlertInfoView(source IncidentDetailSource, player *Playback, now func() time.Time) *AlertInfoView {
	if now == nil {
		now = time.Now
	}
	return &AlertInfoView{
		source: source,
		player: player,
		now:    now,
	}
}

// Mount загружает инцидент и подписывается на позицию плеера.
// Предыдущая подписка снимается; при ошибке загрузки состояние не меняется.
func (v *AlertInfoView) Mount(ctx context.Context, incidentID string) error {
	incident, err := v.source.GetIncident(ctx, incidentID)
	if err != nil {
		return err
	}
	history, err := v.source.IncidentHistory(ctx, incidentID)
	if err != nil {
		return err
	}
	entityIDs, err := v.source.AssociatedEntities(ctx, incidentID)
	if err != nil {
		return err
	}

	v.Unmount()
	v.incident = incident
	v.history = slices.Clone(history)
	v.entityIDs = slices.Clone(entityIDs)
	v.release = v.player.Watch(func(position float64) {
		v.position = position
	})
	return nil
}

// Unmount снимает подписку на плеер и очищает состояние
func (v *AlertInfoView) Unmount() {
	if v.release != nil {
		v.release()
		v.release = nil
	}
	v.incident = nil
	v.history = nil
	v.entityIDs = nil
	v.card = nil
	v.position = 0
}

func (v *AlertInfoView) Mounted() bool {
	return v.incident != nil
}

func (v *AlertInfoView) Incident() (models.Incident, bool) {
	if v.incident == nil {
		return models.Incident{}, false
	}
	return *v.incident, true
}

func (v *AlertInfoView) History() []models.IncidentUpdate {
	return slices.Clone(v.history)
}

func (v *AlertInfoView) EntityIDs() []string {
	return slices.Clone(v.entityIDs)
}

func (v *AlertInfoView) Card() (models.EntityCard, bool) {
	if v.card == nil {
		return models.EntityCard{}, false
	}
	return *v.card, true
}

// Position - последняя позиция видео, полученная по подписке
func (v *AlertInfoView) Position() float64 {
	return v.position
}

// MapPlaceholderVisible - заглушка карты показывается, пока нет карточки
func (v *AlertInfoView) MapPlaceholderVisible() bool {
	return v.card == nil
}

// ShowEntity открывает карточку связанной сущности. Время последнего
// появления берется из источника, а если сущность не найдена - текущее.
func (v *AlertInfoView) ShowEntity(ctx context.Context, entityID string) (bool, error) {
	if !slices.Contains(v.entityIDs, entityID) {
		return false, nil
	}

	seen := v.now()
	entity, err := v.source.GetEntity(ctx, entityID)
	switch {
	case err == nil && entity != nil && !entity.LastSeen.IsZero():
		seen = entity.LastSeen
	case err != nil && !errors.Is(err, models.ErrNotFound):
		return false, err
	}

	v.card = &models.EntityCard{EntityID: entityID, SeenTime: seen}
	return true, nil
}

// CollapseEntity закрывает карточку сущности
func (v *AlertInfoView) CollapseEntity() {
	v.card = nil
}

// Sync заменяет смонтированный инцидент экземпляром с тем же ID.
// Другой ID или пустое представление дают false.
func (v *AlertInfoView) Sync(incident models.Incident) bool {
	if v.incident == nil || v.incident.IncidentID != incident.IncidentID {
		return false
	}
	v.incident = &incident
	return true
}
