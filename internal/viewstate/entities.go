package viewstate

import (
	"context"
	"slices"

	"github.com/shenikar/alert_dashboard/internal/models"
)

// EntitySource поставляет сущности и связанные с ними инциденты
type EntitySource interface {
	ListEntities(ctx context.Context) ([]models.Entity, error)
	RelatedIncidents(ctx context.Context, entityID string) ([]models.RelatedIncident, error)
}

// EntityView - состояние списка сущностей. Выбор, видимость деталей и
// связанные инциденты меняются только вместе.
type EntityView struct {
	source   EntitySource
	items    []models.Entity
	selected *models.Entity
	related  []models.RelatedIncident
	filters  *FilterSet
}

func NewEntityView(source EntitySource, filters []string) *EntityView {
	return &EntityView{
		source:  source,
		filters: NewFilterSet(filters...),
	}
}

func (v *EntityView) Items() []models.Entity {
	return slices.Clone(v.items)
}

func (v *EntityView) Selected() (models.Entity, bool) {
	if v.selected == nil {
		return models.Entity{}, false
	}
	return *v.selected, true
}

func (v *EntityView) Related() []models.RelatedIncident {
	return slices.Clone(v.related)
}

func (v *EntityView) DetailsVisible() bool {
	return v.selected != nil
}

func (v *EntityView) Filters() []string {
	return v.filters.Labels()
}

// Select выбирает сущность и загружает связанные инциденты. При ошибке
// загрузки состояние не меняется.
func (v *EntityView) Select(ctx context.Context, entityID string) (bool, error) {
	i := v.indexOf(entityID)
	if i < 0 {
		return false, nil
	}

	related, err := v.source.RelatedIncidents(ctx, entityID)
	if err != nil {
		return false, err
	}

	entity := v.items[i]
	v.selected = &entity
	v.related = slices.Clone(related)
	return true, nil
}

// Close сбрасывает выбор вместе со связанными инцидентами
func (v *EntityView) Close() {
	v.selected = nil
	v.related = nil
}

// Refresh заменяет список целиком; выжившая выборка сохраняет связанные инциденты
func (v *EntityView) Refresh(ctx context.Context) error {
	items, err := v.source.ListEntities(ctx)
	if err != nil {
		return err
	}
	v.items = slices.Clone(items)

	if v.selected == nil {
		return nil
	}
	if i := v.indexOf(v.selected.EntityID); i >= 0 {
		entity := v.items[i]
		v.selected = &entity
		return nil
	}
	v.Close()
	return nil
}

func (v *EntityView) RemoveFilter(label string) bool {
	return v.filters.Remove(label)
}

// ViewIncident возвращает запрос перехода к связанному инциденту
func (v *EntityView) ViewIncident(incidentID string) (models.NavigationTarget, bool) {
	found := slices.ContainsFunc(v.related, func(r models.RelatedIncident) bool {
		return r.IncidentID == incidentID
	})
	if !found {
		return models.NavigationTarget{}, false
	}
	return models.NavigationTarget{View: models.ViewAlertInfo, ID: incidentID}, true
}

func (v *EntityView) indexOf(entityID string) int {
	return slices.IndexFunc(v.items, func(e models.Entity) bool {
		return e.EntityID == entityID
	})
}
