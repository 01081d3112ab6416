package viewstate

import (
	"context"
	"slices"
	"time"

	"github.com/shenikar/alert_dashboard/internal/models"
)

// IncidentSource поставляет текущий снимок инцидентов
type IncidentSource interface {
	ListIncidents(ctx context.Context) ([]models.Incident, error)
}

// IncidentView - состояние ленты тревог: список, выбранный инцидент и фильтры.
// Видимость деталей выводится из наличия выбора, поэтому они не расходятся.
type IncidentView struct {
	source   IncidentSource
	now      func() time.Time
	items    []models.Incident
	selected *models.Incident
	filters  *FilterSet
}

func NewIncidentView(source IncidentSource, now func() time.Time, filters []string) *IncidentView {
	if now == nil {
		now = time.Now
	}
	return &IncidentView{
		source:  source,
		now:     now,
		filters: NewFilterSet(filters...),
	}
}

// Items возвращает копию текущего списка
func (v *IncidentView) Items() []models.Incident {
	return slices.Clone(v.items)
}

// Selected возвращает выбранный инцидент
func (v *IncidentView) Selected() (models.Incident, bool) {
	if v.selected == nil {
		return models.Incident{}, false
	}
	return *v.selected, true
}

func (v *IncidentView) DetailsVisible() bool {
	return v.selected != nil
}

func (v *IncidentView) Filters() []string {
	return v.filters.Labels()
}

// Select выбирает инцидент по ID. Неизвестный ID - no-op.
func (v *IncidentView) Select(incidentID string) bool {
	i := v.indexOf(incidentID)
	if i < 0 {
		return false
	}
	incident := v.items[i]
	v.selected = &incident
	return true
}

// Close сбрасывает выбор и видимость деталей
func (v *IncidentView) Close() {
	v.selected = nil
}

// Refresh заменяет список целиком. Выбор привязывается к новому экземпляру
// с тем же ID либо сбрасывается, если такого ID больше нет.
func (v *IncidentView) Refresh(ctx context.Context) error {
	items, err := v.source.ListIncidents(ctx)
	if err != nil {
		return err
	}
	v.items = slices.Clone(items)

	if v.selected != nil {
		id := v.selected.IncidentID
		v.selected = nil
		v.Select(id)
	}
	return nil
}

// UpdateStatus меняет статус выбранного инцидента. Список не изменяется на месте:
// строится новый срез с замененной записью.
func (v *IncidentView) UpdateStatus(status models.Status, updatedBy string) (models.Incident, bool) {
	if v.selected == nil {
		return models.Incident{}, false
	}

	updated := *v.selected
	if i := v.indexOf(updated.IncidentID); i >= 0 {
		updated = v.items[i]
	}
	updated.Status = status
	updated.LastUpdateTime = v.now()
	if updatedBy != "" {
		updated.LastUpdatedBy = updatedBy
	}

	next := make([]models.Incident, len(v.items))
	for i, incident := range v.items {
		if incident.IncidentID == updated.IncidentID {
			next[i] = updated
			continue
		}
		next[i] = incident
	}
	v.items = next
	v.selected = &updated
	return updated, true
}

// RemoveFilter удаляет фильтр; отсутствующая метка - no-op
func (v *IncidentView) RemoveFilter(label string) bool {
	return v.filters.Remove(label)
}

// Examine возвращает запрос перехода к подробностям выбранного инцидента
func (v *IncidentView) Examine() (models.NavigationTarget, bool) {
	if v.selected == nil {
		return models.NavigationTarget{}, false
	}
	return models.NavigationTarget{View: models.ViewAlertInfo, ID: v.selected.IncidentID}, true
}

func (v *IncidentView) indexOf(incidentID string) int {
	return slices.IndexFunc(v.items, func(i models.Incident) bool {
		return i.IncidentID == incidentID
	})
}
