package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/shenikar/alert_dashboard/internal/config"
	"github.com/shenikar/alert_dashboard/internal/models"
	"github.com/shenikar/alert_dashboard/internal/session"
	"github.com/shenikar/alert_dashboard/internal/viewstate"
	"github.com/shenikar/alert_dashboard/internal/webhook"
)

var (
	// ErrNoSelection - операция требует выбранного инцидента или смонтированного представления
	ErrNoSelection = errors.New("nothing selected")
	ErrNotFound    = models.ErrNotFound
)

// DashboardService определяет контракт операций дашборда в рамках сессии
type DashboardService interface {
	Overview(ctx context.Context, sessionID string) (viewstate.OverviewState, error)
	RefreshIncidents(ctx context.Context, sessionID string) (viewstate.OverviewState, error)
	SelectIncident(ctx context.Context, sessionID, incidentID string) (viewstate.OverviewState, error)
	CloseIncident(ctx context.Context, sessionID string) (viewstate.OverviewState, error)
	UpdateIncidentStatus(ctx context.Context, sessionID string, status models.Status, updatedBy string) (models.Incident, error)
	RemoveIncidentFilter(ctx context.Context, sessionID, label string) (viewstate.OverviewState, error)
	ExamineIncident(ctx context.Context, sessionID string) (models.NavigationTarget, error)

	Entities(ctx context.Context, sessionID string) (viewstate.EntitiesState, error)
	RefreshEntities(ctx context.Context, sessionID string) (viewstate.EntitiesState, error)
	SelectEntity(ctx context.Context, sessionID, entityID string) (viewstate.EntitiesState, error)
	CloseEntity(ctx context.Context, sessionID string) (viewstate.EntitiesState, error)
	RemoveEntityFilter(ctx context.Context, sessionID, label string) (viewstate.EntitiesState, error)
	ViewRelatedIncident(ctx context.Context, sessionID, incidentID string) (models.NavigationTarget, error)

	AlertInfo(ctx context.Context, sessionID, incidentID string) (viewstate.AlertInfoState, error)
	ShowEntityInfo(ctx context.Context, sessionID, entityID string) (viewstate.AlertInfoState, error)
	CollapseEntityInfo(ctx context.Context, sessionID string) (viewstate.AlertInfoState, error)

	Playback(ctx context.Context, sessionID string) (viewstate.PlaybackState, error)
	TogglePlayback(ctx context.Context, sessionID string) (viewstate.PlaybackState, error)
	SeekPlayback(ctx context.Context, sessionID string, position float64) (viewstate.PlaybackState, error)
	LoadPlaybackMetadata(ctx context.Context, sessionID string, duration float64) (viewstate.PlaybackState, error)
	PlaybackTimeUpdate(ctx context.Context, sessionID string, position float64) (viewstate.PlaybackState, error)

	MapMarkers(ctx context.Context, sessionID string) (*geojson.FeatureCollection, error)
	EndSession(sessionID string)
}

type dashboardService struct {
	incidents IncidentRepository
	entities  EntityRepository
	sessions  *session.Store
	publisher webhook.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewDashboardService(
	incidents IncidentRepository,
	entities EntityRepository,
	sessions *session.Store,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) DashboardService {
	if publisher == nil {
		publisher = webhook.NopPublisher{}
	}
	return &dashboardService{
		incidents: incidents,
		entities:  entities,
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *dashboardService) newDashboard() *viewstate.Dashboard {
	return viewstate.NewDashboard(viewstate.Options{
		Incidents:      s.incidents,
		Details:        detailSource{IncidentRepository: s.incidents, EntityRepository: s.entities},
		Entities:       s.entities,
		Now:            s.now,
		DefaultFilters: s.cfg.DefaultFilters,
		Player:         viewstate.DefaultPlayerConfig(s.cfg.VideoURL),
	})
}

// withDashboard выполняет fn под мьютексом дашборда сессии, монтируя его при первом обращении
func (s *dashboardService) withDashboard(ctx context.Context, sessionID string, fn func(d *viewstate.Dashboard) error) error {
	for {
		d, created := s.sessions.GetOrCreate(sessionID, s.newDashboard)
		if created {
			s.logger.WithField("session_id", sessionID).Debug("Dashboard session created")
		}

		d.Lock()
		// Дашборд мог быть выселен между GetOrCreate и Lock
		if d.Closed() {
			d.Unlock()
			continue
		}

		err := d.Mount(ctx)
		if err == nil {
			err = fn(d)
		} else {
			err = fmt.Errorf("service: could not load dashboard: %w", err)
		}
		d.Unlock()
		return err
	}
}

func (s *dashboardService) publish(ctx context.Context, event webhook.Event) {
	event.ID = uuid.New()
	event.Timestamp = s.now()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"event_type": event.Type,
			"session_id": event.SessionID,
		}).Warn("Failed to publish dashboard event")
	}
}

// Overview возвращает состояние ленты тревог
func (s *dashboardService) Overview(ctx context.Context, sessionID string) (viewstate.OverviewState, error) {
	var state viewstate.OverviewState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		state = d.Overview.Snapshot()
		return nil
	})
	return state, err
}

// RefreshIncidents перезагружает список инцидентов
func (s *dashboardService) RefreshIncidents(ctx context.Context, sessionID string) (viewstate.OverviewState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "RefreshIncidents",
		"session_id": sessionID,
	})

	invalidate(ctx, s.incidents, log)

	var state viewstate.OverviewState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		if err := d.Overview.Refresh(ctx); err != nil {
			log.WithError(err).Error("Failed to refresh incidents")
			return fmt.Errorf("service: could not refresh incidents: %w", err)
		}
		state = d.Overview.Snapshot()
		return nil
	})
	if err == nil {
		log.WithField("count", len(state.Items)).Debug("Incidents refreshed")
	}
	return state, err
}

// SelectIncident выбирает инцидент в ленте
func (s *dashboardService) SelectIncident(ctx context.Context, sessionID, incidentID string) (viewstate.OverviewState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "SelectIncident",
		"session_id":  sessionID,
		"incident_id": incidentID,
	})

	var state viewstate.OverviewState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		if !d.Overview.Select(incidentID) {
			log.Warn("Attempted to select an unknown incident")
			return fmt.Errorf("service: incident %s: %w", incidentID, ErrNotFound)
		}
		state = d.Overview.Snapshot()
		return nil
	})
	return state, err
}

// CloseIncident закрывает детали выбранного инцидента
func (s *dashboardService) CloseIncident(ctx context.Context, sessionID string) (viewstate.OverviewState, error) {
	var state viewstate.OverviewState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		d.Overview.Close()
		state = d.Overview.Snapshot()
		return nil
	})
	return state, err
}

// UpdateIncidentStatus меняет статус выбранного инцидента и публикует событие
func (s *dashboardService) UpdateIncidentStatus(ctx context.Context, sessionID string, status models.Status, updatedBy string) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "UpdateIncidentStatus",
		"session_id": sessionID,
		"status":     status,
	})
	log.Info("Attempting to update incident status")

	if updatedBy == "" {
		updatedBy = s.cfg.OperatorName
	}

	var updated models.Incident
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		incident, ok := d.Overview.UpdateStatus(status, updatedBy)
		if !ok {
			return fmt.Errorf("service: could not update status: %w", ErrNoSelection)
		}
		updated = incident
		d.AlertInfo.Sync(incident)
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Status update rejected")
		return models.Incident{}, err
	}

	s.publish(ctx, webhook.Event{
		Type:       webhook.EventStatusChanged,
		SessionID:  sessionID,
		IncidentID: updated.IncidentID,
		Status:     updated.Status,
		Actor:      updatedBy,
	})
	log.WithField("incident_id", updated.IncidentID).Info("Incident status updated successfully")
	return updated, nil
}

// RemoveIncidentFilter удаляет метку фильтра ленты
func (s *dashboardService) RemoveIncidentFilter(ctx context.Context, sessionID, label string) (viewstate.OverviewState, error) {
	var state viewstate.OverviewState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		if !d.Overview.RemoveFilter(label) {
			s.logger.WithField("label", label).Debug("Filter not present")
		}
		state = d.Overview.Snapshot()
		return nil
	})
	return state, err
}

// ExamineIncident запрашивает переход к подробностям выбранного инцидента
func (s *dashboardService) ExamineIncident(ctx context.Context, sessionID string) (models.NavigationTarget, error) {
	var target models.NavigationTarget
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		t, ok := d.Overview.Examine()
		if !ok {
			return fmt.Errorf("service: could not examine incident: %w", ErrNoSelection)
		}
		target = t
		return nil
	})
	if err != nil {
		return models.NavigationTarget{}, err
	}

	s.navigate(ctx, sessionID, target)
	return target, nil
}

func (s *dashboardService) navigate(ctx context.Context, sessionID string, target models.NavigationTarget) {
	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"view":       target.View,
		"target_id":  target.ID,
	}).Info("Navigation requested")

	s.publish(ctx, webhook.Event{
		Type:       webhook.EventNavigationRequested,
		SessionID:  sessionID,
		IncidentID: target.ID,
		Target:     &target,
	})
}

// Entities возвращает состояние списка сущностей
func (s *dashboardService) Entities(ctx context.Context, sessionID string) (viewstate.EntitiesState, error) {
	var state viewstate.EntitiesState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		state = d.Entities.Snapshot()
		return nil
	})
	return state, err
}

// RefreshEntities перезагружает список сущностей
func (s *dashboardService) RefreshEntities(ctx context.Context, sessionID string) (viewstate.EntitiesState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "RefreshEntities",
		"session_id": sessionID,
	})
	invalidate(ctx, s.entities, log)

	var state viewstate.EntitiesState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		if err := d.Entities.Refresh(ctx); err != nil {
			log.WithError(err).Error("Failed to refresh entities")
			return fmt.Errorf("service: could not refresh entities: %w", err)
		}
		state = d.Entities.Snapshot()
		return nil
	})
	return state, err
}

// SelectEntity выбирает сущность и загружает связанные инциденты
func (s *dashboardService) SelectEntity(ctx context.Context, sessionID, entityID string) (viewstate.EntitiesState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "SelectEntity",
		"session_id": sessionID,
		"entity_id":  entityID,
	})

	var state viewstate.EntitiesState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		ok, err := d.Entities.Select(ctx, entityID)
		if err != nil {
			log.WithError(err).Error("Failed to load related incidents")
			return fmt.Errorf("service: could not load related incidents: %w", err)
		}
		if !ok {
			log.Warn("Attempted to select an unknown entity")
			return fmt.Errorf("service: entity %s: %w", entityID, ErrNotFound)
		}
		state = d.Entities.Snapshot()
		return nil
	})
	return state, err
}

// CloseEntity закрывает детали сущности
func (s *dashboardService) CloseEntity(ctx context.Context, sessionID string) (viewstate.EntitiesState, error) {
	var state viewstate.EntitiesState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		d.Entities.Close()
		state = d.Entities.Snapshot()
		return nil
	})
	return state, err
}

// RemoveEntityFilter удаляет метку фильтра сущностей
func (s *dashboardService) RemoveEntityFilter(ctx context.Context, sessionID, label string) (viewstate.EntitiesState, error) {
	var state viewstate.EntitiesState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		d.Entities.RemoveFilter(label)
		state = d.Entities.Snapshot()
		return nil
	})
	return state, err
}

// ViewRelatedIncident запрашивает переход к инциденту, связанному с выбранной сущностью
func (s *dashboardService) ViewRelatedIncident(ctx context.Context, sessionID, incidentID string) (models.NavigationTarget, error) {
	var target models.NavigationTarget
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		t, ok := d.Entities.ViewIncident(incidentID)
		if !ok {
			return fmt.Errorf("service: related incident %s: %w", incidentID, ErrNotFound)
		}
		target = t
		return nil
	})
	if err != nil {
		return models.NavigationTarget{}, err
	}

	s.navigate(ctx, sessionID, target)
	return target, nil
}

// AlertInfo монтирует подробности инцидента. Пустой ID означает текущий
// смонтированный инцидент, затем выбранный в ленте, затем первый в списке.
func (s *dashboardService) AlertInfo(ctx context.Context, sessionID, incidentID string) (viewstate.AlertInfoState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "AlertInfo",
		"session_id":  sessionID,
		"incident_id": incidentID,
	})

	var state viewstate.AlertInfoState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		id := incidentID
		if id == "" {
			id = defaultAlertID(d)
		}
		if id == "" {
			return fmt.Errorf("service: no incident to show: %w", ErrNotFound)
		}

		if current, ok := d.AlertInfo.Incident(); !ok || current.IncidentID != id {
			if err := d.AlertInfo.Mount(ctx, id); err != nil {
				log.WithError(err).Error("Failed to load incident details")
				return fmt.Errorf("service: could not load incident %s: %w", id, err)
			}
		}
		syncAlertInfo(d)
		state = d.AlertInfoSnapshot()
		return nil
	})
	return state, err
}

// syncAlertInfo накладывает экземпляр инцидента из ленты сессии на
// смонтированный: изменения статуса живут только в ленте.
func syncAlertInfo(d *viewstate.Dashboard) {
	current, ok := d.AlertInfo.Incident()
	if !ok {
		return
	}
	for _, item := range d.Overview.Items() {
		if item.IncidentID == current.IncidentID {
			d.AlertInfo.Sync(item)
			return
		}
	}
}

func defaultAlertID(d *viewstate.Dashboard) string {
	if current, ok := d.AlertInfo.Incident(); ok {
		return current.IncidentID
	}
	if selected, ok := d.Overview.Selected(); ok {
		return selected.IncidentID
	}
	if items := d.Overview.Items(); len(items) > 0 {
		return items[0].IncidentID
	}
	return ""
}

// ShowEntityInfo открывает карточку связанной сущности
func (s *dashboardService) ShowEntityInfo(ctx context.Context, sessionID, entityID string) (viewstate.AlertInfoState, error) {
	var state viewstate.AlertInfoState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		if !d.AlertInfo.Mounted() {
			return fmt.Errorf("service: no incident mounted: %w", ErrNoSelection)
		}
		ok, err := d.AlertInfo.ShowEntity(ctx, entityID)
		if err != nil {
			return fmt.Errorf("service: could not load entity %s: %w", entityID, err)
		}
		if !ok {
			return fmt.Errorf("service: entity %s is not associated: %w", entityID, ErrNotFound)
		}
		state = d.AlertInfoSnapshot()
		return nil
	})
	return state, err
}

// CollapseEntityInfo закрывает карточку сущности
func (s *dashboardService) CollapseEntityInfo(ctx context.Context, sessionID string) (viewstate.AlertInfoState, error) {
	var state viewstate.AlertInfoState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		if !d.AlertInfo.Mounted() {
			return fmt.Errorf("service: no incident mounted: %w", ErrNoSelection)
		}
		d.AlertInfo.CollapseEntity()
		state = d.AlertInfoSnapshot()
		return nil
	})
	return state, err
}

func (s *dashboardService) withPlayer(ctx context.Context, sessionID string, fn func(p *viewstate.Playback)) (viewstate.PlaybackState, error) {
	var state viewstate.PlaybackState
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		fn(d.Player)
		state = d.Player.State()
		return nil
	})
	return state, err
}

func (s *dashboardService) Playback(ctx context.Context, sessionID string) (viewstate.PlaybackState, error) {
	return s.withPlayer(ctx, sessionID, func(*viewstate.Playback) {})
}

func (s *dashboardService) TogglePlayback(ctx context.Context, sessionID string) (viewstate.PlaybackState, error) {
	return s.withPlayer(ctx, sessionID, func(p *viewstate.Playback) { p.TogglePlay() })
}

func (s *dashboardService) SeekPlayback(ctx context.Context, sessionID string, position float64) (viewstate.PlaybackState, error) {
	return s.withPlayer(ctx, sessionID, func(p *viewstate.Playback) { p.Seek(position) })
}

func (s *dashboardService) LoadPlaybackMetadata(ctx context.Context, sessionID string, duration float64) (viewstate.PlaybackState, error) {
	return s.withPlayer(ctx, sessionID, func(p *viewstate.Playback) { p.LoadMetadata(duration) })
}

func (s *dashboardService) PlaybackTimeUpdate(ctx context.Context, sessionID string, position float64) (viewstate.PlaybackState, error) {
	return s.withPlayer(ctx, sessionID, func(p *viewstate.Playback) { p.TimeUpdate(position) })
}

// MapMarkers возвращает маркеры карты для инцидентов и сущностей с координатами
func (s *dashboardService) MapMarkers(ctx context.Context, sessionID string) (*geojson.FeatureCollection, error) {
	var fc *geojson.FeatureCollection
	err := s.withDashboard(ctx, sessionID, func(d *viewstate.Dashboard) error {
		fc = Markers(d.Overview.Items(), d.Entities.Items())
		return nil
	})
	return fc, err
}

// EndSession удаляет дашборд сессии
func (s *dashboardService) EndSession(sessionID string) {
	s.sessions.Delete(sessionID)
	s.logger.WithField("session_id", sessionID).Debug("Dashboard session ended")
}
