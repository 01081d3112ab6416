package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shenikar/alert_dashboard/internal/models"
)

// DB - подмножество методов пула pgx, используемое репозиторием
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository читает инциденты и сущности из PostgreSQL
type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const incidentColumns = `
	incident_id,
	status,
	about,
	lat,
	lng,
	location_name,
	incident_time,
	last_update_time,
	last_updated_by,
	crop`

const entityColumns = `
	entity_id,
	name,
	type,
	lat,
	lng,
	location_name,
	last_seen,
	status,
	image`

// ListIncidents возвращает инциденты, новые первыми
func (r *PostgresRepository) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		ORDER BY incident_time DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// GetIncident возвращает инцидент по ID
func (r *PostgresRepository) GetIncident(ctx context.Context, incidentID string) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE incident_id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", incidentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return &incident, nil
}

// IncidentHistory возвращает историю изменений инцидента в хронологическом порядке
func (r *PostgresRepository) IncidentHistory(ctx context.Context, incidentID string) ([]models.IncidentUpdate, error) {
	query := `
		SELECT updated_at, status, about
		FROM incident_updates
		WHERE incident_id = $1
		ORDER BY updated_at ASC;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident history: %w", err)
	}
	defer rows.Close()

	history := make([]models.IncidentUpdate, 0)
	for rows.Next() {
		var (
			update models.IncidentUpdate
			status string
		)
		if err := rows.Scan(&update.Time, &status, &update.About); err != nil {
			return nil, fmt.Errorf("failed to scan incident update row: %w", err)
		}
		update.Status = models.ParseStatus(status)
		history = append(history, update)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error history iteration: %w", err)
	}
	return history, nil
}

// AssociatedEntities возвращает ID сущностей, связанных с инцидентом
func (r *PostgresRepository) AssociatedEntities(ctx context.Context, incidentID string) ([]string, error) {
	query := `
		SELECT entity_id
		FROM incident_entities
		WHERE incident_id = $1
		ORDER BY entity_id;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get associated entities: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan entity id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error entity ids iteration: %w", err)
	}
	return ids, nil
}

// ListEntities возвращает все сущности
func (r *PostgresRepository) ListEntities(ctx context.Context) ([]models.Entity, error) {
	query := `SELECT` + entityColumns + `
		FROM entities
		ORDER BY entity_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	defer rows.Close()

	entities := make([]models.Entity, 0)
	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entity row: %w", err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entities, nil
}

// GetEntity возвращает сущность по ID
func (r *PostgresRepository) GetEntity(ctx context.Context, entityID string) (*models.Entity, error) {
	query := `SELECT` + entityColumns + `
		FROM entities
		WHERE entity_id = $1;
	`
	entity, err := scanEntity(r.db.QueryRow(ctx, query, entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("entity with id %s: %w", entityID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get entity by id: %w", err)
	}
	return &entity, nil
}

// RelatedIncidents возвращает инциденты, в которых участвовала сущность
func (r *PostgresRepository) RelatedIncidents(ctx context.Context, entityID string) ([]models.RelatedIncident, error) {
	query := `
		SELECT i.incident_id, i.status, i.about, i.incident_time
		FROM incident_entities ie
		JOIN incidents i ON i.incident_id = ie.incident_id
		WHERE ie.entity_id = $1
		ORDER BY i.incident_time DESC;
	`
	rows, err := r.db.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get related incidents: %w", err)
	}
	defer rows.Close()

	related := make([]models.RelatedIncident, 0)
	for rows.Next() {
		var (
			incident models.RelatedIncident
			status   string
		)
		if err := rows.Scan(&incident.IncidentID, &status, &incident.About, &incident.Time); err != nil {
			return nil, fmt.Errorf("failed to scan related incident row: %w", err)
		}
		incident.Status = models.ParseStatus(status)
		related = append(related, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error related iteration: %w", err)
	}
	return related, nil
}

func scanIncident(row pgx.Row) (models.Incident, error) {
	var (
		incident models.Incident
		status   string
	)
	err := row.Scan(
		&incident.IncidentID,
		&status,
		&incident.About,
		&incident.Location.Lat,
		&incident.Location.Lng,
		&incident.Location.Name,
		&incident.IncidentTime,
		&incident.LastUpdateTime,
		&incident.LastUpdatedBy,
		&incident.Crop,
	)
	if err != nil {
		return models.Incident{}, err
	}
	incident.Status = models.ParseStatus(status)
	return incident, nil
}

func scanEntity(row pgx.Row) (models.Entity, error) {
	var (
		entity   models.Entity
		status   string
		lastSeen *time.Time
	)
	err := row.Scan(
		&entity.EntityID,
		&entity.Name,
		&entity.Type,
		&entity.Location.Lat,
		&entity.Location.Lng,
		&entity.Location.Name,
		&lastSeen,
		&status,
		&entity.Image,
	)
	if err != nil {
		return models.Entity{}, err
	}
	entity.Status = models.ParseStatus(status)
	if lastSeen != nil {
		entity.LastSeen = *lastSeen
	}
	return entity, nil
}
