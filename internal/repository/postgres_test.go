package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/alert_dashboard/internal/models"
)

var (
	incidentCols = []string{"incident_id", "status", "about", "lat", "lng", "location_name", "incident_time", "last_update_time", "last_updated_by", "crop"}
	entityCols   = []string{"entity_id", "name", "type", "lat", "lng", "location_name", "last_seen", "status", "image"}
)

func ptr[T any](v T) *T { return &v }

func newMockRepository(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock), mock
}

func TestPostgresListIncidents(t *testing.T) {
	repo, mock := newMockRepository(t)
	at := time.Date(2025, time.July, 4, 18, 20, 0, 0, time.UTC)

	mock.ExpectQuery("FROM incidents").
		WillReturnRows(pgxmock.NewRows(incidentCols).
			AddRow("INC-001", "active", "Suspicious activity detected", ptr(34.0522), ptr(-118.2437), "", at, at, "System", "").
			AddRow("INC-003", "Inactive", "System malfunction", nil, nil, "North Entrance", at, at, "Jane Smith", ""))

	incidents, err := repo.ListIncidents(context.Background())
	require.NoError(t, err)
	require.Len(t, incidents, 2)

	assert.Equal(t, models.StatusActive, incidents[0].Status)
	require.True(t, incidents[0].Location.HasCoordinates())
	assert.Equal(t, 34.0522, *incidents[0].Location.Lat)

	// Нераспознанный статус приводится к Unknown, координаты отсутствуют
	assert.Equal(t, models.StatusUnknown, incidents[1].Status)
	assert.False(t, incidents[1].Location.HasCoordinates())
	assert.Equal(t, "North Entrance", incidents[1].Location.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListIncidents_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("FROM incidents").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListIncidents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list incidents")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetIncident_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("WHERE incident_id = \\$1").
		WithArgs("INC-404").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetIncident(context.Background(), "INC-404")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresIncidentHistory(t *testing.T) {
	repo, mock := newMockRepository(t)
	first := time.Date(2025, time.July, 4, 18, 20, 0, 0, time.UTC)

	mock.ExpectQuery("FROM incident_updates").
		WithArgs("INC-001").
		WillReturnRows(pgxmock.NewRows([]string{"updated_at", "status", "about"}).
			AddRow(first, "Active", "Incident detected").
			AddRow(first.Add(5*time.Minute), "PENDING", "Under investigation"))

	history, err := repo.IncidentHistory(context.Background(), "INC-001")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.StatusPending, history[1].Status)
	assert.Equal(t, first, history[0].Time)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAssociatedEntities(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("FROM incident_entities").
		WithArgs("INC-001").
		WillReturnRows(pgxmock.NewRows([]string{"entity_id"}).AddRow("ENT-001").AddRow("ENT-003"))

	ids, err := repo.AssociatedEntities(context.Background(), "INC-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"ENT-001", "ENT-003"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetEntity(t *testing.T) {
	repo, mock := newMockRepository(t)
	seen := time.Date(2025, time.July, 4, 19, 30, 0, 0, time.UTC)

	mock.ExpectQuery("FROM entities").
		WithArgs("ENT-001").
		WillReturnRows(pgxmock.NewRows(entityCols).
			AddRow("ENT-001", "Person", "Human", ptr(34.0522), ptr(-118.2437), "South Gate", &seen, "Active", ""))

	entity, err := repo.GetEntity(context.Background(), "ENT-001")
	require.NoError(t, err)
	assert.Equal(t, "Person", entity.Name)
	assert.Equal(t, seen, entity.LastSeen)
	assert.Equal(t, "South Gate", entity.Location.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListEntities_NullLastSeen(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("FROM entities").
		WillReturnRows(pgxmock.NewRows(entityCols).
			AddRow("ENT-003", "Object", "Package", nil, nil, "", nil, "unknown", ""))

	entities, err := repo.ListEntities(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.True(t, entities[0].LastSeen.IsZero())
	assert.Equal(t, models.StatusUnknown, entities[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRelatedIncidents(t *testing.T) {
	repo, mock := newMockRepository(t)
	at := time.Date(2025, time.July, 4, 14, 15, 0, 0, time.UTC)

	mock.ExpectQuery("JOIN incidents").
		WithArgs("ENT-001").
		WillReturnRows(pgxmock.NewRows([]string{"incident_id", "status", "about", "incident_time"}).
			AddRow("INC-005", "confirmed", "Unauthorized access", at))

	related, err := repo.RelatedIncidents(context.Background(), "ENT-001")
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, models.RelatedIncident{
		IncidentID: "INC-005",
		Status:     models.StatusConfirmed,
		About:      "Unauthorized access",
		Time:       at,
	}, related[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
