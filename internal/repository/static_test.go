package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/alert_dashboard/internal/models"
)

func TestStaticRepository_Incidents(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	incidents, err := repo.ListIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.Equal(t, "INC-001", incidents[0].IncidentID)
	assert.False(t, incidents[2].Location.HasCoordinates())

	// Изменение копии не затрагивает источник
	incidents[0].Status = models.StatusFalse
	again, err := repo.ListIncidents(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, again[0].Status)

	incident, err := repo.GetIncident(ctx, "INC-002")
	require.NoError(t, err)
	assert.Equal(t, "South Gate", incident.Location.Name)

	_, err = repo.GetIncident(ctx, "INC-404")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStaticRepository_Details(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	history, err := repo.IncidentHistory(ctx, "INC-001")
	require.NoError(t, err)
	assert.Len(t, history, 3)

	ids, err := repo.AssociatedEntities(ctx, "INC-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"ENT-001", "ENT-002", "ENT-003"}, ids)

	ids, err = repo.AssociatedEntities(ctx, "INC-003")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStaticRepository_Entities(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	entities, err := repo.ListEntities(ctx)
	require.NoError(t, err)
	require.Len(t, entities, 3)
	// "Inactive" не входит в набор статусов
	assert.Equal(t, models.StatusUnknown, entities[1].Status)

	related, err := repo.RelatedIncidents(ctx, "ENT-001")
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, "INC-005", related[1].IncidentID)

	_, err = repo.GetEntity(ctx, "ENT-404")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
