package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATA_SOURCE", "static")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DataSourceStatic, cfg.DataSource)
	assert.Equal(t, EventBusNone, cfg.EventBus)
	assert.Equal(t, []string{"Active", "Today"}, cfg.DefaultFilters)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.NotNil(t, cfg.DisplayLocation)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DEFAULT_FILTERS", " Pending , ,Camera 3")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("WEBHOOK_MAX_RETRIES", "not-a-number")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("EVENT_BUS", "NATS")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, []string{"Pending", "Camera 3"}, cfg.DefaultFilters)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, time.UTC, cfg.DisplayLocation)
	assert.Equal(t, EventBusNATS, cfg.EventBus)
}

func TestLoadConfig_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATA_SOURCE", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfig_RedisBusRequiresAddr(t *testing.T) {
	t.Setenv("EVENT_BUS", "redis")
	t.Setenv("REDIS_ADDR", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_ADDR")
}

func TestLoadConfig_UnknownDataSource(t *testing.T) {
	t.Setenv("DATA_SOURCE", "mongo")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_InvalidTimezone(t *testing.T) {
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_FilterLabelWithSlash(t *testing.T) {
	t.Setenv("DEFAULT_FILTERS", "Active,Gate 1/North")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gate 1/North")
}
