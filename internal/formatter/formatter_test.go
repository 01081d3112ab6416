package formatter

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shenikar/alert_dashboard/internal/models"
)

func TestStatusToColor(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{"active", "Active", ColorActive},
		{"upper case", "ACTIVE", ColorActive},
		{"lower case", "active", ColorActive},
		{"confirmed", "Confirmed", ColorConfirmed},
		{"false", "false", ColorFalse},
		{"pending", "PENDING", ColorPending},
		{"unknown", "Unknown", ColorUnknown},
		{"unrecognized", "Inactive", ColorUnknown},
		{"empty", "", ColorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusToColor(tt.status))
		})
	}

	assert.Equal(t, StatusToColor("ACTIVE"), StatusToColor("active"))
	assert.Equal(t, StatusToColor("garbage"), StatusToColor(""))
}

func TestBadgeStyles(t *testing.T) {
	assert.Equal(t, ColorActive, IncidentBadge.Color(models.StatusActive))
	assert.Equal(t, ColorConfirmed, EntityBadge.Color(models.StatusActive))
	assert.Equal(t, ColorUnknown, EntityBadge.Color(models.StatusUnknown))
	assert.Equal(t, ColorPending, EntityBadge.Color(models.StatusFalse))
	assert.NotEqual(t, IncidentBadge.Radius, EntityBadge.Radius)
}

func TestNewPalette_CopiesColors(t *testing.T) {
	colors := map[models.Status]string{models.StatusActive: "#000000"}
	p := NewPalette(colors, "#FFFFFF")
	colors[models.StatusActive] = "#111111"

	assert.Equal(t, "#000000", p.Color(models.StatusActive))
	assert.Equal(t, "#FFFFFF", p.Color(models.StatusPending))
}

func TestLocationToString(t *testing.T) {
	lat, lng := 34.0522, -118.2437

	tests := []struct {
		name     string
		location *models.Location
		want     string
	}{
		{"nil location", nil, "Unknown"},
		{"name only", &models.Location{Name: "Gate"}, "Gate"},
		{"name wins over coordinates", &models.Location{Name: "South Gate", Lat: &lat, Lng: &lng}, "South Gate"},
		{"coordinates", &models.Location{Lat: &lat, Lng: &lng}, "34.052200, -118.243700"},
		{"latitude only", &models.Location{Lat: &lat}, "Location data unavailable"},
		{"empty", &models.Location{}, "Location data unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocationToString(tt.location))
		})
	}
}

func TestLocationToString_ZeroCoordinates(t *testing.T) {
	loc := models.Point(0, 0)
	assert.Equal(t, "0.000000, 0.000000", LocationToString(&loc))
}

func TestBase64ToImage(t *testing.T) {
	assert.Equal(t, "", Base64ToImage(""))
	assert.Equal(t, "data:image/jpeg;base64,AAAA", Base64ToImage("AAAA"))
}

func TestVisibilityHelpers(t *testing.T) {
	var nilIncident *models.Incident

	assert.Equal(t, "block", BooleanToVisibility(true))
	assert.Equal(t, "none", BooleanToVisibility(false))
	assert.Equal(t, "block", NonZeroToVisibility(3))
	assert.Equal(t, "none", NonZeroToVisibility(0))
	assert.Equal(t, "block", ZeroToVisibility(0))
	assert.Equal(t, "none", ZeroToVisibility(2))

	assert.False(t, NullToFalse(nil))
	assert.False(t, NullToFalse(nilIncident))
	assert.True(t, NullToFalse(&models.Incident{}))
	assert.True(t, NullToFalse(0))

	assert.Equal(t, "block", InvertedNullVisibility(nil))
	assert.Equal(t, "block", InvertedNullVisibility(nilIncident))
	assert.Equal(t, "none", InvertedNullVisibility("x"))
}

func TestTimeFormats(t *testing.T) {
	ts := time.Date(2025, time.July, 4, 18, 20, 0, 0, time.UTC)

	assert.Equal(t, "July 4, 2025", VerboseDate(ts))
	assert.Equal(t, "18:20", VerboseClock(ts))
	assert.Equal(t, "04/07/25 18:20", Compact(ts))
	assert.Equal(t, "04/07/2025, 18:20:00", Full(ts))

	morning := time.Date(2025, time.July, 3, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "03/07/25 09:05", Compact(morning))
	assert.Equal(t, "09:05", VerboseClock(morning))
}

func TestTimeFormats_ZeroTime(t *testing.T) {
	var zero time.Time
	assert.Empty(t, VerboseDate(zero))
	assert.Empty(t, VerboseClock(zero))
	assert.Empty(t, Compact(zero))
	assert.Empty(t, Full(zero))
}

func TestPlaybackTime(t *testing.T) {
	assert.Equal(t, "00:00", PlaybackTime(0))
	assert.Equal(t, "00:59", PlaybackTime(59.9))
	assert.Equal(t, "01:05", PlaybackTime(65))
	assert.Equal(t, "61:01", PlaybackTime(3661))
	assert.Equal(t, "00:00", PlaybackTime(-4))
	assert.Equal(t, "00:00", PlaybackTime(math.NaN()))
}
