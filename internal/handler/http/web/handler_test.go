package web

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/alert_dashboard/internal/config"
	v1 "github.com/shenikar/alert_dashboard/internal/handler/http/v1"
	"github.com/shenikar/alert_dashboard/internal/models"
	"github.com/shenikar/alert_dashboard/internal/service"
	"github.com/shenikar/alert_dashboard/internal/service/mocks"
	"github.com/shenikar/alert_dashboard/internal/viewstate"
)

const testSessionID = "7b0e4c1d-52a3-4f8e-b9d6-1c2e3f4a5b6c"

func newTestHandler(t *testing.T) (*mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		DisplayLocation: time.FixedZone("UTC+3", 3*60*60),
		OperatorName:    "Operator",
	}
	handler, err := NewHandler(mockService, logger, cfg)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router)

	return mockService, router
}

func getPage(router *gin.Engine, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set(v1.SessionHeader, testSessionID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func incident() models.Incident {
	return models.Incident{
		IncidentID:     "INC-001",
		Status:         models.StatusActive,
		About:          "Suspicious activity detected",
		Location:       models.Named("Main Gate", 34.0522, -118.2437),
		IncidentTime:   time.Date(2025, time.July, 4, 18, 20, 0, 0, time.UTC),
		LastUpdateTime: time.Date(2025, time.July, 4, 19, 30, 0, 0, time.UTC),
		LastUpdatedBy:  "System",
		Crop:           "aGVsbG8=",
	}
}

func TestOverviewPage(t *testing.T) {
	mockService, router := newTestHandler(t)
	inc := incident()

	mockService.EXPECT().
		Overview(gomock.Any(), testSessionID).
		Return(viewstate.OverviewState{
			Items:          []models.Incident{inc},
			Selected:       &inc,
			DetailsVisible: true,
			Filters:        []string{"Active", "Today"},
		}, nil)

	w := getPage(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "INC-001")
	assert.Contains(t, body, "Main Gate")
	assert.Contains(t, body, "#FF9800")
	// Время показывается в зоне отображения
	assert.Contains(t, body, "04/07/25 21:20")
	assert.Contains(t, body, "data:image/jpeg;base64,aGVsbG8=")
	assert.Contains(t, body, "display: block")
	assert.Contains(t, body, "Today")
}

func TestOverviewPage_NothingSelected(t *testing.T) {
	mockService, router := newTestHandler(t)
	mockService.EXPECT().
		Overview(gomock.Any(), testSessionID).
		Return(viewstate.OverviewState{}, nil)

	w := getPage(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No incidents")
	assert.Contains(t, w.Body.String(), "display: none")
}

func TestEntityPage(t *testing.T) {
	mockService, router := newTestHandler(t)
	entity := models.Entity{
		EntityID: "ENT-002",
		Name:     "Vehicle",
		Type:     "Car",
		Status:   models.StatusUnknown,
		Location: models.Point(37.7749, -122.4194),
	}

	mockService.EXPECT().
		Entities(gomock.Any(), testSessionID).
		Return(viewstate.EntitiesState{
			Items:          []models.Entity{entity},
			Selected:       &entity,
			DetailsVisible: true,
			Related: []models.RelatedIncident{{
				IncidentID: "INC-001",
				Status:     models.StatusPending,
				Time:       time.Date(2025, time.July, 4, 14, 15, 0, 0, time.UTC),
			}},
		}, nil)

	w := getPage(router, "/entity")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "ENT-002")
	assert.Contains(t, body, "#9E9E9E")
	assert.Contains(t, body, "37.774900, -122.419400")
	assert.Contains(t, body, "July 4, 2025 17:15")
}

func TestAlertInfoPage(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().
		AlertInfo(gomock.Any(), testSessionID, "INC-001").
		Return(viewstate.AlertInfoState{
			Incident:  incident(),
			EntityIDs: []string{"ENT-001"},
			Card: &models.EntityCard{
				EntityID: "ENT-001",
				SeenTime: time.Date(2025, time.July, 4, 18, 0, 0, 0, time.UTC),
			},
			Position: 42,
			Playback: viewstate.PlaybackState{
				Position: 42,
				Duration: 90,
				Config:   viewstate.DefaultPlayerConfig("/static/video.mp4"),
			},
		}, nil)

	w := getPage(router, "/alert-info/INC-001")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "/static/video.mp4")
	assert.Contains(t, body, "00:42 / 01:30")
	assert.Contains(t, body, "04/07/2025, 21:00:00")
	assert.Contains(t, body, "ENT-001")
}

func TestAlertInfoPage_NotFound(t *testing.T) {
	mockService, router := newTestHandler(t)
	mockService.EXPECT().
		AlertInfo(gomock.Any(), testSessionID, "").
		Return(viewstate.AlertInfoState{}, service.ErrNotFound)

	w := getPage(router, "/alert-info")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Incident not found")
}

func TestMapPage(t *testing.T) {
	mockService, router := newTestHandler(t)
	mockService.EXPECT().
		MapMarkers(gomock.Any(), testSessionID).
		Return(service.Markers([]models.Incident{incident()}, nil), nil)

	w := getPage(router, "/map")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INC-001")
	assert.Contains(t, w.Body.String(), "Main Gate")
}

func TestPage_ServiceError(t *testing.T) {
	mockService, router := newTestHandler(t)
	mockService.EXPECT().
		Entities(gomock.Any(), testSessionID).
		Return(viewstate.EntitiesState{}, errors.New("database is down"))

	w := getPage(router, "/entity")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load dashboard data")
}
