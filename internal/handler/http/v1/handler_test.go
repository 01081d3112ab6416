package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/alert_dashboard/internal/config"
	"github.com/shenikar/alert_dashboard/internal/models"
	"github.com/shenikar/alert_dashboard/internal/service"
	"github.com/shenikar/alert_dashboard/internal/service/mocks"
	"github.com/shenikar/alert_dashboard/internal/viewstate"
)

const testSessionID = "3f1c2a9e-8d4b-4c6f-9a51-0e7d2b6c4f10"

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{DisplayLocation: time.UTC}
	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов в рамках тестовой сессии
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(SessionHeader, testSessionID)
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func sampleIncident() models.Incident {
	return models.Incident{
		IncidentID:     "INC-001",
		Status:         models.StatusActive,
		About:          "Suspicious activity detected",
		Location:       models.Point(34.0522, -118.2437),
		IncidentTime:   time.Date(2025, time.July, 4, 18, 20, 0, 0, time.UTC),
		LastUpdateTime: time.Date(2025, time.July, 4, 19, 30, 0, 0, time.UTC),
		LastUpdatedBy:  "System",
		Crop:           "aGVsbG8=",
	}
}

func TestGetOverview_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := sampleIncident()

	mockService.EXPECT().
		Overview(gomock.Any(), testSessionID).
		Return(viewstate.OverviewState{
			Items:          []models.Incident{incident},
			Selected:       &incident,
			DetailsVisible: true,
			Filters:        []string{"Active", "Today"},
		}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp OverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.Equal(t, "Active", item.Status)
	assert.Equal(t, "#FF9800", item.StatusColor)
	assert.Equal(t, "34.052200, -118.243700", item.Location.Text)
	assert.Equal(t, "04/07/25 18:20", item.IncidentTime)
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", item.CropImage)
	assert.Equal(t, "block", resp.DetailsDisplay)
	require.NotNil(t, resp.Selected)
	assert.Equal(t, []string{"Active", "Today"}, resp.Filters)
}

func TestGetOverview_DisplayLocation(t *testing.T) {
	h, mockService, router := newTestHandler(t)
	h.mapper = NewMapper(time.FixedZone("UTC+3", 3*60*60))

	mockService.EXPECT().
		Overview(gomock.Any(), testSessionID).
		Return(viewstate.OverviewState{Items: []models.Incident{sampleIncident()}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp OverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "04/07/25 21:20", resp.Items[0].IncidentTime)
	assert.Equal(t, "none", resp.DetailsDisplay)
}

func TestSelectIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SelectIncident(gomock.Any(), testSessionID, "INC-404").
		Return(viewstate.OverviewState{}, fmt.Errorf("service: incident INC-404: %w", service.ErrNotFound))

	w := makeRequest(router, http.MethodPost, "/api/v1/overview/select", jsonBody(t, SelectIncidentRequest{IncidentID: "INC-404"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestSelectIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SelectIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/overview/select", jsonBody(t, SelectIncidentRequest{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	updated := sampleIncident()
	updated.Status = models.StatusConfirmed
	updated.LastUpdatedBy = "Jane"

	mockService.EXPECT().
		UpdateIncidentStatus(gomock.Any(), testSessionID, models.StatusConfirmed, "Jane").
		Return(updated, nil)

	// Регистр статуса не важен
	w := makeRequest(router, http.MethodPost, "/api/v1/overview/status", jsonBody(t, UpdateStatusRequest{Status: "confirmed", UpdatedBy: "Jane"}))
	require.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Confirmed", resp.Status)
	assert.Equal(t, "#4CAF50", resp.StatusColor)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().UpdateIncidentStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/overview/status", jsonBody(t, UpdateStatusRequest{Status: "Inactive"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "incident_status")
}

func TestUpdateStatus_NoSelection(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		UpdateIncidentStatus(gomock.Any(), testSessionID, models.StatusFalse, "").
		Return(models.Incident{}, service.ErrNoSelection)

	w := makeRequest(router, http.MethodPost, "/api/v1/overview/status", jsonBody(t, UpdateStatusRequest{Status: "False"}))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateStatus_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().UpdateIncidentStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/overview/status", bytes.NewBufferString(`{"status": "Active"`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestExamineIncident(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		ExamineIncident(gomock.Any(), testSessionID).
		Return(models.NavigationTarget{View: models.ViewAlertInfo, ID: "INC-001"}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/overview/examine", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp NavigationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/alert-info/INC-001", resp.Path)
}

func TestRemoveIncidentFilter(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		RemoveIncidentFilter(gomock.Any(), testSessionID, "Today").
		Return(viewstate.OverviewState{Filters: []string{"Active"}}, nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/overview/filters/Today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"filters":["Active"]`)
}

func TestGetEntities_RelatedFormatting(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	entity := models.Entity{EntityID: "ENT-001", Name: "Person", Status: models.StatusActive}

	mockService.EXPECT().
		Entities(gomock.Any(), testSessionID).
		Return(viewstate.EntitiesState{
			Items:          []models.Entity{entity, {EntityID: "ENT-002", Status: models.StatusUnknown}},
			Selected:       &entity,
			DetailsVisible: true,
			Related: []models.RelatedIncident{{
				IncidentID: "INC-005",
				Status:     models.StatusConfirmed,
				Time:       time.Date(2025, time.July, 4, 14, 15, 0, 0, time.UTC),
			}},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/entities", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp EntitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "#4CAF50", resp.Items[0].StatusColor)
	assert.Equal(t, "#9E9E9E", resp.Items[1].StatusColor)
	assert.Equal(t, "Location data unavailable", resp.Items[0].Location.Text)
	require.Len(t, resp.Related, 1)
	assert.Equal(t, "14:15", resp.Related[0].Time)
	assert.Equal(t, "July 4, 2025", resp.Related[0].Date)
	assert.Equal(t, []string{}, resp.Filters)
}

func TestSelectEntity_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		SelectEntity(gomock.Any(), testSessionID, "ENT-001").
		Return(viewstate.EntitiesState{}, errors.New("database is down"))

	w := makeRequest(router, http.MethodPost, "/api/v1/entities/select", jsonBody(t, SelectEntityRequest{EntityID: "ENT-001"}))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestViewRelatedIncident(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		ViewRelatedIncident(gomock.Any(), testSessionID, "INC-005").
		Return(models.NavigationTarget{View: models.ViewAlertInfo, ID: "INC-005"}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/entities/related/INC-005/view", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"path":"/alert-info/INC-005"`)
}

func TestGetAlertInfo(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	seen := time.Date(2025, time.July, 4, 19, 30, 5, 0, time.UTC)

	mockService.EXPECT().
		AlertInfo(gomock.Any(), testSessionID, "INC-001").
		Return(viewstate.AlertInfoState{
			Incident: sampleIncident(),
			History: []models.IncidentUpdate{
				{Time: time.Date(2025, time.July, 4, 18, 25, 0, 0, time.UTC), Status: models.StatusPending, About: "Under investigation"},
			},
			EntityIDs: []string{"ENT-001"},
			Card:      &models.EntityCard{EntityID: "ENT-001", SeenTime: seen},
			Playback:  viewstate.PlaybackState{Label: "00:00 / 00:00"},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/alert-info/INC-001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AlertInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INC-001", resp.Incident.IncidentID)
	require.Len(t, resp.History, 1)
	assert.Equal(t, "18:25", resp.History[0].Time)
	assert.Equal(t, "#2196F3", resp.History[0].StatusColor)
	require.NotNil(t, resp.Card)
	assert.Equal(t, "04/07/2025, 19:30:05", resp.Card.SeenTime)
	assert.Equal(t, "none", resp.MapPlaceholderDisplay)
}

func TestGetAlertInfo_WithoutID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		AlertInfo(gomock.Any(), testSessionID, "").
		Return(viewstate.AlertInfoState{}, service.ErrNotFound)

	w := makeRequest(router, http.MethodGet, "/api/v1/alert-info", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEntityCard(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	gomock.InOrder(
		mockService.EXPECT().
			ShowEntityInfo(gomock.Any(), testSessionID, "ENT-002").
			Return(viewstate.AlertInfoState{}, service.ErrNoSelection),
		mockService.EXPECT().
			CollapseEntityInfo(gomock.Any(), testSessionID).
			Return(viewstate.AlertInfoState{MapPlaceholderVisible: true}, nil),
	)

	w := makeRequest(router, http.MethodPost, "/api/v1/alert-info/entity-card", jsonBody(t, SelectEntityRequest{EntityID: "ENT-002"}))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = makeRequest(router, http.MethodDelete, "/api/v1/alert-info/entity-card", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"map_placeholder_display":"block"`)
}

func TestPlaybackRoutes(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	state := viewstate.PlaybackState{Playing: true, Position: 30, Duration: 90, Label: "00:30 / 01:30"}

	mockService.EXPECT().TogglePlayback(gomock.Any(), testSessionID).Return(state, nil)
	mockService.EXPECT().SeekPlayback(gomock.Any(), testSessionID, 30.0).Return(state, nil)
	mockService.EXPECT().LoadPlaybackMetadata(gomock.Any(), testSessionID, 90.0).Return(state, nil)
	mockService.EXPECT().PlaybackTimeUpdate(gomock.Any(), testSessionID, 0.0).Return(state, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/playback/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"label":"00:30 / 01:30"`)

	w = makeRequest(router, http.MethodPost, "/api/v1/playback/seek", bytes.NewBufferString(`{"position": 30}`))
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/playback/metadata", bytes.NewBufferString(`{"duration": 90}`))
	assert.Equal(t, http.StatusOK, w.Code)

	// Нулевая позиция допустима
	w = makeRequest(router, http.MethodPost, "/api/v1/playback/timeupdate", bytes.NewBufferString(`{"position": 0}`))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlaybackSeek_Validation(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SeekPlayback(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/playback/seek", bytes.NewBufferString(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/playback/seek", bytes.NewBufferString(`{"position": -5}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMapMarkers(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		MapMarkers(gomock.Any(), testSessionID).
		Return(service.Markers([]models.Incident{sampleIncident()}, nil), nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/map/markers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))

	var fc geojson.FeatureCollection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "INC-001", fc.Features[0].ID)
}

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	var seen string
	mockService.EXPECT().
		Overview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sessionID string) (viewstate.OverviewState, error) {
			seen = sessionID
			return viewstate.OverviewState{}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(SessionHeader))
	assert.Contains(t, w.Header().Get("Set-Cookie"), SessionCookie+"="+seen)
}

func TestSessionMiddleware_ReplacesInvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		Overview(gomock.Any(), gomock.Not("not-a-uuid")).
		Return(viewstate.OverviewState{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/overview", nil, map[string]string{SessionHeader: "not-a-uuid"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(SessionHeader))
}

func TestEndSession(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().EndSession(testSessionID).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/session", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
