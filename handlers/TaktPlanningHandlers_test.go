package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func expectValidSession(mock sqlmock.Sqlmock) {
	rows := sqlmock.NewRows([]string{"user_id", "user_name", "host_name", "ip_address"}).
		AddRow(7, "Jane Doe", "jane@example.com", "10.0.0.1")
	mock.ExpectQuery("SELECT s.user_id").WithArgs("session-token").WillReturnRows(rows)
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := gin.New()
	r.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestTaktLBSPreviewReturnsRowsAndCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectValidSession(mock)

	req := models.LBSPreviewRequest{
		ProjectID: 1,
		Configuration: models.BuildingConfiguration{
			BuildingType:            "residential",
			FloorCount:              2,
			ZonesPerFloor:           2,
			StructuralZonesPerFloor: 1,
			SubstructureZonesCount:  2,
			TypicalFloorArea:        600,
		},
	}

	w := postJSON(t, TaktLBSPreview(db), "/api/takt/lbs/preview", req, "session-token")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LBSPreviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, len(resp.Rows), resp.Counts.Total)
	assert.Greater(t, resp.Counts.Zones, 0)
	assert.Equal(t, 2, resp.Counts.Substructure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaktLBSPreviewUnknownBuildingTypeIsEmptyNotError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectValidSession(mock)

	req := models.LBSPreviewRequest{
		ProjectID:     1,
		Configuration: models.BuildingConfiguration{BuildingType: "spaceport"},
	}

	w := postJSON(t, TaktLBSPreview(db), "/api/takt/lbs/preview", req, "session-token")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LBSPreviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Empty(t, resp.Rows)
	assert.Equal(t, 0, resp.Counts.Total)
}

func TestTaktLBSPreviewRejectsMissingSession(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	w := postJSON(t, TaktLBSPreview(db), "/api/takt/lbs/preview", models.LBSPreviewRequest{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaktRecommendationNeutralConfiguration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectValidSession(mock)

	req := models.RecommendationRequest{
		ProjectID: 1,
		Configuration: models.BuildingConfiguration{
			BuildingType:         "residential",
			StructuralSystemCode: "insitu_concrete",
			MEPComplexityCode:    "standard",
			FoundationTypeCode:   "raft",
			GroundConditionCode:  "normal",
		},
	}

	w := postJSON(t, TaktRecommendationHandler(db), "/api/takt/recommendation", req, "session-token")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.BaseTaktDays)
	assert.Equal(t, 5, resp.Takt.Recommended)
	assert.Equal(t, 4, resp.Takt.RangeLow)
	assert.Equal(t, 6, resp.Takt.RangeHigh)
	assert.Equal(t, 1, resp.BufferSize)
}

func TestTaktEstimateFiveTradesTwelveZones(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectValidSession(mock)

	req := models.EstimateRequest{
		ZoneCount:    12,
		TradeCount:   5,
		BufferSize:   1,
		TaktTimeDays: 5,
		WorkingDays:  []string{"mon", "tue", "wed", "thu", "fri"},
	}

	w := postJSON(t, TaktEstimateHandler(db), "/api/takt/estimate", req, "session-token")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.True(t, resp.Estimable)
	assert.Equal(t, 20, resp.Estimate.TotalTakts)
	assert.Equal(t, 100, resp.Estimate.TotalWorkingDays)
	assert.Equal(t, 140, resp.Estimate.CalendarDays)
}

func TestTaktEstimateZeroZonesNotEstimable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectValidSession(mock)

	req := models.EstimateRequest{ZoneCount: 0, TradeCount: 5, BufferSize: 1, TaktTimeDays: 5}

	w := postJSON(t, TaktEstimateHandler(db), "/api/takt/estimate", req, "session-token")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.False(t, resp.Estimable)
	assert.Equal(t, 0, resp.Estimate.TotalTakts)
	assert.Equal(t, 0, resp.Estimate.CalendarDays)
}
