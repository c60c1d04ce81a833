package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marksheet/internal/handler"
	"marksheet/internal/marks"
	"marksheet/internal/service"
)

func TestGetStatistics(t *testing.T) {
	svc := service.NewDatasetService(setupTestDB(t))
	statsHandler := handler.NewStatsHandler(svc, testThreshold)
	datasetID := seedDataset(t, svc)

	req := httptest.NewRequest("GET", "/statistics?dataset_id="+datasetID, nil)
	rr := httptest.NewRecorder()

	statsHandler.GetStatistics(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Success    bool           `json:"success"`
		Statistics marks.Overview `json:"statistics"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))

	assert.True(t, response.Success)
	assert.Equal(t, 3, response.Statistics.TotalStudents)
	assert.Equal(t, 1, response.Statistics.PassedStudents)
	assert.Equal(t, 2, response.Statistics.FailedStudents)
	assert.Equal(t, 33.33, response.Statistics.PassPercentage)
	assert.Equal(t, 92, response.Statistics.HighestMark)
	assert.Equal(t, 20, response.Statistics.LowestMark)
}

func TestGetStatisticsThresholdOverride(t *testing.T) {
	svc := service.NewDatasetService(setupTestDB(t))
	statsHandler := handler.NewStatsHandler(svc, testThreshold)
	datasetID := seedDataset(t, svc)

	req := httptest.NewRequest("GET", "/statistics?dataset_id="+datasetID+"&threshold=30", nil)
	rr := httptest.NewRecorder()

	statsHandler.GetStatistics(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Statistics marks.Overview `json:"statistics"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, 2, response.Statistics.PassedStudents)
}

func TestGetSummary(t *testing.T) {
	svc := service.NewDatasetService(setupTestDB(t))
	statsHandler := handler.NewStatsHandler(svc, testThreshold)
	datasetID := seedDataset(t, svc)

	req := httptest.NewRequest("GET", "/summary?dataset_id="+datasetID, nil)
	rr := httptest.NewRecorder()

	statsHandler.GetSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Success bool                   `json:"success"`
		Rows    int                    `json:"rows"`
		Data    []marks.SubjectSummary `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))

	assert.True(t, response.Success)
	require.Equal(t, 2, response.Rows)
	assert.Equal(t, "Math", response.Data[0].Subject)
	assert.Equal(t, 65.67, response.Data[0].Average)
	assert.Equal(t, 2, response.Data[0].Passed)
	assert.Equal(t, 1, response.Data[0].Failed)
	assert.Equal(t, "English", response.Data[1].Subject)
	assert.Equal(t, 1, response.Data[1].Passed)
	assert.Equal(t, 2, response.Data[1].Failed)
}

func TestStatsErrors(t *testing.T) {
	svc := service.NewDatasetService(setupTestDB(t))
	statsHandler := handler.NewStatsHandler(svc, testThreshold)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"missing dataset_id", "/statistics", http.StatusBadRequest},
		{"dataset not found", "/statistics?dataset_id=no-such-id", http.StatusNotFound},
		{"invalid threshold", "/statistics?dataset_id=x&threshold=200", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			rr := httptest.NewRecorder()

			statsHandler.GetStatistics(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
