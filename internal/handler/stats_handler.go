package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"marksheet/internal/marks"
	"marksheet/internal/service"
)

type StatsHandler struct {
	datasetService *service.DatasetService
	passThreshold  int
}

func NewStatsHandler(datasetService *service.DatasetService, passThreshold int) *StatsHandler {
	return &StatsHandler{datasetService: datasetService, passThreshold: passThreshold}
}

// GetStatistics returns the class-level statistics for a dataset.
func (h *StatsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	h.withTable(w, r, func(table *marks.Table, threshold int) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":            true,
			"message":            "Statistics generated successfully",
			"filter_description": "Overall Class Statistics",
			"statistics":         marks.Overall(table, threshold),
		})
	})
}

// GetSummary returns the per-subject pass/fail summary for a dataset.
func (h *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.withTable(w, r, func(table *marks.Table, threshold int) {
		summary := marks.Summarize(table, threshold)
		writeJSON(w, http.StatusOK, map[string]any{
			"success":            true,
			"message":            "Summary generated successfully",
			"filter_description": "Subject-wise Pass/Fail Summary",
			"rows":               len(summary),
			"data":               summary,
		})
	})
}

// withTable loads the dataset named by the query parameters and hands the
// table to fn, mapping lookup failures to the right status codes.
func (h *StatsHandler) withTable(w http.ResponseWriter, r *http.Request, fn func(*marks.Table, int)) {
	datasetID := r.URL.Query().Get("dataset_id")
	if datasetID == "" {
		writeError(w, http.StatusBadRequest, "dataset_id parameter is required")
		return
	}
	threshold, err := thresholdParam(r, h.passThreshold)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	table, _, err := h.datasetService.Load(datasetID)
	if err != nil {
		if errors.Is(err, service.ErrDatasetNotFound) {
			writeError(w, http.StatusNotFound, "No data loaded. Please upload a file first.")
			return
		}
		slog.Error("failed to load dataset", slog.String("dataset_id", datasetID), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to load dataset")
		return
	}
	fn(table, threshold)
}
