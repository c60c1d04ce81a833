package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"marksheet/internal/marks"
	"marksheet/internal/service"
)

type DownloadHandler struct {
	datasetService *service.DatasetService
	passThreshold  int
}

func NewDownloadHandler(datasetService *service.DatasetService, passThreshold int) *DownloadHandler {
	return &DownloadHandler{datasetService: datasetService, passThreshold: passThreshold}
}

// DownloadCSV streams the filtered rows of a dataset as a CSV attachment
// with the upload schema. filter_type=summary downloads the subject-wise
// summary instead.
func (h *DownloadHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	datasetID := query.Get("dataset_id")
	if datasetID == "" {
		writeError(w, http.StatusBadRequest, "dataset_id parameter is required")
		return
	}
	filterType := query.Get("filter_type")
	if filterType == "" {
		filterType = "all"
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

	if filterType == "summary" {
		h.sendCSV(w, filterType, func(w http.ResponseWriter) error {
			return marks.WriteSummaryCSV(w, marks.Summarize(table, threshold))
		})
		return
	}

	predicate, _, err := resolvePredicate(table, filterType, query.Get("subject"), threshold)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	filtered := table.Filter(predicate)
	h.sendCSV(w, filterType, func(w http.ResponseWriter) error {
		return marks.WriteCSV(w, filtered)
	})
}

// sendCSV sets the attachment headers and writes a UTF-8 BOM so Excel
// opens the file correctly.
func (h *DownloadHandler) sendCSV(w http.ResponseWriter, filterType string, write func(http.ResponseWriter) error) {
	filename := fmt.Sprintf("%s_%s.csv", filterType, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		slog.Error("failed to write BOM", slog.Any("error", err))
		return
	}
	if err := write(w); err != nil {
		slog.Error("failed to write CSV download", slog.Any("error", err))
	}
}
