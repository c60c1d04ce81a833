package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"marksheet/internal/service"
)

type DatasetHandler struct {
	datasetService *service.DatasetService
}

func NewDatasetHandler(datasetService *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasetService: datasetService}
}

// ListDatasets returns the stored datasets, newest first.
func (h *DatasetHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets, err := h.datasetService.List()
	if err != nil {
		slog.Error("failed to list datasets", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to list datasets")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    datasets,
	})
}

// DeleteDataset discards a stored dataset and its rows.
func (h *DatasetHandler) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.datasetService.Delete(id); err != nil {
		if errors.Is(err, service.ErrDatasetNotFound) {
			writeError(w, http.StatusNotFound, "Dataset not found")
			return
		}
		slog.Error("failed to delete dataset", slog.String("dataset_id", id), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to delete dataset")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Dataset cleared. Ready for new upload.",
	})
}
