package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"marksheet/internal/marks"
	"marksheet/internal/service"
)

type UploadHandler struct {
	datasetService *service.DatasetService
	maxUploadBytes int64
	passThreshold  int
}

func NewUploadHandler(datasetService *service.DatasetService, maxUploadBytes int64, passThreshold int) *UploadHandler {
	return &UploadHandler{
		datasetService: datasetService,
		maxUploadBytes: maxUploadBytes,
		passThreshold:  passThreshold,
	}
}

func (h *UploadHandler) sizeLimitMessage() string {
	if h.maxUploadBytes >= 1<<20 && h.maxUploadBytes%(1<<20) == 0 {
		return fmt.Sprintf("File size exceeds maximum limit (%dMB)", h.maxUploadBytes>>20)
	}
	return fmt.Sprintf("File size exceeds maximum limit (%d bytes)", h.maxUploadBytes)
}

// UploadFile accepts a multipart "file" field holding a CSV or XLSX mark
// sheet, validates and stores it, and returns the dataset ID together with
// the class statistics.
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, h.sizeLimitMessage())
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, h.sizeLimitMessage())
			return
		}
		writeError(w, http.StatusBadRequest, "Bad multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	var table *marks.Table
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		table, err = marks.ReadCSV(file)
	case ".xlsx":
		table, err = marks.ReadWorkbook(file)
	default:
		writeError(w, http.StatusBadRequest, "Invalid file format. Please upload CSV or XLSX.")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dataset, err := h.datasetService.Save(table, header.Filename)
	if err != nil {
		slog.Error("failed to save uploaded dataset",
			slog.String("filename", header.Filename),
			slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to store uploaded data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "File uploaded successfully",
		"data": map[string]any{
			"dataset_id": dataset.ID,
			"filename":   dataset.Filename,
			"rows":       dataset.RowCount,
			"subjects":   table.Subjects,
			"statistics": marks.Overall(table, h.passThreshold),
		},
	})
}
