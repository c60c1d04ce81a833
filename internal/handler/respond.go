package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// writeJSON encodes a response envelope. All endpoints answer JSON except
// the CSV download.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// thresholdParam reads an optional threshold query parameter, falling back
// to the configured default. Values outside 0-100 are rejected.
func thresholdParam(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("threshold")
	if raw == "" {
		return fallback, nil
	}
	threshold, err := strconv.Atoi(raw)
	if err != nil || threshold < 0 || threshold > 100 {
		return 0, errInvalidThreshold
	}
	return threshold, nil
}
