package handlers

import (
	"encoding/json"
	"net/http"
)

// respondJSON marshals before writing the status, so an encode failure
// (e.g. a NaN or Inf metric) becomes a 500 instead of a truncated 200.
func respondJSON(w http.ResponseWriter, status int, data interface{}) error {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to encode response"}` + "\n"))
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
	return nil
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// respondJSON writes data and logs when it could not be encoded
func (h *DashboardHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	if err := respondJSON(w, status, data); err != nil {
		h.logger.WithError(err).Error("Failed to encode response")
	}
}
