package v0

import (
	"encoding/json"
	"net/http"
)

type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	AdvertiseAddr string `json:"advertise_addr,omitempty"`
}

// HealthHandler returns a handler for the health check endpoint
func HealthHandler(version, advertiseAddr string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status:        "ok",
			Version:       version,
			AdvertiseAddr: advertiseAddr,
		})
	}
}

// LivenessHandler reports that the process is running
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
