// Package v0 contains API handlers for version 0 of the API
package v0

import (
	"encoding/json"
	"net/http"
)

// PingHandler returns a handler for the ping endpoint that returns build version
func PingHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		response := map[string]string{
			"status":  "ok",
			"version": version,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}
}
