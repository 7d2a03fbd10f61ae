package v0

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/quanb-duy/gooddata-go-sdk/internal/schema"
	"github.com/quanb-duy/gooddata-go-sdk/internal/telemetry"
)

const maxValidateBodySize = 1 << 20 // 1MB

type errorResponse struct {
	Error string `json:"error"`
}

// ModelsHandler lists the model names documents can be validated against
func ModelsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]string{"models": schema.Names()})
	}
}

// ValidateHandler validates a raw JSON document against a named model schema.
// The outcome is always a 200 with a validation result; only transport-level
// problems map to error statuses.
func ValidateHandler(logger *zap.Logger, metrics *telemetry.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modelName := r.PathValue("model")

		desc, ok := schema.Lookup(modelName)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: "unknown model: " + modelName})
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxValidateBodySize))
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: "failed to read request body"})
			return
		}

		result := schema.Validate(body, desc)
		if !result.Valid {
			if metrics != nil {
				metrics.ValidationFailures.Add(r.Context(), 1)
			}
			logger.Debug("document failed validation",
				zap.String("model", modelName),
				zap.Int("errors", len(result.Errors)),
			)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}
}
