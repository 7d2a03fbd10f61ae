// Package router contains API routing logic
package router

import (
	"net/http"

	"go.uber.org/zap"

	v0 "github.com/quanb-duy/gooddata-go-sdk/internal/api/handlers/v0"
	"github.com/quanb-duy/gooddata-go-sdk/internal/config"
	"github.com/quanb-duy/gooddata-go-sdk/internal/telemetry"
)

// New creates a new router with all API versions registered
func New(cfg *config.Config, logger *zap.Logger, metrics *telemetry.Metrics, version string) *http.ServeMux {
	mux := http.NewServeMux()

	RegisterV0Routes(mux, cfg, logger, metrics, version)

	return mux
}

// RegisterV0Routes registers the v0 endpoints on the mux
func RegisterV0Routes(mux *http.ServeMux, cfg *config.Config, logger *zap.Logger, metrics *telemetry.Metrics, version string) {
	advertiseAddr := ""
	if cfg != nil {
		advertiseAddr = cfg.AdvertiseAddr()
	}

	mux.HandleFunc("/v0/ping", v0.PingHandler(version))
	mux.HandleFunc("/v0/health", v0.HealthHandler(version, advertiseAddr))
	mux.HandleFunc("/v0/models", v0.ModelsHandler())
	mux.HandleFunc("POST /v0/validate/{model}", v0.ValidateHandler(logger, metrics))
	mux.HandleFunc("/v0/swagger", v0.SwaggerHandler())
	mux.HandleFunc("/v0/swagger/", v0.SwaggerHandler())
	mux.HandleFunc("/v0/swagger/doc.yaml", v0.SwaggerDocHandler())
}
