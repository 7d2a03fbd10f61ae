package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	v0 "github.com/quanb-duy/gooddata-go-sdk/internal/api/handlers/v0"
	"github.com/quanb-duy/gooddata-go-sdk/internal/api/router"
	"github.com/quanb-duy/gooddata-go-sdk/internal/config"
	"github.com/quanb-duy/gooddata-go-sdk/internal/logging"
	"github.com/quanb-duy/gooddata-go-sdk/internal/telemetry"
)

// Server bundles the main HTTP listener with the optional health check and
// metrics listeners the config may enable on separate addresses.
type Server struct {
	config  *config.Config
	logger  *zap.Logger
	metrics *telemetry.Metrics

	main        *http.Server
	healthCheck *http.Server
	metricsSrv  *http.Server
}

// NewServer creates the HTTP surface of the flight server
func NewServer(cfg *config.Config, logger *zap.Logger, metrics *telemetry.Metrics, version string) *Server {
	mux := router.New(cfg, logger, metrics, version)

	s := &Server{
		config:  cfg,
		logger:  logger,
		metrics: metrics,
		main: &http.Server{
			Addr:              cfg.ListenAddr(),
			Handler:           instrument(metrics, logRequests(logger, cfg.LogTraceKeys, mux)),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	if cfg.HealthCheckHost != "" {
		healthMux := http.NewServeMux()
		healthMux.HandleFunc("/live", v0.LivenessHandler())
		healthMux.HandleFunc("/ready", v0.HealthHandler(version, cfg.AdvertiseAddr()))
		s.healthCheck = &http.Server{
			Addr:              cfg.HealthCheckAddr(),
			Handler:           healthMux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	if cfg.MetricsHost != "" && metrics != nil {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", metrics.PrometheusHandler())
		s.metricsSrv = &http.Server{
			Addr:              cfg.MetricsAddr(),
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return s
}

// Start begins listening for incoming HTTP requests. Auxiliary listeners run
// in their own goroutines; the main listener blocks.
func (s *Server) Start() error {
	if s.healthCheck != nil {
		s.logger.Info("health check listener starting", zap.String("addr", s.healthCheck.Addr))
		go func() {
			if err := s.healthCheck.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("health check listener failed", zap.Error(err))
			}
		}()
	}

	if s.metricsSrv != nil {
		s.logger.Info("metrics listener starting", zap.String("addr", s.metricsSrv.Addr))
		go func() {
			if err := s.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("metrics listener failed", zap.Error(err))
			}
		}()
	}

	if s.metrics != nil {
		s.metrics.Up.Record(context.Background(), 1)
	}

	s.logger.Info("HTTP server starting",
		zap.String("addr", s.main.Addr),
		zap.String("advertise_addr", s.config.AdvertiseAddr()),
	)
	return s.main.ListenAndServe()
}

// Shutdown gracefully shuts down all listeners
func (s *Server) Shutdown(ctx context.Context) error {
	if s.metrics != nil {
		s.metrics.Up.Record(ctx, 0)
	}

	var errs []error
	errs = append(errs, s.main.Shutdown(ctx))
	if s.healthCheck != nil {
		errs = append(errs, s.healthCheck.Shutdown(ctx))
	}
	if s.metricsSrv != nil {
		errs = append(errs, s.metricsSrv.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// statusRecorder captures the response status for metrics and request logs
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request count, duration and server errors for every
// served request
func instrument(metrics *telemetry.Metrics, next http.Handler) http.Handler {
	if metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		metrics.Requests.Add(r.Context(), 1)
		metrics.RequestDuration.Record(r.Context(), time.Since(start).Seconds())
		if rec.status >= http.StatusInternalServerError {
			metrics.ErrorCount.Add(r.Context(), 1)
		}
	})
}

// logRequests emits one entry per served request. Trace identifiers from an
// incoming W3C traceparent header appear under the configured trace key names.
func logRequests(logger *zap.Logger, traceKeys map[string]string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger
		if traceID, parentSpanID, ok := parseTraceparent(r.Header.Get("traceparent")); ok {
			reqLogger = logging.WithTrace(logger, traceKeys, traceID, "", parentSpanID)
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		reqLogger.Debug("request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
		)
	})
}

// parseTraceparent splits a W3C traceparent value
// (version-traceid-parentid-flags) into its trace and parent span ids.
func parseTraceparent(header string) (traceID, parentSpanID string, ok bool) {
	parts := strings.Split(header, "-")
	if len(parts) != 4 || len(parts[1]) != 32 || len(parts[2]) != 16 {
		return "", "", false
	}
	return parts[1], parts[2], true
}
