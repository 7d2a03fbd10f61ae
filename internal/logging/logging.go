// Package logging builds the structured logger used by the flight server.
// The message key and the names under which trace identifiers appear are
// configurable so log pipelines can map events without re-parsing.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Trace key roles understood by WithTrace
const (
	TraceKeyTraceID      = "trace_id"
	TraceKeySpanID       = "span_id"
	TraceKeyParentSpanID = "parent_span_id"
)

// Options selects level, output format and the structured-log key names
type Options struct {
	Level  string
	Format string
	// EventKey is the JSON key carrying the log message
	EventKey string
	// TraceKeys maps trace roles (trace_id, span_id, parent_span_id) to the
	// keys they should appear under in log output
	TraceKeys map[string]string
}

// New builds a zap logger honoring the configured event key
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch opts.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if opts.Format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	if opts.EventKey != "" {
		cfg.EncoderConfig.MessageKey = opts.EventKey
	}

	return cfg.Build()
}

// WithTrace attaches trace identifiers to the logger under the configured key
// names. Roles without a mapping fall back to their role name; empty
// identifiers are skipped.
func WithTrace(logger *zap.Logger, traceKeys map[string]string, traceID, spanID, parentSpanID string) *zap.Logger {
	fields := make([]zap.Field, 0, 3)
	for role, value := range map[string]string{
		TraceKeyTraceID:      traceID,
		TraceKeySpanID:       spanID,
		TraceKeyParentSpanID: parentSpanID,
	} {
		if value == "" {
			continue
		}
		key := traceKeys[role]
		if key == "" {
			key = role
		}
		fields = append(fields, zap.String(key, value))
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}
