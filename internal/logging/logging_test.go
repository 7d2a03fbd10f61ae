package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/quanb-duy/gooddata-go-sdk/internal/logging"
)

func TestNewBuildsLogger(t *testing.T) {
	logger, err := logging.New(logging.Options{
		Level:    "debug",
		EventKey: "event",
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestWithTraceUsesConfiguredKeyNames(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	traceKeys := map[string]string{
		logging.TraceKeyTraceID: "traceId",
		logging.TraceKeySpanID:  "spanId",
	}

	logging.WithTrace(logger, traceKeys, "trace-1", "span-1", "").Info("request served")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "trace-1", fields["traceId"])
	assert.Equal(t, "span-1", fields["spanId"])
	assert.NotContains(t, fields, "parent_span_id")
}

func TestWithTraceFallsBackToRoleNames(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	logging.WithTrace(logger, nil, "trace-1", "", "parent-1").Info("request served")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "parent-1", fields["parent_span_id"])
}

func TestWithTraceNoIdentifiersReturnsSameLogger(t *testing.T) {
	logger := zap.NewNop()
	assert.Same(t, logger, logging.WithTrace(logger, nil, "", "", ""))
}
