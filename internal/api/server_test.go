package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/quanb-duy/gooddata-go-sdk/internal/telemetry"
)

func TestLogRequestsAppliesConfiguredTraceKeys(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	traceKeys := map[string]string{
		"trace_id":       "dd.trace_id",
		"parent_span_id": "dd.parent_id",
	}

	handler := logRequests(zap.New(core), traceKeys, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v0/ping", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["dd.trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", fields["dd.parent_id"])
	assert.Equal(t, int64(http.StatusAccepted), fields["status"])
}

func TestLogRequestsWithoutTraceparent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	handler := logRequests(zap.New(core), nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v0/health", nil))

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.NotContains(t, fields, "trace_id")
	assert.Equal(t, "/v0/health", fields["path"])
}

func TestParseTraceparent(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		ok     bool
	}{
		{
			name:   "valid header",
			header: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
			ok:     true,
		},
		{name: "empty header", header: "", ok: false},
		{name: "too few segments", header: "00-4bf92f3577b34da6a3ce929d0e0e4736", ok: false},
		{name: "short trace id", header: "00-abc-00f067aa0ba902b7-01", ok: false},
		{name: "short parent id", header: "00-4bf92f3577b34da6a3ce929d0e0e4736-abc-01", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			traceID, parentSpanID, ok := parseTraceparent(tc.header)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Len(t, traceID, 32)
				assert.Len(t, parentSpanID, 16)
			}
		})
	}
}

func TestInstrumentCountsServerErrors(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(provider.Meter("test"))
	require.NoError(t, err)

	handler := instrument(metrics, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	assert.Equal(t, int64(2), counterValue(t, rm, telemetry.Namespace+".http.requests"))
	assert.Equal(t, int64(1), counterValue(t, rm, telemetry.Namespace+".http.errors"))
}

func counterValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)

			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	t.Fatalf("metric %s not recorded", name)
	return 0
}
