package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanb-duy/gooddata-go-sdk/internal/config"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadDefaults(t *testing.T) {
	cfg, err := config.Read()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ListenHost)
	assert.Equal(t, 17001, cfg.ListenPort)
	assert.Equal(t, 32, cfg.TaskThreads)
	assert.Equal(t, 17101, cfg.MetricsPort)
	assert.Equal(t, 8877, cfg.HealthCheckPort)
	assert.Equal(t, 30, cfg.MallocTrimIntervalSec)
	assert.Equal(t, "event", cfg.LogEventKeyName)
	assert.Equal(t, config.OtelExporterNone, cfg.Otel.ExporterType)
	assert.NotEmpty(t, cfg.AdvertiseHost)

	// advertise port falls back to the listen port
	assert.Equal(t, cfg.ListenPort, cfg.AdvertisePort)
	assert.Equal(t, "127.0.0.1:17001", cfg.ListenAddr())
}

func TestReadSettingsFile(t *testing.T) {
	path := writeSettings(t, "settings.yaml", `
server:
  listen_host: 0.0.0.0
  listen_port: 18001
  task_threads: 8
  log_event_key_name: msg
  log_trace_keys:
    trace_id: traceId
    span_id: spanId
  otel_exporter_type: otlp-http
  otel_service_name: gooddata-flight
`)

	cfg, err := config.Read(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ListenHost)
	assert.Equal(t, 18001, cfg.ListenPort)
	assert.Equal(t, 18001, cfg.AdvertisePort)
	assert.Equal(t, 8, cfg.TaskThreads)
	assert.Equal(t, "msg", cfg.LogEventKeyName)
	assert.Equal(t, map[string]string{"trace_id": "traceId", "span_id": "spanId"}, cfg.LogTraceKeys)
	assert.Equal(t, config.OtelExporterOtlpHTTP, cfg.Otel.ExporterType)
	assert.Equal(t, "gooddata-flight", cfg.Otel.ServiceName)
}

func TestReadMergesLaterFilesOverEarlier(t *testing.T) {
	base := writeSettings(t, "base.yaml", `
server:
  listen_port: 18001
  task_threads: 8
`)
	override := writeSettings(t, "override.yaml", `
server:
  task_threads: 64
`)

	cfg, err := config.Read(base, override)
	require.NoError(t, err)

	assert.Equal(t, 18001, cfg.ListenPort)
	assert.Equal(t, 64, cfg.TaskThreads)
}

func TestReadEnvironmentOverridesFile(t *testing.T) {
	path := writeSettings(t, "settings.yaml", `
server:
  listen_port: 18001
`)
	t.Setenv("GOODDATA_FLIGHT_SERVER_LISTEN_PORT", "19001")

	cfg, err := config.Read(path)
	require.NoError(t, err)

	assert.Equal(t, 19001, cfg.ListenPort)
}

func TestReadMissingSettingsFile(t *testing.T) {
	_, err := config.Read(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestReadDirectoryAsSettingsFile(t *testing.T) {
	_, err := config.Read(t.TempDir())
	assert.ErrorContains(t, err, "not a settings file")
}

func TestReadValidation(t *testing.T) {
	testCases := []struct {
		name      string
		settings  string
		wantInErr string
	}{
		{
			name: "invalid listen port",
			settings: `
server:
  listen_port: -1
`,
			wantInErr: "server.listen_port",
		},
		{
			name: "zero task threads",
			settings: `
server:
  task_threads: 0
`,
			wantInErr: "server.task_threads",
		},
		{
			name: "unsupported exporter",
			settings: `
server:
  otel_exporter_type: jaeger
`,
			wantInErr: "server.otel_exporter_type",
		},
		{
			name: "empty log event key",
			settings: `
server:
  log_event_key_name: ""
`,
			wantInErr: "server.log_event_key_name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSettings(t, "settings.yaml", tc.settings)

			_, err := config.Read(path)
			assert.ErrorContains(t, err, tc.wantInErr)
		})
	}
}
