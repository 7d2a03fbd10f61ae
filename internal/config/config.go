// Package config reads the flight server configuration from settings files
// merged with GOODDATA_FLIGHT_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings files
const EnvPrefix = "GOODDATA_FLIGHT"

// OtelExporterType selects the OpenTelemetry exporter
type OtelExporterType string

const (
	OtelExporterNone     OtelExporterType = "none"
	OtelExporterZipkin   OtelExporterType = "zipkin"
	OtelExporterOtlpHTTP OtelExporterType = "otlp-http"
	OtelExporterOtlpGrpc OtelExporterType = "otlp-grpc"
	OtelExporterConsole  OtelExporterType = "console"
)

var supportedExporters = map[OtelExporterType]bool{
	OtelExporterNone:     true,
	OtelExporterZipkin:   true,
	OtelExporterOtlpHTTP: true,
	OtelExporterOtlpGrpc: true,
	OtelExporterConsole:  true,
}

// Settings keys within the server section
const (
	keyListenHost            = "server.listen_host"
	keyListenPort            = "server.listen_port"
	keyAdvertiseHost         = "server.advertise_host"
	keyAdvertisePort         = "server.advertise_port"
	keyTaskThreads           = "server.task_threads"
	keyMetricsHost           = "server.metrics_host"
	keyMetricsPort           = "server.metrics_port"
	keyHealthCheckHost       = "server.health_check_host"
	keyHealthCheckPort       = "server.health_check_port"
	keyMallocTrimIntervalSec = "server.malloc_trim_interval_sec"
	keyLogEventKeyName       = "server.log_event_key_name"
	keyLogTraceKeys          = "server.log_trace_keys"
	keyOtelExporterType      = "server.otel_exporter_type"
	keyOtelServiceName       = "server.otel_service_name"
	keyOtelServiceNamespace  = "server.otel_service_namespace"
	keyOtelServiceInstanceID = "server.otel_service_instance_id"
)

// Defaults
const (
	defaultListenHost            = "127.0.0.1"
	defaultListenPort            = 17001
	defaultTaskThreads           = 32
	defaultMetricsPort           = 17101
	defaultHealthCheckPort       = 8877
	defaultMallocTrimIntervalSec = 30
	defaultLogEventKeyName       = "event"
)

// OtelConfig describes the telemetry identity of the server
type OtelConfig struct {
	ExporterType      OtelExporterType
	ServiceName       string
	ServiceNamespace  string
	ServiceInstanceID string
}

// Config is the validated flight server configuration
type Config struct {
	ListenHost    string
	ListenPort    int
	AdvertiseHost string
	AdvertisePort int

	TaskThreads int

	MetricsHost string
	MetricsPort int

	HealthCheckHost string
	HealthCheckPort int

	MallocTrimIntervalSec int
	LogEventKeyName       string
	LogTraceKeys          map[string]string

	Otel OtelConfig
}

// ListenAddr is the address the main listener binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.ListenHost, c.ListenPort)
}

// AdvertiseAddr is the address the server announces to clients
func (c *Config) AdvertiseAddr() string {
	return fmt.Sprintf("%s:%d", c.AdvertiseHost, c.AdvertisePort)
}

// MetricsAddr is the address the metrics listener binds to
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf("%s:%d", c.MetricsHost, c.MetricsPort)
}

// HealthCheckAddr is the address the health check listener binds to
func (c *Config) HealthCheckAddr() string {
	return fmt.Sprintf("%s:%d", c.HealthCheckHost, c.HealthCheckPort)
}

// Read loads and validates the configuration. Settings files are merged in
// order; environment variables win over file values.
func Read(files ...string) (*Config, error) {
	v := viper.New()

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return nil, fmt.Errorf("settings file %s does not exist", file)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path %s is a directory and not a settings file", file)
		}
	}

	v.SetDefault(keyListenHost, defaultListenHost)
	v.SetDefault(keyListenPort, defaultListenPort)
	v.SetDefault(keyAdvertiseHost, defaultAdvertiseHost())
	v.SetDefault(keyTaskThreads, defaultTaskThreads)
	v.SetDefault(keyMetricsPort, defaultMetricsPort)
	v.SetDefault(keyHealthCheckPort, defaultHealthCheckPort)
	v.SetDefault(keyMallocTrimIntervalSec, defaultMallocTrimIntervalSec)
	v.SetDefault(keyLogEventKeyName, defaultLogEventKeyName)
	v.SetDefault(keyOtelExporterType, string(OtelExporterNone))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for i, file := range files {
		v.SetConfigFile(file)
		var err error
		if i == 0 {
			err = v.ReadInConfig()
		} else {
			err = v.MergeInConfig()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", file, err)
		}
	}

	cfg := &Config{
		ListenHost:            v.GetString(keyListenHost),
		ListenPort:            v.GetInt(keyListenPort),
		AdvertiseHost:         v.GetString(keyAdvertiseHost),
		AdvertisePort:         v.GetInt(keyAdvertisePort),
		TaskThreads:           v.GetInt(keyTaskThreads),
		MetricsHost:           v.GetString(keyMetricsHost),
		MetricsPort:           v.GetInt(keyMetricsPort),
		HealthCheckHost:       v.GetString(keyHealthCheckHost),
		HealthCheckPort:       v.GetInt(keyHealthCheckPort),
		MallocTrimIntervalSec: v.GetInt(keyMallocTrimIntervalSec),
		LogEventKeyName:       v.GetString(keyLogEventKeyName),
		LogTraceKeys:          v.GetStringMapString(keyLogTraceKeys),
		Otel: OtelConfig{
			ExporterType:      OtelExporterType(v.GetString(keyOtelExporterType)),
			ServiceName:       v.GetString(keyOtelServiceName),
			ServiceNamespace:  v.GetString(keyOtelServiceNamespace),
			ServiceInstanceID: v.GetString(keyOtelServiceInstanceID),
		},
	}

	// advertise port defaults to value of listen port
	if cfg.AdvertisePort == 0 {
		cfg.AdvertisePort = cfg.ListenPort
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.ListenHost == "" {
		errs = append(errs, fmt.Errorf("%s must be an IP address or hostname", keyListenHost))
	}
	if c.AdvertiseHost == "" {
		errs = append(errs, fmt.Errorf("%s must be an IP address or hostname", keyAdvertiseHost))
	}
	for key, port := range map[string]int{
		keyListenPort:      c.ListenPort,
		keyAdvertisePort:   c.AdvertisePort,
		keyMetricsPort:     c.MetricsPort,
		keyHealthCheckPort: c.HealthCheckPort,
	} {
		if port <= 0 || port > 65535 {
			errs = append(errs, fmt.Errorf("%s must be a valid port number", key))
		}
	}
	if c.TaskThreads <= 0 {
		errs = append(errs, fmt.Errorf("%s must be a positive number", keyTaskThreads))
	}
	if c.MallocTrimIntervalSec <= 0 {
		errs = append(errs, fmt.Errorf("%s must be a positive number", keyMallocTrimIntervalSec))
	}
	if c.LogEventKeyName == "" {
		errs = append(errs, fmt.Errorf("%s must be a non-empty string", keyLogEventKeyName))
	}
	if !supportedExporters[c.Otel.ExporterType] {
		errs = append(errs, fmt.Errorf("%s must be one of none, zipkin, otlp-http, otlp-grpc, console", keyOtelExporterType))
	}

	return errors.Join(errs...)
}

func defaultAdvertiseHost() string {
	hostname, err := os.Hostname()
	if err != nil {
		return defaultListenHost
	}
	return hostname
}
