// Package config loads and validates the ledger service configuration.
//
// Layers are merged in order, later ones winning: built-in defaults,
// configs/base.yaml, configs/{profile}.yaml, an optional
// configs/{profile}.override.yaml for machine-local tweaks, and finally
// APP_* environment variables (APP_SERVER_PORT sets server.port).
package config

import "time"

// Config is the fully merged service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Health    HealthConfig    `koanf:"health"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	// RequestTimeout bounds handler work and answers 504 when exceeded. It
	// must be shorter than WriteTimeout or the client never sees the 504.
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds SQLite storage settings.
type DatabaseConfig struct {
	// Path is the database file. ":memory:" keeps everything in process.
	Path           string               `koanf:"path"`
	BusyTimeout    time.Duration        `koanf:"busy_timeout"`
	MaxOpenConns   int                  `koanf:"max_open_conns"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings for storage calls.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// HealthConfig holds readiness probe settings.
type HealthConfig struct {
	CheckTimeout  time.Duration `koanf:"check_timeout"`
	MaxConcurrent int           `koanf:"max_concurrent"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
