package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/expense-ledger/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Database.BusyTimeout != 5*time.Second {
		t.Errorf("Database.BusyTimeout = %v, want 5s (from base)", cfg.Database.BusyTimeout)
	}
	if cfg.Database.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Database.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Database.CircuitBreaker.MaxFailures)
	}
	if cfg.Database.Path != "data/local.db" {
		t.Errorf("Database.Path = %q, want \"data/local.db\" (from local)", cfg.Database.Path)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_DATABASE_CIRCUIT_BREAKER_MAX_FAILURES", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Database.CircuitBreaker.MaxFailures != 7 {
		t.Errorf("Database.CircuitBreaker.MaxFailures = %d, want 7 (env override)",
			cfg.Database.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_InvalidDatabase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "empty path", mutate: func(c *config.Config) { c.Database.Path = "" }},
		{name: "zero max open conns", mutate: func(c *config.Config) { c.Database.MaxOpenConns = 0 }},
		{name: "negative busy timeout", mutate: func(c *config.Config) { c.Database.BusyTimeout = -time.Second }},
		{name: "zero breaker failures", mutate: func(c *config.Config) { c.Database.CircuitBreaker.MaxFailures = 0 }},
		{name: "zero half-open limit", mutate: func(c *config.Config) { c.Database.CircuitBreaker.HalfOpenLimit = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() returned nil, want error for %s", tt.name)
			}
		})
	}
}

func TestValidate_InvalidServerTimeouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "zero request timeout", mutate: func(c *config.Config) { c.Server.RequestTimeout = 0 }},
		{name: "request timeout not below write timeout", mutate: func(c *config.Config) {
			c.Server.RequestTimeout = c.Server.WriteTimeout
		}},
		{name: "zero shutdown timeout", mutate: func(c *config.Config) { c.Server.ShutdownTimeout = 0 }},
		{name: "negative header timeout", mutate: func(c *config.Config) { c.Server.ReadHeaderTimeout = -time.Second }},
		{name: "zero health check timeout", mutate: func(c *config.Config) { c.Health.CheckTimeout = 0 }},
		{name: "zero health concurrency", mutate: func(c *config.Config) { c.Health.MaxConcurrent = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() returned nil, want error for %s", tt.name)
			}
		})
	}
}

func TestLoad_OverrideFileIsOptional(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "dev.yaml"), "server:\n  port: 9000\n")

	cfg, err := config.Load("dev", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load without override error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}

	writeFile(t, filepath.Join(dir, "dev.override.yaml"), "server:\n  port: 9001\nhealth:\n  max_concurrent: 2\n")

	cfg, err = config.Load("dev", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load with override error: %v", err)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("Server.Port = %d, want 9001 (from override)", cfg.Server.Port)
	}
	if cfg.Health.MaxConcurrent != 2 {
		t.Errorf("Health.MaxConcurrent = %d, want 2 (from override)", cfg.Health.MaxConcurrent)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from base)", cfg.Log.Level)
	}
}

func TestLoad_EnvBeatsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "{}\n")
	writeFile(t, filepath.Join(dir, "dev.yaml"), "{}\n")
	writeFile(t, filepath.Join(dir, "dev.override.yaml"), "health:\n  check_timeout: 3s\n")
	t.Setenv("APP_HEALTH_CHECK_TIMEOUT", "750ms")

	cfg, err := config.Load("dev", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Health.CheckTimeout != 750*time.Millisecond {
		t.Errorf("Health.CheckTimeout = %v, want 750ms (env override)", cfg.Health.CheckTimeout)
	}
}

func TestValidate_ConsoleLogFormat(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Format = "console"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for console format: %v", err)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "server:\n  port: 9191\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191 (from profile)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from base)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" (default)", cfg.Log.Format)
	}
	if cfg.Database.MaxOpenConns != 4 {
		t.Errorf("Database.MaxOpenConns = %d, want 4 (default)", cfg.Database.MaxOpenConns)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s (default)", cfg.Server.ReadTimeout)
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			ReadTimeout:       5 * time.Second,
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
			RequestTimeout:    8 * time.Second,
			ShutdownTimeout:   15 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: config.DatabaseConfig{
			Path:         "data/test.db",
			BusyTimeout:  5 * time.Second,
			MaxOpenConns: 4,
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Health: config.HealthConfig{
			CheckTimeout:  2 * time.Second,
			MaxConcurrent: 4,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "expense-ledger",
		},
	}
}
