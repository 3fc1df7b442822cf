package config

const (
	defaultServerPort = 8080

	defaultDatabaseMaxOpenConns = 4

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultHealthMaxConcurrent = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":        "5s",
		"server.read_header_timeout": "2s",
		"server.write_timeout":       "10s",
		"server.idle_timeout":        "120s",
		"server.request_timeout":     "8s",
		"server.shutdown_timeout":    "15s",

		"log.level":  "info",
		"log.format": "json",

		"database.path":                            "data/expense-ledger.db",
		"database.busy_timeout":                    "5s",
		"database.max_open_conns":                  defaultDatabaseMaxOpenConns,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"health.check_timeout":  "2s",
		"health.max_concurrent": defaultHealthMaxConcurrent,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "expense-ledger",
	}
}
