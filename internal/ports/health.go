package ports

import "context"

// HealthChecker is a dependency the readiness probe can interrogate. The
// SQLite store is the one registered today.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "database".
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It must
	// give up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects HealthCheckers and runs them for the readiness
// probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the outcomes keyed by
	// name; a nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
