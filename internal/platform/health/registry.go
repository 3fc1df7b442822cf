// Package health provides a thread-safe health check registry for the
// service's dependencies. The readiness endpoint uses it to decide whether
// the service can accept traffic; today the SQLite store is the only
// registered dependency.
package health

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/expense-ledger/internal/platform/fanout"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// DefaultCheckTimeout bounds a single health check when no other timeout is
// configured.
const DefaultCheckTimeout = 2 * time.Second

// DefaultMaxConcurrent caps how many checks run at once.
const DefaultMaxConcurrent = 4

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu            sync.RWMutex
	checkers      []ports.HealthChecker
	checkTimeout  time.Duration
	maxConcurrent int
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the deadline applied to each individual check.
// Non-positive values are ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// WithMaxConcurrent bounds how many checks CheckAll runs in parallel.
// Non-positive values are ignored.
func WithMaxConcurrent(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxConcurrent = n
		}
	}
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout, maxConcurrent: DefaultMaxConcurrent}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered health check concurrently and returns the
// results keyed by checker name. Nil values indicate healthy components; when
// two checkers share a name the one registered last wins. Each check gets its
// own deadline so a hung dependency cannot stall the probe.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, r.maxConcurrent, checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		return struct{}{}, r.check(ctx, c)
	})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.checkTimeout)
	defer cancel()
	return c.HealthCheck(ctx)
}
