// Package middleware holds the inbound HTTP pipeline of the ledger API.
//
// Requests pass through the layers returned by [Stack], outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → router
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/expense-ledger/internal/platform/telemetry"
)

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware = func(http.Handler) http.Handler

// Chain composes middleware into one. The first argument is the outermost
// layer: Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...Middleware) Middleware {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// StackOptions configures [Stack].
type StackOptions struct {
	Logger *slog.Logger
	// Metrics may be nil, in which case request metrics are not recorded.
	Metrics *telemetry.Metrics
	// RequestTimeout bounds each request. Zero leaves requests unbounded.
	RequestTimeout time.Duration
}

// Stack returns the standard middleware pipeline in execution order.
func Stack(opts StackOptions) []Middleware {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	stack := []Middleware{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(opts.Metrics),
		Logging(logger),
	}
	if opts.RequestTimeout > 0 {
		stack = append(stack, Timeout(opts.RequestTimeout))
	}
	return stack
}
