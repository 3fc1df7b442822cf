package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/expense-ledger/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/expense-ledger/internal/adapters/http"

// unmatchedRoute labels requests no chi route claimed.
const unmatchedRoute = "unmatched"

// OpenTelemetry returns middleware that opens a server span per request,
// continuing any W3C trace context found on the request headers, and records
// request duration and count into metrics. A nil metrics disables recording.
//
// The span name and the route attribute use the chi route pattern, e.g.
// "GET /cost_bearers/{id}", never the raw path.
func OpenTelemetry(metrics *telemetry.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					semconv.URLPath(r.URL.Path),
				),
			)
			defer span.End()

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route := routePattern(r)
			span.SetName(r.Method + " " + route)
			span.SetAttributes(
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(rec.status),
			)
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}

			if metrics != nil {
				attrs := metric.WithAttributeSet(attribute.NewSet(
					telemetry.AttrHTTPMethod.String(r.Method),
					telemetry.AttrHTTPRoute.String(route),
					telemetry.AttrHTTPStatus.Int(rec.status),
					telemetry.AttrResult.String(requestResult(rec.status)),
				))
				metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
				metrics.ServerRequestTotal.Add(ctx, 1, attrs)
			}
		})
	}
}

func requestResult(status int) string {
	if status >= http.StatusBadRequest {
		return "error"
	}
	return "success"
}

// routePattern returns the chi route that served r, or unmatchedRoute when
// the request fell through to the not-found handler. chi fills the route
// context in place, so it is readable after next has run.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedRoute
}
