// Package telemetry sets up OpenTelemetry tracing and metrics for the ledger
// service and owns the instruments the HTTP and storage layers record into.
//
//	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer providers.Shutdown(ctx)
//	providers.Metrics.DBOperationTotal.Add(ctx, 1, ...)
//
// With telemetry disabled Setup installs nothing globally and hands back
// instruments from a no-op provider, so callers never nil-check Metrics.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/expense-ledger/internal/platform/config"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys shared by spans and metrics. The HTTP keys follow the
// stable semantic conventions.
var (
	AttrHTTPMethod  = semconv.HTTPRequestMethodKey
	AttrHTTPRoute   = semconv.HTTPRouteKey
	AttrHTTPStatus  = semconv.HTTPResponseStatusCodeKey
	AttrDBSystem    = attribute.Key("db.system.name")
	AttrDBOperation = attribute.Key("db.operation.name")
	AttrResult      = attribute.Key("result")
)

// Metrics holds the service's metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	DBOperationDuration   metric.Float64Histogram
	DBOperationTotal      metric.Int64Counter
}

// Providers owns the SDK providers created by Setup.
type Providers struct {
	Metrics *Metrics

	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Setup builds tracer and meter providers for cfg, installs them and the
// W3C propagators as the otel globals, and creates the instruments. When
// cfg.Enabled is false only no-op instruments are created.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		metrics, err := NewMetrics(noop.NewMeterProvider(), cfg.ServiceName)
		if err != nil {
			return nil, err
		}
		return &Providers{Metrics: metrics}, nil
	}

	exp, err := newExporters(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	p := &Providers{
		tracer: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp.spans),
			sdktrace.WithResource(res),
		),
		meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp.metrics)),
			sdkmetric.WithResource(res),
		),
	}

	p.Metrics, err = NewMetrics(p.meter, cfg.ServiceName)
	if err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.tracer)
	otel.SetMeterProvider(p.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops both providers. It is a no-op for disabled
// telemetry.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NewMetrics creates the instruments on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	var m Metrics
	var errs []error

	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Incoming HTTP requests", "{request}")
	m.DBOperationDuration = histogram("db.client.operation.duration", "Duration of ledger storage operations")
	m.DBOperationTotal = counter("db.client.operation.total", "Ledger storage operations", "{operation}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

type exporters struct {
	spans   sdktrace.SpanExporter
	metrics sdkmetric.Exporter
}

func newExporters(ctx context.Context, name, endpoint string) (*exporters, error) {
	switch name {
	case ExporterStdout:
		spans, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("creating span exporter: %w", err)
		}
		metrics, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("creating metric exporter: %w", err)
		}
		return &exporters{spans: spans, metrics: metrics}, nil

	case ExporterOTLP:
		target, err := parseEndpoint(endpoint)
		if err != nil {
			return nil, err
		}
		traceOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(target.hostPort)}
		metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(target.hostPort)}
		if target.insecure {
			traceOpts = append(traceOpts, otlptracehttp.WithInsecure())
			metricOpts = append(metricOpts, otlpmetrichttp.WithInsecure())
		}
		spans, err := otlptracehttp.New(ctx, traceOpts...)
		if err != nil {
			return nil, fmt.Errorf("creating span exporter: %w", err)
		}
		metrics, err := otlpmetrichttp.New(ctx, metricOpts...)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("creating metric exporter: %w", err), spans.Shutdown(ctx))
		}
		return &exporters{spans: spans, metrics: metrics}, nil

	default:
		return nil, fmt.Errorf("unsupported exporter %q", name)
	}
}

type otlpTarget struct {
	hostPort string
	insecure bool
}

// parseEndpoint turns "http://collector:4318" into host:port plus whether
// TLS is off. A bare host:port is accepted and treated as plain HTTP.
func parseEndpoint(endpoint string) (otlpTarget, error) {
	if endpoint == "" {
		return otlpTarget{}, errors.New("otlp exporter requires an endpoint")
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return otlpTarget{hostPort: endpoint, insecure: true}, nil
	}
	switch u.Scheme {
	case "http":
		return otlpTarget{hostPort: u.Host, insecure: true}, nil
	case "https":
		return otlpTarget{hostPort: u.Host}, nil
	default:
		return otlpTarget{}, fmt.Errorf("otlp endpoint %q must use http or https", endpoint)
	}
}
