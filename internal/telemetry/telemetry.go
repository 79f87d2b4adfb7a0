// Package telemetry wires OpenTelemetry tracing for a play session.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "relicfield"
	serviceVersion = "0.1.0"
)

// Session identifies the play session on every exported span.
type Session struct {
	ID   string
	Seed int64
}

// Setup exports spans over OTLP/HTTP. The exporter reads the standard OTEL_*
// variables; cmd/relicfield points them at Honeycomb.
//
// Returns a shutdown function that flushes pending spans.
func Setup(ctx context.Context, session Session) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	return SetupWithExporter(ctx, session, exporter)
}

// SetupWithExporter installs a global tracer provider that batches spans to
// exporter, tagged with the session resource.
func SetupWithExporter(ctx context.Context, session Session, exporter sdktrace.SpanExporter) (func(context.Context) error, error) {
	res, err := sessionResource(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// sessionResource describes the process and the session. It is not merged with
// resource.Default(), whose schema URL can conflict with ours.
func sessionResource(ctx context.Context, session Session) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("session.id", session.ID),
			attribute.Int64("world.seed", session.Seed),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// Tracer returns a tracer scoped to one component, e.g. "world" or "sim".
// Until Setup runs the global provider drops every span.
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + component)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
