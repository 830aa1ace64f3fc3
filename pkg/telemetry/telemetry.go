// Package telemetry wires the OpenTelemetry tracer and context
// propagation for a butler daemon. Without a collector endpoint the
// propagator is still installed so trace context flows through routed
// calls and into spawned runtimes.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/homekeep/butlerd/pkg/version"
)

// endpointEnv names the OTLP collector, e.g. "localhost:4317".
const endpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// TraceParentEnv and TraceStateEnv carry W3C trace context across
// process boundaries: a traced caller exports them, a subprocess reads
// them back with ContextFromEnv.
const (
	TraceParentEnv = "TRACEPARENT"
	TraceStateEnv  = "TRACESTATE"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

// Init installs the global propagator and, when a collector endpoint is
// configured, an OTLP gRPC tracer provider named for the butler.
func Init(ctx context.Context, butler string) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	endpoint := os.Getenv(endpointEnv)
	if endpoint == "" {
		slog.Info("Telemetry export disabled, no collector endpoint")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(version.AppName),
		semconv.ServiceInstanceID(butler),
		semconv.ServiceVersion(version.GitCommit),
	))
	if err != nil {
		return nil, fmt.Errorf("build telemetry resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	slog.Info("Telemetry initialized", "endpoint", endpoint, "butler", butler)
	return func(ctx context.Context) error {
		if err := provider.ForceFlush(ctx); err != nil {
			slog.Warn("Telemetry flush failed", "error", err)
		}
		return provider.Shutdown(ctx)
	}, nil
}

// ContextFromEnv joins ctx to the trace named by the TRACEPARENT and
// TRACESTATE environment variables, when present. CLI subcommands run
// as subprocesses of a traced caller; this keeps them on its trace.
func ContextFromEnv(ctx context.Context) context.Context {
	carrier := propagation.MapCarrier{}
	if v := os.Getenv(TraceParentEnv); v != "" {
		carrier.Set("traceparent", v)
	}
	if v := os.Getenv(TraceStateEnv); v != "" {
		carrier.Set("tracestate", v)
	}
	return propagation.TraceContext{}.Extract(ctx, carrier)
}

// InjectHeaders writes the trace context from ctx into outgoing HTTP
// request headers.
func InjectHeaders(ctx context.Context, header http.Header) {
	propagation.TraceContext{}.Inject(ctx, propagation.HeaderCarrier(header))
}

// EnvFromContext renders the trace context from ctx as KEY=VALUE
// entries for a spawned subprocess environment.
func EnvFromContext(ctx context.Context) []string {
	carrier := propagation.MapCarrier{}
	propagation.TraceContext{}.Inject(ctx, carrier)
	var env []string
	if v := carrier.Get("traceparent"); v != "" {
		env = append(env, TraceParentEnv+"="+v)
	}
	if v := carrier.Get("tracestate"); v != "" {
		env = append(env, TraceStateEnv+"="+v)
	}
	return env
}
