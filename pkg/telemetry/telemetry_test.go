package telemetry

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

const sampleTraceParent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

func TestContextFromEnv(t *testing.T) {
	t.Setenv(TraceParentEnv, sampleTraceParent)

	ctx := ContextFromEnv(context.Background())
	sc := trace.SpanContextFromContext(ctx)
	require.True(t, sc.IsValid())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", sc.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", sc.SpanID().String())
	assert.True(t, sc.IsSampled())
}

func TestContextFromEnvUnset(t *testing.T) {
	t.Setenv(TraceParentEnv, "")
	ctx := ContextFromEnv(context.Background())
	assert.False(t, trace.SpanContextFromContext(ctx).IsValid())
}

func TestInjectHeaders(t *testing.T) {
	t.Setenv(TraceParentEnv, sampleTraceParent)
	ctx := ContextFromEnv(context.Background())

	header := http.Header{}
	InjectHeaders(ctx, header)
	assert.Contains(t, header.Get("traceparent"), "4bf92f3577b34da6a3ce929d0e0e4736")
}

func TestEnvFromContext(t *testing.T) {
	t.Setenv(TraceParentEnv, sampleTraceParent)
	ctx := ContextFromEnv(context.Background())

	env := EnvFromContext(ctx)
	require.Len(t, env, 1)
	assert.Contains(t, env[0], TraceParentEnv+"=00-4bf92f3577b34da6a3ce929d0e0e4736-")

	assert.Empty(t, EnvFromContext(context.Background()),
		"no trace context, no env entries")
}
