package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRegistry(t *testing.T) {
	reg := NewJobRegistry()

	ran := false
	reg.Register("rollup", func(_ context.Context, args map[string]any) error {
		ran = true
		assert.Equal(t, "hourly", args["window"])
		return nil
	})

	fn, ok := reg.Get("rollup")
	require.True(t, ok)
	require.NoError(t, fn(context.Background(), map[string]any{"window": "hourly"}))
	assert.True(t, ran)

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	assert.Contains(t, reg.Names(), "rollup")

	assert.Panics(t, func() {
		reg.Register("rollup", func(context.Context, map[string]any) error { return nil })
	})
}
