package route

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/config"
)

func TestExecutorAuthorization(t *testing.T) {
	invoked := false
	invoke := func(_ context.Context, tool string, args map[string]any) (map[string]any, error) {
		invoked = true
		return map[string]any{"tool": tool}, nil
	}

	t.Run("default allows switchboard only", func(t *testing.T) {
		invoked = false
		e := NewExecutor(&config.ButlerConfig{Name: "chef"}, invoke)

		out, err := e.Execute(context.Background(), config.ButlerSwitchboard, "notify", nil)
		require.NoError(t, err)
		assert.Equal(t, "notify", out["tool"])
		assert.True(t, invoked)

		invoked = false
		_, err = e.Execute(context.Background(), "gardener", "notify", nil)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindValidation))
		assert.False(t, invoked, "unauthorized call must have no side effects")
	})

	t.Run("explicit allow-list honored", func(t *testing.T) {
		e := NewExecutor(&config.ButlerConfig{
			Name:                "chef",
			TrustedRouteCallers: []string{"gardener"},
		}, invoke)

		_, err := e.Execute(context.Background(), "gardener", "notify", nil)
		require.NoError(t, err)

		// Switchboard loses implicit access once the list is explicit.
		_, err = e.Execute(context.Background(), config.ButlerSwitchboard, "notify", nil)
		require.Error(t, err)
	})

	t.Run("empty tool rejected", func(t *testing.T) {
		e := NewExecutor(&config.ButlerConfig{Name: "chef"}, invoke)
		_, err := e.Execute(context.Background(), config.ButlerSwitchboard, "", nil)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindValidation))
	})
}
