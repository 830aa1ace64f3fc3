package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCron(t *testing.T) {
	_, err := ParseCron("*/5 * * * *")
	require.NoError(t, err)

	_, err = ParseCron("0 7 * * 1")
	require.NoError(t, err)

	_, err = ParseCron("not a cron")
	require.Error(t, err)

	// 6-field (seconds) expressions are rejected.
	_, err = ParseCron("0 0 7 * * 1")
	require.Error(t, err)
}

func TestNextRun(t *testing.T) {
	after := time.Date(2026, 3, 10, 6, 30, 0, 0, time.UTC)

	t.Run("deterministic per butler", func(t *testing.T) {
		sched, err := ParseCron("0 7 * * *")
		require.NoError(t, err)

		a := NextRun(sched, after, "chef", 15*time.Minute)
		b := NextRun(sched, after, "chef", 15*time.Minute)
		assert.Equal(t, a, b)
	})

	t.Run("different butlers spread out", func(t *testing.T) {
		sched, err := ParseCron("0 7 * * *")
		require.NoError(t, err)

		base := sched.Next(after)
		offsets := make(map[time.Duration]bool)
		for _, butler := range []string{"chef", "gardener", "messenger", "switchboard"} {
			next := NextRun(sched, after, butler, 15*time.Minute)
			offset := next.Sub(base)
			assert.GreaterOrEqual(t, offset, time.Duration(0))
			assert.Less(t, offset, 15*time.Minute)
			offsets[offset] = true
		}
		assert.Greater(t, len(offsets), 1, "expected distinct stagger offsets")
	})

	t.Run("offset bounded by half interval", func(t *testing.T) {
		sched, err := ParseCron("* * * * *")
		require.NoError(t, err)

		base := sched.Next(after)
		for _, butler := range []string{"chef", "gardener", "a", "b", "c"} {
			next := NextRun(sched, after, butler, 15*time.Minute)
			assert.Less(t, next.Sub(base), 30*time.Second,
				"minutely task offset must stay under interval/2")
		}
	})

	t.Run("cadence preserved", func(t *testing.T) {
		sched, err := ParseCron("0 * * * *")
		require.NoError(t, err)

		first := NextRun(sched, after, "chef", 15*time.Minute)
		second := NextRun(sched, first, "chef", 15*time.Minute)
		assert.Equal(t, time.Hour, second.Sub(first))
	})
}
