package fanout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/classify"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/ingest"
)

func testFanoutConfig() *config.FanoutConfig {
	return &config.FanoutConfig{
		SubrequestTimeout: time.Minute,
		MaxSubrequests:    4,
	}
}

func entries(butlers ...string) []classify.Entry {
	out := make([]classify.Entry, len(butlers))
	for i, b := range butlers {
		out[i] = classify.Entry{
			Butler:  b,
			Prompt:  "do the " + b + " thing",
			Segment: classify.Segment{Rationale: b},
		}
	}
	return out
}

func TestBuildPlan(t *testing.T) {
	t.Run("defaults to parallel wait_for_all", func(t *testing.T) {
		plan, err := BuildPlan("req-1", entries("chef", "gardener"), nil, testFanoutConfig())
		require.NoError(t, err)
		assert.Equal(t, ModeParallel, plan.Mode)
		assert.Equal(t, JoinWaitForAll, plan.JoinPolicy)
		assert.Equal(t, AbortContinue, plan.AbortPolicy)
		require.Len(t, plan.Subrequests, 2)
		assert.Empty(t, plan.Subrequests[0].DependsOn)
		assert.Empty(t, plan.Subrequests[1].DependsOn)
		assert.Equal(t, time.Minute, plan.Subrequests[0].Timeout)
	})

	t.Run("ordered mode chains entries", func(t *testing.T) {
		hints := &ingest.RoutingHints{Mode: ModeOrdered, AbortPolicy: AbortOnAnyFailure}
		plan, err := BuildPlan("req-2", entries("chef", "gardener", "general"), hints, testFanoutConfig())
		require.NoError(t, err)
		assert.Equal(t, ModeOrdered, plan.Mode)
		assert.Equal(t, AbortOnAnyFailure, plan.AbortPolicy)
		assert.Empty(t, plan.Subrequests[0].DependsOn)
		assert.Equal(t, []string{plan.Subrequests[0].ID}, plan.Subrequests[1].DependsOn)
		assert.Equal(t, []string{plan.Subrequests[1].ID}, plan.Subrequests[2].DependsOn)
		assert.Equal(t, RunIfSuccess, plan.Subrequests[1].RunIf)
	})

	t.Run("empty classification rejected", func(t *testing.T) {
		_, err := BuildPlan("req-3", nil, nil, testFanoutConfig())
		require.Error(t, err)
	})

	t.Run("over max subrequests rejected", func(t *testing.T) {
		_, err := BuildPlan("req-4", entries("a", "b", "c", "d", "e"), nil, testFanoutConfig())
		require.Error(t, err)
	})

	t.Run("invalid hint mode rejected", func(t *testing.T) {
		hints := &ingest.RoutingHints{Mode: "zigzag"}
		_, err := BuildPlan("req-5", entries("chef"), hints, testFanoutConfig())
		require.Error(t, err)
	})
}

func TestPlanValidate(t *testing.T) {
	base := Plan{
		RequestID:   "req-t",
		Mode:        ModeOrdered,
		JoinPolicy:  JoinWaitForAll,
		AbortPolicy: AbortContinue,
	}

	t.Run("topological order honors depends_on", func(t *testing.T) {
		plan := base
		plan.Subrequests = []Subrequest{
			{ID: "c", DependsOn: []string{"b"}},
			{ID: "a"},
			{ID: "b", DependsOn: []string{"a"}},
		}
		require.NoError(t, plan.Validate())
		assert.Equal(t, []int{1, 2, 0}, plan.order)
	})

	t.Run("cycle rejected", func(t *testing.T) {
		plan := base
		plan.Subrequests = []Subrequest{
			{ID: "a", DependsOn: []string{"b"}},
			{ID: "b", DependsOn: []string{"a"}},
		}
		require.ErrorContains(t, plan.Validate(), "cycle")
	})

	t.Run("unknown dependency rejected", func(t *testing.T) {
		plan := base
		plan.Subrequests = []Subrequest{
			{ID: "a", DependsOn: []string{"ghost"}},
		}
		require.ErrorContains(t, plan.Validate(), "unknown")
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		plan := base
		plan.Subrequests = []Subrequest{{ID: "a"}, {ID: "a"}}
		require.ErrorContains(t, plan.Validate(), "duplicate")
	})
}
