package fanout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/route"
)

// fakeCaller scripts per-butler behavior for the dispatcher.
type fakeCaller struct {
	mu    sync.Mutex
	fail  map[string]error
	delay map[string]time.Duration
	calls []string
}

func (f *fakeCaller) Dispatch(ctx context.Context, butler, prompt string) (map[string]any, error) {
	f.mu.Lock()
	f.calls = append(f.calls, butler)
	err := f.fail[butler]
	delay := f.delay[butler]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"butler": butler}, nil
}

func (f *fakeCaller) callCount(butler string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == butler {
			n++
		}
	}
	return n
}

type fakeRecorder struct {
	mu    sync.Mutex
	subs  []SubResult
	final *Outcome
}

func (f *fakeRecorder) RecordSub(_ context.Context, _ string, res SubResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, res)
	return nil
}

func (f *fakeRecorder) RecordFinal(_ context.Context, outcome *Outcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.final = outcome
	return nil
}

func testPlan(mode, join, abort string, subs ...Subrequest) *Plan {
	for i := range subs {
		if subs[i].Timeout == 0 {
			subs[i].Timeout = time.Second
		}
		if subs[i].RunIf == "" {
			subs[i].RunIf = RunIfAlways
		}
	}
	return &Plan{
		RequestID:   "req-d",
		Mode:        mode,
		JoinPolicy:  join,
		AbortPolicy: abort,
		Subrequests: subs,
	}
}

func statusByID(results []SubResult) map[string]string {
	out := make(map[string]string, len(results))
	for _, r := range results {
		out[r.SubrequestID] = r.Status
	}
	return out
}

func TestDispatcherParallel(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		caller := &fakeCaller{}
		rec := &fakeRecorder{}
		plan := testPlan(ModeParallel, JoinWaitForAll, AbortContinue,
			Subrequest{ID: "a", Butler: "chef"},
			Subrequest{ID: "b", Butler: "gardener"},
		)
		outcome, err := NewDispatcher(caller, rec).Execute(context.Background(), plan)
		require.NoError(t, err)
		assert.Equal(t, "routed", outcome.Status)
		st := statusByID(outcome.Results)
		assert.Equal(t, StatusCompleted, st["a"])
		assert.Equal(t, StatusCompleted, st["b"])
		require.NotNil(t, rec.final)
		assert.Len(t, rec.subs, 2)
	})

	t.Run("failure with continue keeps going", func(t *testing.T) {
		caller := &fakeCaller{fail: map[string]error{
			"chef": route.NewError(route.KindInternal, "chef", "trigger", errors.New("boom")),
		}}
		rec := &fakeRecorder{}
		plan := testPlan(ModeParallel, JoinWaitForAll, AbortContinue,
			Subrequest{ID: "a", Butler: "chef", Required: true},
			Subrequest{ID: "b", Butler: "gardener"},
		)
		outcome, err := NewDispatcher(caller, rec).Execute(context.Background(), plan)
		require.NoError(t, err)
		assert.Equal(t, "routed", outcome.Status)
		st := statusByID(outcome.Results)
		assert.Equal(t, StatusFailed, st["a"])
		assert.Equal(t, StatusCompleted, st["b"])
	})

	t.Run("first_success cancels stragglers", func(t *testing.T) {
		caller := &fakeCaller{delay: map[string]time.Duration{
			"slow": 5 * time.Second,
		}}
		rec := &fakeRecorder{}
		plan := testPlan(ModeParallel, JoinFirstSuccess, AbortContinue,
			Subrequest{ID: "fast", Butler: "chef"},
			Subrequest{ID: "lag", Butler: "slow", Timeout: 10 * time.Second},
		)
		start := time.Now()
		outcome, err := NewDispatcher(caller, rec).Execute(context.Background(), plan)
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 3*time.Second)
		assert.Equal(t, "routed", outcome.Status)
		st := statusByID(outcome.Results)
		assert.Equal(t, StatusCompleted, st["fast"])
		assert.Equal(t, StatusCancelled, st["lag"])
	})

	t.Run("timeout recorded as timeout", func(t *testing.T) {
		caller := &fakeCaller{delay: map[string]time.Duration{
			"slow": time.Second,
		}}
		rec := &fakeRecorder{}
		plan := testPlan(ModeParallel, JoinWaitForAll, AbortContinue,
			Subrequest{ID: "a", Butler: "slow", Timeout: 50 * time.Millisecond},
		)
		outcome, err := NewDispatcher(caller, rec).Execute(context.Background(), plan)
		require.NoError(t, err)
		assert.Equal(t, "failed", outcome.Status)
		st := statusByID(outcome.Results)
		assert.Equal(t, StatusTimeout, st["a"])
		assert.Equal(t, route.KindTimeout, outcome.Results[0].ErrorKind)
	})

	t.Run("target_unavailable retried once", func(t *testing.T) {
		caller := &fakeCaller{fail: map[string]error{
			"chef": route.NewError(route.KindTargetUnavailable, "chef", "trigger", errors.New("endpoint down")),
		}}
		rec := &fakeRecorder{}
		plan := testPlan(ModeParallel, JoinWaitForAll, AbortContinue,
			Subrequest{ID: "a", Butler: "chef"},
		)
		outcome, err := NewDispatcher(caller, rec).Execute(context.Background(), plan)
		require.NoError(t, err)
		assert.Equal(t, 2, caller.callCount("chef"))
		assert.Equal(t, StatusFailed, statusByID(outcome.Results)["a"])
	})
}

func TestDispatcherSequential(t *testing.T) {
	t.Run("ordered gates on predecessor success", func(t *testing.T) {
		caller := &fakeCaller{fail: map[string]error{
			"gardener": route.NewError(route.KindInternal, "gardener", "trigger", errors.New("wilted")),
		}}
		rec := &fakeRecorder{}
		plan := testPlan(ModeOrdered, JoinWaitForAll, AbortContinue,
			Subrequest{ID: "a", Butler: "chef"},
			Subrequest{ID: "b", Butler: "gardener", DependsOn: []string{"a"}, RunIf: RunIfSuccess},
			Subrequest{ID: "c", Butler: "general", DependsOn: []string{"b"}, RunIf: RunIfSuccess},
		)
		outcome, err := NewDispatcher(caller, rec).Execute(context.Background(), plan)
		require.NoError(t, err)
		st := statusByID(outcome.Results)
		assert.Equal(t, StatusCompleted, st["a"])
		assert.Equal(t, StatusFailed, st["b"])
		assert.Equal(t, StatusSkipped, st["c"])
		assert.Equal(t, 0, caller.callCount("general"))
	})

	t.Run("run_if completed runs after failure", func(t *testing.T) {
		caller := &fakeCaller{fail: map[string]error{
			"chef": route.NewError(route.KindInternal, "chef", "trigger", errors.New("burnt")),
		}}
		rec := &fakeRecorder{}
		plan := testPlan(ModeConditional, JoinWaitForAll, AbortContinue,
			Subrequest{ID: "a", Butler: "chef"},
			Subrequest{ID: "b", Butler: "gardener", DependsOn: []string{"a"}, RunIf: RunIfCompleted},
		)
		outcome, err := NewDispatcher(caller, rec).Execute(context.Background(), plan)
		require.NoError(t, err)
		st := statusByID(outcome.Results)
		assert.Equal(t, StatusFailed, st["a"])
		assert.Equal(t, StatusCompleted, st["b"])
	})

	t.Run("abort on required failure cancels the rest", func(t *testing.T) {
		caller := &fakeCaller{fail: map[string]error{
			"chef": route.NewError(route.KindInternal, "chef", "trigger", errors.New("boom")),
		}}
		rec := &fakeRecorder{}
		plan := testPlan(ModeOrdered, JoinWaitForAll, AbortOnRequiredFailure,
			Subrequest{ID: "a", Butler: "chef", Required: true},
			Subrequest{ID: "b", Butler: "gardener", DependsOn: []string{"a"}, RunIf: RunIfAlways},
		)
		outcome, err := NewDispatcher(caller, rec).Execute(context.Background(), plan)
		require.NoError(t, err)
		st := statusByID(outcome.Results)
		assert.Equal(t, StatusFailed, st["a"])
		assert.Equal(t, StatusCancelled, st["b"])
		assert.Equal(t, "failed", outcome.Status)
	})

	t.Run("first_success stops the chain", func(t *testing.T) {
		caller := &fakeCaller{}
		rec := &fakeRecorder{}
		plan := testPlan(ModeOrdered, JoinFirstSuccess, AbortContinue,
			Subrequest{ID: "a", Butler: "chef"},
			Subrequest{ID: "b", Butler: "gardener", DependsOn: []string{"a"}, RunIf: RunIfAlways},
		)
		outcome, err := NewDispatcher(caller, rec).Execute(context.Background(), plan)
		require.NoError(t, err)
		st := statusByID(outcome.Results)
		assert.Equal(t, StatusCompleted, st["a"])
		assert.Equal(t, StatusCancelled, st["b"])
		assert.Equal(t, 0, caller.callCount("gardener"))
	})
}
