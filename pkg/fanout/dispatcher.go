package fanout

import (
	"context"
	"log/slog"
	"time"

	"github.com/homekeep/butlerd/pkg/route"
)

// Dispatcher executes validated plans. One dispatcher is shared by all
// ingress workers; it holds no per-plan state.
type Dispatcher struct {
	caller   Caller
	recorder Recorder
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(caller Caller, recorder Recorder) *Dispatcher {
	return &Dispatcher{caller: caller, recorder: recorder}
}

// Execute runs the plan to completion and returns the aggregate outcome.
// The returned error covers only infrastructure faults; subrequest
// failures are reported inside the outcome.
func (d *Dispatcher) Execute(ctx context.Context, plan *Plan) (*Outcome, error) {
	if plan.order == nil {
		if err := plan.Validate(); err != nil {
			return nil, err
		}
	}

	log := slog.With("request_id", plan.RequestID, "mode", plan.Mode)
	log.Info("Executing fanout plan", "subrequests", len(plan.Subrequests))

	var results []SubResult
	if plan.Mode == ModeParallel {
		results = d.runParallel(ctx, plan)
	} else {
		results = d.runSequential(ctx, plan)
	}

	outcome := &Outcome{
		RequestID: plan.RequestID,
		Status:    aggregateStatus(results),
		Results:   results,
	}
	if err := d.recorder.RecordFinal(ctx, outcome); err != nil {
		log.Error("Failed to record fanout outcome", "error", err)
	}
	log.Info("Fanout plan finished", "status", outcome.Status)
	return outcome, nil
}

func (d *Dispatcher) runParallel(ctx context.Context, plan *Plan) []SubResult {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	subs := plan.Subrequests
	results := make([]SubResult, len(subs))

	type indexed struct {
		i   int
		res SubResult
	}
	ch := make(chan indexed, len(subs))
	for i := range subs {
		go func(i int) {
			ch <- indexed{i, d.runSub(runCtx, subs[i])}
		}(i)
	}

	for done := 0; done < len(subs); done++ {
		ir := <-ch
		results[ir.i] = ir.res
		d.record(ctx, plan.RequestID, ir.res)

		if plan.JoinPolicy == JoinFirstSuccess && ir.res.Status == StatusCompleted {
			cancel()
		}
		if shouldAbort(plan.AbortPolicy, subs[ir.i].Required, ir.res.Status) {
			cancel()
		}
	}
	return results
}

func (d *Dispatcher) runSequential(ctx context.Context, plan *Plan) []SubResult {
	subs := plan.Subrequests
	results := make([]SubResult, len(subs))
	statuses := make(map[string]string, len(subs))
	halted := false

	for _, i := range plan.order {
		sub := subs[i]
		var res SubResult
		switch {
		case halted:
			res = terminalResult(sub, StatusCancelled)
		case !gateAllows(sub, statuses):
			res = terminalResult(sub, StatusSkipped)
		default:
			res = d.runSub(ctx, sub)
		}

		results[i] = res
		statuses[sub.ID] = res.Status
		d.record(ctx, plan.RequestID, res)

		if plan.JoinPolicy == JoinFirstSuccess && res.Status == StatusCompleted {
			halted = true
		}
		if shouldAbort(plan.AbortPolicy, sub.Required, res.Status) {
			halted = true
		}
	}
	return results
}

// runSub dispatches one subrequest under its own deadline. A retryable
// route failure gets exactly one extra attempt.
func (d *Dispatcher) runSub(ctx context.Context, sub Subrequest) SubResult {
	res := SubResult{
		SubrequestID: sub.ID,
		Butler:       sub.Butler,
		StartedAt:    time.Now(),
	}

	subCtx, cancel := context.WithTimeout(ctx, sub.Timeout)
	defer cancel()

	out, err := d.caller.Dispatch(subCtx, sub.Butler, sub.Prompt)
	if err != nil && route.KindOf(err).Retryable() && subCtx.Err() == nil {
		slog.Warn("Retrying subrequest after retryable failure",
			"subrequest_id", sub.ID, "butler", sub.Butler, "error", err)
		out, err = d.caller.Dispatch(subCtx, sub.Butler, sub.Prompt)
	}
	res.FinishedAt = time.Now()

	if err != nil {
		res.Error = err.Error()
		switch {
		case ctx.Err() != nil:
			res.Status = StatusCancelled
		case subCtx.Err() != nil:
			res.Status = StatusTimeout
			res.ErrorKind = route.KindTimeout
		default:
			res.Status = StatusFailed
			res.ErrorKind = route.KindOf(err)
		}
		return res
	}

	res.Status = StatusCompleted
	res.Output = out
	return res
}

func (d *Dispatcher) record(ctx context.Context, requestID string, res SubResult) {
	if err := d.recorder.RecordSub(ctx, requestID, res); err != nil {
		slog.Error("Failed to record subrequest outcome",
			"request_id", requestID, "subrequest_id", res.SubrequestID, "error", err)
	}
}

// gateAllows evaluates the run_if gate against dependency statuses.
func gateAllows(sub Subrequest, statuses map[string]string) bool {
	if sub.RunIf == RunIfAlways {
		return true
	}
	for _, dep := range sub.DependsOn {
		st := statuses[dep]
		switch sub.RunIf {
		case RunIfCompleted:
			if st == StatusSkipped || st == StatusCancelled || st == "" {
				return false
			}
		default: // success
			if st != StatusCompleted {
				return false
			}
		}
	}
	return true
}

func shouldAbort(policy string, required bool, status string) bool {
	if status != StatusFailed && status != StatusTimeout {
		return false
	}
	switch policy {
	case AbortOnAnyFailure:
		return true
	case AbortOnRequiredFailure:
		return required
	default:
		return false
	}
}

func terminalResult(sub Subrequest, status string) SubResult {
	now := time.Now()
	return SubResult{
		SubrequestID: sub.ID,
		Butler:       sub.Butler,
		Status:       status,
		StartedAt:    now,
		FinishedAt:   now,
	}
}

func aggregateStatus(results []SubResult) string {
	for _, r := range results {
		if r.Status == StatusCompleted {
			return "routed"
		}
	}
	return "failed"
}
