// Package fanout builds and executes multi-butler dispatch plans.
//
// A classified message becomes a FanoutPlan of one or more subrequests,
// each targeting a single butler. The dispatcher runs the plan under the
// configured mode, join policy and abort policy, records every outcome
// to the fanout execution log, and reports the aggregate result back to
// the message inbox.
package fanout

import (
	"context"
	"time"

	"github.com/homekeep/butlerd/pkg/route"
)

// Plan execution modes.
const (
	ModeParallel    = "parallel"
	ModeOrdered     = "ordered"
	ModeConditional = "conditional"
)

// Join policies.
const (
	JoinWaitForAll   = "wait_for_all"
	JoinFirstSuccess = "first_success"
)

// Abort policies.
const (
	AbortContinue          = "continue"
	AbortOnRequiredFailure = "on_required_failure"
	AbortOnAnyFailure      = "on_any_failure"
)

// Run-if gates for ordered/conditional subrequests.
const (
	RunIfSuccess   = "success"
	RunIfCompleted = "completed"
	RunIfAlways    = "always"
)

// Terminal subrequest statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusTimeout   = "timeout"
	StatusSkipped   = "skipped"
	StatusCancelled = "cancelled"
)

// Subrequest is one unit of dispatch inside a plan.
type Subrequest struct {
	ID        string
	Butler    string
	Prompt    string
	DependsOn []string
	RunIf     string
	Required  bool
	Timeout   time.Duration
}

// Plan is a validated fanout plan for one inbox message.
type Plan struct {
	RequestID   string
	Mode        string
	JoinPolicy  string
	AbortPolicy string
	Subrequests []Subrequest

	// order is the topologically sorted index sequence, computed at
	// build time. Parallel plans keep input order.
	order []int
}

// SubResult is the terminal outcome of one subrequest.
type SubResult struct {
	SubrequestID string         `json:"subrequest_id"`
	Butler       string         `json:"butler"`
	Status       string         `json:"status"`
	ErrorKind    route.Kind     `json:"error_kind,omitempty"`
	Error        string         `json:"error,omitempty"`
	Output       map[string]any `json:"output,omitempty"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   time.Time      `json:"finished_at"`
}

// Outcome is the aggregate result of one executed plan.
type Outcome struct {
	RequestID string      `json:"request_id"`
	Status    string      `json:"status"` // routed | failed
	Results   []SubResult `json:"results"`
}

// Caller dispatches one subrequest prompt to a butler. The router
// provides the implementation.
type Caller interface {
	Dispatch(ctx context.Context, butler, prompt string) (map[string]any, error)
}

// Recorder persists subrequest outcomes and the final aggregate.
type Recorder interface {
	RecordSub(ctx context.Context, requestID string, res SubResult) error
	RecordFinal(ctx context.Context, outcome *Outcome) error
}
