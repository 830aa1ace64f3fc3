package fanout

import (
	"fmt"

	"github.com/homekeep/butlerd/pkg/classify"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/ingest"
	"github.com/homekeep/butlerd/pkg/route"
)

// BuildPlan turns classification entries into a validated plan. Routing
// hints select the mode and policies; absent hints mean parallel with
// wait_for_all and continue. Ordered and conditional plans chain each
// entry on its predecessor when no explicit dependencies are given.
func BuildPlan(requestID string, entries []classify.Entry, hints *ingest.RoutingHints, cfg *config.FanoutConfig) (*Plan, error) {
	if len(entries) == 0 {
		return nil, route.NewError(route.KindValidation, "", "", fmt.Errorf("empty classification"))
	}
	if len(entries) > cfg.MaxSubrequests {
		return nil, route.NewError(route.KindValidation, "", "",
			fmt.Errorf("plan exceeds max_subrequests (%d > %d)", len(entries), cfg.MaxSubrequests))
	}

	plan := &Plan{
		RequestID:   requestID,
		Mode:        ModeParallel,
		JoinPolicy:  JoinWaitForAll,
		AbortPolicy: AbortContinue,
	}
	if hints != nil {
		if hints.Mode != "" {
			plan.Mode = hints.Mode
		}
		if hints.JoinPolicy != "" {
			plan.JoinPolicy = hints.JoinPolicy
		}
		if hints.AbortPolicy != "" {
			plan.AbortPolicy = hints.AbortPolicy
		}
	}

	sequential := plan.Mode == ModeOrdered || plan.Mode == ModeConditional
	for i, e := range entries {
		sub := Subrequest{
			ID:       fmt.Sprintf("%s/%d", requestID, i),
			Butler:   e.Butler,
			Prompt:   e.Prompt,
			RunIf:    RunIfAlways,
			Required: true,
			Timeout:  cfg.SubrequestTimeout,
		}
		if sequential && i > 0 {
			sub.DependsOn = []string{plan.Subrequests[i-1].ID}
			sub.RunIf = RunIfSuccess
		}
		plan.Subrequests = append(plan.Subrequests, sub)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Validate checks mode/policy values and resolves the dependency graph
// into an execution order. Cycles and unknown dependencies are rejected.
func (p *Plan) Validate() error {
	switch p.Mode {
	case ModeParallel, ModeOrdered, ModeConditional:
	default:
		return fmt.Errorf("invalid fanout mode %q", p.Mode)
	}
	switch p.JoinPolicy {
	case JoinWaitForAll, JoinFirstSuccess:
	default:
		return fmt.Errorf("invalid join policy %q", p.JoinPolicy)
	}
	switch p.AbortPolicy {
	case AbortContinue, AbortOnRequiredFailure, AbortOnAnyFailure:
	default:
		return fmt.Errorf("invalid abort policy %q", p.AbortPolicy)
	}

	order, err := topoOrder(p.Subrequests)
	if err != nil {
		return err
	}
	p.order = order
	return nil
}

// topoOrder returns a dependency-respecting index order via Kahn's
// algorithm, stable on input order among ready nodes.
func topoOrder(subs []Subrequest) ([]int, error) {
	index := make(map[string]int, len(subs))
	for i, s := range subs {
		if _, dup := index[s.ID]; dup {
			return nil, fmt.Errorf("duplicate subrequest id %q", s.ID)
		}
		index[s.ID] = i
	}

	indegree := make([]int, len(subs))
	dependents := make([][]int, len(subs))
	for i, s := range subs {
		for _, dep := range s.DependsOn {
			j, ok := index[dep]
			if !ok {
				return nil, fmt.Errorf("subrequest %q depends on unknown %q", s.ID, dep)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	var ready []int
	for i := range subs {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, len(subs))
	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		order = append(order, i)
		for _, d := range dependents[i] {
			indegree[d]--
			if indegree[d] == 0 {
				ready = append(ready, d)
			}
		}
	}
	if len(order) != len(subs) {
		return nil, fmt.Errorf("dependency cycle in fanout plan")
	}
	return order, nil
}
