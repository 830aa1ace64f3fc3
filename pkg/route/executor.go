package route

import (
	"context"
	"fmt"

	"github.com/homekeep/butlerd/pkg/config"
)

// LocalToolFunc invokes one of the daemon's own registered tools.
type LocalToolFunc func(ctx context.Context, tool string, args map[string]any) (map[string]any, error)

// Executor is the receiving side of route.execute: it authorizes the
// caller against the butler's trusted allow-list before handing the
// call to a locally registered tool.
type Executor struct {
	butler *config.ButlerConfig
	invoke LocalToolFunc
}

// NewExecutor creates the route executor for one butler daemon.
func NewExecutor(butler *config.ButlerConfig, invoke LocalToolFunc) *Executor {
	return &Executor{butler: butler, invoke: invoke}
}

// Execute runs a routed tool call after checking the caller identity.
// Unauthorized callers get validation_error and no side effects.
func (e *Executor) Execute(ctx context.Context, callerIdentity, tool string, args map[string]any) (map[string]any, error) {
	if !e.authorized(callerIdentity) {
		return nil, NewError(KindValidation, e.butler.Name, tool,
			fmt.Errorf("caller %q is not a trusted route caller", callerIdentity))
	}
	if tool == "" {
		return nil, NewError(KindValidation, e.butler.Name, tool,
			fmt.Errorf("tool name required"))
	}
	return e.invoke(ctx, tool, args)
}

// authorized checks the caller against trusted_route_callers. An empty
// list means only the Switchboard may route here.
func (e *Executor) authorized(callerIdentity string) bool {
	if len(e.butler.TrustedRouteCallers) == 0 {
		return callerIdentity == config.ButlerSwitchboard
	}
	for _, trusted := range e.butler.TrustedRouteCallers {
		if trusted == callerIdentity {
			return true
		}
	}
	return false
}
