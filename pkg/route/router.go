// Package route implements butler-to-butler tool invocation: target
// resolution through the registry gate, cached MCP sessions, the
// unknown-tool trigger fallback, and the canonical routing error
// taxonomy shared by the dispatcher and the API layer.
package route

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sony/gobreaker"

	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/mcp"
)

// Target is a resolved, eligible routing destination.
type Target struct {
	Butler      string
	EndpointURL string
}

// TargetResolver is the registry's eligibility gate. Quarantined and
// stale butlers come back as *Error with the matching kind.
type TargetResolver interface {
	ResolveRoutingTarget(ctx context.Context, butler string) (*Target, error)
}

// Quarantiner flips a butler to quarantined after repeated route
// failures. The registry provides the implementation.
type Quarantiner interface {
	QuarantineButler(butler, reason string)
}

// Router invokes named tools on named butlers over MCP.
type Router struct {
	resolver    TargetResolver
	cache       *mcp.ClientCache
	quarantiner Quarantiner
	cfg         *config.RegistryConfig

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewRouter creates a router.
func NewRouter(resolver TargetResolver, cache *mcp.ClientCache, quarantiner Quarantiner, cfg *config.RegistryConfig) *Router {
	return &Router{
		resolver:    resolver,
		cache:       cache,
		quarantiner: quarantiner,
		cfg:         cfg,
		breakers:    make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Call invokes a tool on a butler and returns its structured result.
func (r *Router) Call(ctx context.Context, butler, tool string, args map[string]any) (map[string]any, error) {
	target, err := r.resolver.ResolveRoutingTarget(ctx, butler)
	if err != nil {
		return nil, err
	}

	breaker := r.breaker(butler)
	resultI, err := breaker.Execute(func() (any, error) {
		return r.callWithFallback(ctx, target, tool, args)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, NewError(KindTargetQuarantined, butler, tool,
				fmt.Errorf("circuit open for %q", butler))
		}
		return nil, r.mapError(ctx, butler, tool, err)
	}
	return resultI.(map[string]any), nil
}

// Dispatch routes a plain prompt to the butler's generic trigger tool.
// The fanout dispatcher uses this entry point.
func (r *Router) Dispatch(ctx context.Context, butler, prompt string) (map[string]any, error) {
	return r.Call(ctx, butler, "trigger", map[string]any{"prompt": prompt})
}

// callWithFallback performs the MCP call, retrying once against the
// generic trigger tool when the target rejects the tool as unknown.
func (r *Router) callWithFallback(ctx context.Context, target *Target, tool string, args map[string]any) (map[string]any, error) {
	result, err := r.cache.CallTool(ctx, target.EndpointURL, tool, args)
	if unknownTool(result, err) && tool != "trigger" {
		slog.Warn("Target rejected tool, retrying via trigger",
			"butler", target.Butler, "tool", tool)
		result, err = r.cache.CallTool(ctx, target.EndpointURL, "trigger", triggerArgs(args))
	}
	if err != nil {
		return nil, err
	}
	if result.IsError {
		return nil, remoteError(target.Butler, tool, result)
	}
	return decodeResult(result), nil
}

// remoteError rebuilds the classified error a target encoded into its
// IsError result body, so kind and retryability survive the MCP hop.
// Bodies without a recognizable kind classify as internal_error.
func remoteError(butler, tool string, result *mcpsdk.CallToolResult) error {
	text := resultText(result)
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if jerr := json.Unmarshal([]byte(text), &body); jerr == nil {
		if kind, ok := ParseKind(body.Error); ok {
			detail := body.Detail
			if detail == "" {
				detail = text
			}
			return NewError(kind, butler, tool, errors.New(detail))
		}
	}
	return NewError(KindInternal, butler, tool, fmt.Errorf("tool error: %s", text))
}

// breaker returns the per-butler circuit breaker, creating it on first
// use. Tripping the breaker quarantines the butler.
func (r *Router) breaker(butler string) *gobreaker.CircuitBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cb, ok := r.breakers[butler]; ok {
		return cb
	}

	threshold := uint32(r.cfg.FailureThreshold)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "route:" + butler,
		Interval: r.cfg.FailureWindow,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				slog.Warn("Route breaker opened, quarantining butler",
					"butler", butler, "from", from.String())
				r.quarantiner.QuarantineButler(butler, "route_failures")
			}
		},
	})
	r.breakers[butler] = cb
	return cb
}

// mapError classifies transport-level failures into the canonical
// taxonomy. Errors already carrying a kind pass through unchanged.
func (r *Router) mapError(ctx context.Context, butler, tool string, err error) error {
	var re *Error
	if errors.As(err, &re) {
		return err
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewError(KindTimeout, butler, tool, err)
	case ctx.Err() != nil:
		return NewError(KindTimeout, butler, tool, err)
	default:
		return NewError(KindTargetUnavailable, butler, tool, err)
	}
}

// unknownTool reports whether the call failed because the target does
// not export the tool.
func unknownTool(result *mcpsdk.CallToolResult, err error) bool {
	if err != nil {
		msg := strings.ToLower(err.Error())
		return strings.Contains(msg, "unknown tool") ||
			strings.Contains(msg, "tool not found") ||
			strings.Contains(msg, "method not found")
	}
	if result != nil && result.IsError {
		msg := strings.ToLower(resultText(result))
		return strings.Contains(msg, "unknown tool") ||
			strings.Contains(msg, "tool not found")
	}
	return false
}

// triggerArgs maps the original arguments onto the trigger tool's
// prompt argument, preferring prompt over message.
func triggerArgs(args map[string]any) map[string]any {
	if p, ok := args["prompt"].(string); ok && p != "" {
		return map[string]any{"prompt": p}
	}
	if m, ok := args["message"].(string); ok && m != "" {
		return map[string]any{"prompt": m}
	}
	return map[string]any{"prompt": ""}
}

// decodeResult extracts the structured payload, falling back to the
// concatenated text content.
func decodeResult(result *mcpsdk.CallToolResult) map[string]any {
	if sc, ok := result.StructuredContent.(map[string]any); ok && sc != nil {
		return sc
	}
	return map[string]any{"text": resultText(result)}
}

func resultText(result *mcpsdk.CallToolResult) string {
	var sb strings.Builder
	for _, content := range result.Content {
		if tc, ok := content.(*mcpsdk.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}
