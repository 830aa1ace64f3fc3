package butler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/homekeep/butlerd/pkg/modules"
	"github.com/homekeep/butlerd/pkg/route"
	"github.com/homekeep/butlerd/pkg/spawner"
)

// toolSet holds every tool this daemon serves, in plain-function form.
// The same table backs the MCP server and the route.execute path, so a
// routed call and a runtime tool call hit identical code.
type toolSet struct {
	defs  map[string]*mcpsdk.Tool
	funcs map[string]modules.ToolFunc
	order []string
}

func newToolSet() *toolSet {
	return &toolSet{
		defs:  make(map[string]*mcpsdk.Tool),
		funcs: make(map[string]modules.ToolFunc),
	}
}

func (t *toolSet) add(def *mcpsdk.Tool, fn modules.ToolFunc) {
	if _, dup := t.defs[def.Name]; dup {
		panic(fmt.Sprintf("butler: duplicate tool %q", def.Name))
	}
	t.defs[def.Name] = def
	t.funcs[def.Name] = fn
	t.order = append(t.order, def.Name)
}

// wrap replaces a registered tool's function, preserving its def.
// Used by the approval gate pass.
func (t *toolSet) wrap(name string, mk func(modules.ToolFunc) modules.ToolFunc) {
	fn, ok := t.funcs[name]
	if !ok {
		slog.Warn("Cannot gate unregistered tool", "tool", name)
		return
	}
	t.funcs[name] = mk(fn)
}

// invoke satisfies route.LocalToolFunc.
func (t *toolSet) invoke(ctx context.Context, tool string, args map[string]any) (map[string]any, error) {
	fn, ok := t.funcs[tool]
	if !ok {
		return nil, route.Errorf(route.KindValidation, "unknown tool %q", tool)
	}
	return fn(ctx, args)
}

// names returns the registered tool names, sorted.
func (t *toolSet) names() []string {
	out := append([]string(nil), t.order...)
	sort.Strings(out)
	return out
}

// attach registers every tool on the MCP server. Each handler decodes
// arguments, records the call against the bound runtime session, runs
// the plain function, and encodes the result. Tool failures come back
// as IsError results, not protocol errors, so the runtime sees them.
func (t *toolSet) attach(server *mcpsdk.Server, callLog *spawner.CallLog) {
	for _, name := range t.order {
		def := t.defs[name]
		fn := t.funcs[name]
		server.AddTool(def, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			var args map[string]any
			if len(req.Params.Arguments) > 0 {
				if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
					return errorResult(fmt.Errorf("malformed arguments: %w", err)), nil
				}
			}

			if sessionID := sessionIDFromContext(ctx); sessionID != "" {
				callLog.Record(sessionID, def.Name, args)
			}

			result, err := fn(ctx, args)
			if err != nil {
				return errorResult(err), nil
			}
			return successResult(result), nil
		})
	}
}

func successResult(result map[string]any) *mcpsdk.CallToolResult {
	text, err := json.Marshal(result)
	if err != nil {
		return errorResult(fmt.Errorf("encode tool result: %w", err))
	}
	return &mcpsdk.CallToolResult{
		Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: string(text)}},
		StructuredContent: result,
	}
}

func errorResult(err error) *mcpsdk.CallToolResult {
	body := map[string]any{
		"error":     string(route.KindOf(err)),
		"retryable": route.KindOf(err).Retryable(),
		"detail":    err.Error(),
	}
	text, _ := json.Marshal(body)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(text)}},
		IsError: true,
	}
}
