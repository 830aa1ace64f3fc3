package butler

import (
	"context"
	"errors"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/pkg/modules"
	"github.com/homekeep/butlerd/pkg/notify"
	"github.com/homekeep/butlerd/pkg/route"
	"github.com/homekeep/butlerd/pkg/services"
	"github.com/homekeep/butlerd/pkg/spawner"
	"github.com/homekeep/butlerd/pkg/version"
)

// registerCoreTools installs the tools every butler serves regardless
// of its module set.
func (d *Daemon) registerCoreTools() {
	add := func(name, desc, schema string, fn modules.ToolFunc) {
		d.tools.add(&mcpsdk.Tool{
			Name:        name,
			Description: desc,
			InputSchema: mustSchema(schema),
		}, fn)
	}

	add("status", "Report daemon health, module statuses and running sessions",
		`{"type": "object"}`, d.handleStatus)

	add("trigger", "Spawn a runtime session on this butler with a prompt",
		`{
			"type": "object",
			"properties": {
				"prompt": {"type": "string"},
				"model": {"type": "string"},
				"parent_session_id": {"type": "string"}
			},
			"required": ["prompt"]
		}`, d.handleTrigger)

	add("route.execute", "Execute a named local tool on behalf of a routing butler",
		`{
			"type": "object",
			"properties": {
				"caller": {"type": "string"},
				"tool": {"type": "string"},
				"args": {"type": "object"}
			},
			"required": ["caller", "tool"]
		}`, d.handleRouteExecute)

	add("tick", "Run one scheduler pass over due tasks",
		`{"type": "object"}`, d.handleTick)

	add("notify", "Send a message to a person through a connected channel",
		`{
			"type": "object",
			"properties": {
				"channel": {"type": "string"},
				"target": {"type": "string"},
				"text": {"type": "string"},
				"thread_target": {"type": "string"}
			},
			"required": ["channel", "target", "text"]
		}`, d.handleNotify)

	add("remind", "Schedule a one-shot reminder prompt for this butler",
		`{
			"type": "object",
			"properties": {
				"text": {"type": "string"},
				"at": {"type": "string", "format": "date-time"}
			},
			"required": ["text", "at"]
		}`, d.handleRemind)

	add("state.get", "Read a value from this butler's durable state",
		`{
			"type": "object",
			"properties": {"key": {"type": "string"}},
			"required": ["key"]
		}`, d.handleStateGet)

	add("state.set", "Write a value into this butler's durable state",
		`{
			"type": "object",
			"properties": {
				"key": {"type": "string"},
				"value": {"type": "object"}
			},
			"required": ["key", "value"]
		}`, d.handleStateSet)

	add("state.delete", "Delete a key from this butler's durable state",
		`{
			"type": "object",
			"properties": {"key": {"type": "string"}},
			"required": ["key"]
		}`, d.handleStateDelete)

	add("state.list", "List this butler's durable state keys",
		`{"type": "object"}`, d.handleStateList)

	add("schedule.list", "List this butler's scheduled tasks",
		`{"type": "object"}`, d.handleScheduleList)

	add("session.recent", "List recent runtime sessions on this butler",
		`{
			"type": "object",
			"properties": {"limit": {"type": "integer"}}
		}`, d.handleSessionRecent)

	add("session.get", "Fetch one runtime session with its tool call log",
		`{
			"type": "object",
			"properties": {"session_id": {"type": "string"}},
			"required": ["session_id"]
		}`, d.handleSessionGet)

	add("approvals.execute", "Run a previously approved pending action",
		`{
			"type": "object",
			"properties": {"action_id": {"type": "string"}},
			"required": ["action_id"]
		}`, d.handleApprovalsExecute)
}

// applyApprovalGates wraps each gated tool so calls pause for a human
// decision unless a standing rule pre-approves them. The pre-gate
// functions are kept aside; approvals.execute replays through them so
// an approved action does not re-enter its own gate.
func (d *Daemon) applyApprovalGates() {
	d.ungated = make(map[string]modules.ToolFunc, len(d.tools.funcs))
	for name, fn := range d.tools.funcs {
		d.ungated[name] = fn
	}

	for _, g := range d.cfg.Approvals.GatedTools {
		if g.Butler != d.butler.Name {
			continue
		}
		tool, riskTier := g.Tool, g.RiskTier
		d.tools.wrap(tool, func(fn modules.ToolFunc) modules.ToolFunc {
			return func(ctx context.Context, args map[string]any) (map[string]any, error) {
				res, err := d.engine.Gate(ctx, d.butler.Name, tool, riskTier,
					sessionIDFromContext(ctx), args)
				if err != nil {
					return nil, err
				}
				if res.Approved {
					return fn(ctx, args)
				}
				return map[string]any{
					"approval_required": true,
					"action_id":         res.ActionID,
					"expires_at":        res.ExpiresAt.UTC().Format(time.RFC3339),
				}, nil
			}
		})
	}
}

func (d *Daemon) handleStatus(ctx context.Context, _ map[string]any) (map[string]any, error) {
	running, err := d.sessions.Running(ctx)
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]any)
	for name, st := range d.moduleSet.Statuses() {
		statuses[name] = string(st)
	}
	return map[string]any{
		"butler":           d.butler.Name,
		"version":          version.GitCommit,
		"modules":          statuses,
		"running_sessions": len(running),
		"tools":            d.tools.names(),
	}, nil
}

func (d *Daemon) handleTrigger(ctx context.Context, args map[string]any) (map[string]any, error) {
	prompt := stringArg(args, "prompt")
	if prompt == "" {
		return nil, route.Errorf(route.KindValidation, "trigger requires a prompt")
	}
	source, parent := triggerOrigin(ctx, stringArg(args, "parent_session_id"))
	result, err := d.spawner.Trigger(ctx, spawner.TriggerRequest{
		Butler:          d.butler.Name,
		Prompt:          prompt,
		TriggerSource:   source,
		Model:           stringArg(args, "model"),
		ParentSessionID: parent,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"session_id":  result.SessionID,
		"output":      result.Output,
		"duration_ms": result.DurationMs,
	}, nil
}

// triggerOrigin labels a trigger call by where it came from. A call
// carrying a bound runtime session id is this butler's own session
// invoking itself; it must fail fast rather than queue behind the lock
// it already holds, and it parents the new session by default. Anything
// else reached us through the router and queues normally.
func triggerOrigin(ctx context.Context, parent string) (string, string) {
	if sid := sessionIDFromContext(ctx); sid != "" {
		if parent == "" {
			parent = sid
		}
		return "trigger", parent
	}
	return "route", parent
}

func (d *Daemon) handleRouteExecute(ctx context.Context, args map[string]any) (map[string]any, error) {
	caller := stringArg(args, "caller")
	tool := stringArg(args, "tool")
	toolArgs, _ := args["args"].(map[string]any)
	executor := route.NewExecutor(d.butler, d.tools.invoke)
	return executor.Execute(ctx, caller, tool, toolArgs)
}

func (d *Daemon) handleTick(ctx context.Context, _ map[string]any) (map[string]any, error) {
	fired, err := d.sched.Tick(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"fired": fired}, nil
}

func (d *Daemon) handleNotify(ctx context.Context, args map[string]any) (map[string]any, error) {
	resp, err := d.notifier.Notify(ctx, &notify.Notification{
		Channel:      stringArg(args, "channel"),
		Target:       stringArg(args, "target"),
		Text:         stringArg(args, "text"),
		ThreadTarget: stringArg(args, "thread_target"),
	})
	if err != nil {
		return nil, err
	}
	out := map[string]any{"delivered": resp.Delivered}
	if !resp.Delivered {
		out["error_kind"] = string(resp.ErrorKind)
		out["retryable"] = resp.Retryable
		out["detail"] = resp.Detail
	}
	return out, nil
}

func (d *Daemon) handleRemind(ctx context.Context, args map[string]any) (map[string]any, error) {
	at, err := time.Parse(time.RFC3339, stringArg(args, "at"))
	if err != nil {
		return nil, route.Errorf(route.KindValidation, "remind requires an RFC 3339 time: %v", err)
	}
	taskID, err := notify.Remind(ctx, d.sched, &notify.Reminder{
		Text: stringArg(args, "text"),
		At:   at,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"task_id": taskID,
		"at":      at.UTC().Format(time.RFC3339),
	}, nil
}

func (d *Daemon) handleStateGet(ctx context.Context, args map[string]any) (map[string]any, error) {
	key := stringArg(args, "key")
	if key == "" {
		return nil, route.Errorf(route.KindValidation, "state.get requires a key")
	}
	value, err := d.state.Get(ctx, key)
	if errors.Is(err, services.ErrNotFound) {
		return map[string]any{"found": false}, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"found": true, "value": value}, nil
}

func (d *Daemon) handleStateSet(ctx context.Context, args map[string]any) (map[string]any, error) {
	key := stringArg(args, "key")
	value, _ := args["value"].(map[string]any)
	if key == "" || value == nil {
		return nil, route.Errorf(route.KindValidation, "state.set requires key and value")
	}
	if err := d.state.Set(ctx, key, value); err != nil {
		return nil, err
	}
	return map[string]any{"saved": key}, nil
}

func (d *Daemon) handleStateDelete(ctx context.Context, args map[string]any) (map[string]any, error) {
	key := stringArg(args, "key")
	if key == "" {
		return nil, route.Errorf(route.KindValidation, "state.delete requires a key")
	}
	if err := d.state.Delete(ctx, key); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": key}, nil
}

func (d *Daemon) handleStateList(ctx context.Context, _ map[string]any) (map[string]any, error) {
	keys, err := d.state.Keys(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"keys": keys}, nil
}

func (d *Daemon) handleScheduleList(ctx context.Context, _ map[string]any) (map[string]any, error) {
	tasks, err := d.sched.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(tasks))
	for _, t := range tasks {
		entry := map[string]any{
			"id":            t.ID,
			"name":          t.Name,
			"cron":          t.Cron,
			"dispatch_mode": string(t.DispatchMode),
			"enabled":       t.Enabled,
		}
		if t.NextRunAt != nil {
			entry["next_run_at"] = t.NextRunAt.UTC().Format(time.RFC3339)
		}
		if t.LastRunAt != nil {
			entry["last_run_at"] = t.LastRunAt.UTC().Format(time.RFC3339)
			entry["last_status"] = t.LastStatus
		}
		out = append(out, entry)
	}
	return map[string]any{"tasks": out}, nil
}

func (d *Daemon) handleSessionRecent(ctx context.Context, args map[string]any) (map[string]any, error) {
	limit, _ := args["limit"].(float64)
	sessions, err := d.sessions.Recent(ctx, int(limit))
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, sessionSummary(s))
	}
	return map[string]any{"sessions": out}, nil
}

func (d *Daemon) handleSessionGet(ctx context.Context, args map[string]any) (map[string]any, error) {
	found, err := d.sessions.Get(ctx, stringArg(args, "session_id"))
	if errors.Is(err, services.ErrNotFound) {
		return nil, route.Errorf(route.KindValidation, "unknown session")
	}
	if err != nil {
		return nil, err
	}
	out := sessionSummary(found)
	out["prompt"] = found.Prompt
	out["output"] = found.Output
	out["tool_calls"] = found.ToolCalls
	out["input_tokens"] = found.InputTokens
	out["output_tokens"] = found.OutputTokens
	if found.ErrorMessage != nil && *found.ErrorMessage != "" {
		out["error_message"] = *found.ErrorMessage
	}
	return out, nil
}

func sessionSummary(s *ent.Session) map[string]any {
	out := map[string]any{
		"session_id":     s.ID,
		"status":         string(s.Status),
		"trigger_source": string(s.TriggerSource),
		"created_at":     s.CreatedAt.UTC().Format(time.RFC3339),
		"duration_ms":    s.DurationMs,
	}
	if s.ParentSessionID != nil && *s.ParentSessionID != "" {
		out["parent_session_id"] = *s.ParentSessionID
	}
	return out
}

func (d *Daemon) handleApprovalsExecute(ctx context.Context, args map[string]any) (map[string]any, error) {
	actionID := stringArg(args, "action_id")
	if actionID == "" {
		return nil, route.Errorf(route.KindValidation, "approvals.execute requires an action_id")
	}
	return d.engine.ExecuteApproved(ctx, actionID,
		func(ctx context.Context, tool string, toolArgs map[string]any) (map[string]any, error) {
			fn, ok := d.ungated[tool]
			if !ok {
				return nil, route.Errorf(route.KindValidation, "unknown tool %q", tool)
			}
			return fn(ctx, toolArgs)
		})
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
