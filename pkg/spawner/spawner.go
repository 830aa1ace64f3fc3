// Package spawner runs ephemeral LLM-CLI turns for a butler, strictly
// serialized per butler. One Trigger call is one session row, one
// sandboxed subprocess, one terminal status write.
package spawner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/session"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/credentials"
	"github.com/homekeep/butlerd/pkg/masking"
	"github.com/homekeep/butlerd/pkg/route"
	"github.com/homekeep/butlerd/pkg/runtime"
	"github.com/homekeep/butlerd/pkg/telemetry"
)

// TriggerRequest asks for one session on a butler.
type TriggerRequest struct {
	Butler          string
	Prompt          string
	TriggerSource   string // external | schedule | route | trigger | test | heartbeat
	ParentSessionID string
	Model           string
}

// TriggerResult is the terminal outcome of one session.
type TriggerResult struct {
	SessionID  string
	Output     string
	DurationMs int64
	Usage      runtime.Usage
	ToolCalls  []ToolCall
}

// Spawner serializes and executes sessions for the butlers this daemon
// hosts.
type Spawner struct {
	cfg     *config.Config
	adapter runtime.Adapter
	creds   *credentials.Store
	client  *ent.Client
	callLog *CallLog
	memory  MemoryProvider
	locks   *lockTable

	// ModuleCredentialKeys lists extra env keys per butler, declared by
	// that butler's enabled modules.
	moduleKeys map[string][]string
}

// New creates a spawner. memory may be nil.
func New(cfg *config.Config, adapter runtime.Adapter, creds *credentials.Store, client *ent.Client, callLog *CallLog, memory MemoryProvider) *Spawner {
	return &Spawner{
		cfg:        cfg,
		adapter:    adapter,
		creds:      creds,
		client:     client,
		callLog:    callLog,
		memory:     memory,
		locks:      newLockTable(cfg.Spawner.MaxQueued),
		moduleKeys: make(map[string][]string),
	}
}

// DeclareModuleCredentials registers module credential keys for a
// butler. Called during module startup, before any session runs.
func (s *Spawner) DeclareModuleCredentials(butler string, keys []string) {
	s.moduleKeys[butler] = append(s.moduleKeys[butler], keys...)
}

// Invoke satisfies the classifier's Invoker: one Switchboard session
// whose output text is the classification payload.
func (s *Spawner) Invoke(ctx context.Context, prompt string) (string, error) {
	res, err := s.Trigger(ctx, TriggerRequest{
		Butler:        config.ButlerSwitchboard,
		Prompt:        prompt,
		TriggerSource: "external",
	})
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Trigger runs one serialized session. Nested trigger calls fail fast
// with overload_rejected when the lock is held; other callers queue up
// to max_queued deep.
func (s *Spawner) Trigger(ctx context.Context, req TriggerRequest) (*TriggerResult, error) {
	butlerCfg, ok := s.cfg.Butlers[req.Butler]
	if !ok {
		return nil, route.NewError(route.KindValidation, req.Butler, "trigger",
			fmt.Errorf("unknown butler %q", req.Butler))
	}

	lock := s.locks.get(req.Butler)
	if req.TriggerSource == "trigger" {
		// A session triggering its own butler would deadlock behind
		// itself; reject immediately.
		if !lock.tryAcquire() {
			return nil, route.NewError(route.KindOverloadRejected, req.Butler, "trigger",
				fmt.Errorf("butler %q is busy and nested triggers do not queue", req.Butler))
		}
	} else {
		acquired, err := lock.acquire(ctx)
		if err != nil {
			return nil, route.NewError(route.KindTimeout, req.Butler, "trigger", err)
		}
		if !acquired {
			return nil, route.NewError(route.KindOverloadRejected, req.Butler, "trigger",
				fmt.Errorf("dispatch queue for %q is full", req.Butler))
		}
	}
	defer lock.release()

	return s.runSession(ctx, butlerCfg, req)
}

// runSession executes one session while holding the serial lock.
func (s *Spawner) runSession(ctx context.Context, butlerCfg *config.ButlerConfig, req TriggerRequest) (*TriggerResult, error) {
	// The timer starts before the insert so an early insert failure
	// cannot double-count the session.
	start := time.Now()
	sessionID := uuid.NewString()

	log := slog.With("butler", req.Butler, "session_id", sessionID,
		"trigger_source", req.TriggerSource)

	model := req.Model
	if model == "" {
		model = butlerCfg.Model
	}
	if model == "" {
		model = s.cfg.Runtime.Model
	}

	env, err := buildEnv(ctx, s.creds, s.cfg.Runtime.Adapter, req.Butler, s.moduleKeys[req.Butler])
	if err != nil {
		return nil, route.NewError(route.KindInternal, req.Butler, "trigger", err)
	}
	// Spawned runtimes join this session's trace; the CLI subcommands
	// they invoke read the variables back.
	env = append(env, telemetry.EnvFromContext(ctx)...)

	mcpPath, err := writeMCPConfig(req.Butler, butlerCfg.EndpointURL(), sessionID)
	if err != nil {
		return nil, route.NewError(route.KindInternal, req.Butler, "trigger", err)
	}
	defer os.Remove(mcpPath)

	sysPrompt := systemPrompt(ctx, s.cfg.RosterDir, req.Butler, s.memory)

	s.callLog.Begin(sessionID)

	create := s.client.Session.Create().
		SetID(sessionID).
		SetButlerName(req.Butler).
		SetTriggerSource(session.TriggerSource(req.TriggerSource)).
		SetPrompt(req.Prompt).
		SetStatus(session.StatusRunning)
	if model != "" {
		create.SetModel(model)
	}
	if req.ParentSessionID != "" {
		create.SetParentSessionID(req.ParentSessionID)
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		create.SetTraceID(sc.TraceID().String())
	}
	if err := create.Exec(ctx); err != nil {
		s.callLog.Drain(sessionID)
		return nil, route.NewError(route.KindInternal, req.Butler, "trigger",
			fmt.Errorf("insert session row: %w", err))
	}

	log.Info("Session started")

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.Spawner.SessionTimeout)
	defer cancel()

	result, runErr := s.adapter.Run(runCtx, runtime.Invocation{
		Prompt:        req.Prompt,
		SystemPrompt:  sysPrompt,
		MCPConfigPath: mcpPath,
		Env:           env,
		Model:         model,
		Timeout:       s.cfg.Runtime.Timeout,
	})

	toolCalls := s.callLog.Drain(sessionID)
	duration := time.Since(start)
	masker := masking.FromEnv(env, telemetry.TraceParentEnv, telemetry.TraceStateEnv)

	// Terminal write on a fresh context; runCtx may be dead.
	finishCtx, cancelFinish := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelFinish()

	update := s.client.Session.UpdateOneID(sessionID).
		SetCompletedAt(time.Now()).
		SetDurationMs(duration.Milliseconds()).
		SetToolCalls(encodeToolCalls(toolCalls))

	if runErr != nil {
		update.SetStatus(session.StatusError).
			SetErrorMessage(masker.Mask(runErr.Error()))
		if err := update.Exec(finishCtx); err != nil {
			log.Error("Failed to record session error", "error", err)
		}
		log.Warn("Session failed", "duration_ms", duration.Milliseconds(), "error", runErr)
		return nil, route.NewError(route.KindInternal, req.Butler, "trigger", runErr)
	}

	output := masker.Mask(result.Output)
	update.SetStatus(session.StatusCompleted).
		SetOutput(output).
		SetInputTokens(int(result.Usage.InputTokens)).
		SetOutputTokens(int(result.Usage.OutputTokens))
	if err := update.Exec(finishCtx); err != nil {
		log.Error("Failed to record session completion", "error", err)
	}

	log.Info("Session completed",
		"duration_ms", duration.Milliseconds(),
		"input_tokens", result.Usage.InputTokens,
		"output_tokens", result.Usage.OutputTokens,
		"tool_calls", len(toolCalls))

	return &TriggerResult{
		SessionID:  sessionID,
		Output:     output,
		DurationMs: duration.Milliseconds(),
		Usage:      result.Usage,
		ToolCalls:  toolCalls,
	}, nil
}

func encodeToolCalls(calls []ToolCall) []map[string]any {
	out := make([]map[string]any, 0, len(calls))
	for _, c := range calls {
		entry := map[string]any{
			"tool": c.Tool,
			"at":   c.At.Format(time.RFC3339Nano),
		}
		if len(c.Args) > 0 {
			entry["args"] = c.Args
		}
		out = append(out, entry)
	}
	return out
}
