package approvals

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/approvalrule"
	"github.com/homekeep/butlerd/ent/pendingaction"
	"github.com/homekeep/butlerd/pkg/config"
)

// GateResult is the outcome of intercepting a gated tool call.
type GateResult struct {
	// Approved means a standing rule pre-approved the call; execution
	// may proceed immediately.
	Approved bool

	// RuleID names the matching rule when Approved.
	RuleID string

	// ActionID names the pending action when not Approved.
	ActionID  string
	ExpiresAt time.Time
}

// ConflictError reports a decision race: the action had already left
// pending when this decision arrived.
type ConflictError struct {
	ActionID      string
	CurrentStatus string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("action %s is already %s", e.ActionID, e.CurrentStatus)
}

// Engine is the approvals engine for one butler daemon.
type Engine struct {
	client *ent.Client
	cfg    *config.ApprovalsConfig

	// execMu serializes execute_approved_action per action id.
	execMu sync.Map // action id → *sync.Mutex
}

// NewEngine creates the engine.
func NewEngine(client *ent.Client, cfg *config.ApprovalsConfig) *Engine {
	return &Engine{client: client, cfg: cfg}
}

// Gate intercepts a gated tool call. A matching standing rule approves
// it in place; otherwise a pending action is created and the caller
// must wait for a human decision.
func (e *Engine) Gate(ctx context.Context, butler, tool, riskTier, sessionID string, args map[string]any) (*GateResult, error) {
	rule, err := e.matchRule(ctx, butler, tool, args)
	if err != nil {
		return nil, err
	}
	if rule != nil {
		if consumed, err := e.consumeRule(ctx, rule); err != nil {
			return nil, err
		} else if consumed {
			e.emit(ctx, "", "rule_matched", map[string]any{
				"rule_id": rule.ID,
				"butler":  butler,
				"tool":    tool,
			})
			slog.Info("Gated tool pre-approved by standing rule",
				"butler", butler, "tool", tool, "rule_id", rule.ID)
			return &GateResult{Approved: true, RuleID: rule.ID}, nil
		}
		// Rule was exhausted by a concurrent caller; fall through to a
		// pending action.
	}

	actionID := uuid.NewString()
	expires := time.Now().Add(e.cfg.DefaultExpiry)
	create := e.client.PendingAction.Create().
		SetID(actionID).
		SetButlerName(butler).
		SetToolName(tool).
		SetToolArgs(args).
		SetStatus(pendingaction.StatusPending).
		SetRiskTier(pendingaction.RiskTier(riskTier)).
		SetExpiresAt(expires)
	if sessionID != "" {
		create.SetSessionID(sessionID)
	}
	if err := create.Exec(ctx); err != nil {
		return nil, fmt.Errorf("create pending action: %w", err)
	}
	e.emit(ctx, actionID, "action_created", map[string]any{
		"butler":    butler,
		"tool":      tool,
		"risk_tier": riskTier,
	})
	slog.Info("Gated tool call held for approval",
		"butler", butler, "tool", tool, "action_id", actionID, "risk_tier", riskTier)
	return &GateResult{ActionID: actionID, ExpiresAt: expires}, nil
}

// matchRule finds the highest-precedence live rule covering the call.
func (e *Engine) matchRule(ctx context.Context, butler, tool string, args map[string]any) (*ent.ApprovalRule, error) {
	now := time.Now()
	rules, err := e.client.ApprovalRule.Query().
		Where(
			approvalrule.ButlerNameEQ(butler),
			approvalrule.ToolNameEQ(tool),
			approvalrule.EnabledEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query approval rules: %w", err)
	}

	live := rules[:0]
	for _, r := range rules {
		if r.ExpiresAt != nil && r.ExpiresAt.Before(now) {
			continue
		}
		if r.MaxUses != nil && *r.MaxUses > 0 && r.Uses >= *r.MaxUses {
			continue
		}
		if !ruleMatches(r, args) {
			continue
		}
		live = append(live, r)
	}
	if len(live) == 0 {
		return nil, nil
	}
	sortByPrecedence(live)
	return live[0], nil
}

// consumeRule burns one use of a bounded rule. The compare-and-set on
// uses keeps concurrent consumers within max_uses.
func (e *Engine) consumeRule(ctx context.Context, rule *ent.ApprovalRule) (bool, error) {
	if rule.MaxUses == nil || *rule.MaxUses <= 0 {
		return true, nil
	}
	n, err := e.client.ApprovalRule.Update().
		Where(
			approvalrule.IDEQ(rule.ID),
			approvalrule.UsesLT(*rule.MaxUses),
		).
		AddUses(1).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("consume rule use: %w", err)
	}
	return n == 1, nil
}

// AddRule validates and stores a standing rule.
func (e *Engine) AddRule(ctx context.Context, butler, tool, riskTier string, constraints []Constraint, expiresAt *time.Time, maxUses int) (string, error) {
	if err := ValidateRule(riskTier, constraints, expiresAt, maxUses); err != nil {
		return "", err
	}

	encoded := make([]map[string]any, 0, len(constraints))
	for _, c := range constraints {
		encoded = append(encoded, map[string]any{
			"arg": c.Arg, "kind": c.Kind, "value": c.Value,
		})
	}

	ruleID := uuid.NewString()
	create := e.client.ApprovalRule.Create().
		SetID(ruleID).
		SetButlerName(butler).
		SetToolName(tool).
		SetRiskTier(approvalrule.RiskTier(riskTier)).
		SetArgConstraints(encoded).
		SetMaxUses(maxUses)
	if expiresAt != nil {
		create.SetExpiresAt(*expiresAt)
	}
	if err := create.Exec(ctx); err != nil {
		return "", fmt.Errorf("create approval rule: %w", err)
	}
	return ruleID, nil
}

// Approve decides a pending action. The WHERE status='pending' makes
// the write a compare-and-set; losing a race returns ConflictError
// naming the winner's state.
func (e *Engine) Approve(ctx context.Context, actionID, decidedBy string) error {
	return e.decide(ctx, actionID, decidedBy, pendingaction.StatusApproved, "action_approved")
}

// Reject decides a pending action negatively.
func (e *Engine) Reject(ctx context.Context, actionID, decidedBy string) error {
	return e.decide(ctx, actionID, decidedBy, pendingaction.StatusRejected, "action_rejected")
}

func (e *Engine) decide(ctx context.Context, actionID, decidedBy string, to pendingaction.Status, event string) error {
	n, err := e.client.PendingAction.Update().
		Where(
			pendingaction.IDEQ(actionID),
			pendingaction.StatusEQ(pendingaction.StatusPending),
		).
		SetStatus(to).
		SetDecidedAt(time.Now()).
		SetDecidedBy(decidedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("decide action %s: %w", actionID, err)
	}
	if n == 0 {
		current, err := e.client.PendingAction.Query().
			Where(pendingaction.IDEQ(actionID)).
			Only(ctx)
		if ent.IsNotFound(err) {
			return fmt.Errorf("unknown action %s", actionID)
		}
		if err != nil {
			return err
		}
		return &ConflictError{ActionID: actionID, CurrentStatus: string(current.Status)}
	}
	e.emit(ctx, actionID, event, map[string]any{"decided_by": decidedBy})
	return nil
}

// ExpireOverdue flips pending actions past their deadline to expired.
// Runs as the approval-expiry job.
func (e *Engine) ExpireOverdue(ctx context.Context) (int, error) {
	overdue, err := e.client.PendingAction.Query().
		Where(
			pendingaction.StatusEQ(pendingaction.StatusPending),
			pendingaction.ExpiresAtLT(time.Now()),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query overdue actions: %w", err)
	}

	expired := 0
	for _, action := range overdue {
		n, err := e.client.PendingAction.Update().
			Where(
				pendingaction.IDEQ(action.ID),
				pendingaction.StatusEQ(pendingaction.StatusPending),
			).
			SetStatus(pendingaction.StatusExpired).
			SetDecidedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return expired, fmt.Errorf("expire action %s: %w", action.ID, err)
		}
		if n == 1 {
			e.emit(ctx, action.ID, "action_expired", nil)
			expired++
		}
	}
	return expired, nil
}

// ExecuteFunc performs the underlying tool call for an approved action.
type ExecuteFunc func(ctx context.Context, tool string, args map[string]any) (map[string]any, error)

// ExecuteApproved runs an approved action exactly once. Duplicate calls
// replay the stored result; a process-local per-action lock keeps
// concurrent executors from racing the terminal write.
func (e *Engine) ExecuteApproved(ctx context.Context, actionID string, exec ExecuteFunc) (map[string]any, error) {
	muI, _ := e.execMu.LoadOrStore(actionID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	action, err := e.client.PendingAction.Query().
		Where(pendingaction.IDEQ(actionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("unknown action %s", actionID)
	}
	if err != nil {
		return nil, err
	}

	switch action.Status {
	case pendingaction.StatusExecuted:
		return action.ExecutionResult, nil
	case pendingaction.StatusApproved:
		// proceed
	default:
		return nil, &ConflictError{ActionID: actionID, CurrentStatus: string(action.Status)}
	}

	result, err := exec(ctx, action.ToolName, action.ToolArgs)
	if err != nil {
		return nil, fmt.Errorf("execute action %s: %w", actionID, err)
	}

	n, err := e.client.PendingAction.Update().
		Where(
			pendingaction.IDEQ(actionID),
			pendingaction.StatusEQ(pendingaction.StatusApproved),
		).
		SetStatus(pendingaction.StatusExecuted).
		SetExecutionResult(result).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record execution of %s: %w", actionID, err)
	}
	if n == 0 {
		// Another process executed between our read and write; return
		// its stored result.
		stored, err := e.client.PendingAction.Query().
			Where(pendingaction.IDEQ(actionID)).
			Only(ctx)
		if err != nil {
			return nil, err
		}
		return stored.ExecutionResult, nil
	}
	e.emit(ctx, actionID, "action_executed", nil)
	return result, nil
}

// emit appends one immutable audit event. The table's DB trigger
// rejects updates and deletes.
func (e *Engine) emit(ctx context.Context, actionID, eventType string, detail map[string]any) {
	create := e.client.ApprovalEvent.Create().
		SetID(uuid.NewString()).
		SetEventType(eventType)
	if actionID != "" {
		create.SetActionID(actionID)
	}
	if detail != nil {
		create.SetDetail(detail)
	}
	if err := create.Exec(ctx); err != nil {
		slog.Error("Failed to append approval event",
			"action_id", actionID, "event", eventType, "error", err)
	}
}
