package approvals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/ent/approvalevent"
	"github.com/homekeep/butlerd/pkg/config"
	testdb "github.com/homekeep/butlerd/test/database"
)

func TestGateHoldsWithoutRule(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, config.DefaultApprovalsConfig())
	ctx := context.Background()

	res, err := engine.Gate(ctx, "chef", "notify", "medium", "sess-1",
		map[string]any{"text": "hello"})
	require.NoError(t, err)
	assert.False(t, res.Approved)
	require.NotEmpty(t, res.ActionID)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	action, err := client.PendingAction.Get(ctx, res.ActionID)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(action.Status))
	assert.Equal(t, "notify", action.ToolName)
	assert.Equal(t, "sess-1", action.SessionID)
}

func TestGateStandingRuleConsumesUses(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, config.DefaultApprovalsConfig())
	ctx := context.Background()

	ruleID, err := engine.AddRule(ctx, "chef", "notify", "low", nil, nil, 1)
	require.NoError(t, err)

	res, err := engine.Gate(ctx, "chef", "notify", "low", "", nil)
	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.Equal(t, ruleID, res.RuleID)

	// The single use is burned; the next call holds.
	res, err = engine.Gate(ctx, "chef", "notify", "low", "", nil)
	require.NoError(t, err)
	assert.False(t, res.Approved)
	assert.NotEmpty(t, res.ActionID)
}

func TestExecuteApprovedRunsOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, config.DefaultApprovalsConfig())
	ctx := context.Background()

	res, err := engine.Gate(ctx, "chef", "notify", "high", "",
		map[string]any{"text": "hello"})
	require.NoError(t, err)
	require.NoError(t, engine.Approve(ctx, res.ActionID, "alice"))

	calls := 0
	exec := func(_ context.Context, tool string, args map[string]any) (map[string]any, error) {
		calls++
		assert.Equal(t, "notify", tool)
		assert.Equal(t, "hello", args["text"])
		return map[string]any{"delivered": true}, nil
	}

	out, err := engine.ExecuteApproved(ctx, res.ActionID, exec)
	require.NoError(t, err)
	assert.Equal(t, true, out["delivered"])

	// A replayed execute returns the stored result without running the
	// tool again.
	out, err = engine.ExecuteApproved(ctx, res.ActionID, exec)
	require.NoError(t, err)
	assert.Equal(t, true, out["delivered"])
	assert.Equal(t, 1, calls)
}

func TestDecisionRace(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, config.DefaultApprovalsConfig())
	ctx := context.Background()

	res, err := engine.Gate(ctx, "chef", "notify", "medium", "", nil)
	require.NoError(t, err)
	require.NoError(t, engine.Approve(ctx, res.ActionID, "alice"))

	// The losing decision reports the winner's state.
	var conflict *ConflictError
	err = engine.Reject(ctx, res.ActionID, "bob")
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "approved", conflict.CurrentStatus)

	// Executing a rejected action conflicts too.
	res2, err := engine.Gate(ctx, "chef", "notify", "medium", "", nil)
	require.NoError(t, err)
	require.NoError(t, engine.Reject(ctx, res2.ActionID, "alice"))
	_, err = engine.ExecuteApproved(ctx, res2.ActionID,
		func(context.Context, string, map[string]any) (map[string]any, error) {
			t.Fatal("rejected action must not execute")
			return nil, nil
		})
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "rejected", conflict.CurrentStatus)
}

func TestExpireOverdue(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, config.DefaultApprovalsConfig())
	ctx := context.Background()

	res, err := engine.Gate(ctx, "chef", "notify", "medium", "", nil)
	require.NoError(t, err)

	// Not overdue yet.
	n, err := engine.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, client.PendingAction.UpdateOneID(res.ActionID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx))
	n, err = engine.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	action, err := client.PendingAction.Get(ctx, res.ActionID)
	require.NoError(t, err)
	assert.Equal(t, "expired", string(action.Status))

	// Approving an expired action conflicts.
	var conflict *ConflictError
	assert.ErrorAs(t, engine.Approve(ctx, res.ActionID, "alice"), &conflict)

	// The lifecycle left an audit trail.
	events, err := client.ApprovalEvent.Query().
		Where(approvalevent.ActionIDEQ(res.ActionID)).
		Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, events, 2)
}
