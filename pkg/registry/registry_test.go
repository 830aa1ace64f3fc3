package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/ent/eligibilitylog"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/route"
	testdb "github.com/homekeep/butlerd/test/database"
)

func TestLivenessTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := New(client.Client, config.DefaultRegistryConfig())
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, testRegistration()))

	target, err := reg.ResolveRoutingTarget(ctx, "chef")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:7302/mcp", target.EndpointURL)

	// Age the heartbeat past its TTL; the sweep flips the butler stale.
	require.NoError(t, client.RegistryEntry.UpdateOneID("chef").
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Exec(ctx))
	flipped, err := reg.SweepStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flipped)

	_, err = reg.ResolveRoutingTarget(ctx, "chef")
	assert.True(t, route.IsKind(err, route.KindTargetUnavailable))

	eligible, err := reg.EligibleButlers(ctx)
	require.NoError(t, err)
	assert.Empty(t, eligible, "stale butlers never reach the classifier")

	// A heartbeat restores eligibility.
	require.NoError(t, reg.Heartbeat(ctx, "chef"))
	_, err = reg.ResolveRoutingTarget(ctx, "chef")
	require.NoError(t, err)

	// Both transitions left audit rows.
	n, err := client.EligibilityLog.Query().
		Where(eligibilitylog.ButlerNameEQ("chef")).
		Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 2)
}

func TestSweepStaleLeavesLiveButlers(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := New(client.Client, config.DefaultRegistryConfig())
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, testRegistration()))

	flipped, err := reg.SweepStale(ctx)
	require.NoError(t, err)
	assert.Zero(t, flipped)

	_, err = reg.ResolveRoutingTarget(ctx, "chef")
	require.NoError(t, err)
}

func TestQuarantineLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := New(client.Client, config.DefaultRegistryConfig())
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, testRegistration()))
	require.NoError(t, reg.SetQuarantined(ctx, "chef", "route_failures", "system"))

	_, err := reg.ResolveRoutingTarget(ctx, "chef")
	assert.True(t, route.IsKind(err, route.KindTargetQuarantined))

	// Quarantine sticks: neither a heartbeat nor a re-registration
	// clears it.
	require.NoError(t, reg.Heartbeat(ctx, "chef"))
	require.NoError(t, reg.Register(ctx, testRegistration()))
	_, err = reg.ResolveRoutingTarget(ctx, "chef")
	assert.True(t, route.IsKind(err, route.KindTargetQuarantined))

	eligible, err := reg.EligibleButlers(ctx)
	require.NoError(t, err)
	assert.Empty(t, eligible)

	// Only an operator restore brings it back.
	require.NoError(t, reg.Restore(ctx, "chef", "alice"))
	_, err = reg.ResolveRoutingTarget(ctx, "chef")
	require.NoError(t, err)

	// Quarantining twice is a no-op, restoring a non-quarantined
	// butler is an error.
	require.NoError(t, reg.SetQuarantined(ctx, "chef", "x", "system"))
	require.NoError(t, reg.SetQuarantined(ctx, "chef", "x", "system"))
	require.NoError(t, reg.Restore(ctx, "chef", "alice"))
	require.Error(t, reg.Restore(ctx, "chef", "alice"))
}

func TestUnknownButler(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := New(client.Client, config.DefaultRegistryConfig())
	ctx := context.Background()

	var unknown *UnknownButlerError
	assert.ErrorAs(t, reg.Heartbeat(ctx, "ghost"), &unknown)
	assert.ErrorAs(t, reg.SetQuarantined(ctx, "ghost", "x", "system"), &unknown)

	_, err := reg.ResolveRoutingTarget(ctx, "ghost")
	assert.True(t, route.IsKind(err, route.KindTargetUnavailable))
}
