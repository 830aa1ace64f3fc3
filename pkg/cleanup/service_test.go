package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/session"
	"github.com/homekeep/butlerd/pkg/config"
	testdb "github.com/homekeep/butlerd/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SessionRetention:   30 * 24 * time.Hour,
		InboxRetention:     7 * 24 * time.Hour,
		HeartbeatRetention: 24 * time.Hour,
	}
}

func createSession(t *testing.T, client *ent.Client, butler string, status session.Status, age time.Duration) string {
	t.Helper()
	id := uuid.NewString()
	err := client.Session.Create().
		SetID(id).
		SetButlerName(butler).
		SetTriggerSource(session.TriggerSourceTest).
		SetPrompt("prompt").
		SetStatus(status).
		SetCreatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestSweepSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	butler := &config.ButlerConfig{Name: "chef"}

	old := createSession(t, client.Client, "chef", session.StatusCompleted, 60*24*time.Hour)
	fresh := createSession(t, client.Client, "chef", session.StatusCompleted, time.Hour)
	stuck := createSession(t, client.Client, "chef", session.StatusRunning, 60*24*time.Hour)
	otherButler := createSession(t, client.Client, "gardener", session.StatusCompleted, 60*24*time.Hour)

	svc := NewService(client.Client, retentionConfig(), butler)
	require.NoError(t, svc.Run(ctx, nil))

	remaining, err := client.Session.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, old)
	assert.Contains(t, remaining, fresh)
	assert.Contains(t, remaining, stuck, "running sessions survive regardless of age")
	assert.Contains(t, remaining, otherButler, "each butler sweeps only its own sessions")
}

func TestSwitchboardSweepsSharedTables(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	oldHeartbeat := uuid.NewString()
	err := client.ConnectorHeartbeat.Create().
		SetID(oldHeartbeat).
		SetConnectorType("telegram").
		SetEndpointIdentity("bot-main").
		SetState("active").
		SetSentAt(time.Now().Add(-48 * time.Hour)).
		SetReceivedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	freshHeartbeat := uuid.NewString()
	err = client.ConnectorHeartbeat.Create().
		SetID(freshHeartbeat).
		SetConnectorType("telegram").
		SetEndpointIdentity("bot-main").
		SetState("active").
		SetSentAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(client.Client, retentionConfig(),
		&config.ButlerConfig{Name: config.ButlerSwitchboard})
	require.NoError(t, svc.Run(ctx, nil))

	remaining, err := client.ConnectorHeartbeat.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, oldHeartbeat)
	assert.Contains(t, remaining, freshHeartbeat)
}

func TestNonSwitchboardLeavesSharedTables(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	hb := uuid.NewString()
	err := client.ConnectorHeartbeat.Create().
		SetID(hb).
		SetConnectorType("email").
		SetEndpointIdentity("inbox-main").
		SetState("active").
		SetSentAt(time.Now().Add(-48 * time.Hour)).
		SetReceivedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(client.Client, retentionConfig(), &config.ButlerConfig{Name: "chef"})
	require.NoError(t, svc.Run(ctx, nil))

	remaining, err := client.ConnectorHeartbeat.Query().IDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, remaining, hb)
}
