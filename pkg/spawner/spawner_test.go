package spawner

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/route"
)

func TestCallLog(t *testing.T) {
	log := NewCallLog()

	log.Begin("s1")
	log.Record("s1", "notify", map[string]any{"to": "owner"})
	log.Record("s1", "state.set", nil)

	// Recording against a session that was never begun is dropped.
	log.Record("ghost", "notify", nil)

	calls := log.Drain("s1")
	require.Len(t, calls, 2)
	assert.Equal(t, "notify", calls[0].Tool)
	assert.Equal(t, "state.set", calls[1].Tool)

	// Drained session no longer captures.
	log.Record("s1", "notify", nil)
	assert.Empty(t, log.Drain("s1"))
	assert.Empty(t, log.Drain("ghost"))
}

func TestWriteMCPConfig(t *testing.T) {
	path, err := writeMCPConfig("chef", "http://127.0.0.1:7302/mcp", "sess-42")
	require.NoError(t, err)
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg mcpConfig
	require.NoError(t, json.Unmarshal(data, &cfg))
	require.Len(t, cfg.MCPServers, 1, "config must name exactly one server")
	entry := cfg.MCPServers["chef"]
	assert.Equal(t, "http", entry.Type)
	assert.Equal(t, "http://127.0.0.1:7302/mcp?runtime_session_id=sess-42", entry.URL)
}

func TestTriggerLockSemantics(t *testing.T) {
	cfg := &config.Config{
		Spawner: config.DefaultSpawnerConfig(),
		Butlers: map[string]*config.ButlerConfig{
			"chef": {Name: "chef", Port: 7302},
		},
	}
	s := New(cfg, nil, nil, nil, NewCallLog(), nil)

	held := s.locks.get("chef")
	require.True(t, held.tryAcquire())
	defer held.release()

	// A session invoking its own butler fails fast while a session runs.
	_, err := s.Trigger(context.Background(), TriggerRequest{
		Butler: "chef", Prompt: "again", TriggerSource: "trigger",
	})
	assert.True(t, route.IsKind(err, route.KindOverloadRejected))

	// Routed dispatch queues behind the running session instead of
	// failing fast; here the wait outlives the context.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = s.Trigger(ctx, TriggerRequest{
		Butler: "chef", Prompt: "later", TriggerSource: "route",
	})
	assert.True(t, route.IsKind(err, route.KindTimeout),
		"routed calls wait in the queue rather than overload_rejected")
}

func TestCoreCredentialKey(t *testing.T) {
	for adapter, key := range map[string]string{
		"claude-code": "ANTHROPIC_API_KEY",
		"codex":       "OPENAI_API_KEY",
		"gemini":      "GEMINI_API_KEY",
	} {
		got, err := coreCredentialKey(adapter)
		require.NoError(t, err)
		assert.Equal(t, key, got)
	}
	_, err := coreCredentialKey("mystery")
	require.Error(t, err)
}
