package runtime

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/config"
)

func TestNew(t *testing.T) {
	for _, name := range []string{"claude-code", "codex", "gemini"} {
		adapter, err := New(&config.RuntimeConfig{Adapter: name})
		require.NoError(t, err)
		assert.Equal(t, name, adapter.Name())
	}

	_, err := New(&config.RuntimeConfig{Adapter: "gpt-cli"})
	require.Error(t, err)
}

// writeScript creates an executable shell script standing in for a CLI.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-cli")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestRunCLI(t *testing.T) {
	inv := Invocation{Timeout: 5 * time.Second, Env: []string{"PATH=/usr/bin:/bin"}}

	t.Run("captures stdout", func(t *testing.T) {
		bin := writeScript(t, `echo "hello from cli"`)
		out, err := runCLI(context.Background(), inv, bin, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello from cli\n", out)
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		bin := writeScript(t, `echo "auth expired" >&2; exit 3`)
		_, err := runCLI(context.Background(), inv, bin, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code 3")
		assert.Contains(t, err.Error(), "auth expired")
	})

	t.Run("timeout maps to deadline exceeded", func(t *testing.T) {
		bin := writeScript(t, `sleep 10`)
		short := inv
		short.Timeout = 100 * time.Millisecond
		_, err := runCLI(context.Background(), short, bin, nil)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("sandboxed environment", func(t *testing.T) {
		bin := writeScript(t, `echo "HOME=$HOME SECRET=$SECRET"`)
		sandboxed := inv
		sandboxed.Env = []string{"PATH=/usr/bin:/bin", "SECRET=s3"}
		out, err := runCLI(context.Background(), sandboxed, bin, nil)
		require.NoError(t, err)
		assert.Equal(t, "HOME= SECRET=s3\n", out)
	})
}

func TestClaudeCodeParsing(t *testing.T) {
	t.Run("json envelope", func(t *testing.T) {
		bin := writeScript(t, `cat <<'EOF'
{"result":"Dinner is planned.","total_cost_usd":0.042,"usage":{"input_tokens":1200,"output_tokens":300}}
EOF`)
		a := &claudeCode{binary: bin}
		res, err := a.Run(context.Background(), Invocation{
			Prompt:  "plan dinner",
			Timeout: 5 * time.Second,
			Env:     []string{"PATH=/usr/bin:/bin"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Dinner is planned.", res.Output)
		assert.Equal(t, int64(1200), res.Usage.InputTokens)
		assert.Equal(t, int64(300), res.Usage.OutputTokens)
		assert.InDelta(t, 0.042, res.Usage.CostUSD, 1e-9)
	})

	t.Run("plain text fallback", func(t *testing.T) {
		bin := writeScript(t, `echo "just text"`)
		a := &claudeCode{binary: bin}
		res, err := a.Run(context.Background(), Invocation{
			Prompt:  "p",
			Timeout: 5 * time.Second,
			Env:     []string{"PATH=/usr/bin:/bin"},
		})
		require.NoError(t, err)
		assert.Contains(t, res.Output, "just text")
	})
}

func TestCodexParsing(t *testing.T) {
	bin := writeScript(t, `cat <<'EOF'
{"type":"session_start","message":""}
{"type":"agent_message","message":"The lawn is mowed."}
{"type":"token_count","usage":{"input_tokens":800,"output_tokens":150}}
EOF`)
	a := &codex{binary: bin}
	res, err := a.Run(context.Background(), Invocation{
		Prompt:  "mow the lawn",
		Timeout: 5 * time.Second,
		Env:     []string{"PATH=/usr/bin:/bin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "The lawn is mowed.", res.Output)
	assert.Equal(t, int64(800), res.Usage.InputTokens)
	assert.Equal(t, int64(150), res.Usage.OutputTokens)
}
