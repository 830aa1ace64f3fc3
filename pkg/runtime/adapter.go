// Package runtime wraps the LLM CLI binaries (claude-code, codex,
// gemini) behind a single adapter interface. One adapter invocation is
// one ephemeral CLI subprocess: fresh environment, one prompt in,
// output text and usage out. Tool calls are not parsed from CLI output;
// the daemon's MCP middleware captures them as ground truth.
package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/homekeep/butlerd/pkg/config"
)

// Invocation is one adapter run.
type Invocation struct {
	Prompt       string
	SystemPrompt string

	// MCPConfigPath points to the generated MCP config file naming the
	// parent butler's own endpoint.
	MCPConfigPath string

	// Env is the complete child environment. The host environment does
	// not leak; the spawner builds this from the credential store.
	Env []string

	Model   string
	Timeout time.Duration
	WorkDir string
}

// Usage is the token/cost accounting reported by the CLI, best effort.
type Usage struct {
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
}

// Result is a successful adapter run.
type Result struct {
	Output string
	Usage  Usage
}

// Adapter runs one LLM CLI turn. Implementations must surface non-zero
// exit codes as errors, never as in-band error strings.
type Adapter interface {
	Name() string
	Run(ctx context.Context, inv Invocation) (*Result, error)
}

// New selects the adapter named by the runtime configuration.
func New(cfg *config.RuntimeConfig) (Adapter, error) {
	switch cfg.Adapter {
	case "claude-code":
		return newClaudeCode(cfg), nil
	case "codex":
		return newCodex(cfg), nil
	case "gemini":
		return newGemini(cfg), nil
	default:
		return nil, fmt.Errorf("unknown runtime adapter %q", cfg.Adapter)
	}
}
