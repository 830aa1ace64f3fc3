package runtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/homekeep/butlerd/pkg/config"
)

type claudeCode struct {
	binary string
}

func newClaudeCode(cfg *config.RuntimeConfig) *claudeCode {
	binary := cfg.Binary
	if binary == "" {
		binary = "claude"
	}
	return &claudeCode{binary: binary}
}

func (a *claudeCode) Name() string { return "claude-code" }

// claudeOutput is the JSON envelope of `claude -p --output-format json`.
type claudeOutput struct {
	Result       string  `json:"result"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	Usage        struct {
		InputTokens  int64 `json:"input_tokens"`
		OutputTokens int64 `json:"output_tokens"`
	} `json:"usage"`
}

func (a *claudeCode) Run(ctx context.Context, inv Invocation) (*Result, error) {
	args := []string{"-p", inv.Prompt, "--output-format", "json"}
	if inv.SystemPrompt != "" {
		args = append(args, "--append-system-prompt", inv.SystemPrompt)
	}
	if inv.Model != "" {
		args = append(args, "--model", inv.Model)
	}
	if inv.MCPConfigPath != "" {
		args = append(args, "--mcp-config", inv.MCPConfigPath, "--strict-mcp-config")
	}

	stdout, err := runCLI(ctx, inv, a.binary, args)
	if err != nil {
		return nil, err
	}

	var out claudeOutput
	if jerr := json.Unmarshal([]byte(stdout), &out); jerr != nil {
		// Older CLI versions emit plain text for some modes.
		slog.Debug("claude output is not JSON, using raw text", "error", jerr)
		return &Result{Output: stdout}, nil
	}
	return &Result{
		Output: out.Result,
		Usage: Usage{
			InputTokens:  out.Usage.InputTokens,
			OutputTokens: out.Usage.OutputTokens,
			CostUSD:      out.TotalCostUSD,
		},
	}, nil
}
