package runtime

import (
	"bufio"
	"context"
	"encoding/json"
	"strings"

	"github.com/homekeep/butlerd/pkg/config"
)

type codex struct {
	binary string
}

func newCodex(cfg *config.RuntimeConfig) *codex {
	binary := cfg.Binary
	if binary == "" {
		binary = "codex"
	}
	return &codex{binary: binary}
}

func (a *codex) Name() string { return "codex" }

// codexEvent is one line of `codex exec --json` output. Only the
// message and token-count events matter here.
type codexEvent struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Usage   *struct {
		InputTokens  int64 `json:"input_tokens"`
		OutputTokens int64 `json:"output_tokens"`
	} `json:"usage,omitempty"`
}

func (a *codex) Run(ctx context.Context, inv Invocation) (*Result, error) {
	prompt := inv.Prompt
	if inv.SystemPrompt != "" {
		prompt = inv.SystemPrompt + "\n\n" + prompt
	}

	args := []string{"exec", "--json", "--skip-git-repo-check"}
	if inv.Model != "" {
		args = append(args, "--model", inv.Model)
	}
	args = append(args, prompt)

	stdout, err := runCLI(ctx, inv, a.binary, args)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "{") {
			continue
		}
		var ev codexEvent
		if json.Unmarshal([]byte(line), &ev) != nil {
			continue
		}
		switch ev.Type {
		case "agent_message":
			res.Output = ev.Message
		case "token_count":
			if ev.Usage != nil {
				res.Usage.InputTokens = ev.Usage.InputTokens
				res.Usage.OutputTokens = ev.Usage.OutputTokens
			}
		}
	}
	if res.Output == "" {
		res.Output = stdout
	}
	return res, nil
}
