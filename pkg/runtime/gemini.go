package runtime

import (
	"context"
	"strings"

	"github.com/homekeep/butlerd/pkg/config"
)

type gemini struct {
	binary string
}

func newGemini(cfg *config.RuntimeConfig) *gemini {
	binary := cfg.Binary
	if binary == "" {
		binary = "gemini"
	}
	return &gemini{binary: binary}
}

func (a *gemini) Name() string { return "gemini" }

// Run invokes the gemini CLI in non-interactive mode. The CLI has no
// structured output mode, so usage stays zero.
func (a *gemini) Run(ctx context.Context, inv Invocation) (*Result, error) {
	prompt := inv.Prompt
	if inv.SystemPrompt != "" {
		prompt = inv.SystemPrompt + "\n\n" + prompt
	}

	args := []string{"-p", prompt}
	if inv.Model != "" {
		args = append(args, "--model", inv.Model)
	}

	stdout, err := runCLI(ctx, inv, a.binary, args)
	if err != nil {
		return nil, err
	}
	return &Result{Output: strings.TrimSpace(stdout)}, nil
}
