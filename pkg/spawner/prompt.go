package spawner

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// MemoryProvider supplies persistent memory context for a butler's
// sessions. Optional; butlers without a memory module run without it.
type MemoryProvider interface {
	MemoryContext(ctx context.Context, butler string) (string, error)
}

// systemPrompt reads roster/<butler>/AGENTS.md and appends memory
// context when a provider is wired. A missing roster file is not fatal;
// the butler runs on the prompt alone.
func systemPrompt(ctx context.Context, rosterDir, butler string, memory MemoryProvider) string {
	var prompt string
	path := filepath.Join(rosterDir, butler, "AGENTS.md")
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("No roster system prompt for butler", "butler", butler, "path", path)
	} else {
		prompt = string(data)
	}

	if memory != nil {
		mem, err := memory.MemoryContext(ctx, butler)
		if err != nil {
			slog.Warn("Memory context unavailable", "butler", butler, "error", err)
		} else if mem != "" {
			if prompt != "" {
				prompt += "\n\n"
			}
			prompt += mem
		}
	}
	return prompt
}
