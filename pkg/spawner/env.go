package spawner

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/homekeep/butlerd/pkg/credentials"
)

// coreCredentialKey maps a runtime adapter to the API key its CLI needs.
func coreCredentialKey(adapter string) (string, error) {
	switch adapter {
	case "claude-code":
		return "ANTHROPIC_API_KEY", nil
	case "codex":
		return "OPENAI_API_KEY", nil
	case "gemini":
		return "GEMINI_API_KEY", nil
	default:
		return "", fmt.Errorf("no core credential mapping for adapter %q", adapter)
	}
}

// buildEnv assembles the sandboxed child environment: PATH, the
// adapter's core API key, and the butler's declared module credentials.
// Nothing else from the host environment leaks into the subprocess.
func buildEnv(ctx context.Context, store *credentials.Store, adapter, butler string, moduleKeys []string) ([]string, error) {
	env := []string{"PATH=" + os.Getenv("PATH")}

	coreKey, err := coreCredentialKey(adapter)
	if err != nil {
		return nil, err
	}
	coreVal, err := store.Resolve(ctx, butler, coreKey)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", coreKey, err)
	}
	env = append(env, coreKey+"="+coreVal)

	for _, key := range moduleKeys {
		val, err := store.Resolve(ctx, butler, key)
		if err != nil {
			slog.Warn("Module credential not configured, omitting from session env",
				"butler", butler, "key", key)
			continue
		}
		env = append(env, key+"="+val)
	}
	return env, nil
}
