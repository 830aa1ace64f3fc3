package spawner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// mcpConfig is the on-disk config handed to the CLI. It names exactly
// one server, the parent butler's own endpoint, carrying the runtime
// session id so the daemon middleware can bind tool calls back to the
// session.
type mcpConfig struct {
	MCPServers map[string]mcpServerEntry `json:"mcpServers"`
}

type mcpServerEntry struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// writeMCPConfig writes the per-session MCP config file and returns its
// path. The caller removes it when the session ends.
func writeMCPConfig(butler, endpointURL, sessionID string) (string, error) {
	cfg := mcpConfig{
		MCPServers: map[string]mcpServerEntry{
			butler: {
				Type: "http",
				URL:  fmt.Sprintf("%s?runtime_session_id=%s", endpointURL, sessionID),
			},
		},
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal mcp config: %w", err)
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("butlerd-mcp-%s.json", sessionID))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write mcp config: %w", err)
	}
	return path, nil
}
