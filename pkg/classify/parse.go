package classify

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// ParseEntries extracts classification entries from raw LLM output.
// Tolerant by design: markdown fences are stripped, unknown fields are
// ignored, and a malformed element skips that element rather than
// failing the batch. Returns nil when nothing usable was found.
func ParseEntries(output string) []Entry {
	payload := extractArray(output)
	if payload == "" {
		slog.Warn("Classifier output contained no JSON array")
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		slog.Warn("Classifier output is not a valid JSON array", "error", err)
		return nil
	}

	entries := make([]Entry, 0, len(raw))
	for i, elem := range raw {
		var e Entry
		if err := json.Unmarshal(elem, &e); err != nil {
			slog.Warn("Skipping malformed classification entry",
				"index", i, "error", err)
			continue
		}
		if !e.valid() {
			slog.Warn("Skipping incomplete classification entry",
				"index", i, "butler", e.Butler)
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

// extractArray finds the outermost JSON array in the output, tolerating
// fenced code blocks and surrounding prose.
func extractArray(output string) string {
	s := strings.TrimSpace(output)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
