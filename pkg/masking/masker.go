// Package masking scrubs secrets from session output before it is
// persisted. Literal credential values from the session environment are
// masked alongside a small set of token-shaped patterns, so a runtime
// that echoes its own API key cannot leak it into the sessions table.
package masking

import (
	"regexp"
	"strings"
)

const replacement = "***MASKED***"

// builtinPatterns match common secret shapes regardless of where the
// value came from.
var builtinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`sk-[A-Za-z0-9_-]{20,}`),          // OpenAI / Anthropic style keys
	regexp.MustCompile(`ghp_[A-Za-z0-9]{36}`),            // GitHub personal tokens
	regexp.MustCompile(`xox[baprs]-[A-Za-z0-9-]{10,}`),   // Slack tokens
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/-]{16,}=*`), // Authorization headers
}

// Masker replaces known secret values and token-shaped strings.
type Masker struct {
	values []string
}

// New creates a masker over the given literal secret values. Short
// values are dropped so masking cannot eat ordinary words.
func New(values ...string) *Masker {
	m := &Masker{}
	m.Add(values...)
	return m
}

// Add registers more literal values to mask.
func (m *Masker) Add(values ...string) {
	for _, v := range values {
		if len(v) >= 6 {
			m.values = append(m.values, v)
		}
	}
}

// FromEnv builds a masker from KEY=VALUE entries, skipping PATH and
// other non-secret keys.
func FromEnv(env []string, skipKeys ...string) *Masker {
	skip := map[string]bool{"PATH": true}
	for _, k := range skipKeys {
		skip[k] = true
	}
	m := &Masker{}
	for _, entry := range env {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || skip[key] {
			continue
		}
		m.Add(value)
	}
	return m
}

// Mask returns s with every known secret value and token-shaped match
// replaced. The original string comes back untouched when nothing
// matches.
func (m *Masker) Mask(s string) string {
	if s == "" {
		return s
	}
	for _, v := range m.values {
		s = strings.ReplaceAll(s, v, replacement)
	}
	for _, p := range builtinPatterns {
		s = p.ReplaceAllString(s, replacement)
	}
	return s
}
