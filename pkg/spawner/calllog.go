package spawner

import (
	"sync"
	"time"
)

// ToolCall is one captured tool invocation from a running session.
type ToolCall struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
	At   time.Time      `json:"at"`
}

// CallLog captures ground-truth tool calls per runtime session. The
// daemon's MCP middleware records into it using the runtime_session_id
// query parameter; the spawner drains it at session end.
type CallLog struct {
	mu    sync.Mutex
	calls map[string][]ToolCall
}

// NewCallLog creates an empty call log.
func NewCallLog() *CallLog {
	return &CallLog{calls: make(map[string][]ToolCall)}
}

// Begin opens capture for a session id.
func (c *CallLog) Begin(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[sessionID] = []ToolCall{}
}

// Record appends one tool call. Calls for unknown sessions are dropped;
// a stale CLI reusing an old id must not pollute a new session.
func (c *CallLog) Record(sessionID, tool string, args map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	calls, open := c.calls[sessionID]
	if !open {
		return
	}
	c.calls[sessionID] = append(calls, ToolCall{Tool: tool, Args: args, At: time.Now()})
}

// Drain closes capture and returns everything recorded.
func (c *CallLog) Drain(sessionID string) []ToolCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	calls := c.calls[sessionID]
	delete(c.calls, sessionID)
	return calls
}
