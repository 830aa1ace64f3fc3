package route

import (
	"errors"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
)

func TestTriggerArgs(t *testing.T) {
	assert.Equal(t, map[string]any{"prompt": "do it"},
		triggerArgs(map[string]any{"prompt": "do it", "extra": 1}))
	assert.Equal(t, map[string]any{"prompt": "hello"},
		triggerArgs(map[string]any{"message": "hello"}))
	assert.Equal(t, map[string]any{"prompt": "p"},
		triggerArgs(map[string]any{"prompt": "p", "message": "m"}),
		"prompt wins over message")
	assert.Equal(t, map[string]any{"prompt": ""},
		triggerArgs(map[string]any{"other": true}))
}

func TestUnknownTool(t *testing.T) {
	assert.True(t, unknownTool(nil, errors.New("jsonrpc: unknown tool \"frobnicate\"")))
	assert.True(t, unknownTool(nil, errors.New("Method not found")))
	assert.False(t, unknownTool(nil, errors.New("connection refused")))

	errResult := &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "tool not found: frobnicate"}},
	}
	assert.True(t, unknownTool(errResult, nil))

	okResult := &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "done"}},
	}
	assert.False(t, unknownTool(okResult, nil))
}

func TestRemoteError(t *testing.T) {
	encoded := &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{
			Text: `{"error":"validation_error","retryable":false,"detail":"trigger requires a prompt"}`,
		}},
	}
	err := remoteError("chef", "trigger", encoded)
	assert.True(t, IsKind(err, KindValidation),
		"the target's kind survives the hop")
	assert.False(t, KindOf(err).Retryable())
	assert.Contains(t, err.Error(), "trigger requires a prompt")

	quarantined := &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{
			Text: `{"error":"target_quarantined","retryable":false,"detail":"butler \"chef\" is quarantined"}`,
		}},
	}
	assert.True(t, IsKind(remoteError("chef", "notify", quarantined), KindTargetQuarantined))

	plain := &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "something broke"}},
	}
	err = remoteError("chef", "notify", plain)
	assert.True(t, IsKind(err, KindInternal),
		"unstructured bodies classify as internal")
	assert.Contains(t, err.Error(), "something broke")
}

func TestDecodeResult(t *testing.T) {
	structured := &mcpsdk.CallToolResult{
		StructuredContent: map[string]any{"status": "ok"},
	}
	assert.Equal(t, map[string]any{"status": "ok"}, decodeResult(structured))

	textOnly := &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: "part one "},
			&mcpsdk.TextContent{Text: "part two"},
		},
	}
	assert.Equal(t, map[string]any{"text": "part one part two"}, decodeResult(textOnly))
}
