package butler

import (
	"context"
	"encoding/json"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/modules"
	"github.com/homekeep/butlerd/pkg/route"
)

func echoTool(name string) (*mcpsdk.Tool, modules.ToolFunc) {
	def := &mcpsdk.Tool{
		Name:        name,
		InputSchema: mustSchema(`{"type": "object"}`),
	}
	fn := func(_ context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"tool": name, "args": args}, nil
	}
	return def, fn
}

func TestToolSetInvoke(t *testing.T) {
	ts := newToolSet()
	ts.add(echoTool("status"))
	ts.add(echoTool("notify"))

	out, err := ts.invoke(context.Background(), "status", map[string]any{"x": "y"})
	require.NoError(t, err)
	assert.Equal(t, "status", out["tool"])

	_, err = ts.invoke(context.Background(), "nope", nil)
	require.Error(t, err)
	assert.Equal(t, route.KindValidation, route.KindOf(err))
}

func TestToolSetDuplicatePanics(t *testing.T) {
	ts := newToolSet()
	ts.add(echoTool("status"))
	assert.Panics(t, func() { ts.add(echoTool("status")) })
}

func TestToolSetNamesSorted(t *testing.T) {
	ts := newToolSet()
	ts.add(echoTool("tick"))
	ts.add(echoTool("notify"))
	ts.add(echoTool("status"))
	assert.Equal(t, []string{"notify", "status", "tick"}, ts.names())
}

func TestToolSetWrap(t *testing.T) {
	ts := newToolSet()
	ts.add(echoTool("channel.send"))

	ts.wrap("channel.send", func(fn modules.ToolFunc) modules.ToolFunc {
		return func(ctx context.Context, args map[string]any) (map[string]any, error) {
			out, err := fn(ctx, args)
			if err != nil {
				return nil, err
			}
			out["wrapped"] = true
			return out, nil
		}
	})

	out, err := ts.invoke(context.Background(), "channel.send", nil)
	require.NoError(t, err)
	assert.Equal(t, true, out["wrapped"])
}

func TestToolSetWrapUnknownIsNoop(t *testing.T) {
	ts := newToolSet()
	assert.NotPanics(t, func() {
		ts.wrap("ghost", func(fn modules.ToolFunc) modules.ToolFunc { return fn })
	})
}

func TestErrorResultShape(t *testing.T) {
	res := errorResult(route.Errorf(route.KindTargetUnavailable, "chef is down"))
	require.True(t, res.IsError)
	require.Len(t, res.Content, 1)

	var body map[string]any
	text := res.Content[0].(*mcpsdk.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &body))
	assert.Equal(t, "target_unavailable", body["error"])
	assert.Equal(t, true, body["retryable"])
}

func TestSuccessResultShape(t *testing.T) {
	res := successResult(map[string]any{"delivered": true})
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Equal(t, map[string]any{"delivered": true}, res.StructuredContent)
}
