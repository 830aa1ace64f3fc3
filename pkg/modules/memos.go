package modules

import (
	"context"
	"io/fs"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/homekeep/butlerd/pkg/route"
	"github.com/homekeep/butlerd/pkg/services"
)

const memoPrefix = "memo/"

// MemosModule gives a butler durable free-form notes over its state
// store. Memos live under the memo/ key prefix, one entry per memo.
type MemosModule struct {
	state *services.StateService
}

// NewMemosModule creates the memos module.
func NewMemosModule() *MemosModule { return &MemosModule{} }

func (m *MemosModule) Name() string                   { return "memos" }
func (m *MemosModule) Dependencies() []string         { return nil }
func (m *MemosModule) Migrations() (fs.FS, string)    { return nil, "" }
func (m *MemosModule) CredentialKeys() []string       { return nil }
func (m *MemosModule) Shutdown(context.Context) error { return nil }

func (m *MemosModule) Startup(_ context.Context, deps *Deps) error {
	m.state = services.NewStateService(deps.Client, deps.Butler.Name)
	return nil
}

func (m *MemosModule) Tools() []Tool {
	return []Tool{
		{
			Def: &mcpsdk.Tool{
				Name:        "memo.save",
				Description: "Save a named memo for later recall",
				InputSchema: mustSchema(`{
					"type": "object",
					"properties": {
						"name": {"type": "string"},
						"text": {"type": "string"}
					},
					"required": ["name", "text"]
				}`),
			},
			Func: m.handleSave,
		},
		{
			Def: &mcpsdk.Tool{
				Name:        "memo.list",
				Description: "List saved memo names",
				InputSchema: mustSchema(`{"type": "object"}`),
			},
			Func: m.handleList,
		},
		{
			Def: &mcpsdk.Tool{
				Name:        "memo.delete",
				Description: "Delete a saved memo",
				InputSchema: mustSchema(`{
					"type": "object",
					"properties": {"name": {"type": "string"}},
					"required": ["name"]
				}`),
			},
			Func: m.handleDelete,
		},
	}
}

func (m *MemosModule) handleSave(ctx context.Context, args map[string]any) (map[string]any, error) {
	name := stringArg(args, "name")
	text := stringArg(args, "text")
	if name == "" || text == "" {
		return nil, route.Errorf(route.KindValidation, "name and text are required")
	}
	err := m.state.Set(ctx, memoPrefix+name, map[string]any{
		"text":     text,
		"saved_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"saved": name}, nil
}

func (m *MemosModule) handleList(ctx context.Context, _ map[string]any) (map[string]any, error) {
	keys, err := m.state.Keys(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(k, memoPrefix) {
			names = append(names, strings.TrimPrefix(k, memoPrefix))
		}
	}
	return map[string]any{"memos": names}, nil
}

func (m *MemosModule) handleDelete(ctx context.Context, args map[string]any) (map[string]any, error) {
	name := stringArg(args, "name")
	if name == "" {
		return nil, route.Errorf(route.KindValidation, "name is required")
	}
	if err := m.state.Delete(ctx, memoPrefix+name); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": name}, nil
}
