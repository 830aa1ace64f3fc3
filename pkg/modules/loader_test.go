package modules

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/config"
)

type stubModule struct {
	name       string
	deps       []string
	startErr   error
	started    *[]string
	stopped    *[]string
	tools      []Tool
	credKeys   []string
}

func (m *stubModule) Name() string                { return m.name }
func (m *stubModule) Dependencies() []string      { return m.deps }
func (m *stubModule) Migrations() (fs.FS, string) { return nil, "" }
func (m *stubModule) CredentialKeys() []string    { return m.credKeys }
func (m *stubModule) Tools() []Tool               { return m.tools }

func (m *stubModule) Startup(context.Context, *Deps) error {
	if m.startErr != nil {
		return m.startErr
	}
	if m.started != nil {
		*m.started = append(*m.started, m.name)
	}
	return nil
}

func (m *stubModule) Shutdown(context.Context) error {
	if m.stopped != nil {
		*m.stopped = append(*m.stopped, m.name)
	}
	return nil
}

func testDeps(enabled ...string) *Deps {
	return &Deps{Butler: &config.ButlerConfig{Name: "health", Modules: enabled}}
}

func TestRegistryStart(t *testing.T) {
	t.Run("starts in dependency order", func(t *testing.T) {
		var started []string
		r := NewRegistry()
		r.Register(&stubModule{name: "c", deps: []string{"b"}, started: &started})
		r.Register(&stubModule{name: "a", started: &started})
		r.Register(&stubModule{name: "b", deps: []string{"a"}, started: &started})

		set, err := r.Start(context.Background(), testDeps("c", "a", "b"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, started)
		assert.Equal(t, StatusRunning, set.Status("c"))
	})

	t.Run("failure cascades to dependents", func(t *testing.T) {
		var started []string
		r := NewRegistry()
		r.Register(&stubModule{name: "base", startErr: errors.New("boom")})
		r.Register(&stubModule{name: "mid", deps: []string{"base"}, started: &started})
		r.Register(&stubModule{name: "leaf", deps: []string{"mid"}, started: &started})
		r.Register(&stubModule{name: "other", started: &started})

		set, err := r.Start(context.Background(), testDeps("base", "mid", "leaf", "other"))
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, set.Status("base"))
		assert.Equal(t, StatusCascadeFailed, set.Status("mid"))
		assert.Equal(t, StatusCascadeFailed, set.Status("leaf"))
		assert.Equal(t, StatusRunning, set.Status("other"))
		assert.Equal(t, []string{"other"}, started)
	})

	t.Run("unknown module is fatal", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Start(context.Background(), testDeps("ghost"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown module")
	})

	t.Run("dependency not enabled is fatal", func(t *testing.T) {
		r := NewRegistry()
		r.Register(&stubModule{name: "a"})
		r.Register(&stubModule{name: "b", deps: []string{"a"}})
		_, err := r.Start(context.Background(), testDeps("b"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not enabled")
	})

	t.Run("cycle is fatal", func(t *testing.T) {
		r := NewRegistry()
		r.Register(&stubModule{name: "a", deps: []string{"b"}})
		r.Register(&stubModule{name: "b", deps: []string{"a"}})
		_, err := r.Start(context.Background(), testDeps("a", "b"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		r := NewRegistry()
		r.Register(&stubModule{name: "a"})
		assert.Panics(t, func() { r.Register(&stubModule{name: "a"}) })
	})
}

func TestSetShutdown(t *testing.T) {
	var started, stopped []string
	r := NewRegistry()
	r.Register(&stubModule{name: "a", started: &started, stopped: &stopped})
	r.Register(&stubModule{name: "b", deps: []string{"a"}, started: &started, stopped: &stopped})

	set, err := r.Start(context.Background(), testDeps("a", "b"))
	require.NoError(t, err)

	set.Shutdown(context.Background())
	assert.Equal(t, []string{"a", "b"}, started)
	assert.Equal(t, []string{"b", "a"}, stopped)
}

func TestFilterEgress(t *testing.T) {
	tools := []Tool{
		{Def: &mcpsdk.Tool{Name: "channel.send"}, Egress: true},
		{Def: &mcpsdk.Tool{Name: "memo.save"}},
	}

	messenger := &config.ButlerConfig{Name: config.ButlerMessenger}
	health := &config.ButlerConfig{Name: "health"}

	assert.Len(t, FilterEgress(tools, messenger), 2)

	kept := FilterEgress(tools, health)
	require.Len(t, kept, 1)
	assert.Equal(t, "memo.save", kept[0].Def.Name)
}

func TestSetCredentialKeys(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubModule{name: "a", credKeys: []string{"API_KEY_A"}})
	r.Register(&stubModule{name: "b"})

	set, err := r.Start(context.Background(), testDeps("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"a": {"API_KEY_A"}}, set.CredentialKeys())
}
