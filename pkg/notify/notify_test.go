package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/route"
)

type fakeCaller struct {
	butler string
	tool   string
	args   map[string]any
	err    error
}

func (f *fakeCaller) Call(_ context.Context, butler, tool string, args map[string]any) (map[string]any, error) {
	f.butler, f.tool, f.args = butler, tool, args
	return map[string]any{"ok": true}, f.err
}

type fakeEgress struct {
	sent []*Notification
	err  error
}

func (f *fakeEgress) Send(_ context.Context, n *Notification) error {
	f.sent = append(f.sent, n)
	return f.err
}

func msg() *Notification {
	return &Notification{Channel: "telegram", Target: "chat-42", Text: "dinner is ready"}
}

func TestNotify(t *testing.T) {
	health := &config.ButlerConfig{Name: "health"}
	messenger := &config.ButlerConfig{Name: config.ButlerMessenger}

	t.Run("non-messenger routes to messenger", func(t *testing.T) {
		caller := &fakeCaller{}
		n := New(health, caller, nil)

		resp, err := n.Notify(context.Background(), msg())
		require.NoError(t, err)
		assert.True(t, resp.Delivered)
		assert.Equal(t, config.ButlerMessenger, caller.butler)
		assert.Equal(t, "notify", caller.tool)
		assert.Equal(t, "chat-42", caller.args["target"])
	})

	t.Run("messenger delivers through egress", func(t *testing.T) {
		egress := &fakeEgress{}
		n := New(messenger, nil, egress)

		resp, err := n.Notify(context.Background(), msg())
		require.NoError(t, err)
		assert.True(t, resp.Delivered)
		require.Len(t, egress.sent, 1)
	})

	t.Run("route failure surfaces kind and retryable flag", func(t *testing.T) {
		caller := &fakeCaller{err: route.Errorf(route.KindTargetUnavailable, "messenger offline")}
		n := New(health, caller, nil)

		resp, err := n.Notify(context.Background(), msg())
		require.NoError(t, err)
		assert.False(t, resp.Delivered)
		assert.Equal(t, route.KindTargetUnavailable, resp.ErrorKind)
		assert.True(t, resp.Retryable)
		assert.Contains(t, resp.Detail, "offline")
	})

	t.Run("quarantined target is not retryable", func(t *testing.T) {
		caller := &fakeCaller{err: route.Errorf(route.KindTargetQuarantined, "quarantined")}
		n := New(health, caller, nil)

		resp, err := n.Notify(context.Background(), msg())
		require.NoError(t, err)
		assert.False(t, resp.Delivered)
		assert.Equal(t, route.KindTargetQuarantined, resp.ErrorKind)
		assert.False(t, resp.Retryable)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		n := New(health, &fakeCaller{}, nil)
		_, err := n.Notify(context.Background(), &Notification{Channel: "telegram"})
		require.Error(t, err)
		assert.Equal(t, route.KindValidation, route.KindOf(err))
	})
}

type fakeSched struct {
	name   string
	prompt string
	at     time.Time
}

func (f *fakeSched) ScheduleOneShot(_ context.Context, name, prompt string, at time.Time) (string, error) {
	f.name, f.prompt, f.at = name, prompt, at
	return "task-1", nil
}

func TestRemind(t *testing.T) {
	sched := &fakeSched{}
	at := time.Now().Add(time.Hour)

	id, err := Remind(context.Background(), sched, &Reminder{Text: "call Sarah", At: at})
	require.NoError(t, err)
	assert.Equal(t, "task-1", id)
	assert.Equal(t, "call Sarah", sched.prompt)
	assert.Equal(t, at, sched.at)

	_, err = Remind(context.Background(), sched, &Reminder{At: at})
	require.Error(t, err)
	assert.Equal(t, route.KindValidation, route.KindOf(err))
}
