package modules

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/notify"
	"github.com/homekeep/butlerd/pkg/route"
)

type staticResolver map[string]string

func (r staticResolver) Resolve(_ context.Context, _, key string) (string, error) {
	url, ok := r[key]
	if !ok {
		return "", assert.AnError
	}
	return url, nil
}

func TestWebhookKey(t *testing.T) {
	assert.Equal(t, "CHANNEL_WEBHOOK_TELEGRAM", webhookKey("telegram"))
	assert.Equal(t, "CHANNEL_WEBHOOK_SLACK", webhookKey("slack"))
}

func TestChannelsSend(t *testing.T) {
	msg := &notify.Notification{Channel: "telegram", Target: "chat-1", Text: "hi"}

	t.Run("posts to the channel webhook", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		m := NewChannelsModule()
		m.butler = "messenger"
		m.creds = staticResolver{"CHANNEL_WEBHOOK_TELEGRAM": srv.URL + "/egress"}

		require.NoError(t, m.Send(context.Background(), msg))
		assert.Equal(t, "/egress", gotPath)
	})

	t.Run("5xx maps to target_unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		m := NewChannelsModule()
		m.creds = staticResolver{"CHANNEL_WEBHOOK_TELEGRAM": srv.URL}

		err := m.Send(context.Background(), msg)
		require.Error(t, err)
		assert.Equal(t, route.KindTargetUnavailable, route.KindOf(err))
	})

	t.Run("4xx maps to validation_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		m := NewChannelsModule()
		m.creds = staticResolver{"CHANNEL_WEBHOOK_TELEGRAM": srv.URL}

		err := m.Send(context.Background(), msg)
		require.Error(t, err)
		assert.Equal(t, route.KindValidation, route.KindOf(err))
	})

	t.Run("unconfigured channel maps to validation_error", func(t *testing.T) {
		m := NewChannelsModule()
		m.creds = staticResolver{}

		err := m.Send(context.Background(), msg)
		require.Error(t, err)
		assert.Equal(t, route.KindValidation, route.KindOf(err))
	})
}

func TestChannelsModuleShape(t *testing.T) {
	m := NewChannelsModule()
	assert.Equal(t, "channels", m.Name())
	assert.Empty(t, m.Dependencies())

	tools := m.Tools()
	assert.Len(t, tools, 2)
	for _, tool := range tools {
		assert.True(t, tool.Egress, "%s must be egress-owned", tool.Def.Name)
	}
}
