package modules

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/homekeep/butlerd/pkg/notify"
	"github.com/homekeep/butlerd/pkg/route"
)

// webhookResolver is the credential store surface the module needs.
type webhookResolver interface {
	Resolve(ctx context.Context, butler, key string) (string, error)
}

// ChannelsModule is the Messenger's egress module: it delivers outbound
// messages by posting to per-channel connector webhooks. The webhook URL
// for a channel comes from the credential store under
// CHANNEL_WEBHOOK_<CHANNEL>.
type ChannelsModule struct {
	butler string
	creds  webhookResolver
	client *http.Client
}

// NewChannelsModule creates the egress module.
func NewChannelsModule() *ChannelsModule {
	return &ChannelsModule{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *ChannelsModule) Name() string            { return "channels" }
func (m *ChannelsModule) Dependencies() []string  { return nil }
func (m *ChannelsModule) Migrations() (fs.FS, string) { return nil, "" }
func (m *ChannelsModule) CredentialKeys() []string { return nil }

func (m *ChannelsModule) Startup(_ context.Context, deps *Deps) error {
	m.butler = deps.Butler.Name
	m.creds = deps.Credentials
	return nil
}

func (m *ChannelsModule) Shutdown(context.Context) error { return nil }

// Send implements notify.Egress.
func (m *ChannelsModule) Send(ctx context.Context, n *notify.Notification) error {
	url, err := m.creds.Resolve(ctx, m.butler, webhookKey(n.Channel))
	if err != nil {
		return route.Errorf(route.KindValidation,
			"no egress webhook configured for channel %q", n.Channel)
	}

	body, err := json.Marshal(map[string]string{
		"target":        n.Target,
		"text":          n.Text,
		"thread_target": n.ThreadTarget,
	})
	if err != nil {
		return fmt.Errorf("encode egress payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build egress request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return route.NewError(route.KindTargetUnavailable, n.Channel, "channel.send", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return route.Errorf(route.KindTargetUnavailable,
			"connector for %q returned %d", n.Channel, resp.StatusCode)
	case resp.StatusCode >= 400:
		return route.Errorf(route.KindValidation,
			"connector for %q rejected message with %d", n.Channel, resp.StatusCode)
	}
	return nil
}

func webhookKey(channel string) string {
	return "CHANNEL_WEBHOOK_" + strings.ToUpper(channel)
}

var sendSchema = mustSchema(`{
	"type": "object",
	"properties": {
		"channel": {"type": "string"},
		"target": {"type": "string"},
		"text": {"type": "string"},
		"thread_target": {"type": "string"}
	},
	"required": ["channel", "target", "text"]
}`)

// Tools contributes channel.send and channel.reply. Both are egress
// tools; the loader strips them from every butler except the Messenger.
func (m *ChannelsModule) Tools() []Tool {
	return []Tool{
		{
			Def: &mcpsdk.Tool{
				Name:        "channel.send",
				Description: "Send a message out through a connected channel",
				InputSchema: sendSchema,
			},
			Func:   m.handleSend,
			Egress: true,
		},
		{
			Def: &mcpsdk.Tool{
				Name:        "channel.reply",
				Description: "Reply within an existing channel thread",
				InputSchema: sendSchema,
			},
			Func:   m.handleSend,
			Egress: true,
		},
	}
}

func (m *ChannelsModule) handleSend(ctx context.Context, args map[string]any) (map[string]any, error) {
	n := &notify.Notification{
		Channel:      stringArg(args, "channel"),
		Target:       stringArg(args, "target"),
		Text:         stringArg(args, "text"),
		ThreadTarget: stringArg(args, "thread_target"),
	}
	if n.Channel == "" || n.Target == "" || n.Text == "" {
		return nil, route.Errorf(route.KindValidation,
			"channel, target and text are required")
	}
	if err := m.Send(ctx, n); err != nil {
		return nil, err
	}
	return map[string]any{"delivered": true}, nil
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
