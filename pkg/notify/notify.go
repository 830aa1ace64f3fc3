// Package notify sends user-facing messages out through the Messenger
// butler, the sole owner of channel egress. Non-messenger butlers route
// notify calls to the Messenger; the Messenger hands them to its egress
// module for connector delivery.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/route"
)

// Notification is one outbound message.
type Notification struct {
	Channel      string `json:"channel"`
	Target       string `json:"target"`
	Text         string `json:"text"`
	ThreadTarget string `json:"thread_target,omitempty"`
}

// Response is the caller-visible delivery outcome. Failures carry the
// canonical error kind and whether a retry can help.
type Response struct {
	Delivered bool       `json:"delivered"`
	ErrorKind route.Kind `json:"error_kind,omitempty"`
	Retryable bool       `json:"retryable,omitempty"`
	Detail    string     `json:"detail,omitempty"`
}

// Caller routes a tool call to another butler.
type Caller interface {
	Call(ctx context.Context, butler, tool string, args map[string]any) (map[string]any, error)
}

// Egress delivers a message through a connector transport. Implemented
// by the Messenger's egress module.
type Egress interface {
	Send(ctx context.Context, n *Notification) error
}

// Notifier implements the notify tool for one butler.
type Notifier struct {
	self   *config.ButlerConfig
	caller Caller
	egress Egress
}

// New creates the notifier. egress is required on the Messenger and
// ignored elsewhere; caller is required everywhere else.
func New(self *config.ButlerConfig, caller Caller, egress Egress) *Notifier {
	if self == nil {
		panic("notify: nil butler config")
	}
	return &Notifier{self: self, caller: caller, egress: egress}
}

// Notify delivers one notification. Local egress on the Messenger,
// routed to the Messenger from anywhere else. The returned Response is
// always usable; a non-nil error is reserved for validation failures.
func (n *Notifier) Notify(ctx context.Context, msg *Notification) (*Response, error) {
	if msg.Channel == "" || msg.Target == "" || msg.Text == "" {
		return nil, route.Errorf(route.KindValidation,
			"notify requires channel, target and text")
	}

	if n.self.IsMessenger() {
		return n.deliver(ctx, msg), nil
	}

	_, err := n.caller.Call(ctx, config.ButlerMessenger, "notify", map[string]any{
		"channel":       msg.Channel,
		"target":        msg.Target,
		"text":          msg.Text,
		"thread_target": msg.ThreadTarget,
	})
	if err != nil {
		return failure(err), nil
	}
	return &Response{Delivered: true}, nil
}

func (n *Notifier) deliver(ctx context.Context, msg *Notification) *Response {
	if n.egress == nil {
		return &Response{
			ErrorKind: route.KindInternal,
			Retryable: route.KindInternal.Retryable(),
			Detail:    "no egress configured",
		}
	}
	if err := n.egress.Send(ctx, msg); err != nil {
		slog.Warn("Egress delivery failed",
			"channel", msg.Channel, "target", msg.Target, "error", err)
		return failure(err)
	}
	slog.Info("Notification delivered",
		"channel", msg.Channel, "target", msg.Target)
	return &Response{Delivered: true}
}

func failure(err error) *Response {
	kind := route.KindOf(err)
	return &Response{
		ErrorKind: kind,
		Retryable: kind.Retryable(),
		Detail:    err.Error(),
	}
}

// Remind schedules a one-shot prompt for this butler at the given time.
// The scheduler fires it through the spawner like any prompt task.
type Reminder struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// OneShotScheduler is the scheduler surface the remind tool needs.
type OneShotScheduler interface {
	ScheduleOneShot(ctx context.Context, name, prompt string, at time.Time) (string, error)
}

// Remind persists a reminder as a one-shot scheduled task and returns
// its task id.
func Remind(ctx context.Context, sched OneShotScheduler, r *Reminder) (string, error) {
	if r.Text == "" {
		return "", route.Errorf(route.KindValidation, "remind requires text")
	}
	id, err := sched.ScheduleOneShot(ctx, "", r.Text, r.At)
	if err != nil {
		return "", fmt.Errorf("schedule reminder: %w", err)
	}
	return id, nil
}
