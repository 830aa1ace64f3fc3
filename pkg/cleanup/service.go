// Package cleanup enforces data retention. It runs as the
// retention-sweep scheduled job: every butler sweeps its own terminal
// sessions; the Switchboard additionally sweeps the shared inbox,
// ingress and heartbeat tables it owns.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/connectorheartbeat"
	"github.com/homekeep/butlerd/ent/ingressitem"
	"github.com/homekeep/butlerd/ent/messageinbox"
	"github.com/homekeep/butlerd/ent/session"
	"github.com/homekeep/butlerd/pkg/config"
)

// Service deletes rows past their retention window. All sweeps are
// idempotent.
type Service struct {
	client *ent.Client
	cfg    *config.RetentionConfig
	butler *config.ButlerConfig
}

// NewService creates the retention service for one butler daemon.
func NewService(client *ent.Client, cfg *config.RetentionConfig, butler *config.ButlerConfig) *Service {
	return &Service{client: client, cfg: cfg, butler: butler}
}

// Run is the retention-sweep job entry point.
func (s *Service) Run(ctx context.Context, _ map[string]any) error {
	deleted, err := s.sweepSessions(ctx)
	if err != nil {
		return fmt.Errorf("sweep sessions: %w", err)
	}
	total := deleted

	if s.butler.IsSwitchboard() {
		n, err := s.sweepInbox(ctx)
		if err != nil {
			return fmt.Errorf("sweep inbox: %w", err)
		}
		total += n

		n, err = s.sweepIngress(ctx)
		if err != nil {
			return fmt.Errorf("sweep ingress: %w", err)
		}
		total += n

		n, err = s.sweepHeartbeats(ctx)
		if err != nil {
			return fmt.Errorf("sweep heartbeats: %w", err)
		}
		total += n
	}

	if total > 0 {
		slog.Info("Retention sweep complete", "butler", s.butler.Name, "deleted", total)
	}
	return nil
}

// sweepSessions removes terminal sessions past the retention window.
// Running sessions are never touched, whatever their age.
func (s *Service) sweepSessions(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.SessionRetention)
	return s.client.Session.Delete().
		Where(
			session.ButlerNameEQ(s.butler.Name),
			session.StatusNEQ(session.StatusRunning),
			session.CreatedAtLT(cutoff),
		).
		Exec(ctx)
}

// sweepInbox removes terminal inbox rows past the retention window.
// Non-terminal rows stay so a stuck message remains diagnosable.
func (s *Service) sweepInbox(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.InboxRetention)
	return s.client.MessageInbox.Delete().
		Where(
			messageinbox.StatusIn(messageinbox.StatusRouted, messageinbox.StatusFailed),
			messageinbox.ObservedAtLT(cutoff),
		).
		Exec(ctx)
}

func (s *Service) sweepIngress(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.InboxRetention)
	return s.client.IngressItem.Delete().
		Where(
			ingressitem.StatusIn(ingressitem.StatusDone, ingressitem.StatusFailed),
			ingressitem.EnqueuedAtLT(cutoff),
		).
		Exec(ctx)
}

// sweepHeartbeats removes raw heartbeat rows already folded into the
// hourly stats rollup.
func (s *Service) sweepHeartbeats(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.HeartbeatRetention)
	return s.client.ConnectorHeartbeat.Delete().
		Where(connectorheartbeat.ReceivedAtLT(cutoff)).
		Exec(ctx)
}
