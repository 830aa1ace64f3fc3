package ingress

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/ingressitem"
)

// scannerState tracks cold-path recovery metrics (thread-safe).
type scannerState struct {
	mu       sync.Mutex
	lastScan time.Time
	requeued int
}

// runScanner periodically recovers cold rows: durable items that were never
// enqueued (backpressure), or whose worker died mid-lease. Re-enqueueing is
// idempotent since the lease CAS means at most one worker wins each row.
func (p *Pool) runScanner(ctx context.Context) {
	ticker := time.NewTicker(p.buffer.cfg.ScannerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.scanOnce(ctx); err != nil {
				slog.Error("Ingress scan failed", "error", err)
			}
		}
	}
}

// scanOnce re-enqueues up to scanner_batch_size recoverable rows.
func (p *Pool) scanOnce(ctx context.Context) error {
	now := time.Now()
	grace := now.Add(-p.buffer.cfg.ScannerGrace)

	// Expired leases go back to pending first so the pickup query below
	// sees them. Worker crash between lease and terminal write lands here.
	n, err := p.buffer.client.IngressItem.Update().
		Where(
			ingressitem.StatusEQ(ingressitem.StatusLeased),
			ingressitem.LeasedUntilLT(now),
		).
		SetStatus(ingressitem.StatusPending).
		ClearLeasedBy().
		ClearLeasedUntil().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reset expired leases: %w", err)
	}
	if n > 0 {
		slog.Warn("Recovered expired ingress leases", "count", n)
	}

	rows, err := p.buffer.client.IngressItem.Query().
		Where(
			ingressitem.StatusEQ(ingressitem.StatusPending),
			ingressitem.EnqueuedAtLT(grace),
		).
		Order(ent.Asc(ingressitem.FieldEnqueuedAt)).
		Limit(p.buffer.cfg.ScannerBatchSize).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query cold ingress rows: %w", err)
	}

	requeued := 0
	for _, row := range rows {
		item := Item{
			IngressID:  row.ID,
			RequestID:  row.RequestID,
			Tier:       string(row.PriorityTier),
			EnqueuedAt: row.EnqueuedAt,
		}
		if err := p.buffer.queue.TryPush(item); err != nil {
			// Queue is full again; stop and let the next scan continue.
			break
		}
		requeued++
	}

	p.scanner.mu.Lock()
	p.scanner.lastScan = now
	p.scanner.requeued += requeued
	p.scanner.mu.Unlock()

	if requeued > 0 {
		slog.Info("Ingress scanner re-enqueued cold rows", "count", requeued)
	}
	return nil
}
