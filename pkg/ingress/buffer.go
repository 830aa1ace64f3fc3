package ingress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/ingressitem"
	"github.com/homekeep/butlerd/pkg/config"
)

// Buffer is the two-level ingress structure: a bounded in-memory tiered
// queue backed by the durable ingress_buffer table.
type Buffer struct {
	client *ent.Client
	cfg    *config.IngressConfig
	queue  *memQueue
}

// NewBuffer creates the buffer. The Switchboard daemon owns exactly one.
func NewBuffer(client *ent.Client, cfg *config.IngressConfig) *Buffer {
	return &Buffer{
		client: client,
		cfg:    cfg,
		queue:  newMemQueue(cfg.QueueCapacity),
	}
}

// Enqueue persists a durable row and pushes it onto the in-memory queue.
// When the queue is full the row stays durable only (backpressure); the
// scanner re-enqueues it as workers free slots. Enqueue never blocks.
func (b *Buffer) Enqueue(ctx context.Context, requestID, tier string) error {
	item := Item{
		IngressID:  uuid.NewString(),
		RequestID:  requestID,
		Tier:       tier,
		EnqueuedAt: time.Now(),
	}

	err := b.client.IngressItem.Create().
		SetID(item.IngressID).
		SetRequestID(requestID).
		SetPriorityTier(ingressitem.PriorityTier(item.Tier)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("persist ingress item: %w", err)
	}

	if err := b.queue.TryPush(item); err != nil {
		slog.Warn("Ingress queue full, item deferred to scanner",
			"request_id", requestID, "tier", tier)
		// Durable row exists; success from the producer's standpoint.
	}
	return nil
}

// lease claims the durable row for a worker with a fresh lease deadline.
// Returns false when another worker holds the row or it is terminal.
func (b *Buffer) lease(ctx context.Context, ingressID, workerID string) (bool, error) {
	n, err := b.client.IngressItem.Update().
		Where(
			ingressitem.IDEQ(ingressID),
			ingressitem.StatusEQ(ingressitem.StatusPending),
		).
		SetStatus(ingressitem.StatusLeased).
		SetLeasedBy(workerID).
		SetLeasedUntil(time.Now().Add(b.cfg.LeaseDuration)).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("lease ingress item: %w", err)
	}
	return n == 1, nil
}

// extendLease pushes the lease deadline out while processing continues.
func (b *Buffer) extendLease(ctx context.Context, ingressID string) error {
	return b.client.IngressItem.Update().
		Where(
			ingressitem.IDEQ(ingressID),
			ingressitem.StatusEQ(ingressitem.StatusLeased),
		).
		SetLeasedUntil(time.Now().Add(b.cfg.LeaseDuration)).
		Exec(ctx)
}

// complete marks the row terminal (done) and drops the lease.
func (b *Buffer) complete(ctx context.Context, ingressID string) error {
	return b.client.IngressItem.UpdateOneID(ingressID).
		SetStatus(ingressitem.StatusDone).
		ClearLeasedBy().
		ClearLeasedUntil().
		Exec(ctx)
}

// release returns a failed row to pending (retryable) or marks it failed
// once attempts are exhausted.
func (b *Buffer) release(ctx context.Context, ingressID string, attempts int) error {
	status := ingressitem.StatusPending
	if attempts >= b.cfg.MaxAttempts {
		status = ingressitem.StatusFailed
	}
	return b.client.IngressItem.UpdateOneID(ingressID).
		SetStatus(status).
		ClearLeasedBy().
		ClearLeasedUntil().
		Exec(ctx)
}

// pendingCount reports durable rows not yet terminal, for health.
func (b *Buffer) pendingCount(ctx context.Context) (int, error) {
	return b.client.IngressItem.Query().
		Where(ingressitem.StatusIn(ingressitem.StatusPending, ingressitem.StatusLeased)).
		Count(ctx)
}
