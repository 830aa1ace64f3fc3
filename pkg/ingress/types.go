// Package ingress implements the durable bounded ingress buffer: a tiered
// in-memory queue over a durable table, worker goroutines that lease and
// process items, and a cold-path scanner that recovers work lost to crashes
// or backpressure.
package ingress

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for buffer operations.
var (
	// ErrQueueFull indicates the in-memory queue is at capacity; the item
	// stays durable in the DB and the scanner picks it up later.
	ErrQueueFull = errors.New("ingress queue full")

	// ErrNoItemsAvailable indicates no queued items are ready.
	ErrNoItemsAvailable = errors.New("no items available")
)

// Tiers in dispatch-priority order.
var tierOrder = []string{"high_priority", "interactive", "default"}

// Item is one queued unit of work referencing a message_inbox row.
type Item struct {
	IngressID string
	RequestID string
	Tier      string
	EnqueuedAt time.Time
}

// Processor runs the classify→dispatch pipeline for one accepted message.
// A nil error marks the item done; errors are retried up to max_attempts.
type Processor interface {
	Process(ctx context.Context, requestID string) error
}

// WorkerHealth reports one worker's state for the health surface.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // idle | working
	CurrentRequest string    `json:"current_request,omitempty"`
	ItemsProcessed int       `json:"items_processed"`
	LastActivity   time.Time `json:"last_activity"`
}

// BufferHealth reports the buffer's state for the health surface.
type BufferHealth struct {
	QueueDepth      int            `json:"queue_depth"`
	QueueCapacity   int            `json:"queue_capacity"`
	PendingDurable  int            `json:"pending_durable"`
	Workers         []WorkerHealth `json:"workers"`
	LastScan        time.Time      `json:"last_scan"`
	ScannerRequeued int            `json:"scanner_requeued"`
}
