package ingress

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/homekeep/butlerd/ent/ingressitem"
)

// Worker drains the in-memory queue: lease, process, mark terminal.
type Worker struct {
	id        string
	buffer    *Buffer
	processor Processor
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         string
	currentRequest string
	itemsProcessed int
	lastActivity   time.Time
}

// NewWorker creates a queue worker.
func NewWorker(id string, buffer *Buffer, processor Processor) *Worker {
	return &Worker{
		id:           id,
		buffer:       buffer,
		processor:    processor,
		stopCh:       make(chan struct{}),
		status:       "idle",
		lastActivity: time.Now(),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the current item to finish.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the worker's health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentRequest: w.currentRequest,
		ItemsProcessed: w.itemsProcessed,
		LastActivity:   w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Ingress worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Ingress worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, ingress worker shutting down")
			return
		default:
		}

		item, ok := w.buffer.queue.TryPop()
		if !ok {
			// Block until a push or shutdown; re-check stop conditions.
			select {
			case <-w.buffer.queue.Notify():
			case <-w.stopCh:
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
			continue
		}

		if err := w.process(ctx, item); err != nil {
			log.Error("Error processing ingress item",
				"request_id", item.RequestID, "error", err)
		}
	}
}

func (w *Worker) process(ctx context.Context, item Item) error {
	log := slog.With("worker_id", w.id, "request_id", item.RequestID)

	claimed, err := w.buffer.lease(ctx, item.IngressID, w.id)
	if err != nil {
		return err
	}
	if !claimed {
		// Another worker or the scanner already owns the row.
		return nil
	}

	w.setStatus("working", item.RequestID)
	defer w.setStatus("idle", "")

	procCtx, cancel := context.WithTimeout(ctx, w.buffer.cfg.DispatchTimeout)
	defer cancel()

	// Lease extension heartbeat while the pipeline runs.
	hbCtx, cancelHB := context.WithCancel(procCtx)
	defer cancelHB()
	go w.runLeaseHeartbeat(hbCtx, item.IngressID)

	procErr := w.processor.Process(procCtx, item.RequestID)
	cancelHB()

	// Terminal writes use a background context; procCtx may be cancelled.
	finishCtx, cancelFinish := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelFinish()

	if procErr != nil {
		log.Warn("Ingress item failed", "error", procErr)
		row, qerr := w.buffer.client.IngressItem.Query().
			Where(ingressitem.IDEQ(item.IngressID)).
			Only(finishCtx)
		attempts := w.buffer.cfg.MaxAttempts
		if qerr == nil {
			attempts = row.Attempts
		}
		if rerr := w.buffer.release(finishCtx, item.IngressID, attempts); rerr != nil {
			return fmt.Errorf("release after failure: %w", rerr)
		}
		return nil
	}

	if err := w.buffer.complete(finishCtx, item.IngressID); err != nil {
		return fmt.Errorf("mark item done: %w", err)
	}

	w.mu.Lock()
	w.itemsProcessed++
	w.mu.Unlock()

	log.Info("Ingress item processed")
	return nil
}

// runLeaseHeartbeat extends the durable lease at half the lease duration.
func (w *Worker) runLeaseHeartbeat(ctx context.Context, ingressID string) {
	interval := w.buffer.cfg.LeaseDuration / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.buffer.extendLease(ctx, ingressID); err != nil {
				slog.Warn("Lease extension failed",
					"ingress_id", ingressID, "error", err)
			}
		}
	}
}

func (w *Worker) setStatus(status, requestID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRequest = requestID
	w.lastActivity = time.Now()
}
