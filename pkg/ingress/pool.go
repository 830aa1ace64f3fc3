package ingress

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Pool manages the ingress workers and the cold-path scanner.
// Only the Switchboard daemon runs one.
type Pool struct {
	buffer    *Buffer
	processor Processor
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool
	scanner   scannerState
}

// NewPool creates the worker pool over a buffer.
func NewPool(buffer *Buffer, processor Processor) *Pool {
	return &Pool{
		buffer:    buffer,
		processor: processor,
		stopCh:    make(chan struct{}),
	}
}

// Buffer returns the pool's buffer (the ingest service enqueues into it).
func (p *Pool) Buffer() *Buffer { return p.buffer }

// Start spawns worker goroutines and the scanner.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Ingress pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	cfg := p.buffer.cfg
	slog.Info("Starting ingress pool",
		"worker_count", cfg.WorkerCount,
		"queue_capacity", cfg.QueueCapacity)

	for i := 0; i < cfg.WorkerCount; i++ {
		worker := NewWorker(fmt.Sprintf("ingress-worker-%d", i), p.buffer, p.processor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runScanner(ctx)
	}()

	slog.Info("Ingress pool started")
	return nil
}

// Stop signals workers and the scanner to stop and waits for them.
// Workers finish their current items (graceful shutdown).
func (p *Pool) Stop() {
	slog.Info("Stopping ingress pool")
	for _, worker := range p.workers {
		worker.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Ingress pool stopped")
}

// Health returns the buffer/worker health snapshot.
func (p *Pool) Health(ctx context.Context) *BufferHealth {
	pending, err := p.buffer.pendingCount(ctx)
	if err != nil {
		slog.Error("Failed to query pending ingress rows", "error", err)
		pending = -1
	}

	workers := make([]WorkerHealth, len(p.workers))
	for i, w := range p.workers {
		workers[i] = w.Health()
	}

	p.scanner.mu.Lock()
	lastScan := p.scanner.lastScan
	requeued := p.scanner.requeued
	p.scanner.mu.Unlock()

	return &BufferHealth{
		QueueDepth:      p.buffer.queue.Len(),
		QueueCapacity:   p.buffer.cfg.QueueCapacity,
		PendingDurable:  pending,
		Workers:         workers,
		LastScan:        lastScan,
		ScannerRequeued: requeued,
	}
}
