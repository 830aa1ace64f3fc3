package spawner

import (
	"context"
	"sync"
	"sync/atomic"
)

// serialLock is the per-butler dispatch lock. Sessions for one butler
// never overlap; callers queue up to maxQueued deep, nested trigger
// calls fail fast instead of queueing.
type serialLock struct {
	ch        chan struct{}
	maxQueued int
	waiters   atomic.Int32
}

func newSerialLock(maxQueued int) *serialLock {
	l := &serialLock{
		ch:        make(chan struct{}, 1),
		maxQueued: maxQueued,
	}
	l.ch <- struct{}{}
	return l
}

// tryAcquire takes the lock without waiting.
func (l *serialLock) tryAcquire() bool {
	select {
	case <-l.ch:
		return true
	default:
		return false
	}
}

// acquire waits for the lock, bounded by the queue limit and the
// context. Returns false when the queue is already full.
func (l *serialLock) acquire(ctx context.Context) (bool, error) {
	if l.tryAcquire() {
		return true, nil
	}
	if int(l.waiters.Add(1)) > l.maxQueued {
		l.waiters.Add(-1)
		return false, nil
	}
	defer l.waiters.Add(-1)

	select {
	case <-l.ch:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (l *serialLock) release() {
	l.ch <- struct{}{}
}

// lockTable hands out one serialLock per butler.
type lockTable struct {
	mu        sync.Mutex
	locks     map[string]*serialLock
	maxQueued int
}

func newLockTable(maxQueued int) *lockTable {
	return &lockTable{
		locks:     make(map[string]*serialLock),
		maxQueued: maxQueued,
	}
}

func (t *lockTable) get(butler string) *serialLock {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[butler]
	if !ok {
		l = newSerialLock(t.maxQueued)
		t.locks[butler] = l
	}
	return l
}
