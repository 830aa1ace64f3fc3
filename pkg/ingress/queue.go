package ingress

import (
	"sync"
)

// memQueue is the bounded in-memory priority queue. Three FIFO tiers share
// one capacity; higher tiers are always drained first. A push signals one
// blocked popper via the notify channel.
type memQueue struct {
	mu       sync.Mutex
	tiers    map[string][]Item
	size     int
	capacity int
	notify   chan struct{}
}

func newMemQueue(capacity int) *memQueue {
	return &memQueue{
		tiers:    make(map[string][]Item, len(tierOrder)),
		capacity: capacity,
		notify:   make(chan struct{}, 1),
	}
}

// TryPush enqueues an item, returning ErrQueueFull at capacity.
func (q *memQueue) TryPush(item Item) error {
	q.mu.Lock()
	if q.size >= q.capacity {
		q.mu.Unlock()
		return ErrQueueFull
	}
	tier := item.Tier
	if !validTier(tier) {
		tier = "default"
		item.Tier = tier
	}
	q.tiers[tier] = append(q.tiers[tier], item)
	q.size++
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return nil
}

// TryPop dequeues the highest-priority item, FIFO within a tier.
func (q *memQueue) TryPop() (Item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, tier := range tierOrder {
		items := q.tiers[tier]
		if len(items) == 0 {
			continue
		}
		item := items[0]
		q.tiers[tier] = items[1:]
		q.size--
		return item, true
	}
	return Item{}, false
}

// Len returns the current depth across all tiers.
func (q *memQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Notify returns the wakeup channel poppers select on.
func (q *memQueue) Notify() <-chan struct{} { return q.notify }

func validTier(tier string) bool {
	for _, t := range tierOrder {
		if t == tier {
			return true
		}
	}
	return false
}
