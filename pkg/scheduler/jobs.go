package scheduler

import (
	"context"
	"fmt"
	"sync"
)

// JobFunc is a native handler for dispatch_mode=job tasks. No LLM
// invocation, no cost.
type JobFunc func(ctx context.Context, args map[string]any) error

// JobRegistry maps job names to handlers. Registration happens during
// daemon startup, before the scheduler starts ticking.
type JobRegistry struct {
	mu   sync.RWMutex
	jobs map[string]JobFunc
}

// NewJobRegistry creates an empty registry.
func NewJobRegistry() *JobRegistry {
	return &JobRegistry{jobs: make(map[string]JobFunc)}
}

// Register adds a handler. Registering a duplicate name panics; job
// names are static wiring, not runtime input.
func (r *JobRegistry) Register(name string, fn JobFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[name]; exists {
		panic(fmt.Sprintf("scheduler: job %q registered twice", name))
	}
	r.jobs[name] = fn
}

// Get looks up a handler.
func (r *JobRegistry) Get(name string) (JobFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.jobs[name]
	return fn, ok
}

// Names returns the registered job names.
func (r *JobRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.jobs))
	for name := range r.jobs {
		names = append(names, name)
	}
	return names
}
