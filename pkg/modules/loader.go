package modules

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// Registry holds the known module implementations by name.
type Registry struct {
	modules map[string]Module
}

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register adds a module. Registering the same name twice is a
// programming error.
func (r *Registry) Register(m Module) {
	if _, dup := r.modules[m.Name()]; dup {
		panic(fmt.Sprintf("modules: duplicate registration of %q", m.Name()))
	}
	r.modules[m.Name()] = m
}

// Set is the outcome of starting a butler's enabled modules.
type Set struct {
	statuses map[string]Status
	errors   map[string]error

	// started holds running modules in start order.
	started []Module
}

// Start brings up the butler's enabled modules in dependency order.
// A module failure is non-fatal: the module is marked failed, its
// dependents cascade_failed, and startup continues. Only a broken
// dependency graph (unknown module, cycle) is an error.
func (r *Registry) Start(ctx context.Context, deps *Deps) (*Set, error) {
	enabled := deps.Butler.Modules
	order, err := r.resolveOrder(enabled)
	if err != nil {
		return nil, err
	}

	set := &Set{
		statuses: make(map[string]Status, len(order)),
		errors:   make(map[string]error),
	}

	for _, name := range order {
		m := r.modules[name]
		log := slog.With("butler", deps.Butler.Name, "module", name)

		if blocked := set.failedDependency(m); blocked != "" {
			set.statuses[name] = StatusCascadeFailed
			log.Warn("Module unavailable, dependency failed", "dependency", blocked)
			continue
		}

		if src, dir := m.Migrations(); src != nil {
			if err := deps.Migrator.RunModule(ctx, deps.Butler.Schema, name, src, dir); err != nil {
				set.statuses[name] = StatusFailed
				set.errors[name] = err
				log.Error("Module migrations failed", "error", err)
				continue
			}
		}

		if err := m.Startup(ctx, deps); err != nil {
			set.statuses[name] = StatusFailed
			set.errors[name] = err
			log.Error("Module startup failed", "error", err)
			continue
		}

		set.statuses[name] = StatusRunning
		set.started = append(set.started, m)
		log.Info("Module started")
	}
	return set, nil
}

// resolveOrder topologically sorts the enabled modules. Ties break
// alphabetically so startup order is stable across runs.
func (r *Registry) resolveOrder(enabled []string) ([]string, error) {
	want := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		if _, known := r.modules[name]; !known {
			return nil, fmt.Errorf("unknown module %q", name)
		}
		want[name] = true
	}

	indegree := make(map[string]int, len(want))
	dependents := make(map[string][]string)
	for name := range want {
		indegree[name] = 0
	}
	for name := range want {
		for _, dep := range r.modules[name].Dependencies() {
			if !want[dep] {
				return nil, fmt.Errorf("module %q requires %q, which is not enabled", name, dep)
			}
			indegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	ready := make([]string, 0, len(want))
	for name, deg := range indegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(want))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)

		next := dependents[name]
		sort.Strings(next)
		for _, dep := range next {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
		sort.Strings(ready)
	}
	if len(order) != len(want) {
		return nil, fmt.Errorf("module dependency cycle among %v", enabled)
	}
	return order, nil
}

// failedDependency returns the first dependency that is not running.
func (s *Set) failedDependency(m Module) string {
	for _, dep := range m.Dependencies() {
		if s.statuses[dep] != StatusRunning {
			return dep
		}
	}
	return ""
}

// Status reports one module's startup outcome.
func (s *Set) Status(name string) Status { return s.statuses[name] }

// Statuses returns a copy of all module outcomes for the status tool.
func (s *Set) Statuses() map[string]Status {
	out := make(map[string]Status, len(s.statuses))
	for k, v := range s.statuses {
		out[k] = v
	}
	return out
}

// Running returns the running modules in start order.
func (s *Set) Running() []Module { return s.started }

// Tools aggregates tools from running modules.
func (s *Set) Tools() []Tool {
	var tools []Tool
	for _, m := range s.started {
		tools = append(tools, m.Tools()...)
	}
	return tools
}

// CredentialKeys aggregates credential keys by module name for the
// spawner's env sandbox.
func (s *Set) CredentialKeys() map[string][]string {
	out := make(map[string][]string, len(s.started))
	for _, m := range s.started {
		if keys := m.CredentialKeys(); len(keys) > 0 {
			out[m.Name()] = keys
		}
	}
	return out
}

// Shutdown stops running modules in reverse start order. Errors are
// logged, not returned; shutdown always visits every module.
func (s *Set) Shutdown(ctx context.Context) {
	for i := len(s.started) - 1; i >= 0; i-- {
		m := s.started[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}
