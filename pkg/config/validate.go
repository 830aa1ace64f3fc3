package config

import (
	"errors"
	"fmt"
)

// ConfigError carries all validation failures found in one pass.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration (%d problems): %v", len(e.Problems), e.Problems)
}

// IsConfigError reports whether err is a configuration validation error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

var validAdapters = map[string]bool{
	"claude-code": true,
	"codex":       true,
	"gemini":      true,
}

var validDispatchModes = map[string]bool{
	"prompt": true,
	"job":    true,
}

var validRiskTiers = map[string]bool{
	"low":      true,
	"medium":   true,
	"high":     true,
	"critical": true,
}

// Validate checks the merged configuration and collects every problem.
func Validate(cfg *Config) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if !validAdapters[cfg.Runtime.Adapter] {
		add("runtime.adapter %q: must be claude-code, codex, or gemini", cfg.Runtime.Adapter)
	}

	if _, ok := cfg.Butlers[ButlerSwitchboard]; !ok {
		add("butlers: switchboard is required")
	}
	if _, ok := cfg.Butlers[ButlerMessenger]; !ok {
		add("butlers: messenger is required")
	}

	ports := make(map[int]string)
	schemas := make(map[string]string)
	for name, b := range cfg.Butlers {
		if b.Port <= 0 || b.Port > 65535 {
			add("butler %q: invalid port %d", name, b.Port)
		}
		if other, dup := ports[b.Port]; dup {
			add("butler %q: port %d already used by %q", name, b.Port, other)
		}
		ports[b.Port] = name
		if other, dup := schemas[b.Schema]; dup {
			add("butler %q: schema %q already owned by %q", name, b.Schema, other)
		}
		schemas[b.Schema] = name

		seen := make(map[string]bool)
		for _, s := range b.Schedules {
			if s.Name == "" {
				add("butler %q: schedule with empty name", name)
				continue
			}
			if seen[s.Name] {
				add("butler %q: duplicate schedule %q", name, s.Name)
			}
			seen[s.Name] = true
			if !validDispatchModes[s.DispatchMode] {
				add("butler %q schedule %q: dispatch_mode %q must be prompt or job", name, s.Name, s.DispatchMode)
			}
			if s.DispatchMode == "prompt" && s.Prompt == "" {
				add("butler %q schedule %q: prompt required for dispatch_mode=prompt", name, s.Name)
			}
			if s.DispatchMode == "job" && s.JobName == "" {
				add("butler %q schedule %q: job_name required for dispatch_mode=job", name, s.Name)
			}
			if s.Cron == "" {
				add("butler %q schedule %q: cron required", name, s.Name)
			}
		}
	}

	if cfg.Ingress.QueueCapacity <= 0 {
		add("ingress.queue_capacity must be positive")
	}
	if cfg.Ingress.WorkerCount <= 0 {
		add("ingress.worker_count must be positive")
	}
	if cfg.Ingress.ScannerGrace < cfg.Ingress.ScannerInterval {
		add("ingress.scanner_grace must be >= scanner_interval")
	}
	if cfg.Fanout.SubrequestTimeout <= 0 {
		add("fanout.subrequest_timeout must be positive")
	}
	if cfg.Fanout.MaxSubrequests <= 0 {
		add("fanout.max_subrequests must be positive")
	}
	if cfg.Spawner.MaxQueued < 0 {
		add("spawner.max_queued must be >= 0")
	}
	if cfg.Registry.FailureThreshold <= 0 {
		add("registry.failure_threshold must be positive")
	}

	for _, g := range cfg.Approvals.GatedTools {
		if g.Tool == "" {
			add("approvals.gated_tools: empty tool name")
		}
		if g.RiskTier != "" && !validRiskTiers[g.RiskTier] {
			add("approvals.gated_tools %q: invalid risk_tier %q", g.Tool, g.RiskTier)
		}
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}
	return nil
}
