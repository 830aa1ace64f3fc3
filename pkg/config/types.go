// Package config loads and validates the butler roster configuration.
//
// Configuration comes from a single butlers.yaml plus a roster/ directory of
// per-butler system prompts. YAML is merged over built-in defaults, passed
// through environment expansion, and validated before use.
package config

import "time"

// Well-known butler names. Switchboard owns ingest, routing, the registry
// and the ingress buffer; Messenger owns channel egress.
const (
	ButlerSwitchboard = "switchboard"
	ButlerMessenger   = "messenger"
	ButlerGeneral     = "general"
)

// Config is the fully merged, validated runtime configuration.
type Config struct {
	Runtime   *RuntimeConfig   `yaml:"runtime"`
	Ingress   *IngressConfig   `yaml:"ingress"`
	Fanout    *FanoutConfig    `yaml:"fanout"`
	Spawner   *SpawnerConfig   `yaml:"spawner"`
	Scheduler *SchedulerConfig `yaml:"scheduler"`
	Registry  *RegistryConfig  `yaml:"registry"`
	Approvals *ApprovalsConfig `yaml:"approvals"`
	Retention *RetentionConfig `yaml:"retention"`

	Butlers map[string]*ButlerConfig `yaml:"butlers"`

	// RosterDir holds roster/<butler>/AGENTS.md system prompts.
	RosterDir string `yaml:"-"`
}

// ButlerConfig declares one long-lived butler daemon.
type ButlerConfig struct {
	Name        string `yaml:"-"`
	Port        int    `yaml:"port"`
	Schema      string `yaml:"schema"`
	Description string `yaml:"description"`
	Model       string `yaml:"model,omitempty"`

	// Modules enabled for this butler, started in dependency order.
	Modules []string `yaml:"modules,omitempty"`

	Schedules []ScheduleConfig `yaml:"schedules,omitempty"`

	// TrustedRouteCallers is the endpoint-identity allow-list for
	// route.execute. Empty means Switchboard only.
	TrustedRouteCallers []string `yaml:"trusted_route_callers,omitempty"`

	// LivenessTTL overrides registry.liveness_ttl for this butler.
	LivenessTTL time.Duration `yaml:"liveness_ttl,omitempty"`
}

// ScheduleConfig declares one scheduled task in the roster.
type ScheduleConfig struct {
	Name         string         `yaml:"name"`
	Cron         string         `yaml:"cron"`
	DispatchMode string         `yaml:"dispatch_mode"` // prompt | job
	Prompt       string         `yaml:"prompt,omitempty"`
	JobName      string         `yaml:"job_name,omitempty"`
	JobArgs      map[string]any `yaml:"job_args,omitempty"`
	Enabled      *bool          `yaml:"enabled,omitempty"`
}

// IsSwitchboard reports whether this butler is the Switchboard.
func (b *ButlerConfig) IsSwitchboard() bool { return b.Name == ButlerSwitchboard }

// IsMessenger reports whether this butler is the Messenger.
func (b *ButlerConfig) IsMessenger() bool { return b.Name == ButlerMessenger }

// EndpointURL returns the local MCP endpoint for this butler.
func (b *ButlerConfig) EndpointURL() string {
	return localEndpoint(b.Port)
}

// RuntimeConfig selects and tunes the LLM runtime adapter.
type RuntimeConfig struct {
	// Adapter is one of: claude-code, codex, gemini.
	Adapter string `yaml:"adapter"`

	// Binary overrides the adapter's default CLI binary path.
	Binary string `yaml:"binary,omitempty"`

	// Model is the default model passed to the CLI; butlers may override.
	Model string `yaml:"model,omitempty"`

	// Timeout bounds a single adapter invocation.
	Timeout time.Duration `yaml:"timeout"`
}

// IngressConfig tunes the durable ingress buffer.
type IngressConfig struct {
	QueueCapacity    int           `yaml:"queue_capacity"`
	WorkerCount      int           `yaml:"worker_count"`
	LeaseDuration    time.Duration `yaml:"lease_duration"`
	ScannerInterval  time.Duration `yaml:"scanner_interval"`
	ScannerGrace     time.Duration `yaml:"scanner_grace"`
	ScannerBatchSize int           `yaml:"scanner_batch_size"`
	MaxAttempts      int           `yaml:"max_attempts"`

	// DispatchTimeout bounds classify+fanout for one message.
	DispatchTimeout time.Duration `yaml:"dispatch_timeout"`
}

// FanoutConfig tunes the fanout dispatcher.
type FanoutConfig struct {
	// SubrequestTimeout is the default per-subrequest deadline.
	SubrequestTimeout time.Duration `yaml:"subrequest_timeout"`

	// MaxSubrequests caps the size of one fanout plan.
	MaxSubrequests int `yaml:"max_subrequests"`
}

// SpawnerConfig tunes the per-butler serial dispatch lock.
type SpawnerConfig struct {
	// MaxQueued is the number of callers allowed to wait on a held lock.
	// Excess callers are rejected with overload_rejected.
	MaxQueued int `yaml:"max_queued"`

	// SessionTimeout bounds one session end to end (insert to terminal).
	SessionTimeout time.Duration `yaml:"session_timeout"`
}

// SchedulerConfig tunes the scheduler tick loop.
type SchedulerConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`

	// StaggerCap bounds the deterministic per-butler offset; the effective
	// offset is min(StaggerCap, interval/2).
	StaggerCap time.Duration `yaml:"stagger_cap"`
}

// RegistryConfig tunes liveness and quarantine behavior.
type RegistryConfig struct {
	LivenessTTL      time.Duration `yaml:"liveness_ttl"`
	SweepInterval    time.Duration `yaml:"sweep_interval"`
	FailureWindow    time.Duration `yaml:"failure_window"`
	FailureThreshold int           `yaml:"failure_threshold"`
	HeartbeatPeriod  time.Duration `yaml:"heartbeat_period"`
}

// GatedToolConfig marks one tool as approval-gated.
type GatedToolConfig struct {
	Butler   string `yaml:"butler"`
	Tool     string `yaml:"tool"`
	RiskTier string `yaml:"risk_tier"` // low | medium | high | critical
}

// ApprovalsConfig tunes the approvals engine.
type ApprovalsConfig struct {
	GatedTools    []GatedToolConfig `yaml:"gated_tools,omitempty"`
	DefaultExpiry time.Duration     `yaml:"default_expiry"`
}

// RetentionConfig tunes the retention sweep job.
type RetentionConfig struct {
	// SessionRetention keeps terminal sessions this long.
	SessionRetention time.Duration `yaml:"session_retention"`

	// InboxRetention keeps terminal inbox and ingress rows this long.
	InboxRetention time.Duration `yaml:"inbox_retention"`

	// HeartbeatRetention keeps raw connector heartbeat rows this long.
	HeartbeatRetention time.Duration `yaml:"heartbeat_retention"`
}
