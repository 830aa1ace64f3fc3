package config

import (
	"fmt"
	"time"
)

func localEndpoint(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d/mcp", port)
}

// DefaultRuntimeConfig returns the built-in runtime adapter defaults.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Adapter: "claude-code",
		Timeout: 10 * time.Minute,
	}
}

// DefaultIngressConfig returns the built-in ingress buffer defaults.
func DefaultIngressConfig() *IngressConfig {
	return &IngressConfig{
		QueueCapacity:    256,
		WorkerCount:      4,
		LeaseDuration:    5 * time.Minute,
		ScannerInterval:  30 * time.Second,
		ScannerGrace:     60 * time.Second,
		ScannerBatchSize: 50,
		MaxAttempts:      5,
		DispatchTimeout:  10 * time.Minute,
	}
}

// DefaultFanoutConfig returns the built-in fanout dispatcher defaults.
func DefaultFanoutConfig() *FanoutConfig {
	return &FanoutConfig{
		SubrequestTimeout: 5 * time.Minute,
		MaxSubrequests:    16,
	}
}

// DefaultSpawnerConfig returns the built-in spawner defaults.
func DefaultSpawnerConfig() *SpawnerConfig {
	return &SpawnerConfig{
		MaxQueued:      8,
		SessionTimeout: 15 * time.Minute,
	}
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		TickInterval: 30 * time.Second,
		StaggerCap:   15 * time.Minute,
	}
}

// DefaultRegistryConfig returns the built-in registry/liveness defaults.
func DefaultRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		LivenessTTL:      5 * time.Minute,
		SweepInterval:    time.Minute,
		FailureWindow:    2 * time.Minute,
		FailureThreshold: 3,
		HeartbeatPeriod:  time.Minute,
	}
}

// DefaultApprovalsConfig returns the built-in approvals defaults.
func DefaultApprovalsConfig() *ApprovalsConfig {
	return &ApprovalsConfig{
		DefaultExpiry: 24 * time.Hour,
	}
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetention:   90 * 24 * time.Hour,
		InboxRetention:     30 * 24 * time.Hour,
		HeartbeatRetention: 7 * 24 * time.Hour,
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Runtime == nil {
		cfg.Runtime = DefaultRuntimeConfig()
	}
	if cfg.Runtime.Timeout <= 0 {
		cfg.Runtime.Timeout = 10 * time.Minute
	}
	if cfg.Ingress == nil {
		cfg.Ingress = DefaultIngressConfig()
	}
	if cfg.Fanout == nil {
		cfg.Fanout = DefaultFanoutConfig()
	}
	if cfg.Spawner == nil {
		cfg.Spawner = DefaultSpawnerConfig()
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = DefaultSchedulerConfig()
	}
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistryConfig()
	}
	if cfg.Approvals == nil {
		cfg.Approvals = DefaultApprovalsConfig()
	}
	if cfg.Retention == nil {
		cfg.Retention = DefaultRetentionConfig()
	}
}
