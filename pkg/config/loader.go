package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, merges, expands, and validates the configuration.
//
// Steps:
//  1. Read butlers.yaml from configDir
//  2. Expand environment variables ({{.VAR}} syntax)
//  3. Parse YAML
//  4. Merge over built-in defaults (mergo, user values win)
//  5. Apply per-section defaults
//  6. Validate
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	path := filepath.Join(configDir, "butlers.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	expanded := ExpandEnv(raw)

	cfg := &Config{}
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	builtin := builtinConfig()
	if err := mergo.Merge(cfg, builtin); err != nil {
		return nil, fmt.Errorf("failed to merge built-in config: %w", err)
	}

	applyDefaults(cfg)

	// Stamp names and schemas; YAML keys are authoritative for names.
	for name, b := range cfg.Butlers {
		b.Name = name
		if b.Schema == "" {
			b.Schema = "butler_" + name
		}
	}

	cfg.RosterDir = filepath.Join(configDir, "roster")

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	log.Info("Configuration initialized", "butlers", len(cfg.Butlers))
	return cfg, nil
}

// builtinConfig returns the configuration every deployment starts from:
// the Switchboard and Messenger butlers always exist, and the Switchboard
// carries the built-in maintenance schedules.
func builtinConfig() *Config {
	enabled := true
	return &Config{
		Butlers: map[string]*ButlerConfig{
			ButlerSwitchboard: {
				Name:        ButlerSwitchboard,
				Port:        7300,
				Schema:      "butler_switchboard",
				Description: "Ingest, classification, routing, and registry owner",
				Schedules: []ScheduleConfig{
					{
						Name:         "eligibility-sweep",
						Cron:         "* * * * *",
						DispatchMode: "job",
						JobName:      "eligibility_sweep",
						Enabled:      &enabled,
					},
					{
						Name:         "connector-stats-rollup",
						Cron:         "0 * * * *",
						DispatchMode: "job",
						JobName:      "connector_stats_rollup",
						Enabled:      &enabled,
					},
					{
						Name:         "approval-expiry",
						Cron:         "*/5 * * * *",
						DispatchMode: "job",
						JobName:      "approval_expiry",
						Enabled:      &enabled,
					},
				},
			},
			ButlerMessenger: {
				Name:        ButlerMessenger,
				Port:        7301,
				Schema:      "butler_messenger",
				Description: "Sole owner of channel egress (send/reply tools)",
			},
		},
	}
}
