package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "butlers.yaml"), []byte(yaml), 0o644))
	return dir
}

func TestInitializeMergesBuiltins(t *testing.T) {
	dir := writeConfig(t, `
butlers:
  chef:
    port: 7302
    description: meals and groceries
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)

	// The Switchboard and Messenger always exist.
	require.Contains(t, cfg.Butlers, ButlerSwitchboard)
	require.Contains(t, cfg.Butlers, ButlerMessenger)
	assert.Equal(t, 7300, cfg.Butlers[ButlerSwitchboard].Port)

	chef := cfg.Butlers["chef"]
	assert.Equal(t, "chef", chef.Name)
	assert.Equal(t, "butler_chef", chef.Schema)
	assert.Equal(t, 7302, chef.Port)

	// Defaults filled in for untouched sections.
	assert.Equal(t, "claude-code", cfg.Runtime.Adapter)
	assert.Positive(t, cfg.Ingress.QueueCapacity)
	assert.Positive(t, cfg.Retention.SessionRetention)
}

func TestInitializeBuiltinSchedules(t *testing.T) {
	dir := writeConfig(t, "butlers: {}\n")
	cfg, err := Initialize(dir)
	require.NoError(t, err)

	names := make([]string, 0)
	for _, sc := range cfg.Butlers[ButlerSwitchboard].Schedules {
		names = append(names, sc.Name)
	}
	assert.Contains(t, names, "eligibility-sweep")
	assert.Contains(t, names, "connector-stats-rollup")
	assert.Contains(t, names, "approval-expiry")
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("CHEF_PORT", "7310")
	dir := writeConfig(t, `
butlers:
  chef:
    port: {{.CHEF_PORT}}
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, 7310, cfg.Butlers["chef"].Port)
}

func TestInitializeRejectsPortCollision(t *testing.T) {
	dir := writeConfig(t, `
butlers:
  chef:
    port: 7300
`)
	_, err := Initialize(dir)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "already used")
}

func TestInitializeRejectsBadSchedule(t *testing.T) {
	dir := writeConfig(t, `
butlers:
  chef:
    port: 7302
    schedules:
      - name: morning-brief
        cron: "0 7 * * *"
        dispatch_mode: prompt
`)
	_, err := Initialize(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt required")
}

func TestInitializeMissingFile(t *testing.T) {
	_, err := Initialize(t.TempDir())
	require.Error(t, err)
	assert.False(t, IsConfigError(err))
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := &Config{
		Runtime:   &RuntimeConfig{Adapter: "gpt"},
		Ingress:   DefaultIngressConfig(),
		Fanout:    DefaultFanoutConfig(),
		Spawner:   DefaultSpawnerConfig(),
		Scheduler: DefaultSchedulerConfig(),
		Registry:  DefaultRegistryConfig(),
		Approvals: DefaultApprovalsConfig(),
		Butlers:   map[string]*ButlerConfig{},
	}
	err := Validate(cfg)
	require.Error(t, err)

	ce := err.(*ConfigError)
	assert.GreaterOrEqual(t, len(ce.Problems), 3)
}
