package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-arbitrage/internal/data"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 80.0, cfg.Defaults.SCC)
	assert.Equal(t, 59.25, cfg.Defaults.LCOE)
	assert.Equal(t, 0.9132710997126332, cfg.Defaults.Beta)
	assert.Equal(t, data.ScenarioCurrentPolicies, cfg.Scenarios.Reference)
	assert.Equal(t, data.ScenarioNetZero2050, cfg.Scenarios.Alternative)
	assert.Equal(t, Duration(data.DefaultResultTTL), cfg.ResultTTL)
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
defaults:
  scc: 120
  lcoe: 45
  beta: 1.2
result_ttl: 30m
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 120.0, cfg.Defaults.SCC)
	assert.Equal(t, 45.0, cfg.Defaults.LCOE)
	assert.Equal(t, 1.2, cfg.Defaults.Beta)
	assert.Equal(t, Duration(30*time.Minute), cfg.ResultTTL)
	// Unset fields keep their defaults.
	assert.Equal(t, data.ScenarioCurrentPolicies, cfg.Scenarios.Reference)
	assert.Equal(t, data.ScenarioNetZero2050, cfg.Scenarios.Alternative)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative scc", "defaults:\n  scc: -1\n"},
		{"negative lcoe", "defaults:\n  lcoe: -0.5\n"},
		{"negative beta", "defaults:\n  beta: -2\n"},
		{"same scenario pair", "scenarios:\n  reference: A\n  alternative: A\n"},
		{"not yaml", "{{{{"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestStoreSelection(t *testing.T) {
	cfg := Default()
	store, err := cfg.Store()
	require.NoError(t, err)
	assert.True(t, store.HasScenario(data.ScenarioCurrentPolicies))

	cfg.DatasetFile = filepath.Join(t.TempDir(), "missing.csv")
	_, err = cfg.Store()
	assert.Error(t, err)
}
