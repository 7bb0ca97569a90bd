package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streetgraph/config"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
topology:
  efficiency_steps: 7
  sampler: importance
  sample_ratio: 0.5
flow:
  workers: 3
log:
  level: debug
  format: json
`))
	require.NoError(t, err)

	want := config.Default()
	want.Topology.EfficiencySteps = 7
	want.Topology.Sampler = config.SamplerImportance
	want.Topology.SampleRatio = 0.5
	want.Flow.Workers = 3
	want.Log = config.LogConfig{Level: "debug", Format: config.FormatJSON}
	assert.Equal(t, want, cfg)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "topology:\n  steps: 1\n",
		"negative steps":   "topology:\n  regularity_steps: -1\n",
		"bad sampler":      "topology:\n  sampler: random\n",
		"zero ratio":       "topology:\n  sampler: uniform\n  sample_ratio: 0\n",
		"negative workers": "flow:\n  workers: -2\n",
		"bad level":        "log:\n  level: loud\n",
		"bad format":       "log:\n  format: xml\n",
		"not yaml":         "topology: [",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		assert.Truef(t, errors.Is(err, config.ErrInvalidConfig), "%s: %v", name, err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flow:\n  iterations: 2\n"), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Flow.Iterations)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
