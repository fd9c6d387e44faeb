package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opinet/opinion"
	"github.com/katalvlaran/opinet/simulation"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "periodic", c.Simulation.Rule)
	assert.Equal(t, 1, c.Simulation.Runs)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Nil(t, c.Simulation.Seed)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opinet.yaml")
	content := `simulation:
  nodes: 300
  epsilon: 0.1
  seed: 7
  rule: rbcm
  runs: 4
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 300, c.Simulation.Nodes)
	assert.Equal(t, 0.1, c.Simulation.Epsilon)
	assert.Equal(t, 4, c.Simulation.Runs)
	require.NotNil(t, c.Simulation.Seed)
	assert.Equal(t, int64(7), *c.Simulation.Seed)
	assert.Equal(t, "debug", c.Logging.Level)
	// Untouched keys keep defaults.
	assert.Equal(t, simulation.DefaultTimeSteps, c.Simulation.TimeSteps)
	assert.True(t, c.Analysis.ExcludeIsolates)
	assert.Equal(t, simulation.DefaultMu, c.Simulation.Mu)

	sim, err := c.ToSimulation()
	require.NoError(t, err)
	assert.Equal(t, opinion.BoundedConfidence, sim.Rule)
	assert.Equal(t, 300, sim.Nodes)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation: [unclosed"), 0o600))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPINET_NODES", "120")
	t.Setenv("OPINET_MU", "0.4")
	t.Setenv("OPINET_SEED", "99")
	t.Setenv("OPINET_RULE", "naive_repulsion")
	t.Setenv("OPINET_LOG_LEVEL", "trace")
	t.Setenv("OPINET_TIME_STEPS", "not-a-number")
	t.Setenv("OPINET_EXCLUDE_ISOLATES", "true")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 120, c.Simulation.Nodes)
	assert.Equal(t, 0.4, c.Simulation.Mu)
	require.NotNil(t, c.Simulation.Seed)
	assert.Equal(t, int64(99), *c.Simulation.Seed)
	assert.Equal(t, "trace", c.Logging.Level)
	assert.Equal(t, simulation.DefaultTimeSteps, c.Simulation.TimeSteps)
	assert.True(t, c.Analysis.ExcludeIsolates)

	sim, err := c.ToSimulation()
	require.NoError(t, err)
	assert.Equal(t, opinion.NaiveRepulsion, sim.Rule)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*OpinetConfig)
	}{
		{"unknown rule", func(c *OpinetConfig) { c.Simulation.Rule = "voter" }},
		{"epsilon out of range", func(c *OpinetConfig) { c.Simulation.Epsilon = 1.5 }},
		{"attach too large", func(c *OpinetConfig) { c.Simulation.Attach = c.Simulation.Nodes }},
		{"zero runs", func(c *OpinetConfig) { c.Simulation.Runs = 0 }},
		{"zero bins", func(c *OpinetConfig) { c.Analysis.Bins = 0 }},
		{"peak share", func(c *OpinetConfig) { c.Analysis.PeakShare = 2 }},
		{"peak distance", func(c *OpinetConfig) { c.Analysis.PeakDistance = 0 }},
		{"log level", func(c *OpinetConfig) { c.Logging.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	c := Default()
	c.Simulation.Epsilon = 2
	assert.ErrorIs(t, c.Validate(), simulation.ErrInvalidParameter)
}

func TestAnalysisOptions(t *testing.T) {
	assert.Len(t, Default().AnalysisOptions(), 4)
}
