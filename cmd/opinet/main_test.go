package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/opinet/internal/config"
)

// execute runs the root command with args in an isolated HOME and returns
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "opinet version "+version)

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, version, v["version"])
}

func TestRunCmd_JSON(t *testing.T) {
	events := filepath.Join(t.TempDir(), "events.jsonl")
	out, err := execute(t, "run", "--json",
		"--nodes", "60", "--steps", "5", "--mu", "0.3", "--epsilon", "0.1",
		"--seed", "42", "--runs", "2", "--events", events)
	require.NoError(t, err)

	var report runReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Runs, 2)
	assert.Equal(t, int64(42), report.Runs[0].Seed)
	assert.Equal(t, int64(43), report.Runs[1].Seed)
	assert.Equal(t, 60, report.Config.Nodes)
	assert.Equal(t, 2, report.Mean.Runs)
	for _, r := range report.Runs {
		assert.Equal(t, 60, r.Final.Nodes)
		assert.Equal(t, r.Initial.Edges, r.Final.Edges)
		assert.Equal(t, 0, r.Initial.Isolated)
	}

	data, err := os.ReadFile(events)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	rewires := 0
	for _, r := range report.Runs {
		rewires += r.Stats.Discordant
	}
	assert.Len(t, lines, rewires)
}

func TestRunCmd_ExcludeIsolates(t *testing.T) {
	out, err := execute(t, "run", "--json", "--exclude-isolates",
		"--nodes", "80", "--steps", "20", "--mu", "0.3", "--epsilon", "0.05", "--seed", "5")
	require.NoError(t, err)

	var report runReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Runs, 1)
	final := report.Runs[0].Final
	assert.Equal(t, final.Nodes-final.Isolated, final.Sampled)
	sum := 0
	for _, c := range final.Histogram {
		sum += c
	}
	assert.Equal(t, final.Sampled, sum)
}

func TestRunCmd_Deterministic(t *testing.T) {
	args := []string{"run", "--json", "--nodes", "40", "--steps", "3", "--seed", "7"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)
	assert.JSONEq(t, a, b)
}

func TestRunCmd_Text(t *testing.T) {
	out, err := execute(t, "run", "--nodes", "30", "--steps", "2", "--seed", "1", "--rule", "rbcm")
	require.NoError(t, err)
	assert.Contains(t, out, "rule=bounded-confidence nodes=30 steps=2")
	assert.Contains(t, out, "mean")
}

func TestRunCmd_ConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opinet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  nodes: 25\n  time_steps: 2\n  seed: 3\n"), 0o600))

	out, err := execute(t, "run", "--json", "--config", path, "--epsilon", "0.4")
	require.NoError(t, err)
	var report runReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 25, report.Config.Nodes)
	assert.Equal(t, 0.4, report.Config.Epsilon)
	assert.Equal(t, int64(3), report.Runs[0].Seed)
}

func TestRunCmd_InvalidParameters(t *testing.T) {
	for _, args := range [][]string{
		{"run", "--nodes", "5", "--attach", "5"},
		{"run", "--mu", "1.5"},
		{"run", "--epsilon", "-0.1"},
		{"run", "--steps", "-1"},
		{"run", "--rule", "voter"},
		{"run", "--runs", "0"},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	var cfg config.OpinetConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, *config.Default(), cfg)
}
