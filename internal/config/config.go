// Package config provides unified configuration loading for opinet.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/opinet/analysis"
	"github.com/katalvlaran/opinet/opinion"
	"github.com/katalvlaran/opinet/simulation"
)

// OpinetConfig contains all opinet configuration settings.
type OpinetConfig struct {
	// Simulation holds the model parameters of every run.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Analysis tunes the post-run measures.
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`

	// Logging contains settings for operational and event logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig mirrors simulation.Config with a textual rule name and
// the batch size.
type SimulationConfig struct {
	Nodes     int     `json:"nodes" yaml:"nodes"`
	TimeSteps int     `json:"time_steps" yaml:"time_steps"`
	Mu        float64 `json:"mu" yaml:"mu"`
	Epsilon   float64 `json:"epsilon" yaml:"epsilon"`
	Attach    int     `json:"attach" yaml:"attach"`

	// Seed fixes the random source; omit for a clock-derived seed.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Rule is "periodic" (default), "naive-repulsion" or "bounded-confidence".
	Rule string `json:"rule" yaml:"rule"`

	MaxRewireAttempts int `json:"max_rewire_attempts" yaml:"max_rewire_attempts"`

	// Runs is the number of repetitions averaged in the report.
	Runs int `json:"runs" yaml:"runs"`
}

// AnalysisConfig configures the histogram and peak detection.
type AnalysisConfig struct {
	Bins         int     `json:"bins" yaml:"bins"`
	PeakShare    float64 `json:"peak_share" yaml:"peak_share"`
	PeakDistance int     `json:"peak_distance" yaml:"peak_distance"`

	// ExcludeIsolates leaves isolated agents out of the opinion measures.
	ExcludeIsolates bool `json:"exclude_isolates" yaml:"exclude_isolates"`
}

// LoggingConfig configures opinet's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`

	// EventsFile, when set, receives every rewiring event as JSONL.
	EventsFile string `json:"events_file,omitempty" yaml:"events_file,omitempty"`
}

// Default returns an OpinetConfig with the reference parameters.
func Default() *OpinetConfig {
	sim := simulation.DefaultConfig()
	return &OpinetConfig{
		Simulation: SimulationConfig{
			Nodes:             sim.Nodes,
			TimeSteps:         sim.TimeSteps,
			Mu:                sim.Mu,
			Epsilon:           sim.Epsilon,
			Attach:            sim.Attach,
			Rule:              sim.Rule.String(),
			MaxRewireAttempts: sim.MaxRewireAttempts,
			Runs:              1,
		},
		Analysis: AnalysisConfig{
			Bins:         analysis.DefaultBins,
			PeakShare:    analysis.DefaultPeakShare,
			PeakDistance: analysis.DefaultPeakDistance,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration and applies environment variable overrides.
// Order: defaults -> path (or ~/.opinet/config.yaml when path is empty and
// that file exists) -> environment variables.
func Load(path string) (*OpinetConfig, error) {
	config := Default()

	if path == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(homeDir, ".opinet", "config.yaml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys absent
// from the file keep their defaults.
func LoadFromFile(path string) (*OpinetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *OpinetConfig) Validate() error {
	sim, err := c.ToSimulation()
	if err != nil {
		return err
	}
	if err := sim.Validate(); err != nil {
		return err
	}
	if c.Simulation.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Simulation.Runs)
	}

	if c.Analysis.Bins < 1 {
		return fmt.Errorf("bins must be at least 1, got %d", c.Analysis.Bins)
	}
	if c.Analysis.PeakShare < 0 || c.Analysis.PeakShare > 1 {
		return fmt.Errorf("peak_share must be between 0 and 1, got %f", c.Analysis.PeakShare)
	}
	if c.Analysis.PeakDistance < 1 {
		return fmt.Errorf("peak_distance must be at least 1, got %d", c.Analysis.PeakDistance)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// ToSimulation converts the simulation section into a simulation.Config.
func (c *OpinetConfig) ToSimulation() (simulation.Config, error) {
	kind, err := opinion.ParseKind(c.Simulation.Rule)
	if err != nil {
		return simulation.Config{}, fmt.Errorf("invalid rule: %w", err)
	}
	s := c.Simulation

	return simulation.Config{
		Nodes:             s.Nodes,
		TimeSteps:         s.TimeSteps,
		Mu:                s.Mu,
		Epsilon:           s.Epsilon,
		Attach:            s.Attach,
		Seed:              s.Seed,
		Rule:              kind,
		MaxRewireAttempts: s.MaxRewireAttempts,
	}, nil
}

// AnalysisOptions converts the analysis section into analysis options.
func (c *OpinetConfig) AnalysisOptions() []analysis.Option {
	return []analysis.Option{
		analysis.WithBins(c.Analysis.Bins),
		analysis.WithPeakShare(c.Analysis.PeakShare),
		analysis.WithPeakDistance(c.Analysis.PeakDistance),
		analysis.WithExcludeIsolates(c.Analysis.ExcludeIsolates),
	}
}

// applyEnvOverrides applies OPINET_* environment variable overrides.
// Malformed numbers are ignored.
func applyEnvOverrides(config *OpinetConfig) {
	s := &config.Simulation
	envInt("OPINET_NODES", &s.Nodes)
	envInt("OPINET_TIME_STEPS", &s.TimeSteps)
	envFloat("OPINET_MU", &s.Mu)
	envFloat("OPINET_EPSILON", &s.Epsilon)
	envInt("OPINET_ATTACH", &s.Attach)
	envInt("OPINET_RUNS", &s.Runs)
	envInt("OPINET_MAX_REWIRE_ATTEMPTS", &s.MaxRewireAttempts)

	if v := os.Getenv("OPINET_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = &n
		}
	}
	if v := os.Getenv("OPINET_RULE"); v != "" {
		s.Rule = v
	}

	if v := os.Getenv("OPINET_EXCLUDE_ISOLATES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Analysis.ExcludeIsolates = b
		}
	}

	if v := os.Getenv("OPINET_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("OPINET_EVENTS_FILE"); v != "" {
		config.Logging.EventsFile = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
