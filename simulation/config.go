// SPDX-License-Identifier: MIT
// Package: opinet/simulation
//
// config.go - immutable per-run parameters and their validation.

package simulation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/opinet/builder"
	"github.com/katalvlaran/opinet/opinion"
)

const (
	methodValidate = "Validate"
	methodRun      = "Run"
	methodRunMany  = "RunMany"
)

// Defaults mirror the parameter set used for the published sweeps.
const (
	DefaultNodes             = 2000
	DefaultTimeSteps         = 100
	DefaultMu                = 0.25
	DefaultEpsilon           = 0.25
	DefaultMaxRewireAttempts = 32
)

// Config holds every parameter of one run. It is read-only for the
// duration of the run and may be shared by concurrent runs.
type Config struct {
	// Nodes is the population size N (> 0).
	Nodes int `json:"nodes" yaml:"nodes"`
	// TimeSteps is the number of rounds (>= 0).
	TimeSteps int `json:"time_steps" yaml:"time_steps"`
	// Mu is the convergence rate in [0,1].
	Mu float64 `json:"mu" yaml:"mu"`
	// Epsilon is the tolerance in [0,1].
	Epsilon float64 `json:"epsilon" yaml:"epsilon"`
	// Attach is the Barabási–Albert attachment count m (1 <= m < Nodes).
	Attach int `json:"attach" yaml:"attach"`
	// Seed fixes the random source. nil draws a seed from the clock; the
	// seed actually used is reported in Result.Seed.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	// Rule selects the update rule; the zero value is opinion.Periodic.
	Rule opinion.Kind `json:"rule" yaml:"rule"`
	// MaxRewireAttempts bounds the uniform retry for a rewiring target
	// before falling back to enumerating valid candidates (>= 0).
	MaxRewireAttempts int `json:"max_rewire_attempts" yaml:"max_rewire_attempts"`
}

// DefaultConfig returns the reference parameter set with no fixed seed.
func DefaultConfig() Config {
	return Config{
		Nodes:             DefaultNodes,
		TimeSteps:         DefaultTimeSteps,
		Mu:                DefaultMu,
		Epsilon:           DefaultEpsilon,
		Attach:            builder.DefaultAttachment,
		Rule:              opinion.Periodic,
		MaxRewireAttempts: DefaultMaxRewireAttempts,
	}
}

// Validate checks every field and returns the first violation wrapped in
// ErrInvalidParameter.
func (c Config) Validate() error {
	switch {
	case c.Nodes < 1:
		return invalid("nodes=%d must be >= 1", c.Nodes)
	case c.TimeSteps < 0:
		return invalid("time_steps=%d must be >= 0", c.TimeSteps)
	case !unit(c.Mu):
		return invalid("mu=%v must be in [0,1]", c.Mu)
	case !unit(c.Epsilon):
		return invalid("epsilon=%v must be in [0,1]", c.Epsilon)
	case c.Attach < 1:
		return invalid("attach=%d must be >= 1", c.Attach)
	case c.Attach >= c.Nodes:
		return invalid("attach=%d must be < nodes=%d", c.Attach, c.Nodes)
	case c.MaxRewireAttempts < 0:
		return invalid("max_rewire_attempts=%d must be >= 0", c.MaxRewireAttempts)
	}
	if _, err := c.Rule.Rule(); err != nil {
		return fmt.Errorf("%s: %v: %w", methodValidate, err, ErrInvalidParameter)
	}

	return nil
}

// WithSeed returns a copy of c with Seed fixed to seed.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = &seed
	return c
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", methodValidate, fmt.Sprintf(format, args...), ErrInvalidParameter)
}

// unit reports whether x lies in [0,1]; NaN fails.
func unit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}
