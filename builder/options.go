// SPDX-License-Identifier: MIT
// Package: opinet/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible networks.
//   • Pass the simulation's own *rand.Rand through WithRand so one seed
//     drives both generation and dynamics.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOpinionFn overrides the per-node opinion sampler used by
// UniformOpinions. The function receives the configured RNG; values outside
// [0,1] make the constructor fail. Panics on nil.
func WithOpinionFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithOpinionFn(nil)")
	}
	return func(c *builderConfig) {
		c.opinionFn = fn
	}
}
