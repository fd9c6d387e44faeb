// SPDX-License-Identifier: MIT
// Package: opinet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng       = nil            (stochastic constructors fail with ErrNeedRandSource)
//   • opinionFn = uniformOpinion (rng.Float64(), i.e. U[0,1))

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
	// Opinion sampler used by UniformOpinions.
	opinionFn func(*rand.Rand) float64
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		opinionFn: uniformOpinion,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// uniformOpinion draws an opinion from U[0,1).
func uniformOpinion(r *rand.Rand) float64 {
	return r.Float64()
}
