// SPDX-License-Identifier: MIT
// Package: opinet/builder
//
// impl_opinions.go - implementation of UniformOpinions() constructor.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Every node, in ascending ID order, receives cfg.opinionFn(cfg.rng).
//   - A sampled value outside [0,1] fails with ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/opinet/core"
)

// UniformOpinions returns a Constructor that assigns one i.i.d. opinion to
// every node already in the graph.
func UniformOpinions() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRand(methodUniformOpinions, cfg); err != nil {
			return err
		}

		n := g.NodeCount()
		for id := 0; id < n; id++ {
			x := cfg.opinionFn(cfg.rng)
			if err := g.SetOpinion(id, x); err != nil {
				return fmt.Errorf("%s: node %d: %v: %w", methodUniformOpinions, id, err, ErrConstructFailed)
			}
		}

		return nil
	}
}
