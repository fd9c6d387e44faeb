// SPDX-License-Identifier: MIT
// Package: opinet/builder
//
// impl_barabasi_albert.go - implementation of BarabasiAlbert(n, m) constructor.
//
// Canonical model:
//   - Seed: a star on m+1 nodes (node 0 joined to 1..m).
//   - Growth: each node src = m+1..n-1 attaches to m distinct existing nodes,
//     each drawn with probability proportional to its current degree.
//   - Degree-proportional draws sample uniformly from a "repeated" list in
//     which every node appears once per incident edge end.
//
// Contract:
//   - n ≥ 1 and m ≥ 1 (else ErrTooFewVertices).
//   - m < n (else ErrBadAttachment).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - g must be empty (else ErrConstructFailed); node IDs are 0..n-1.
//   - Nodes are created with opinion MinOpinion; pair with UniformOpinions.
//   - Result is connected with exactly m + (n-m-1)·m edges.
//
// Complexity:
//   - Time: O(n·m·(log d + m)) for sorted inserts and duplicate rejection.
//   - Space: O(n·m) for the repeated list.
//
// Determinism:
//   - Stable node order and stable draw order per source node.

package builder

import (
	"fmt"

	"github.com/katalvlaran/opinet/core"
)

// BarabasiAlbert returns a Constructor that grows a preferential-attachment
// graph over n nodes with attachment count m.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateMin(methodBarabasiAlbert, "n", n, MinNodes); err != nil {
			return err
		}
		if err := validateMin(methodBarabasiAlbert, "m", m, MinAttachment); err != nil {
			return err
		}
		if err := validateAttachment(methodBarabasiAlbert, n, m); err != nil {
			return err
		}
		if err := validateRand(methodBarabasiAlbert, cfg); err != nil {
			return err
		}
		if g.NodeCount() != 0 {
			return fmt.Errorf("%s: graph already has %d nodes: %w",
				methodBarabasiAlbert, g.NodeCount(), ErrConstructFailed)
		}

		// 2) Add all nodes in ascending ID order.
		for i := 0; i < n; i++ {
			if _, err := g.AddNode(core.MinOpinion); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodBarabasiAlbert, i, err)
			}
		}

		// 3) Star seed on nodes 0..m.
		repeated := make([]int, 0, 2*(m+(n-m-1)*m))
		for leaf := 1; leaf <= m; leaf++ {
			if err := g.AddEdge(0, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(0,%d): %w", methodBarabasiAlbert, leaf, err)
			}
			repeated = append(repeated, 0, leaf)
		}

		// 4) Grow: every new node picks m distinct degree-weighted targets.
		var (
			rng     = cfg.rng
			targets = make([]int, 0, m)
			seen    = make(map[int]struct{}, m)
		)
		for src := m + 1; src < n; src++ {
			targets = targets[:0]
			clear(seen)
			// repeated holds all src nodes so far (src > m distinct IDs), so
			// m distinct draws always exist.
			for len(targets) < m {
				t := repeated[rng.Intn(len(repeated))]
				if _, dup := seen[t]; dup {
					continue
				}
				seen[t] = struct{}{}
				targets = append(targets, t)
			}
			for _, t := range targets {
				if err := g.AddEdge(src, t); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodBarabasiAlbert, src, t, err)
				}
			}
			repeated = append(repeated, targets...)
			for k := 0; k < m; k++ {
				repeated = append(repeated, src)
			}
		}

		return nil
	}
}
