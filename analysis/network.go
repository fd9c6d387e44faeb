// SPDX-License-Identifier: MIT
// Package: opinet/analysis
//
// network.go - structural measures of a (final) opinion network.

package analysis

import (
	"fmt"

	"github.com/katalvlaran/opinet/bfs"
	"github.com/katalvlaran/opinet/core"
)

// IsolatedCount returns the number of nodes without neighbors.
func IsolatedCount(g *core.Graph) int {
	return len(g.Isolates())
}

// NeighborSimilarity is the mean of 1-|o_u-o_v| over all edges, or 0 when
// the graph has no edges.
func NeighborSimilarity(g *core.Graph) float64 {
	edges := g.Edges()
	if len(edges) == 0 {
		return 0
	}
	ops := g.Opinions()

	var sum float64
	for _, e := range edges {
		d := ops[e.From] - ops[e.To]
		if d < 0 {
			d = -d
		}
		sum += 1 - d
	}

	return sum / float64(len(edges))
}

// Communities returns the connected components of g that contain at least
// one edge. Isolated nodes belong to no community.
func Communities(g *core.Graph) ([][]int, error) {
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("Communities: %w", err)
	}
	out := comps[:0]
	for _, c := range comps {
		if len(c) > 1 {
			out = append(out, c)
		}
	}

	return out, nil
}

// Modularity scores the partition membership (node ID → community index,
// negative = excluded) of g:
//
//	Q = Σ_c [ l_c/m − (d_c/2m)² ]
//
// where m counts edges with both endpoints included, l_c the edges inside
// community c and d_c the summed degree of c over those m edges.
// Returns 0 when m is 0.
func Modularity(g *core.Graph, membership []int) (float64, error) {
	n := g.NodeCount()
	if len(membership) != n {
		return 0, fmt.Errorf("Modularity: %d entries for %d nodes: %w", len(membership), n, ErrPartitionSize)
	}

	k := 0
	for _, c := range membership {
		if c >= k {
			k = c + 1
		}
	}

	var (
		m      int
		within = make([]int, k)
		degree = make([]int, k)
	)
	for _, e := range g.Edges() {
		cu, cv := membership[e.From], membership[e.To]
		if cu < 0 || cv < 0 {
			continue
		}
		m++
		degree[cu]++
		degree[cv]++
		if cu == cv {
			within[cu]++
		}
	}
	if m == 0 {
		return 0, nil
	}

	fm := float64(m)
	var q float64
	for c, dc := range degree {
		share := float64(dc) / (2 * fm)
		q += float64(within[c])/fm - share*share
	}

	return q, nil
}
