// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade for read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is an immutable-by-convention snapshot of catalog sizes.
type GraphStats struct {
	NodeCount    int // number of nodes
	EdgeCount    int // number of undirected edges
	IsolateCount int // nodes with degree 0
	MaxDegree    int // largest degree, 0 for an empty graph
	MinOpinion   float64
	MaxOpinion   float64
}

// Stats produces a deterministic, read-only snapshot of sizes, degree extremes
// and the opinion range.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock once.
//   - Stage 2: Single pass over nodes collecting degree and opinion extremes.
//
// Behavior highlights:
//   - For an empty graph every field is zero.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
//
// AI-Hints:
//   - Use Stats() in tests to assert invariants (opinion range, simplicity
//     via EdgeCount, isolates) without walking the graph by hand.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.opinions),
		EdgeCount: g.edgeCount,
	}
	if len(g.opinions) == 0 {
		return stats
	}

	stats.MinOpinion, stats.MaxOpinion = g.opinions[0], g.opinions[0]
	for id, nbrs := range g.adjacency {
		d := len(nbrs)
		if d == 0 {
			stats.IsolateCount++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		x := g.opinions[id]
		if x < stats.MinOpinion {
			stats.MinOpinion = x
		}
		if x > stats.MaxOpinion {
			stats.MaxOpinion = x
		}
	}

	return stats
}
