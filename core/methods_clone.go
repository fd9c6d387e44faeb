// File: methods_clone.go
// Role: Deep copies and isolate-free views of a graph.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.
// AI-HINT (file):
//   - Clone is a deep copy: mutating the clone never affects the source and
//     vice versa. Simulations rely on this to keep the initial snapshot.

package core

// Clone returns a deep copy of the Graph: opinions, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.opinions)))
	clone.opinions = append(clone.opinions, g.opinions...)
	clone.adjacency = make([][]int, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		if len(nbrs) > 0 {
			clone.adjacency[id] = append(make([]int, 0, len(nbrs)), nbrs...)
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// WithoutIsolates returns a deep copy of g restricted to nodes with at
// least one neighbor. Survivors are renumbered 0..k-1 in ascending order of
// their old IDs, so neighbor lists stay sorted and Edges() keeps its order.
// Complexity: O(V + E).
func (g *Graph) WithoutIsolates() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	remap := make([]int, len(g.adjacency))
	clone := NewGraph(WithCapacity(len(g.opinions)))
	for id, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			remap[id] = -1
			continue
		}
		remap[id] = len(clone.opinions)
		clone.opinions = append(clone.opinions, g.opinions[id])
	}

	clone.adjacency = make([][]int, len(clone.opinions))
	for id, nbrs := range g.adjacency {
		if remap[id] < 0 {
			continue
		}
		out := make([]int, len(nbrs))
		for k, v := range nbrs {
			out[k] = remap[v]
		}
		clone.adjacency[remap[id]] = out
	}
	clone.edgeCount = g.edgeCount

	return clone
}
