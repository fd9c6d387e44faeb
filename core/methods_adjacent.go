// File: methods_adjacent.go
// Role: Neighborhood queries: Neighbors/NeighborAt/Degree/Isolates.
// Determinism:
//   - Neighbors(id) is sorted asc; NeighborAt indexes that same order.
//   - Isolates() is sorted asc.
// Concurrency:
//   - Read lock on mu only.

package core

import "fmt"

// Neighbors returns a sorted copy of the neighbor IDs of id.
//
// Errors:
//   - ErrNodeNotFound if id does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]int, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// NeighborAt returns the k-th neighbor of id in ascending order without
// copying the neighborhood. Used on hot paths that draw a random neighbor.
//
// Errors:
//   - ErrNodeNotFound if id does not exist.
//   - ErrNeighborIndex if k is outside [0, deg(id)).
//
// Complexity: O(1).
func (g *Graph) NeighborAt(id, k int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return 0, fmt.Errorf("NeighborAt(%d,%d): %w", id, k, ErrNodeNotFound)
	}
	if k < 0 || k >= len(g.adjacency[id]) {
		return 0, fmt.Errorf("NeighborAt(%d,%d): degree %d: %w", id, k, len(g.adjacency[id]), ErrNeighborIndex)
	}

	return g.adjacency[id][k], nil
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrNodeNotFound if id does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(g.adjacency[id]), nil
}

// Isolates returns the IDs of nodes with zero neighbors, ascending.
// Complexity: O(V).
func (g *Graph) Isolates() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for id, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			out = append(out, id)
		}
	}

	return out
}
