// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc with From < To.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - The graph is always simple: AddEdge rejects loops and parallel edges,
//     so a remove+add pair keeps EdgeCount() unchanged.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v with an undirected edge.
//
// Steps:
//  1. Reject u == v (ErrLoopNotAllowed).
//  2. Lock mu, check both endpoints exist.
//  3. Reject an existing u-v edge (ErrMultiEdgeNotAllowed).
//  4. Insert v into adjacency[u] and u into adjacency[v], keeping order.
//
// Complexity: O(deg(u) + deg(v)) for the sorted inserts.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNode(u) || !g.hasNode(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeNotFound)
	}
	if containsSorted(g.adjacency[u], v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	g.adjacency[u] = insertSorted(g.adjacency[u], v)
	g.adjacency[v] = insertSorted(g.adjacency[v], u)
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the u-v edge and its mirror.
//
// Errors:
//   - ErrNodeNotFound if either endpoint is missing.
//   - ErrEdgeNotFound if the nodes are not adjacent (no silent ignore).
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNode(u) || !g.hasNode(v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrNodeNotFound)
	}
	if !containsSorted(g.adjacency[u], v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	g.adjacency[u] = deleteSorted(g.adjacency[u], v)
	g.adjacency[v] = deleteSorted(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u and v are adjacent. Unknown IDs yield false.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(u) || !g.hasNode(v) {
		return false
	}

	return containsSorted(g.adjacency[u], v)
}

// Edges returns every edge once, canonical From < To, sorted asc.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		// nbrs is sorted, so skipping v <= u emits each edge once in order.
		start := sort.SearchInts(nbrs, u+1)
		for _, v := range nbrs[start:] {
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// containsSorted reports whether x is present in the ascending slice s.
func containsSorted(s []int, x int) bool {
	i := sort.SearchInts(s, x)
	return i < len(s) && s[i] == x
}

// insertSorted places x into ascending s; callers ensure x is absent.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}

// deleteSorted drops x from ascending s; callers ensure x is present.
func deleteSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	return append(s[:i], s[i+1:]...)
}
