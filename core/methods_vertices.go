// File: methods_vertices.go
// Role: Node lifecycle and opinion access: AddNode/HasNode/NodeCount,
//       Opinion/SetOpinion/Opinions/Nodes.
// Determinism:
//   - Node IDs are assigned sequentially from 0.
//   - Opinions() and Nodes() are ordered by node ID asc.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddNode appends a node with the given opinion and returns its ID.
//
// Errors:
//   - ErrOpinionOutOfRange if opinion is outside [0,1] or NaN.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(opinion float64) (int, error) {
	if !validOpinion(opinion) {
		return 0, fmt.Errorf("AddNode: opinion=%g: %w", opinion, ErrOpinionOutOfRange)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.opinions)
	g.opinions = append(g.opinions, opinion)
	g.adjacency = append(g.adjacency, nil)

	return id, nil
}

// HasNode reports whether id names an existing node.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNode(id)
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.opinions)
}

// Opinion returns the opinion held by node id.
//
// Errors:
//   - ErrNodeNotFound if id does not exist.
func (g *Graph) Opinion(id int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return 0, fmt.Errorf("Opinion(%d): %w", id, ErrNodeNotFound)
	}

	return g.opinions[id], nil
}

// SetOpinion overwrites the opinion of node id.
//
// Errors:
//   - ErrNodeNotFound if id does not exist.
//   - ErrOpinionOutOfRange if x is outside [0,1] or NaN; the stored value is unchanged.
func (g *Graph) SetOpinion(id int, x float64) error {
	if !validOpinion(x) {
		return fmt.Errorf("SetOpinion(%d): opinion=%g: %w", id, x, ErrOpinionOutOfRange)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNode(id) {
		return fmt.Errorf("SetOpinion(%d): %w", id, ErrNodeNotFound)
	}
	g.opinions[id] = x

	return nil
}

// Opinions returns a copy of all opinions indexed by node ID.
// Complexity: O(V).
func (g *Graph) Opinions() []float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]float64, len(g.opinions))
	copy(out, g.opinions)

	return out
}

// Nodes returns a snapshot of every node ordered by ID.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.opinions))
	for id, x := range g.opinions {
		out[id] = Node{ID: id, Opinion: x}
	}

	return out
}

// hasNode is the lock-free membership check; callers hold mu.
func (g *Graph) hasNode(id int) bool {
	return id >= 0 && id < len(g.opinions)
}
