// Package core provides the in-memory opinion network used by the
// simulation engine: a simple undirected Graph whose nodes each hold one
// opinion in [0,1].
//
// The Graph G = (V,E) guarantees:
//
//   - Dense node IDs 0..N-1 assigned by AddNode, never reused or removed.
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges
//     (ErrMultiEdgeNotAllowed) at any time.
//   - Every stored opinion lies in [0,1] (ErrOpinionOutOfRange).
//   - Deterministic iteration: Neighbors(), Edges() and Isolates() are
//     sorted, so a seeded random walk over the graph is reproducible.
//   - One sync.RWMutex guarding all state.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(opinion float64) (id int, err error) // O(1) amortized
//	HasNode(id int) bool                         // O(1)
//	Opinion(id int) (float64, error)             // O(1)
//	SetOpinion(id int, x float64) error          // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error                      // O(deg)
//	RemoveEdge(u, v int) error                   // O(deg)
//	HasEdge(u, v int) bool                       // O(log deg)
//
//	// Query
//	Neighbors(id int) ([]int, error)             // sorted copy
//	NeighborAt(id, k int) (int, error)           // O(1), no copy
//	Degree(id int) (int, error)
//	Isolates() []int
//	Nodes() []Node
//	Opinions() []float64
//	Edges() []Edge                               // From < To, sorted
//	NodeCount() int
//	EdgeCount() int
//	Stats() GraphStats
//
//	// Cloning
//	Clone() *Graph                               // deep copy
//	WithoutIsolates() *Graph                     // copy minus isolates, renumbered
//
// Collaborators that receive a Graph from a finished run should treat it as a
// snapshot: call Clone before mutating it if it is also used as a baseline.
package core
