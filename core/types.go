// Package core defines the opinion network Graph, its Node and Edge types,
// and provides guarded primitives for building, querying, and cloning graphs.
//
// All core APIs share one sync.RWMutex, so a finished graph can be read from
// many goroutines while a simulation owns the only writer.
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrNeighborIndex       - neighbor index outside [0, deg).
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - attempt to add a parallel edge.
//	ErrOpinionOutOfRange   - opinion outside [0,1] or NaN.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNeighborIndex indicates a neighbor index outside [0, deg(id)).
	ErrNeighborIndex = errors.New("core: neighbor index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrOpinionOutOfRange indicates an opinion outside the closed unit interval.
	ErrOpinionOutOfRange = errors.New("core: opinion out of range [0,1]")
)

// Opinion bounds. Every stored opinion satisfies MinOpinion <= x <= MaxOpinion.
const (
	MinOpinion = 0.0
	MaxOpinion = 1.0
)

// Node is a read-only snapshot of one agent.
//
// ID is the stable index 0..N-1 assigned by AddNode.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID int

	// Opinion is the agent's stance in [0,1].
	Opinion float64
}

// Edge is an unordered pair of node IDs, stored canonically with From < To.
type Edge struct {
	From int
	To   int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for n nodes. Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.opinions = make([]float64, 0, n)
			g.adjacency = make([][]int, 0, n)
		}
	}
}

// Graph is an undirected simple graph whose nodes carry one opinion each.
//
// adjacency[id] holds the neighbor IDs of id in ascending order; every edge
// is mirrored in both endpoint lists. Sorted lists keep neighbor iteration
// deterministic, which seeded simulations rely on.
type Graph struct {
	mu sync.RWMutex // guards opinions, adjacency and edgeCount

	opinions  []float64 // node ID → opinion
	adjacency [][]int   // node ID → sorted neighbor IDs
	edgeCount int       // number of undirected edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any preallocation requested by options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// validOpinion reports whether x lies in [MinOpinion, MaxOpinion].
// NaN fails both comparisons and is rejected.
func validOpinion(x float64) bool {
	return x >= MinOpinion && x <= MaxOpinion
}
