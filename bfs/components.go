package bfs

import (
	"fmt"

	"github.com/katalvlaran/opinet/core"
)

// Components partitions g into connected components, one BFS per unvisited
// node in ascending ID order. Each component lists its nodes in BFS visit
// order, so the first element is the smallest ID of that component and the
// components themselves are ordered by that ID. Isolated nodes form
// singleton components.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	seen := make([]bool, n)
	var out [][]int
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		res, err := BFS(g, start)
		if err != nil {
			return nil, fmt.Errorf("bfs: Components from %d: %w", start, err)
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// Membership flattens a component list into a node → component index slice
// of length n. Nodes not listed in any component map to -1.
func Membership(components [][]int, n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = -1
	}
	for c, comp := range components {
		for _, id := range comp {
			if id >= 0 && id < n {
				m[id] = c
			}
		}
	}

	return m
}
