package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opinet/bfs"
	"github.com/katalvlaran/opinet/core"
)

// graphWith builds a graph of n nodes (opinion 0) and the given edges.
func graphWith(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		_, err := g.AddNode(0)
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := graphWith(t, 1, nil)
	_, err = bfs.BFS(g, 7)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleDepths covers a 4-cycle 0–1–2–3–0.
func TestBFS_CycleDepths(t *testing.T) {
	g := graphWith(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Depth)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// TestBFS_MaxDepthAndFilter checks depth limiting and edge filtering on a path.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := graphWith(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	_, err = res.PathTo(4)
	assert.Error(t, err)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 1 && nbr == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_Hooks checks that hooks fire and that OnVisit errors abort.
func TestBFS_Hooks(t *testing.T) {
	g := graphWith(t, 3, [][2]int{{0, 1}, {1, 2}})

	var enq []int
	res, err := bfs.BFS(g, 0, bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }))
	require.NoError(t, err)
	assert.Equal(t, res.Order, enq)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancelled returns the context error when cancelled up front.
func TestBFS_Cancelled(t *testing.T) {
	g := graphWith(t, 2, [][2]int{{0, 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestComponents covers isolates, multiple components and membership.
func TestComponents(t *testing.T) {
	g := graphWith(t, 6, [][2]int{{0, 3}, {3, 4}, {1, 5}})

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3, 4}, {1, 5}, {2}}, comps)
	assert.Equal(t, []int{0, 1, 2, 0, 0, 1}, bfs.Membership(comps, 6))

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	empty, err := bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
