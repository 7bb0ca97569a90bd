package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streetgraph/bfs"
	"github.com/katalvlaran/streetgraph/core"
)

func cycle4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(6)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(1), 3)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(core.NewGraph(1), 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	res, err := bfs.BFS(cycle4(t), 0)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 3, 2}, res.Order)
	require.Equal(t, []int{0, 1, 2, 1, -1, -1}, res.Depth)
	require.False(t, res.Reached(4))

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)

	_, err = res.PathTo(5)
	require.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(cycle4(t), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3}, res.Order)

	res, err = bfs.BFS(cycle4(t), 0, bfs.WithFilterNeighbor(func(_, nb int) bool { return nb != 3 }))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_OnVisitAbortsAndCancel(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(cycle4(t), 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(cycle4(t), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	labels, count, err := bfs.Components(cycle4(t))
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, []int{0, 0, 0, 0, 1, 1}, labels)

	labels, count, err = bfs.Components(core.NewGraph(3))
	require.NoError(t, err)
	require.Equal(t, 3, count)
	require.Equal(t, []int{0, 1, 2}, labels)
}
