// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streetgraph/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on a star
// are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph(num + 1)
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, id, float64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	for i, nb := range nbs {
		require.Equal(t, i+1, nb.ID, "row must stay sorted")
	}
}

// TestConcurrentReaders mixes readers with a writer toggling one edge.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 1))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = g.AddEdge(1, 2, 1)
			_ = g.RemoveEdge(1, 2)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = g.ForEachNeighbor(1, func(core.Neighbor) {})
			_ = g.Edges()
		}
	}()
	wg.Wait()

	require.True(t, g.HasEdge(0, 1))
}
