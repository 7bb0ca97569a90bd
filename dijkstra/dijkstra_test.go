// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/streetgraph/core"
	"github.com/katalvlaran/streetgraph/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NoSource(t *testing.T) {
	g := core.NewGraph(2)
	_, _, err := dijkstra.Dijkstra(g)
	if !errors.Is(err, dijkstra.ErrNoSource) {
		t.Fatalf("Expected ErrNoSource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph when graph is nil, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph(2)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(5))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph(2)
	if err := g.AddEdge(0, 1, -1); err != nil {
		t.Fatal(err)
	}
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"max distance":  func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) },
		"inf threshold": func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}
}

// ------------------------------------------------------------------------
// 2. Functional Tests.
// ------------------------------------------------------------------------

// diamond: 0-1 (1), 0-2 (4), 1-2 (2), 1-3 (6), 2-3 (1), 4 isolated.
func diamond(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(5, opts...)
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 4}, {From: 1, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 6}, {From: 2, To: 3, Weight: 1},
	} {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

func TestDijkstra_Undirected(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 3, 4, math.Inf(1)}
	for v, d := range want {
		if dist[v] != d {
			t.Errorf("dist[%d] = %g; want %g", v, dist[v], d)
		}
	}
	if prev[4] != dijkstra.NoPredecessor || prev[0] != dijkstra.NoPredecessor {
		t.Errorf("source and unreachable must have no predecessor: %v", prev)
	}
	path := dijkstra.PathTo(prev, 0, 3)
	if len(path) != 4 || path[0] != 0 || path[1] != 1 || path[2] != 2 || path[3] != 3 {
		t.Errorf("PathTo(3) = %v; want [0 1 2 3]", path)
	}
	if dijkstra.PathTo(prev, 0, 4) != nil {
		t.Errorf("PathTo(unreachable) must be nil")
	}
}

func TestDijkstra_DirectedFollowsArcs(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(diamond(t, core.WithDirected()), dijkstra.Source(3))
	if err != nil {
		t.Fatal(err)
	}
	// every arc points away from 0, so nothing is reachable from 3
	for v := 0; v < 3; v++ {
		if !math.IsInf(dist[v], 1) {
			t.Errorf("dist[%d] = %g; want +Inf", v, dist[v])
		}
	}
}

func TestDijkstra_MaxDistanceAndThreshold(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source(0), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if dist[1] != 1 || !math.IsInf(dist[3], 1) {
		t.Errorf("MaxDistance: got %v", dist)
	}

	dist, _, err = dijkstra.Dijkstra(diamond(t), dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(2))
	if err != nil {
		t.Fatal(err)
	}
	// only the weight-1 edges survive: 0-1 and 2-3
	if dist[1] != 1 || !math.IsInf(dist[2], 1) {
		t.Errorf("InfEdgeThreshold: got %v", dist)
	}
}

func TestDijkstra_NoPathSliceByDefault(t *testing.T) {
	_, prev, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source(0))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Fatalf("prev must be nil without WithReturnPath")
	}
}
