// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over core.Graph with non-negative float64 edge weights.
//
// Overview:
//
//   - Distances and predecessors are dense slices indexed by vertex, so a run
//     allocates O(V) once and never touches a map.
//   - Works on undirected and directed graphs (arcs are followed From→To).
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource, ErrNilGraph, ErrVertexNotFound: invalid invocation.
//   - ErrNegativeWeight: a negative edge weight was found by the pre-scan.
//
// Concurrency:
//
//   - Dijkstra only reads g, so many runs over the same graph may proceed in
//     parallel (the objective evaluator and the flow simulation rely on this).
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path := dijkstra.PathTo(prev, 0, 4)
package dijkstra
