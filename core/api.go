// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries over a Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a value snapshot of graph shape, used for diagnostics and
// progress logging.
type GraphStats struct {
	Directed      bool // orientation policy
	VertexCount   int  // number of vertices
	EdgeCount     int  // undirected edges counted once
	MaxDegree     int  // largest outbound row
	IsolatedCount int  // vertices without any incident edge
}

// Stats returns a snapshot of the graph shape.
//
// Implementation:
//   - Single pass over the adjacency rows under the read lock.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:    g.directed,
		VertexCount: len(g.out),
		EdgeCount:   g.edges,
	}
	var (
		u   int
		deg int
	)
	for u = range g.out {
		deg = len(g.out[u])
		if deg > stats.MaxDegree {
			stats.MaxDegree = deg
		}
		if deg == 0 && (!g.directed || len(g.in[u]) == 0) {
			stats.IsolatedCount++
		}
	}

	return stats
}
