// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with the same vertex count and orientation
// but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var opts []GraphOption
	if g.directed {
		opts = append(opts, WithDirected())
	}

	return NewGraph(len(g.out), opts...)
}

// Clone returns a deep copy of the Graph: orientation, vertices, edges and weights.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed: g.directed,
		out:      copyRows(g.out),
		edges:    g.edges,
	}
	if g.directed {
		clone.in = copyRows(g.in)
	}

	return clone
}

func copyRows(rows [][]Neighbor) [][]Neighbor {
	res := make([][]Neighbor, len(rows))
	var u int
	for u = range rows {
		if len(rows[u]) == 0 {
			continue
		}
		res[u] = make([]Neighbor, len(rows[u]))
		copy(res[u], rows[u])
	}

	return res
}
