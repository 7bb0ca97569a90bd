// File: methods_adjacent.go
// Role: Adjacency queries: Degree/InDegree, Neighbors and the
//       allocation-free ForEachNeighbor/ForEachInNeighbor visitors.
// Determinism:
//   - Neighbors are always visited in ascending index order.
// Concurrency:
//   - All methods hold the read lock; visitors must not mutate the graph.

package core

import "fmt"

// Degree returns the number of edges incident to u (out-degree when directed).
func (g *Graph) Degree(u int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return 0, fmt.Errorf("%w: %d", err, u)
	}

	return len(g.out[u]), nil
}

// InDegree returns the number of arcs entering u.
// For undirected graphs it equals Degree.
func (g *Graph) InDegree(u int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return 0, fmt.Errorf("%w: %d", err, u)
	}
	if !g.directed {
		return len(g.out[u]), nil
	}

	return len(g.in[u]), nil
}

// Neighbors returns a copy of u's outbound adjacency row.
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return nil, fmt.Errorf("%w: %d", err, u)
	}
	res := make([]Neighbor, len(g.out[u]))
	copy(res, g.out[u])

	return res, nil
}

// ForEachNeighbor calls fn for every outbound neighbor of u without copying
// the row. fn runs under the read lock and must not mutate g.
func (g *Graph) ForEachNeighbor(u int, fn func(Neighbor)) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("%w: %d", err, u)
	}
	var nb Neighbor
	for _, nb = range g.out[u] {
		fn(nb)
	}

	return nil
}

// ForEachInNeighbor is the inbound counterpart of ForEachNeighbor.
func (g *Graph) ForEachInNeighbor(u int, fn func(Neighbor)) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("%w: %d", err, u)
	}
	row := g.out[u]
	if g.directed {
		row = g.in[u]
	}
	var nb Neighbor
	for _, nb = range row {
		fn(nb)
	}

	return nil
}
