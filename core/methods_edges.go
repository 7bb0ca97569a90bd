// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/SetWeight/Edges.
// Determinism:
//   - Adjacency rows stay sorted by neighbor index after every mutation.
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under the write lock.
//   - Read queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge inserts the edge u→v (mirrored for undirected graphs) with weight w.
//
// Steps:
//  1. Validate indices, loop and weight.
//  2. Lock, reject a parallel edge.
//  3. Insert into the sorted rows (out[u], and out[v] or in[v]).
//
// Complexity: O(deg(u) + deg(v)) for the sorted insert.
func (g *Graph) AddEdge(u, v int, w float64) error {
	// 1) Input validation that does not need the catalog.
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}
	if math.IsNaN(w) {
		return fmt.Errorf("%w: %d-%d is NaN", ErrBadWeight, u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("%w: %d", err, u)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("%w: %d", err, v)
	}

	// 2) Multi-edge constraint.
	if _, ok := findNeighbor(g.out[u], v); ok {
		return fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, u, v)
	}

	// 3) Link adjacency.
	g.out[u] = insertNeighbor(g.out[u], Neighbor{ID: v, Weight: w})
	if g.directed {
		g.in[v] = insertNeighbor(g.in[v], Neighbor{ID: u, Weight: w})
	} else {
		g.out[v] = insertNeighbor(g.out[v], Neighbor{ID: u, Weight: w})
	}
	g.edges++

	return nil
}

// RemoveEdge deletes the edge u→v (and its mirror for undirected graphs).
// Returns ErrEdgeNotFound if absent.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("%w: %d", err, u)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("%w: %d", err, v)
	}

	i, ok := findNeighbor(g.out[u], v)
	if !ok {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}
	g.out[u] = removeAt(g.out[u], i)
	if g.directed {
		j, _ := findNeighbor(g.in[v], u)
		g.in[v] = removeAt(g.in[v], j)
	} else {
		j, _ := findNeighbor(g.out[v], u)
		g.out[v] = removeAt(g.out[v], j)
	}
	g.edges--

	return nil
}

// HasEdge reports whether u→v exists. Out-of-range indices report false.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.checkVertex(u) != nil || g.checkVertex(v) != nil {
		return false
	}
	_, ok := findNeighbor(g.out[u], v)

	return ok
}

// Weight returns the weight of u→v, or ErrEdgeNotFound.
func (g *Graph) Weight(u, v int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return 0, fmt.Errorf("%w: %d", err, u)
	}
	if err := g.checkVertex(v); err != nil {
		return 0, fmt.Errorf("%w: %d", err, v)
	}
	i, ok := findNeighbor(g.out[u], v)
	if !ok {
		return 0, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}

	return g.out[u][i].Weight, nil
}

// SetWeight overwrites the weight of the existing edge u→v (both mirror
// entries for undirected graphs).
func (g *Graph) SetWeight(u, v int, w float64) error {
	if math.IsNaN(w) {
		return fmt.Errorf("%w: %d-%d is NaN", ErrBadWeight, u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("%w: %d", err, u)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("%w: %d", err, v)
	}
	i, ok := findNeighbor(g.out[u], v)
	if !ok {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}
	g.out[u][i].Weight = w

	var j int
	if g.directed {
		j, _ = findNeighbor(g.in[v], u)
		g.in[v][j].Weight = w
	} else {
		j, _ = findNeighbor(g.out[v], u)
		g.out[v][j].Weight = w
	}

	return nil
}

// Edges returns a snapshot of every edge sorted by (From, To).
// Undirected edges appear once with From < To.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res := make([]Edge, 0, g.edges)
	var (
		u  int
		nb Neighbor
	)
	for u = range g.out {
		for _, nb = range g.out[u] {
			if !g.directed && nb.ID < u {
				continue
			}
			res = append(res, Edge{From: u, To: nb.ID, Weight: nb.Weight})
		}
	}

	return res
}

// findNeighbor binary-searches a sorted row for id.
func findNeighbor(row []Neighbor, id int) (int, bool) {
	i := sort.Search(len(row), func(k int) bool { return row[k].ID >= id })

	return i, i < len(row) && row[i].ID == id
}

// insertNeighbor inserts nb keeping row sorted by ID.
func insertNeighbor(row []Neighbor, nb Neighbor) []Neighbor {
	i, _ := findNeighbor(row, nb.ID)
	row = append(row, Neighbor{})
	copy(row[i+1:], row[i:])
	row[i] = nb

	return row
}

// removeAt deletes row[i] preserving order.
func removeAt(row []Neighbor, i int) []Neighbor {
	copy(row[i:], row[i+1:])

	return row[:len(row)-1]
}
