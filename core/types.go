// Package core defines the central Graph, Neighbor and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// Vertices are dense integer indices [0, VertexCount). Every graph owns a
// sync.RWMutex; reads take the read lock, so many goroutines may run
// shortest-path queries over one graph concurrently.
//
// This file declares Neighbor, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex index outside [0, VertexCount).
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrBadWeight        - NaN weight.
//	ErrLoopNotAllowed   - self-loop (never allowed).
//	ErrDuplicateEdge    - attempt to add a parallel edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced an index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Neighbor is one adjacency entry: the vertex on the other side of an edge
// and the edge weight.
type Neighbor struct {
	// ID is the index of the adjacent vertex.
	ID int

	// Weight is the cost carried by the edge.
	Weight float64
}

// Edge is a value snapshot of a single edge.
//
// For undirected graphs From < To always holds in snapshots returned by Edges().
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (From→To). The default is undirected.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is an arena-style graph over dense integer vertex indices.
//
// out[u] is the adjacency row of u sorted by Neighbor.ID ascending. For
// undirected graphs every edge is mirrored into both rows. For directed
// graphs in[v] holds the inbound arcs of v (Neighbor.ID is the tail).
type Graph struct {
	mu sync.RWMutex // guards everything below

	directed bool

	out   [][]Neighbor
	in    [][]Neighbor // nil for undirected graphs
	edges int          // logical edge count (undirected edges counted once)
}

// NewGraph creates a Graph with n isolated vertices.
// A negative n is treated as zero.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{}
	var opt GraphOption
	for _, opt = range opts {
		opt(g)
	}
	g.out = make([][]Neighbor, n)
	if g.directed {
		g.in = make([][]Neighbor, n)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// EdgeCount returns the number of edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// checkVertex validates u against the current vertex range. Caller holds a lock.
func (g *Graph) checkVertex(u int) error {
	if u < 0 || u >= len(g.out) {
		return ErrVertexOutOfRange
	}

	return nil
}
