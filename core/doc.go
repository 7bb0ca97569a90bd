// Package core provides a compact, thread-safe in-memory Graph over dense
// integer vertex indices with float64 edge weights.
//
// The Graph G = (V,E) is an arena: vertices are the indices [0, n) fixed at
// construction, and each vertex owns an adjacency row of Neighbor values
// sorted by neighbor index.
//
//   - Undirected (default) vs. directed edges (WithDirected)
//   - No self-loops, no parallel edges (ErrLoopNotAllowed, ErrDuplicateEdge)
//   - Inbound rows for directed graphs, so InDegree is O(1) and ForEachInNeighbor O(deg)
//   - One sync.RWMutex per graph; all readers share the read lock
//
// Why sorted rows?
//
//   - Deterministic iteration: Neighbors, ForEachNeighbor and Edges always
//     visit vertices in ascending index order, so shortest-path tie-breaking
//     and floating-point accumulation order are reproducible.
//   - Membership tests are a binary search over a short row.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) *Graph
//
//	// Edge lifecycle
//	AddEdge(u, v int, w float64) error      // O(deg)
//	RemoveEdge(u, v int) error              // O(deg)
//	HasEdge(u, v int) bool                  // O(log deg)
//	Weight(u, v int) (float64, error)       // O(log deg)
//	SetWeight(u, v int, w float64) error    // O(log deg)
//	Edges() []Edge                          // O(V+E), sorted
//
//	// Adjacency
//	Degree(u int) (int, error)
//	InDegree(u int) (int, error)
//	Neighbors(u int) ([]Neighbor, error)
//	ForEachNeighbor(u int, fn func(Neighbor)) error
//	ForEachInNeighbor(u int, fn func(Neighbor)) error
//
//	// Cloning & summaries
//	Clone() *Graph
//	CloneEmpty() *Graph
//	Stats() GraphStats
//
// Example:
//
//	g := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 2.5)
//	_ = g.AddEdge(1, 2, 1.0)
//	deg, _ := g.Degree(1) // 2
package core
