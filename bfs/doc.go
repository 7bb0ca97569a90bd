// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted hop distances, parent links, and visit order,
// plus connected-component labelling built on the same walker.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: Depth[v] hop count from start, -1 when unreached
//   - Parent: Parent[v] predecessor in the BFS tree, -1 for the root and unreached
//   - OnVisit hook may abort the walk with an error.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components labels every vertex with the index of its connected component.
//
// Determinism
//
//	Adjacency rows of core.Graph are sorted by vertex index and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity
//
//	O(V + E) time and O(V) space for both BFS and Components.
package bfs
