// Package edgeset tracks which candidate street segments are currently part
// of a topology and proposes random batches of additions and deletions.
//
// The set of candidates is fixed; a State splits it into an active prefix and
// a deleted suffix of one array, so moving an edge between partitions is a
// single swap and every batch can be undone by replaying its swaps backwards.
package edgeset

import "fmt"

// Edge is an undirected vertex pair normalized so that U <= V.
// Two Edges compare equal iff they join the same vertices, so Edge is a
// valid map key regardless of the order the endpoints were given in.
type Edge struct {
	U int
	V int
}

// NewEdge returns the normalized Edge joining u and v.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Other returns the endpoint of e opposite to x. x must be an endpoint.
func (e Edge) Other(x int) int {
	if x == e.U {
		return e.V
	}

	return e.U
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}
