package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/streetgraph/core"
	"github.com/katalvlaran/streetgraph/edgeset"
)

// ErrInvalidInput reports malformed networks, mismatched vertex counts or
// coincident arc endpoints.
var ErrInvalidInput = errors.New("flow: invalid input")

// Arc is one direction of a street segment.
type Arc struct {
	From, To  int
	Flow      float64
	LaneCount int
}

// Network is an arena of arcs over a fixed vertex set. Arc order is the
// order of the connections it was built from, forward arc first.
//
// The arc structure is mirrored into a directed core.Graph; its in-rows
// answer InDegree and InboundFlow, and TimeCostGraph reweights a copy of it.
type Network struct {
	vertexCount int
	arcs        []Arc
	index       map[[2]int]int
	graph       *core.Graph // directed, zero weights; never mutated after NewNetwork
}

// NewNetwork creates both arcs of every connection with zero flow and one
// lane. Loops, out-of-range endpoints and repeated connections (in either
// orientation) are rejected with ErrInvalidInput.
func NewNetwork(vertexCount int, connections []edgeset.Edge) (*Network, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: vertex count %d", ErrInvalidInput, vertexCount)
	}
	n := &Network{
		vertexCount: vertexCount,
		arcs:        make([]Arc, 0, 2*len(connections)),
		index:       make(map[[2]int]int, 2*len(connections)),
		graph:       core.NewGraph(vertexCount, core.WithDirected()),
	}
	for _, c := range connections {
		if c.U == c.V {
			return nil, fmt.Errorf("%w: loop at %d", ErrInvalidInput, c.U)
		}
		if c.U < 0 || c.U >= vertexCount || c.V < 0 || c.V >= vertexCount {
			return nil, fmt.Errorf("%w: connection %d-%d outside [0,%d)", ErrInvalidInput, c.U, c.V, vertexCount)
		}
		if _, ok := n.index[[2]int{c.U, c.V}]; ok {
			return nil, fmt.Errorf("%w: duplicate connection %d-%d", ErrInvalidInput, c.U, c.V)
		}
		if err := n.addArc(c.U, c.V); err != nil {
			return nil, err
		}
		if err := n.addArc(c.V, c.U); err != nil {
			return nil, err
		}
	}

	return n, nil
}

func (n *Network) addArc(from, to int) error {
	if err := n.graph.AddEdge(from, to, 0); err != nil {
		return fmt.Errorf("%w: arc %d→%d: %v", ErrInvalidInput, from, to, err)
	}
	n.index[[2]int{from, to}] = len(n.arcs)
	n.arcs = append(n.arcs, Arc{From: from, To: to, LaneCount: 1})

	return nil
}

// VertexCount is the number of vertices.
func (n *Network) VertexCount() int { return n.vertexCount }

// Len is the number of arcs.
func (n *Network) Len() int { return len(n.arcs) }

// Arcs returns a snapshot of every arc in arena order.
func (n *Network) Arcs() []Arc {
	res := make([]Arc, len(n.arcs))
	copy(res, n.arcs)

	return res
}

// Arc returns the arc from → to.
func (n *Network) Arc(from, to int) (Arc, bool) {
	id, ok := n.index[[2]int{from, to}]
	if !ok {
		return Arc{}, false
	}

	return n.arcs[id], true
}

// InDegree is the number of arcs entering v; zero for an unknown vertex.
func (n *Network) InDegree(v int) int {
	d, err := n.graph.InDegree(v)
	if err != nil {
		return 0
	}

	return d
}

// InboundFlow is the total flow on arcs entering v, summed in ascending
// tail order.
func (n *Network) InboundFlow(v int) float64 {
	var total float64
	_ = n.graph.ForEachInNeighbor(v, func(nb core.Neighbor) {
		total += n.arcs[n.index[[2]int{nb.ID, v}]].Flow
	})

	return total
}

// Clone returns an independent copy. The index and arc graph are shared;
// neither is written after construction.
func (n *Network) Clone() *Network {
	c := *n
	c.arcs = n.Arcs()

	return &c
}

// sameShape reports whether m has the arcs of n in the same order.
func (n *Network) sameShape(m *Network) bool {
	if n.vertexCount != m.vertexCount || len(n.arcs) != len(m.arcs) {
		return false
	}
	for i := range n.arcs {
		if n.arcs[i].From != m.arcs[i].From || n.arcs[i].To != m.arcs[i].To {
			return false
		}
	}

	return true
}

// SetArc overwrites the flow and lane count of the arc from → to, e.g. to
// warm-start an estimation from a previous run.
func (n *Network) SetArc(from, to int, flow float64, lanes int) error {
	id, ok := n.index[[2]int{from, to}]
	if !ok {
		return fmt.Errorf("%w: no arc %d→%d", ErrInvalidInput, from, to)
	}
	if flow < 0 || math.IsNaN(flow) || math.IsInf(flow, 0) || lanes < 1 {
		return fmt.Errorf("%w: arc %d→%d flow %g lanes %d", ErrInvalidInput, from, to, flow, lanes)
	}
	n.arcs[id].Flow = flow
	n.arcs[id].LaneCount = lanes

	return nil
}
