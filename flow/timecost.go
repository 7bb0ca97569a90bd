package flow

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/core"
	"github.com/katalvlaran/streetgraph/probe"
	"github.com/katalvlaran/streetgraph/travel"
)

// TimeCostGraph returns the directed graph of n weighted by time cost:
//
//	distance(from, to) / FlowSpeed(flow / lanes) + CongestionWaitTime(to)
//
// probes[i] locates vertex i.
func TimeCostGraph(n *Network, probes []probe.Probe) (*core.Graph, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil network", ErrInvalidInput)
	}
	if len(probes) != n.vertexCount {
		return nil, fmt.Errorf("%w: %d probes for %d vertices", ErrInvalidInput, len(probes), n.vertexCount)
	}

	wait := make([]float64, n.vertexCount)
	for v := range wait {
		wait[v] = travel.CongestionWaitTime(n.InDegree(v), n.InboundFlow(v))
	}

	g := n.graph.Clone()
	for _, a := range n.arcs {
		d := r3.Norm(r3.Sub(probes[a.To].Location, probes[a.From].Location))
		if d == 0 {
			return nil, fmt.Errorf("%w: arc %d→%d has zero length", ErrInvalidInput, a.From, a.To)
		}
		lanes := a.LaneCount
		if lanes < 1 {
			lanes = 1
		}
		w := d/travel.FlowSpeed.At(a.Flow/float64(lanes)) + wait[a.To]
		if err := g.SetWeight(a.From, a.To, w); err != nil {
			return nil, fmt.Errorf("flow: time cost of %d→%d: %w", a.From, a.To, err)
		}
	}

	return g, nil
}
