package flow

import (
	"math"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/streetgraph/core"
	"github.com/katalvlaran/streetgraph/dijkstra"
	"github.com/katalvlaran/streetgraph/probe"
	"github.com/katalvlaran/streetgraph/travel"
)

// Simulate routes every source's population over the time-cost graph of
// previous and returns a network with the same arcs and lane counts whose
// flows are the routed amounts. previous is not modified.
func Simulate(previous *Network, probes []probe.Probe, opts ...Option) (*Network, error) {
	o := newOptions(opts)
	g, err := TimeCostGraph(previous, probes)
	if err != nil {
		return nil, err
	}

	sim := previous.Clone()
	for i := range sim.arcs {
		sim.arcs[i].Flow = 0
	}
	n := previous.vertexCount
	if n == 0 || len(sim.arcs) == 0 {
		return sim, nil
	}

	workers := o.workers
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	buffers := make([][]float64, workers)
	chunk := (n + workers - 1) / workers

	if workers == 1 {
		buffers[0] = make([]float64, len(sim.arcs))
		for s := 0; s < n; s++ {
			if err = route(g, sim, probes, s, buffers[0]); err != nil {
				return nil, err
			}
		}
	} else {
		p := pool.New().WithErrors().WithMaxGoroutines(workers)
		for w := 0; w < workers; w++ {
			lo, hi := w*chunk, min((w+1)*chunk, n)
			buf := make([]float64, len(sim.arcs))
			buffers[w] = buf
			p.Go(func() error {
				for s := lo; s < hi; s++ {
					if err := route(g, sim, probes, s, buf); err != nil {
						return err
					}
				}
				return nil
			})
		}
		if err = p.Wait(); err != nil {
			return nil, err
		}
	}

	for _, buf := range buffers {
		for i, f := range buf {
			sim.arcs[i].Flow += f
		}
	}

	return sim, nil
}

// route adds the flow sent from source s into acc, indexed like net's arcs.
// net is only read.
func route(g *core.Graph, net *Network, probes []probe.Probe, s int, acc []float64) error {
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(s), dijkstra.WithReturnPath())
	if err != nil {
		return err
	}

	posterior := make([]float64, len(dist))
	var evidence float64
	for t, d := range dist {
		if math.IsInf(d, 1) {
			continue
		}
		posterior[t] = travel.FlowLikelihood.At(d) * probes[t].Population
		evidence += posterior[t]
	}
	if evidence == 0 {
		return nil
	}

	origin := probes[s].Population
	var amount float64
	for t := range dist {
		if t == s || posterior[t] == 0 {
			continue
		}
		amount = posterior[t] / evidence * origin
		for c := t; c != s; c = prev[c] {
			acc[net.index[[2]int{prev[c], c}]] += amount
		}
	}

	return nil
}
