package streetgraph_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph"
)

// ExampleComputeProbeTopology connects five probes and estimates the
// traffic on the resulting streets.
func ExampleComputeProbeTopology() {
	probes := []streetgraph.Probe{
		{Location: r3.Vec{X: 0, Y: 0}, Population: 400},
		{Location: r3.Vec{X: 1000, Y: 0}, Population: 900},
		{Location: r3.Vec{X: 0, Y: 1000}, Population: 300},
		{Location: r3.Vec{X: 1000, Y: 1000}, Population: 700},
		{Location: r3.Vec{X: 500, Y: 1800}, Population: 100},
	}

	topo, err := streetgraph.ComputeProbeTopology(probes,
		streetgraph.WithRegularitySteps(50),
		streetgraph.WithEfficiencySteps(20),
		streetgraph.WithSeed(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	flows, err := streetgraph.EstimateProbeTopologyFlow(probes, topo.Connections, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range flows.Arcs {
		fmt.Printf("%d→%d flow=%.1f lanes=%d\n", a.From, a.To, a.Flow, a.LaneCount)
	}
}
