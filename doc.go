// Package streetgraph synthesizes street networks from population probes
// and estimates the traffic they carry.
//
// What is streetgraph?
//
//	A deterministic, seedable pipeline built on small packages:
//		• probe      – population samples, validation, synthetic cities
//		• topology   – candidate street graph (Delaunay triangulation)
//		• objective  – regularity and efficiency objectives, cost maps, samplers
//		• mutation   – revertible edge mutations with local cost propagation
//		• optimize   – hill climbing (regularity) and annealing (efficiency)
//		• flow       – iterative flow and lane-count estimation
//		• core, dijkstra, bfs – the graph and its traversals
//		• builder    – fixtures: grids, meshes, lines, junctions, scatters
//
// Pipeline:
//
//	city size ─▶ GenerateProbes ─▶ probes
//	probes ─▶ Delaunay candidates ─▶ regularity phase ─▶ efficiency phase ─▶ connections
//	probes + connections ─▶ flow iterations ─▶ per-arc flow and lanes
//
// Quick example:
//
//	probes, err := streetgraph.GenerateProbes(3000, 7)
//	if err != nil { ... }
//	res, err := streetgraph.ComputeProbeTopology(probes,
//		streetgraph.WithRegularitySteps(500),
//		streetgraph.WithEfficiencySteps(50),
//		streetgraph.WithSeed(7),
//	)
//	if err != nil { ... }
//	fl, err := streetgraph.EstimateProbeTopologyFlow(probes, res.Connections, 10)
//
// Determinism: for a fixed seed, probe order and worker count every result
// is reproducible. Library code never logs on its own; pass WithLogger.
package streetgraph
