// Package builder assembles deterministic street-topology fixtures:
// regular grids, meshes, straight lines, single junctions and random probe
// scatters. Fixtures are composed from Constructor closures the same way a
// graph is assembled from generators, then resolved into a
// *topology.Topology (BuildTopology) or a probe set plus connections
// (BuildProbes).
//
// Population model:
//
//   - Every constructor assigns each vertex a non-negative weight.
//   - Importance is the weight's share of the total over all constructors.
//   - Local population is importance × WithPopulation(p); without
//     WithPopulation the weight itself is the local population.
//
// Guarantees:
//
//   - Stable vertex order (constructor order, then the documented order of
//     each constructor) and stable edge order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors; they never panic.
package builder
