// Package flow estimates traffic on a street network by repeated
// shortest-path simulation.
//
// The network is directed: every undirected connection becomes two arcs,
// each carrying a flow (vehicles per unit time) and a lane count.
//
// One estimation iteration:
//
//  1. TimeCostGraph weights every arc by its travel time at the current
//     per-lane flow plus the congestion wait at its target junction.
//  2. Simulate routes, for every source s, the population of s to every
//     target t along the shortest path, in proportion to the posterior
//     travel probability
//
//     P(t | s) = L(T(s,t)) · pop(t) / Σ_u L(T(s,u)) · pop(u)
//
//     where L is the flow travel-time likelihood. Sources whose evidence
//     (the denominator) is zero transport nothing.
//  3. Update blends the simulated flow into the current one with an
//     exponential moving average (weight 0.1) and recomputes the lanes
//     as max(1, round(√flow / 6.2)).
//
// Estimate runs the loop for a fixed number of iterations from zero flow
// and one lane everywhere.
//
// Concurrency:
//   - Simulate fans the per-source searches out over a bounded
//     sourcegraph/conc pool; each worker accumulates into its own buffer
//     and buffers are reduced in worker order, so a run is reproducible
//     for a fixed worker count.
//
// Complexity (per iteration):
//   - Time:   O(V · (V + A) log V) for V vertices and A arcs.
//   - Memory: O(workers · A + V).
package flow
