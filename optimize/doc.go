// Package optimize searches the edge subsets of a candidate street topology
// for a network that is regular and transports population efficiently.
//
// Two local-search drivers share one shape: draw a random batch of edge
// toggles from an edgeset.State, apply it as a revertible mutation, score
// the result and either keep it or roll both the mutation and the state
// back.
//
//   - Regularity is strict hill climbing on the regularity objective. The
//     batch size shrinks linearly from 10% of the initial edge count to 1.
//   - Efficiency is simulated annealing on the efficiency objective. The
//     first iteration prunes 20% of the edges unconditionally; afterwards
//     the batch size decays as exp(-4t) and regressions are accepted with
//     probability exp(-1000·regression·t) during the first half of the
//     schedule only. The best cost map seen is kept aside and returned.
//
// Randomness:
//   - Exactly one *rand.Rand drives a run (edge toggles and acceptance
//     draws). Use NewRand(seed) for reproducible runs.
//
// Progress:
//   - A Reporter receives one Progress per iteration. LogReporter throttles
//     to every 10% of the schedule and writes through log/slog.
//
// Complexity:
//   - Regularity: O(iterations · ops · Δ²) with Δ the maximum degree.
//   - Efficiency: O(iterations · S · (V + E) log V) for S sampled sources.
package optimize
