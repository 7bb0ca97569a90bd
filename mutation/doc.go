// Package mutation applies edgeset.Mutation batches to the structures an
// optimizer scores, and undoes them.
//
// A revertible mutation snapshots every value it is about to overwrite when
// it is created. Apply then updates only what the mutation touches, and
// Revert restores the snapshot, leaving the structure bit-identical to its
// state before Apply.
//
//   - Efficiency works on an objective.CostMap: deleted edges keep their
//     cost for re-insertion, edges incident to a mutated endpoint keep the
//     cost that depended on the old degrees.
//   - Regularity works on a topology.Topology and its objective.ScoreMap:
//     the score of every mutated endpoint is recomputed and the total is
//     adjusted by the difference.
//
// A mutation must be applied at most once and reverted at most once, in
// that order, against the same structures it was created for.
package mutation
