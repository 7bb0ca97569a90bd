package optimize

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/mutation"
	"github.com/katalvlaran/streetgraph/objective"
	"github.com/katalvlaran/streetgraph/topology"
)

const regularityOpsFraction = 0.1

// Regularity hill-climbs the regularity objective over the edge subsets of
// t for the given number of iterations. Every edge of t is a candidate;
// t itself is not modified.
//
// A candidate is kept iff its score is at least the best so far, so the
// returned score never falls below the score of t.
func Regularity(t *topology.Topology, iterations int, rng *rand.Rand, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadIterations, iterations)
	}
	o := newOptions(opts)

	cur := t.Clone()
	scores, err := objective.NewScoreMap(cur)
	if err != nil {
		return nil, err
	}
	best := scores.Total()
	state := edgeset.StateFor(cur.Edges(), rng)
	initialEdges := float64(cur.EdgeCount())

	var score float64
	for i := 0; i < iterations; i++ {
		ops := int(initialEdges * regularityOpsFraction * (1 - float64(i)/float64(iterations)))
		if ops < 1 {
			ops = 1
		}
		m := state.Mutate(ops, o.probAdd)
		rm := mutation.NewRegularity(m, scores, best)
		if score, err = rm.Apply(cur, scores); err != nil {
			return nil, fmt.Errorf("optimize: regularity iteration %d: %w", i, err)
		}

		accepted := score >= best
		if accepted {
			best = score
		} else {
			if _, err = rm.Revert(cur, scores); err != nil {
				return nil, fmt.Errorf("optimize: regularity iteration %d: %w", i, err)
			}
			state.Revert()
		}
		o.reporter.Report(Progress{
			Phase:      PhaseRegularity,
			Iteration:  i,
			Iterations: iterations,
			Score:      score,
			BestScore:  best,
			Operations: ops,
			EdgeCount:  cur.EdgeCount(),
			Accepted:   accepted,
		})
	}

	return &Result{Topology: cur, Score: best}, nil
}
