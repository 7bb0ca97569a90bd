package optimize

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/mutation"
	"github.com/katalvlaran/streetgraph/objective"
	"github.com/katalvlaran/streetgraph/topology"
)

// Annealing schedule constants.
const (
	initialPruneFraction = 0.2
	efficiencyOpsFactor  = 0.1
	opsDecay             = 4.0
	regressionStiffness  = 1000.0
	annealingCutoff      = 0.5
)

// Efficiency anneals the efficiency objective over the edge subsets of t.
// The edges of t are the candidates and t provides every static cost; t is
// not modified. The result holds the best edge subset found.
//
// With zero iterations the result is a copy of t and its score.
func Efficiency(t *topology.Topology, iterations int, rng *rand.Rand, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadIterations, iterations)
	}
	o := newOptions(opts)
	if o.sampler == nil {
		o.sampler = objective.NewPopulationSampler(t.VertexCount())
	}
	if rng == nil {
		rng = NewRand(0)
	}
	evalOpts := []objective.EvalOption{objective.WithWorkers(o.workers), objective.WithWeighting(o.weighting)}

	cm, err := objective.NewCostMap(t)
	if err != nil {
		return nil, err
	}
	best, err := objective.EvaluateEfficiency(t, cm, o.sampler.Sample(), evalOpts...)
	if err != nil {
		return nil, err
	}
	if iterations == 0 {
		return &Result{Topology: t.Clone(), Score: best}, nil
	}

	bestMap := cm.Clone()
	state := edgeset.StateFor(t.Edges(), rng)
	var (
		score, progress, probAdd float64
		ops                      int
	)
	for i := 0; i < iterations; i++ {
		progress = 0
		if iterations > 1 {
			progress = float64(i) / float64(iterations-1)
		}
		if i == 0 {
			ops = int(initialPruneFraction * float64(cm.EdgeCount()))
			probAdd = 0
		} else {
			ops = int(float64(cm.EdgeCount()) * efficiencyOpsFactor * math.Exp(-opsDecay*progress))
			if ops < 1 {
				ops = 1
			}
			probAdd = o.probAdd
		}

		m := state.Mutate(ops, probAdd)
		em, err := mutation.NewEfficiency(m, cm)
		if err != nil {
			return nil, fmt.Errorf("optimize: efficiency iteration %d: %w", i, err)
		}
		if err = em.Apply(t, cm); err != nil {
			return nil, fmt.Errorf("optimize: efficiency iteration %d: %w", i, err)
		}
		if score, err = objective.EvaluateEfficiency(t, cm, o.sampler.Sample(), evalOpts...); err != nil {
			return nil, err
		}

		accepted := accept(score, best, progress, rng)
		if score > best {
			bestMap = cm.Clone()
		}
		if score >= best {
			best = score
		}
		if !accepted {
			if err = em.Revert(cm); err != nil {
				return nil, fmt.Errorf("optimize: efficiency iteration %d: %w", i, err)
			}
			state.Revert()
		}
		o.reporter.Report(Progress{
			Phase:      PhaseEfficiency,
			Iteration:  i,
			Iterations: iterations,
			Score:      score,
			BestScore:  best,
			Operations: ops,
			EdgeCount:  cm.EdgeCount(),
			Accepted:   accepted,
		})
	}

	res, err := t.WithEdges(bestMap.Edges())
	if err != nil {
		return nil, err
	}
	final, err := objective.NewCostMap(res)
	if err != nil {
		return nil, err
	}
	score, err = objective.EvaluateEfficiency(res, final, o.sampler.Sample(), evalOpts...)
	if err != nil {
		return nil, err
	}

	return &Result{Topology: res, Score: score}, nil
}

// accept is the annealing rule: improvements always pass, regressions pass
// with probability exp(-1000·relative regression·t) while t ≤ 0.5.
func accept(score, best, progress float64, rng *rand.Rand) bool {
	switch {
	case score >= best:
		return true
	case progress > annealingCutoff:
		return false
	case progress == 0:
		return true
	case best <= 0:
		return false
	}
	p := math.Exp(-regressionStiffness * ((best - score) / best) * progress)

	return rng.Float64() < p
}
