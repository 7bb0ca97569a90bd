package objective

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/streetgraph/dijkstra"
	"github.com/katalvlaran/streetgraph/topology"
	"github.com/katalvlaran/streetgraph/travel"
)

// Weighting selects which side of a trip carries population in the
// efficiency objective.
//
// With importance defined as population share and a symmetric cost map,
// both weightings evaluate to the same value; they differ only for
// topologies whose importance is set independently of population.
type Weighting int

const (
	// WeightSource: Σ_t L(T(s,t))·importance(t), scaled by localPopulation(s).
	WeightSource Weighting = iota
	// WeightTarget: Σ_t L(T(s,t))·localPopulation(t), scaled by importance(s).
	WeightTarget
)

// EvalOption configures EvaluateEfficiency.
type EvalOption func(*evalConfig)

type evalConfig struct {
	workers   int
	weighting Weighting
}

// WithWorkers runs up to n shortest-path queries concurrently.
// n ≤ 1 evaluates sequentially. Panics on a negative n.
func WithWorkers(n int) EvalOption {
	if n < 0 {
		panic("objective: workers must be non-negative")
	}
	return func(c *evalConfig) { c.workers = n }
}

// WithWeighting selects the population weighting. Default WeightSource.
func WithWeighting(w Weighting) EvalOption {
	return func(c *evalConfig) { c.weighting = w }
}

// EvaluateEfficiency estimates the transportation efficiency of the cost
// map c over the vertices of t:
//
//	Σ_samples Frequency · Correction · Transported(source) / batch.Count
//
// Per-source results are reduced in sample order, so the value does not
// depend on the number of workers. An empty batch scores zero.
func EvaluateEfficiency(t *topology.Topology, c *CostMap, b Batch, opts ...EvalOption) (float64, error) {
	cfg := evalConfig{workers: 1, weighting: WeightSource}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkShape(t, c); err != nil {
		return 0, err
	}
	if b.Count == 0 || len(b.Samples) == 0 {
		return 0, nil
	}

	results := make([]float64, len(b.Samples))
	if cfg.workers <= 1 {
		var err error
		for i, s := range b.Samples {
			if results[i], err = Transported(t, c, s.Source, cfg.weighting); err != nil {
				return 0, err
			}
		}
	} else {
		p := pool.New().WithErrors().WithMaxGoroutines(cfg.workers)
		for i, s := range b.Samples {
			p.Go(func() error {
				v, err := Transported(t, c, s.Source, cfg.weighting)
				results[i] = v
				return err
			})
		}
		if err := p.Wait(); err != nil {
			return 0, err
		}
	}

	var total float64
	for i, s := range b.Samples {
		total += float64(s.Frequency) * s.Correction * results[i]
	}

	return total / float64(b.Count), nil
}

// Transported is the population-weighted likelihood mass reachable from
// source over c. Unreachable vertices contribute nothing.
func Transported(t *topology.Topology, c *CostMap, source int, w Weighting) (float64, error) {
	if err := checkShape(t, c); err != nil {
		return 0, err
	}
	dist, _, err := dijkstra.Dijkstra(c.Graph(), dijkstra.Source(source))
	if err != nil {
		return 0, fmt.Errorf("objective: shortest paths from %d: %w", source, err)
	}
	var reach float64
	for target, d := range dist {
		l := travel.TopologyLikelihood.At(d)
		if l == 0 {
			continue
		}
		if w == WeightTarget {
			reach += l * t.Vertex(target).LocalPopulation
		} else {
			reach += l * t.Vertex(target).Importance
		}
	}
	if w == WeightTarget {
		return reach * t.Vertex(source).Importance, nil
	}

	return reach * t.Vertex(source).LocalPopulation, nil
}

// checkShape requires c to cover exactly the vertices of t.
func checkShape(t *topology.Topology, c *CostMap) error {
	if tv, cv := t.VertexCount(), c.Graph().VertexCount(); tv != cv {
		return fmt.Errorf("%w: topology has %d vertices, cost map %d", ErrCostMap, tv, cv)
	}

	return nil
}
