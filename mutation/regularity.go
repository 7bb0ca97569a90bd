package mutation

import (
	"fmt"

	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/objective"
	"github.com/katalvlaran/streetgraph/topology"
)

// Regularity is a revertible mutation of a topology and its score map.
type Regularity struct {
	additions []edgeset.Edge
	deletions []edgeset.Edge
	endpoints []int
	scores    []float64 // endpoint scores before Apply
	score     float64   // total before Apply
	applied   bool
	reverted  bool
}

// NewRegularity snapshots the scores of every endpoint of m; score is the
// current regularity total.
func NewRegularity(m edgeset.Mutation, scores objective.ScoreMap, score float64) *Regularity {
	r := &Regularity{
		additions: m.Additions(),
		deletions: m.Deletions(),
		endpoints: m.Endpoints(),
		score:     score,
	}
	r.scores = make([]float64, len(r.endpoints))
	for i, v := range r.endpoints {
		r.scores[i] = scores[v]
	}

	return r
}

// Apply mutates t, rescores the endpoints in scores and returns the new total.
func (r *Regularity) Apply(t *topology.Topology, scores objective.ScoreMap) (float64, error) {
	if r.applied {
		return 0, fmt.Errorf("%w: already applied", ErrState)
	}
	r.applied = true

	for _, e := range r.deletions {
		if err := t.Disconnect(e.U, e.V); err != nil {
			return 0, err
		}
	}
	for _, e := range r.additions {
		if err := t.Connect(e.U, e.V); err != nil {
			return 0, err
		}
	}

	total := r.score
	for i, v := range r.endpoints {
		s, err := objective.RegularityAt(t, v)
		if err != nil {
			return 0, err
		}
		scores[v] = s
		total += s - r.scores[i]
	}

	return total, nil
}

// Revert restores t and scores and returns the total before Apply.
func (r *Regularity) Revert(t *topology.Topology, scores objective.ScoreMap) (float64, error) {
	if !r.applied || r.reverted {
		return 0, fmt.Errorf("%w: nothing to revert", ErrState)
	}
	r.reverted = true

	for _, e := range r.additions {
		if err := t.Disconnect(e.U, e.V); err != nil {
			return 0, err
		}
	}
	for _, e := range r.deletions {
		if err := t.Connect(e.U, e.V); err != nil {
			return 0, err
		}
	}
	for i, v := range r.endpoints {
		scores[v] = r.scores[i]
	}

	return r.score, nil
}
