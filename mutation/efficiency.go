package mutation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/objective"
	"github.com/katalvlaran/streetgraph/topology"
)

// ErrState reports Apply or Revert called out of order.
var ErrState = errors.New("mutation: apply/revert out of order")

type edgeCost struct {
	edge edgeset.Edge
	cost float64
}

// Efficiency is a revertible mutation of a CostMap.
type Efficiency struct {
	additions []edgeset.Edge
	deleted   []edgeCost // snapshot of deleted edges
	affected  []edgeCost // snapshot of surviving edges incident to a mutated endpoint
	applied   bool
	reverted  bool
}

// NewEfficiency snapshots the costs in c that applying m will change.
func NewEfficiency(m edgeset.Mutation, c *objective.CostMap) (*Efficiency, error) {
	r := &Efficiency{additions: m.Additions()}

	var (
		cost float64
		err  error
	)
	dels := m.Deletions()
	r.deleted = make([]edgeCost, len(dels))
	for i, e := range dels {
		if cost, err = c.Cost(e); err != nil {
			return nil, fmt.Errorf("mutation: snapshot deletion %v: %w", e, err)
		}
		r.deleted[i] = edgeCost{edge: e, cost: cost}
	}

	seen := make(map[edgeset.Edge]struct{})
	for _, v := range m.Endpoints() {
		incident, err := c.Incident(v)
		if err != nil {
			return nil, err
		}
		for _, e := range incident {
			if _, ok := seen[e]; ok || m.IsDeletion(e) {
				continue
			}
			seen[e] = struct{}{}
			if cost, err = c.Cost(e); err != nil {
				return nil, err
			}
			r.affected = append(r.affected, edgeCost{edge: e, cost: cost})
		}
	}

	return r, nil
}

// Apply removes the deletions from c, inserts the additions and recomputes
// the cost of every added or affected edge from t's static costs.
func (r *Efficiency) Apply(t *topology.Topology, c *objective.CostMap) error {
	if r.applied {
		return fmt.Errorf("%w: already applied", ErrState)
	}
	r.applied = true

	for _, d := range r.deleted {
		if err := c.Remove(d.edge); err != nil {
			return err
		}
	}
	for _, e := range r.additions {
		if err := c.Insert(e, 0); err != nil {
			return err
		}
	}
	for _, e := range r.additions {
		if err := c.UpdateCost(t, e); err != nil {
			return err
		}
	}
	for _, a := range r.affected {
		if err := c.UpdateCost(t, a.edge); err != nil {
			return err
		}
	}

	return nil
}

// Revert restores c to its state before Apply.
func (r *Efficiency) Revert(c *objective.CostMap) error {
	if !r.applied || r.reverted {
		return fmt.Errorf("%w: nothing to revert", ErrState)
	}
	r.reverted = true

	for _, e := range r.additions {
		if err := c.Remove(e); err != nil {
			return err
		}
	}
	for _, d := range r.deleted {
		if err := c.Insert(d.edge, d.cost); err != nil {
			return err
		}
	}
	for _, a := range r.affected {
		if err := c.SetCost(a.edge, a.cost); err != nil {
			return err
		}
	}

	return nil
}
