// Package objective scores street topologies.
//
// Two objectives are provided:
//
//   - Regularity rewards "+"-like and "T"-like intersections and penalizes
//     dead ends, distorted junctions and over-connected vertices. It is a sum
//     of per-vertex scores kept in a ScoreMap.
//   - Efficiency measures how much population can reach how much other
//     population within a tolerable travel time, computed with one shortest
//     path query per sampled source over a CostMap.
package objective

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/streetgraph/core"
	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/topology"
	"github.com/katalvlaran/streetgraph/travel"
)

// ErrCostMap reports a CostMap operation on a missing or duplicate edge.
var ErrCostMap = errors.New("objective: invalid cost map operation")

// CostMap mirrors the segments of a topology, weighting each by its total
// traversal cost: static travel time plus the wait time implied by the
// current degrees of both endpoints.
//
// The structure of a CostMap may diverge from the topology it was built
// from while an optimizer explores; the topology remains the source of
// static costs for every candidate segment.
type CostMap struct {
	graph *core.Graph
}

// NewCostMap builds the cost map of every segment of t.
func NewCostMap(t *topology.Topology) (*CostMap, error) {
	c := &CostMap{graph: t.Graph().CloneEmpty()}
	edges := t.Edges()
	var err error
	for _, e := range edges {
		if err = c.graph.AddEdge(e.U, e.V, 0); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCostMap, err)
		}
	}
	for _, e := range edges {
		if err = c.UpdateCost(t, e); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// UpdateCost recomputes the total cost of e from the static cost recorded
// in t and the current degrees of its endpoints in c.
func (c *CostMap) UpdateCost(t *topology.Topology, e edgeset.Edge) error {
	static, err := t.StaticCost(e.U, e.V)
	if err != nil {
		return err
	}
	du, err := c.graph.Degree(e.U)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCostMap, err)
	}
	dv, err := c.graph.Degree(e.V)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCostMap, err)
	}
	if err = c.graph.SetWeight(e.U, e.V, static+travel.WaitTime(du, dv)); err != nil {
		return fmt.Errorf("%w: %v", ErrCostMap, err)
	}

	return nil
}

// Cost returns the current total cost of e.
func (c *CostMap) Cost(e edgeset.Edge) (float64, error) {
	w, err := c.graph.Weight(e.U, e.V)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCostMap, err)
	}

	return w, nil
}

// Insert adds e with the given cost.
func (c *CostMap) Insert(e edgeset.Edge, cost float64) error {
	if err := c.graph.AddEdge(e.U, e.V, cost); err != nil {
		return fmt.Errorf("%w: %v", ErrCostMap, err)
	}

	return nil
}

// Remove deletes e.
func (c *CostMap) Remove(e edgeset.Edge) error {
	if err := c.graph.RemoveEdge(e.U, e.V); err != nil {
		return fmt.Errorf("%w: %v", ErrCostMap, err)
	}

	return nil
}

// SetCost overwrites the cost of the existing edge e.
func (c *CostMap) SetCost(e edgeset.Edge, cost float64) error {
	if err := c.graph.SetWeight(e.U, e.V, cost); err != nil {
		return fmt.Errorf("%w: %v", ErrCostMap, err)
	}

	return nil
}

// Has reports whether e is present.
func (c *CostMap) Has(e edgeset.Edge) bool { return c.graph.HasEdge(e.U, e.V) }

// Incident returns every edge of c touching v, ascending by the other endpoint.
func (c *CostMap) Incident(v int) ([]edgeset.Edge, error) {
	var res []edgeset.Edge
	err := c.graph.ForEachNeighbor(v, func(nb core.Neighbor) {
		res = append(res, edgeset.NewEdge(v, nb.ID))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCostMap, err)
	}

	return res, nil
}

// Edges returns every edge sorted by (U, V).
func (c *CostMap) Edges() []edgeset.Edge {
	raw := c.graph.Edges()
	res := make([]edgeset.Edge, len(raw))
	for i, e := range raw {
		res[i] = edgeset.NewEdge(e.From, e.To)
	}

	return res
}

// EdgeCount is the number of edges.
func (c *CostMap) EdgeCount() int { return c.graph.EdgeCount() }

// Graph exposes the weighted graph for shortest-path queries.
func (c *CostMap) Graph() *core.Graph { return c.graph }

// Clone returns an independent copy.
func (c *CostMap) Clone() *CostMap { return &CostMap{graph: c.graph.Clone()} }
