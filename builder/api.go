// SPDX-License-Identifier: MIT
// Package: streetgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Two orchestrators: BuildTopology and BuildProbes. Both resolve cfg once
//     and run constructors in order against one sketch.
//   - All public factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical fixtures.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/probe"
	"github.com/katalvlaran/streetgraph/topology"
)

// Constructor adds vertices and segments to a sketch using the resolved
// builderConfig. Constructors MUST validate parameters early and return
// sentinel errors (no panics).
type Constructor func(s *sketch, cfg builderConfig) error

// sketch accumulates a fixture before population is resolved.
type sketch struct {
	locations []r3.Vec
	weights   []float64
	edges     []edgeset.Edge
	seen      map[edgeset.Edge]struct{}
}

// addVertex appends a vertex and returns its index.
func (s *sketch) addVertex(loc r3.Vec, weight float64) int {
	s.locations = append(s.locations, loc)
	s.weights = append(s.weights, weight)

	return len(s.locations) - 1
}

// connect records the segment u-v once.
func (s *sketch) connect(u, v int) {
	if s.seen == nil {
		s.seen = make(map[edgeset.Edge]struct{})
	}
	e := edgeset.NewEdge(u, v)
	if _, ok := s.seen[e]; ok {
		return
	}
	s.seen[e] = struct{}{}
	s.edges = append(s.edges, e)
}

// BuildTopology resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting topology.
func BuildTopology(bopts []BuilderOption, cons ...Constructor) (*topology.Topology, error) {
	vertices, edges, err := build(bopts, cons)
	if err != nil {
		return nil, err
	}
	t := topology.New(vertices)
	for _, e := range edges {
		if err = t.Connect(e.U, e.V); err != nil {
			return nil, fmt.Errorf("BuildTopology: %v: %w", err, ErrConstructFailed)
		}
	}

	return t, nil
}

// BuildProbes is BuildTopology for callers that want raw pipeline inputs:
// one probe per vertex (population = local population) and the segments.
func BuildProbes(bopts []BuilderOption, cons ...Constructor) ([]probe.Probe, []edgeset.Edge, error) {
	vertices, edges, err := build(bopts, cons)
	if err != nil {
		return nil, nil, err
	}
	probes := make([]probe.Probe, len(vertices))
	for i, v := range vertices {
		probes[i] = probe.Probe{Location: v.Location, Population: v.LocalPopulation}
	}

	return probes, edges, nil
}

func build(bopts []BuilderOption, cons []Constructor) ([]topology.Vertex, []edgeset.Edge, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sketch{}
	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildTopology: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildTopology: %w", err)
		}
	}

	var total float64
	for i, w := range s.weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, nil, fmt.Errorf("BuildTopology: vertex %d weight %g: %w", i, w, ErrBadPopulation)
		}
		total += w
	}
	vertices := make([]topology.Vertex, len(s.locations))
	for i := range vertices {
		vertices[i].Location = s.locations[i]
		if total > 0 {
			vertices[i].Importance = s.weights[i] / total
		}
		if cfg.population > 0 {
			vertices[i].LocalPopulation = vertices[i].Importance * cfg.population
		} else {
			vertices[i].LocalPopulation = s.weights[i]
		}
	}

	return vertices, s.edges, nil
}
