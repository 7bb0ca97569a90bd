// SPDX-License-Identifier: MIT
// Package: streetgraph
//
// streetgraph.go - public entry points of the pipeline.

package streetgraph

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/streetgraph/bfs"
	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/flow"
	"github.com/katalvlaran/streetgraph/objective"
	"github.com/katalvlaran/streetgraph/optimize"
	"github.com/katalvlaran/streetgraph/probe"
	"github.com/katalvlaran/streetgraph/topology"
)

// Probe is a population sample at a location.
type Probe = probe.Probe

// Connection is an undirected pair of probe indices.
type Connection = edgeset.Edge

// TopologyResult is the outcome of ComputeProbeTopology.
type TopologyResult struct {
	RunID           string
	Connections     []Connection // sorted by (U, V)
	Score           float64      // efficiency objective
	RegularityScore float64      // regularity objective after the first phase
	Components      []int        // component label per probe
	ComponentCount  int
}

// FlowResult is the outcome of EstimateProbeTopologyFlow.
type FlowResult struct {
	RunID      string
	Arcs       []flow.Arc
	Iterations []flow.Statistics
}

// ComputeProbeTopology synthesizes a street network over probes:
//
//  1. validate the probes and triangulate their locations;
//  2. hill-climb the regularity objective over the triangulation;
//  3. anneal the efficiency objective over the result.
//
// Both phases draw from one seeded stream.
func ComputeProbeTopology(probes []Probe, opts ...Option) (*TopologyResult, error) {
	o := newOptions(opts)
	runID := uuid.NewString()
	logger := o.logger.With(slog.String("run_id", runID))
	ctx := context.Background()
	started := time.Now()

	candidate, err := topology.FromProbes(probes, o.triangulator)
	if err != nil {
		return nil, err
	}
	shape := candidate.Graph().Stats()
	logger.LogAttrs(ctx, slog.LevelInfo, "candidate topology",
		slog.Int("probes", shape.VertexCount),
		slog.Int("edges", shape.EdgeCount),
		slog.Int("max_degree", shape.MaxDegree))

	reporter := o.reporter
	if reporter == nil {
		reporter = optimize.LogReporter(logger)
	}
	rng := optimize.NewRand(o.seed)

	reg, err := optimize.Regularity(candidate, o.regularitySteps, rng, optimize.WithReporter(reporter))
	if err != nil {
		return nil, fmt.Errorf("streetgraph: regularity phase: %w", err)
	}
	sampler, err := newSampler(o, reg.Topology, rng)
	if err != nil {
		return nil, err
	}
	eff, err := optimize.Efficiency(reg.Topology, o.efficiencySteps, rng,
		optimize.WithReporter(reporter),
		optimize.WithSampler(sampler),
		optimize.WithWorkers(o.workers),
	)
	if err != nil {
		return nil, fmt.Errorf("streetgraph: efficiency phase: %w", err)
	}

	labels, count, err := bfs.Components(eff.Topology.Graph())
	if err != nil {
		return nil, err
	}
	res := &TopologyResult{
		RunID:           runID,
		Connections:     eff.Topology.Edges(),
		Score:           eff.Score,
		RegularityScore: reg.Score,
		Components:      labels,
		ComponentCount:  count,
	}
	shape = eff.Topology.Graph().Stats()
	logger.LogAttrs(ctx, slog.LevelInfo, "topology computed",
		slog.Int("edges", shape.EdgeCount),
		slog.Int("max_degree", shape.MaxDegree),
		slog.Int("isolated", shape.IsolatedCount),
		slog.Float64("score", res.Score),
		slog.Float64("regularity", res.RegularityScore),
		slog.Int("components", count),
		slog.Duration("elapsed", time.Since(started)))

	return res, nil
}

// GenerateProbes synthesizes the population probes of a square city
// citySize metres wide from seed (0 selects the default seed).
func GenerateProbes(citySize float64, seed int64) ([]Probe, error) {
	return probe.Generate(citySize, optimize.NewRand(seed))
}

// EstimateProbeTopologyFlow estimates per-arc flow and lanes on connections.
func EstimateProbeTopologyFlow(probes []Probe, connections []Connection, iterations int, opts ...Option) (*FlowResult, error) {
	o := newOptions(opts)
	runID := uuid.NewString()
	logger := o.logger.With(slog.String("run_id", runID))

	est, err := flow.Estimate(probes, connections, iterations,
		flow.WithWorkers(o.workers),
		flow.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &FlowResult{RunID: runID, Arcs: est.Network.Arcs(), Iterations: est.Iterations}, nil
}

func newSampler(o options, t *topology.Topology, rng *rand.Rand) (objective.Sampler, error) {
	n := t.VertexCount()
	count := int(math.Ceil(o.sampleRatio * float64(n)))
	if count < 1 {
		count = 1
	}
	switch o.samplerKind {
	case SamplerUniform:
		return objective.NewUniformSampler(n, count, rng), nil
	case SamplerImportance:
		return objective.NewImportanceSampler(t, count, rng)
	default:
		return objective.NewPopulationSampler(n), nil
	}
}
