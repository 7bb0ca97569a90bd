package streetgraph_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streetgraph"
	"github.com/katalvlaran/streetgraph/builder"
	"github.com/katalvlaran/streetgraph/optimize"
	"github.com/katalvlaran/streetgraph/probe"
	"github.com/katalvlaran/streetgraph/topology"
)

func scatter(t *testing.T, n int) []streetgraph.Probe {
	t.Helper()
	probes, _, err := builder.BuildProbes([]builder.BuilderOption{builder.WithSeed(42)}, builder.Scatter(n))
	require.NoError(t, err)

	return probes
}

func TestComputeProbeTopology(t *testing.T) {
	probes := scatter(t, 30)
	candidate, err := topology.FromProbes(probes, nil)
	require.NoError(t, err)

	var phases []optimize.Phase
	res, err := streetgraph.ComputeProbeTopology(probes,
		streetgraph.WithRegularitySteps(40),
		streetgraph.WithEfficiencySteps(15),
		streetgraph.WithSeed(3),
		streetgraph.WithReporter(optimize.ReporterFunc(func(p optimize.Progress) {
			if len(phases) == 0 || phases[len(phases)-1] != p.Phase {
				phases = append(phases, p.Phase)
			}
		})),
	)
	require.NoError(t, err)

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)
	assert.Equal(t, []optimize.Phase{optimize.PhaseRegularity, optimize.PhaseEfficiency}, phases)
	assert.NotEmpty(t, res.Connections)
	for _, c := range res.Connections {
		assert.True(t, candidate.HasEdge(c), "connection %v is not a candidate", c)
	}
	require.Len(t, res.Components, len(probes))
	assert.GreaterOrEqual(t, res.ComponentCount, 1)
	assert.Greater(t, res.Score, 0.0)
}

func TestComputeProbeTopology_LogsShape(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := streetgraph.ComputeProbeTopology(scatter(t, 12),
		streetgraph.WithRegularitySteps(2),
		streetgraph.WithEfficiencySteps(2),
		streetgraph.WithLogger(logger),
		streetgraph.WithReporter(optimize.NopReporter{}),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=\"candidate topology\" run_id=")
	assert.Contains(t, out, "probes=12")
	assert.Contains(t, out, "max_degree=")
	assert.Contains(t, out, "isolated=")
}

func TestComputeProbeTopology_Deterministic(t *testing.T) {
	probes := scatter(t, 20)
	opts := []streetgraph.Option{
		streetgraph.WithRegularitySteps(30),
		streetgraph.WithEfficiencySteps(10),
		streetgraph.WithSeed(9),
	}
	a, err := streetgraph.ComputeProbeTopology(probes, opts...)
	require.NoError(t, err)
	b, err := streetgraph.ComputeProbeTopology(probes, append(opts, streetgraph.WithWorkers(3))...)
	require.NoError(t, err)

	assert.Equal(t, a.Connections, b.Connections)
	assert.Equal(t, a.Score, b.Score)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestComputeProbeTopology_Samplers(t *testing.T) {
	probes := scatter(t, 20)
	for _, kind := range []streetgraph.SamplerKind{streetgraph.SamplerUniform, streetgraph.SamplerImportance} {
		res, err := streetgraph.ComputeProbeTopology(probes,
			streetgraph.WithRegularitySteps(5),
			streetgraph.WithEfficiencySteps(5),
			streetgraph.WithSamplerKind(kind, 0.5),
		)
		require.NoError(t, err)
		assert.NotEmpty(t, res.Connections)
	}
}

func TestComputeProbeTopology_NoSteps(t *testing.T) {
	probes := scatter(t, 12)
	candidate, err := topology.FromProbes(probes, nil)
	require.NoError(t, err)

	res, err := streetgraph.ComputeProbeTopology(probes,
		streetgraph.WithRegularitySteps(0),
		streetgraph.WithEfficiencySteps(0))
	require.NoError(t, err)
	assert.Equal(t, candidate.Edges(), res.Connections)
}

func TestComputeProbeTopology_InvalidProbes(t *testing.T) {
	_, err := streetgraph.ComputeProbeTopology(scatter(t, 3)[:1])
	assert.True(t, errors.Is(err, probe.ErrInvalidInput))

	dup := scatter(t, 3)
	dup[2].Location = dup[0].Location
	_, err = streetgraph.ComputeProbeTopology(dup)
	assert.True(t, errors.Is(err, probe.ErrInvalidInput))
}

func TestEstimateProbeTopologyFlow(t *testing.T) {
	probes, edges, err := builder.BuildProbes(nil, builder.Line(100, 1000, 10000))
	require.NoError(t, err)

	res, err := streetgraph.EstimateProbeTopologyFlow(probes, edges, 1)
	require.NoError(t, err)
	require.Len(t, res.Arcs, 4)
	require.Len(t, res.Iterations, 1)
	assert.InEpsilon(t, 9.913, res.Arcs[0].Flow, 0.01)
	assert.InEpsilon(t, 101.048, res.Arcs[3].Flow, 0.01)

	_, err = streetgraph.EstimateProbeTopologyFlow(probes, []streetgraph.Connection{{U: 0, V: 0}}, 1)
	assert.Error(t, err)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { streetgraph.WithRegularitySteps(-1) })
	assert.Panics(t, func() { streetgraph.WithEfficiencySteps(-1) })
	assert.Panics(t, func() { streetgraph.WithWorkers(-1) })
	assert.Panics(t, func() { streetgraph.WithSamplerKind(streetgraph.SamplerUniform, 0) })
}
