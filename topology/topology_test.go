package topology_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/probe"
	"github.com/katalvlaran/streetgraph/topology"
	"github.com/katalvlaran/streetgraph/travel"
)

func squareProbes() []probe.Probe {
	return []probe.Probe{
		{Location: r3.Vec{X: 0, Y: 0}, Population: 100},
		{Location: r3.Vec{X: 0, Y: 1000}, Population: 200},
		{Location: r3.Vec{X: 1000, Y: 1000}, Population: 300},
		{Location: r3.Vec{X: 1000, Y: 0}, Population: 400},
	}
}

func TestFromProbes_SquareIsMesh(t *testing.T) {
	topo, err := topology.FromProbes(squareProbes(), nil)
	require.NoError(t, err)

	require.Equal(t, 4, topo.VertexCount())
	require.Equal(t, 5, topo.EdgeCount())
	for _, e := range []edgeset.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 0, V: 3}} {
		require.True(t, topo.HasEdge(e), "side %v", e)
	}
	// the four points are cocircular, so either diagonal is a valid Delaunay edge
	require.True(t, topo.HasEdge(edgeset.NewEdge(1, 3)) != topo.HasEdge(edgeset.NewEdge(0, 2)))

	require.Equal(t, 300.0, topo.Vertex(2).LocalPopulation)
	require.Equal(t, r3.Vec{X: 1000, Y: 1000}, topo.Vertex(2).Location)
	require.InDelta(t, 0.3, topo.Vertex(2).Importance, 1e-12)

	var sum float64
	for _, v := range topo.Vertices() {
		sum += v.Importance
	}
	require.InDelta(t, 1.0, sum, 1e-12)
}

func TestFromProbes_Degenerate(t *testing.T) {
	two := squareProbes()[:2]
	topo, err := topology.FromProbes(two, nil)
	require.NoError(t, err)
	require.Equal(t, []edgeset.Edge{{U: 0, V: 1}}, topo.Edges())

	line := []probe.Probe{
		{Location: r3.Vec{X: 2000}, Population: 1},
		{Location: r3.Vec{X: 0}, Population: 1},
		{Location: r3.Vec{X: 1000}, Population: 1},
	}
	topo, err = topology.FromProbes(line, nil)
	require.NoError(t, err)
	require.Equal(t, []edgeset.Edge{{U: 0, V: 2}, {U: 1, V: 2}}, topo.Edges())
}

func TestFromProbes_StackedProbes(t *testing.T) {
	stacked := []probe.Probe{
		{Location: r3.Vec{X: 0, Y: 0, Z: 0}, Population: 10},
		{Location: r3.Vec{X: 0, Y: 0, Z: 10}, Population: 10},
		{Location: r3.Vec{X: 100, Y: 0}, Population: 10},
		{Location: r3.Vec{X: 0, Y: 100}, Population: 10},
	}
	require.NoError(t, probe.Validate(stacked, 2))

	_, err := topology.FromProbes(stacked, nil)
	require.ErrorIs(t, err, probe.ErrInvalidInput)
	require.Contains(t, err.Error(), "probes 0 and 1")

	stacked[1].Location.X = 1
	topo, err := topology.FromProbes(stacked, nil)
	require.NoError(t, err)
	for v := 0; v < topo.VertexCount(); v++ {
		d, err := topo.Degree(v)
		require.NoError(t, err)
		require.Positive(t, d, "vertex %d isolated", v)
	}
}

func TestFromProbes_Errors(t *testing.T) {
	dup := squareProbes()
	dup[3].Location = dup[0].Location
	_, err := topology.FromProbes(dup, nil)
	require.ErrorIs(t, err, probe.ErrInvalidInput)

	boom := errors.New("boom")
	_, err = topology.FromProbes(squareProbes(), topology.TriangulatorFunc(func([]r3.Vec) ([]edgeset.Edge, error) {
		return nil, boom
	}))
	require.ErrorIs(t, err, boom)

	_, err = topology.FromProbes(squareProbes(), topology.TriangulatorFunc(func([]r3.Vec) ([]edgeset.Edge, error) {
		return []edgeset.Edge{{U: 0, V: 9}}, nil
	}))
	require.ErrorIs(t, err, topology.ErrTopology)
}

// TopologySuite covers edge lifecycle on a fixed 4-vertex layout.
type TopologySuite struct {
	suite.Suite
	topo *topology.Topology
}

func (s *TopologySuite) SetupTest() {
	s.topo = topology.New(topology.VerticesFromProbes(squareProbes()))
}

func (s *TopologySuite) TestConnectUsesStaticTravelTime() {
	s.Require().NoError(s.topo.Connect(0, 3))

	w, err := s.topo.StaticCost(3, 0)
	s.Require().NoError(err)
	a, b := s.topo.Vertex(0), s.topo.Vertex(3)
	s.Equal(travel.Time(a.Location, b.Location, a.LocalPopulation, b.LocalPopulation), w)

	deg, err := s.topo.Degree(0)
	s.Require().NoError(err)
	s.Equal(1, deg)
}

func (s *TopologySuite) TestConnectErrors() {
	s.Require().NoError(s.topo.Connect(0, 1))
	s.ErrorIs(s.topo.Connect(1, 0), topology.ErrTopology)
	s.ErrorIs(s.topo.Connect(0, 4), topology.ErrTopology)
	s.ErrorIs(s.topo.Disconnect(2, 3), topology.ErrTopology)
	_, err := s.topo.StaticCost(2, 3)
	s.ErrorIs(err, topology.ErrTopology)
}

func (s *TopologySuite) TestCloneAndWithEdges() {
	s.Require().NoError(s.topo.Connect(0, 1))
	c := s.topo.Clone()
	s.Require().NoError(c.Connect(1, 2))
	s.Require().NoError(c.Disconnect(0, 1))

	s.Equal([]edgeset.Edge{{U: 0, V: 1}}, s.topo.Edges())
	s.Equal([]edgeset.Edge{{U: 1, V: 2}}, c.Edges())

	w, err := s.topo.WithEdges([]edgeset.Edge{{U: 2, V: 3}, {U: 0, V: 2}})
	s.Require().NoError(err)
	s.Equal([]edgeset.Edge{{U: 0, V: 2}, {U: 2, V: 3}}, w.Edges())
	nbs, err := w.Neighbors(2)
	s.Require().NoError(err)
	s.Equal([]int{0, 3}, nbs)

	s.Equal(squareProbes(), s.topo.Probes())
}

func TestTopologySuite(t *testing.T) {
	suite.Run(t, new(TopologySuite))
}
