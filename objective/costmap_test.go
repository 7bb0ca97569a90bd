package objective_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/objective"
	"github.com/katalvlaran/streetgraph/topology"
)

// kite is a triangle 0-1-2 with a tail 2-3; every vertex sits at the speed
// curve's midpoint population, so 1 km takes ≈42.35 s.
func kite(t *testing.T) *topology.Topology {
	t.Helper()
	locs := []r3.Vec{{}, {Y: 1000}, {X: 1000}, {X: 3000}}
	vs := make([]topology.Vertex, len(locs))
	for i, l := range locs {
		vs[i] = topology.Vertex{Location: l, LocalPopulation: 126, Importance: 0.25}
	}
	tp := topology.New(vs)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}} {
		require.NoError(t, tp.Connect(e[0], e[1]))
	}

	return tp
}

type CostMapSuite struct {
	suite.Suite
	tp *topology.Topology
	cm *objective.CostMap
}

func (s *CostMapSuite) SetupTest() {
	s.tp = kite(s.T())
	var err error
	s.cm, err = objective.NewCostMap(s.tp)
	s.Require().NoError(err)
}

func (s *CostMapSuite) cost(u, v int) float64 {
	c, err := s.cm.Cost(edgeset.NewEdge(u, v))
	s.Require().NoError(err)
	return c
}

func (s *CostMapSuite) TestInitialCosts() {
	s.Equal(4, s.cm.EdgeCount())
	s.InEpsilon(52.35, s.cost(0, 1), 0.01)  // degrees 2,2
	s.InEpsilon(72.35, s.cost(0, 2), 0.01)  // degrees 2,3
	s.InEpsilon(89.89, s.cost(1, 2), 0.01)  // diagonal
	s.InEpsilon(139.69, s.cost(2, 3), 0.01) // degrees 3,1
}

func (s *CostMapSuite) TestUpdateCostFollowsDegrees() {
	e := edgeset.NewEdge(2, 3)
	before := s.cost(2, 3)
	s.Require().NoError(s.cm.Remove(edgeset.NewEdge(1, 2)))
	s.Require().NoError(s.cm.UpdateCost(s.tp, e))
	// vertex 2 drops from a 3-way (50 s) to a 2-way (10 s) wait
	s.InDelta(before-20, s.cost(2, 3), 1e-9)
}

func (s *CostMapSuite) TestInsertRemoveClone() {
	e := edgeset.NewEdge(0, 3)
	s.False(s.cm.Has(e))
	s.Require().NoError(s.cm.Insert(e, 7))
	s.True(s.cm.Has(e))
	s.True(errors.Is(s.cm.Insert(e, 7), objective.ErrCostMap))

	clone := s.cm.Clone()
	s.Require().NoError(s.cm.Remove(e))
	s.True(clone.Has(e))
	s.False(s.cm.Has(e))
	s.True(errors.Is(s.cm.Remove(e), objective.ErrCostMap))

	inc, err := clone.Incident(0)
	s.Require().NoError(err)
	s.Equal([]edgeset.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}}, inc)
	s.Equal(s.tp.Edges(), s.cm.Edges())
}

func TestCostMapSuite(t *testing.T) {
	suite.Run(t, new(CostMapSuite))
}
