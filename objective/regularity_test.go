package objective_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/builder"
	"github.com/katalvlaran/streetgraph/objective"
)

func TestRegularityAt_Junctions(t *testing.T) {
	cases := []struct {
		name string
		arms []r3.Vec
		want float64
	}{
		{"isolated", nil, -1.0},
		{"dead end", []r3.Vec{{X: 200}}, -1.0},
		{"bend", []r3.Vec{{X: 200}, {X: -200, Y: 200}}, 0.8 * 0.70710678},
		{"straight", []r3.Vec{{X: 200}, {X: -300}}, 0.8},
		{"T", []r3.Vec{{X: 200}, {X: -200}, {Y: 100}}, 0.4},
		{"distorted T", []r3.Vec{{X: 200}, {X: -200}, {X: 200, Y: 100}}, -1.0},
		{"cross", []r3.Vec{{X: 200}, {X: -200}, {Y: 100}, {Y: -100}}, 1.0},
		{"distorted cross", []r3.Vec{{X: 200}, {X: -200}, {Y: 100}, {X: -200, Y: -100}}, -1.0},
		{"5-way", []r3.Vec{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {X: 1, Y: 1}}, -1.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tp, err := builder.BuildTopology(nil, builder.Junction(tc.arms...))
			require.NoError(t, err)
			got, err := objective.RegularityAt(tp, 0)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-6)
		})
	}
}

func TestScoreMap_Grids(t *testing.T) {
	tp, err := builder.BuildTopology(nil, builder.Grid(10))
	require.NoError(t, err)
	m, err := objective.NewScoreMap(tp)
	require.NoError(t, err)
	require.Len(t, m, 100)
	// 64 crosses, 32 dead ends, 4 isolated corners
	assert.InDelta(t, 28.0, m.Total(), 1e-9)

	tp, err = builder.BuildTopology(nil, builder.Grid(3))
	require.NoError(t, err)
	m, err = objective.NewScoreMap(tp)
	require.NoError(t, err)
	assert.InDelta(t, -7.0, m.Total(), 1e-9)
}

func TestRegularityAt_OutOfRange(t *testing.T) {
	tp, err := builder.BuildTopology(nil, builder.Grid(3))
	require.NoError(t, err)
	_, err = objective.RegularityAt(tp, 9)
	assert.Error(t, err)
}
