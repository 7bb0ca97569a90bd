package travel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/travel"
)

func TestSpeedCurves(t *testing.T) {
	// denser areas are slower
	assert.Greater(t, travel.PopulationSpeed.At(0), travel.PopulationSpeed.At(500))
	assert.InDelta(t, 0.5*(8.33+38.9), travel.PopulationSpeed.At(126), 1e-9)
	assert.InDelta(t, 8.33+0.9*(38.9-8.33), travel.FlowSpeed.At(68.3), 1e-6)
}

func TestTime(t *testing.T) {
	a, b := r3.Vec{}, r3.Vec{X: 1000}

	assert.InEpsilon(t, 26.80, travel.Time(a, b, 0, 0), 0.01)
	assert.InEpsilon(t, 119.97, travel.Time(a, b, 500, 500), 0.01)
	assert.Zero(t, travel.Time(a, a, 10, 10))
	assert.Equal(t, travel.Time(a, b, 10, 300), travel.Time(b, a, 300, 10))
}

func TestIntersectionWaitTime(t *testing.T) {
	want := map[int]float64{0: 60, 1: 60, 2: 10, 3: 50, 4: 60, 5: 250, 7: 350}
	for deg, w := range want {
		assert.Equal(t, w, travel.IntersectionWaitTime(deg), "degree %d", deg)
	}
	assert.Equal(t, 35.0, travel.WaitTime(2, 1))
	assert.Equal(t, 10.0, travel.WaitTime(2, 2))
}

func TestLikelihoodCurves(t *testing.T) {
	require.InDelta(t, 1.0, travel.TopologyLikelihood.At(0), 1e-12)
	require.InDelta(t, 0.0, travel.TopologyLikelihood.At(travel.MaxTolerableTravelTime), 1e-12)
	require.Zero(t, travel.TopologyLikelihood.At(travel.MaxTolerableTravelTime+1))
	require.Zero(t, travel.TopologyLikelihood.At(math.Inf(1)))

	require.InDelta(t, 0.7, travel.FlowLikelihood.At(0), 1e-9)
	require.InDelta(t, 0.0, travel.FlowLikelihood.At(travel.MaxTolerableTravelTime), 1e-12)

	// monotonically decreasing over the tolerable window
	prev := 2.0
	for tt := 0.0; tt <= travel.MaxTolerableTravelTime; tt += 60 {
		l := travel.TopologyLikelihood.At(tt)
		require.LessOrEqual(t, l, prev)
		prev = l
	}
}

func TestCongestionWaitTime(t *testing.T) {
	assert.Zero(t, travel.CongestionWaitTime(2, 1000))
	assert.InDelta(t, 12.2, travel.CongestionWaitTime(3, 305), 1e-9)
}
