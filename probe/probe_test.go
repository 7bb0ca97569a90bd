package probe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/probe"
)

func TestValidate(t *testing.T) {
	ok := []probe.Probe{
		{Location: r3.Vec{X: 0}, Population: 10},
		{Location: r3.Vec{X: 100}, Population: 0},
		{Location: r3.Vec{Y: 100}, Population: 5},
	}
	require.NoError(t, probe.Validate(ok, 3))
	require.Equal(t, 15.0, probe.TotalPopulation(ok))

	cases := map[string][]probe.Probe{
		"too few":     ok[:2],
		"coincident":  {ok[0], ok[1], {Location: r3.Vec{X: 100}, Population: 1}},
		"negative":    {ok[0], ok[1], {Location: r3.Vec{Z: 1}, Population: -1}},
		"nan":         {ok[0], ok[1], {Location: r3.Vec{X: math.NaN()}, Population: 1}},
		"inf pop":     {ok[0], ok[1], {Location: r3.Vec{Z: 1}, Population: math.Inf(1)}},
		"zero people": {{Location: r3.Vec{X: 1}}, {Location: r3.Vec{X: 2}}, {Location: r3.Vec{X: 3}}},
	}
	for name, probes := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, probe.Validate(probes, 3), probe.ErrInvalidInput)
		})
	}
}
