package flow

import (
	"fmt"
	"math"
)

// Update blending and lane constants.
const (
	updateWeight = 0.1
	laneDivisor  = 6.2
	minLaneCount = 1
)

// Update folds simulated into current in place:
//
//	flow  ← 0.1 · simulated + 0.9 · flow
//	lanes ← max(1, round(√flow / 6.2))
//
// and returns the statistics of the updated flows. Both networks must have
// the same arcs in the same order.
func Update(simulated, current *Network) (Statistics, error) {
	if simulated == nil || current == nil || !simulated.sameShape(current) {
		return Statistics{}, fmt.Errorf("%w: simulated and current networks differ", ErrInvalidInput)
	}
	flows := make([]float64, len(current.arcs))
	for i := range current.arcs {
		a := &current.arcs[i]
		a.Flow = updateWeight*simulated.arcs[i].Flow + (1-updateWeight)*a.Flow
		a.LaneCount = max(minLaneCount, int(math.Round(math.Sqrt(a.Flow)/laneDivisor)))
		flows[i] = a.Flow
	}

	return NewStatistics(flows), nil
}
