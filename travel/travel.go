// Package travel is the cost model shared by the topology optimizer and the
// flow estimator: how fast people move through a neighbourhood, how long
// they wait at an intersection, and how likely they are to make a trip of a
// given duration.
//
// All times are in seconds, distances in metres, speeds in metres per second.
package travel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// MaxTolerableTravelTime is the trip duration beyond which nobody travels.
const MaxTolerableTravelTime = 3600.0

const log9 = 2.197224577

// SpeedCurve is a logistic speed profile falling from Max to Min as a load
// measure (local population, lane flow) grows. P50 is the load at which the
// speed is halfway between the bounds; at P10 the interpolant is 0.9.
type SpeedCurve struct {
	Min float64
	Max float64
	P50 float64
	P10 float64
}

// At returns the speed for the given load.
func (c SpeedCurve) At(load float64) float64 {
	scale := log9 / (c.P10 - c.P50)
	interpolant := 1 / (1 + math.Exp(scale*(c.P50-load)))

	return c.Min + interpolant*(c.Max-c.Min)
}

// PopulationSpeed is the average travel speed in an area given its local
// population.
var PopulationSpeed = SpeedCurve{Min: 8.33, Max: 38.9, P50: 126, P10: 30.6}

// FlowSpeed is the average speed on a lane carrying the given flow.
var FlowSpeed = SpeedCurve{Min: 8.33, Max: 38.9, P50: 122, P10: 68.3}

// LikelihoodCurve is a raised-cosine likelihood of undertaking a trip of
// duration t: 0.5·(1 + cos(ω·t + Phase)) with ω = (π − Phase)/MaxTime, and
// zero for t > MaxTime.
type LikelihoodCurve struct {
	MaxTime float64
	Phase   float64
}

// At returns the likelihood for duration t. Unreachable (+Inf) is zero.
func (c LikelihoodCurve) At(t float64) float64 {
	if t > c.MaxTime {
		return 0
	}
	omega := (math.Pi - c.Phase) / c.MaxTime

	return 0.5 * (1 + math.Cos(omega*t+c.Phase))
}

// TopologyLikelihood scores trips in the efficiency objective; 1 at t = 0.
var TopologyLikelihood = LikelihoodCurve{MaxTime: MaxTolerableTravelTime, Phase: -math.Acos(1)}

// FlowLikelihood weights destinations during flow simulation; 0.7 at t = 0.
var FlowLikelihood = LikelihoodCurve{MaxTime: MaxTolerableTravelTime, Phase: -math.Acos(0.4)}

// Time returns the static travel time between two locations with the given
// local populations: the mean of the times at each endpoint's speed.
// Coincident locations cost zero.
func Time(from, to r3.Vec, popFrom, popTo float64) float64 {
	d := r3.Norm(r3.Sub(to, from))
	if d == 0 {
		return 0
	}

	return 0.5 * (d/PopulationSpeed.At(popFrom) + d/PopulationSpeed.At(popTo))
}

// IntersectionWaitTime is the expected wait at an intersection of the given
// degree. Dead ends and isolated vertices wait as long as a 4-way crossing.
func IntersectionWaitTime(degree int) float64 {
	switch degree {
	case 0, 1:
		return 60
	case 2:
		return 10
	case 3:
		return 50
	case 4:
		return 60
	default:
		return 50 * float64(degree)
	}
}

// WaitTime is the wait attributed to an edge: the mean of both endpoints'
// intersection wait times.
func WaitTime(degreeU, degreeV int) float64 {
	return 0.5 * (IntersectionWaitTime(degreeU) + IntersectionWaitTime(degreeV))
}

const (
	congestionWaitPerUnitFlow = 0.04
	congestionCapacity        = 1.0
	congestionMinInDegree     = 3
)

// CongestionWaitTime is the wait at a junction with the given in-degree and
// total inbound flow. Junctions with fewer than three inbound arcs never queue.
func CongestionWaitTime(inDegree int, inboundFlow float64) float64 {
	if inDegree < congestionMinInDegree {
		return 0
	}

	return inboundFlow * congestionWaitPerUnitFlow / congestionCapacity
}
