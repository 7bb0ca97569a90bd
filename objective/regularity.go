package objective

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/topology"
)

// Per-degree regularity constants.
const (
	deadEndScore      = -1.0
	overConnected     = -1.2
	twoWayFactor      = 0.8
	threeWayBase      = 0.4
	fourWayBase       = 1.0
	distortedScore    = -1.0
	distortionMinimum = -0.5 // dissimilarity of two arms 60° apart
)

// RegularityAt scores vertex v of t by its degree and the angular spread of
// its incident segments.
//
// minDissimilarity is the minimum over all pairs of arms of the negated dot
// product of their unit directions: 1 for opposite arms, 0 for perpendicular
// arms, -1 for overlapping arms.
//
//	degree 0, 1: -1.0
//	degree 2:    0.8 · minDissimilarity
//	degree 3:    0.4 + minDissimilarity
//	degree 4:    1.0 + minDissimilarity
//	degree ≥ 5:  -1.2
//
// A 3- or 4-way junction with two arms closer than 60° is distorted and
// scores -1.0.
func RegularityAt(t *topology.Topology, v int) (float64, error) {
	nbs, err := t.Neighbors(v)
	if err != nil {
		return 0, err
	}
	switch deg := len(nbs); {
	case deg <= 1:
		return deadEndScore, nil
	case deg >= 5:
		return overConnected, nil
	}

	origin := t.Vertex(v).Location
	dirs := make([]r3.Vec, len(nbs))
	for i, u := range nbs {
		d := r3.Sub(t.Vertex(u).Location, origin)
		if n := r3.Norm(d); n > 0 {
			dirs[i] = r3.Scale(1/n, d)
		}
	}
	minDissimilarity := math.Inf(1)
	for i := 0; i < len(dirs); i++ {
		for j := i + 1; j < len(dirs); j++ {
			minDissimilarity = math.Min(minDissimilarity, -r3.Dot(dirs[i], dirs[j]))
		}
	}

	switch len(dirs) {
	case 2:
		return twoWayFactor * minDissimilarity, nil
	case 3:
		if minDissimilarity < distortionMinimum {
			return distortedScore, nil
		}
		return threeWayBase + minDissimilarity, nil
	default:
		if minDissimilarity < distortionMinimum {
			return distortedScore, nil
		}
		return fourWayBase + minDissimilarity, nil
	}
}

// ScoreMap holds the regularity score of every vertex; Total is the
// regularity objective.
type ScoreMap []float64

// NewScoreMap scores every vertex of t.
func NewScoreMap(t *topology.Topology) (ScoreMap, error) {
	m := make(ScoreMap, t.VertexCount())
	var err error
	for v := range m {
		if m[v], err = RegularityAt(t, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Total sums the per-vertex scores in vertex order.
func (m ScoreMap) Total() float64 {
	var total float64
	for _, s := range m {
		total += s
	}

	return total
}
