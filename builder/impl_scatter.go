// SPDX-License-Identifier: MIT
// Package: streetgraph/builder
//
// impl_scatter.go - implementation of Scatter(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); requires cfg.rng (else ErrNeedRandSource).
//   - Places n vertices uniformly at random in the square
//     [0, scale·√n) × [0, scale·√n), so the mean spacing is about scale.
//   - Weights are uniform in [1, 100).
//   - Emits no segments: the scatter is meant to be triangulated.
//
// Determinism:
//   - Deterministic for a fixed seed.

package builder

import "math"

const (
	methodScatter   = "Scatter"
	minScatterNodes = 3
	minScatterPop   = 1.0
	maxScatterPop   = 100.0
)

// Scatter returns a Constructor that adds n randomly placed probes.
func Scatter(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minScatterNodes {
			return builderErrorf(methodScatter, "n=%d (must be ≥ %d)", ErrTooFewVertices, n, minScatterNodes)
		}
		if cfg.rng == nil {
			return builderErrorf(methodScatter, "no rng", ErrNeedRandSource)
		}
		side := math.Sqrt(float64(n))
		for i := 0; i < n; i++ {
			x, y := cfg.rng.Float64()*side, cfg.rng.Float64()*side
			w := minScatterPop + cfg.rng.Float64()*(maxScatterPop-minScatterPop)
			s.addVertex(cfg.at(x, y), w)
		}

		return nil
	}
}
