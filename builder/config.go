// SPDX-License-Identifier: MIT
// Package: streetgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • scale      = 1000 (metres between neighbouring fixture vertices)
//   • population = 0    (weights are used verbatim as local population)
//   • origin     = (0,0,0)
//   • rng        = nil  (pure/deterministic unless seeded)

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	scale      float64
	population float64
	origin     r3.Vec
	rng        *rand.Rand
}

const defaultScale = 1000.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at maps fixture coordinates (in units of scale) to a location.
func (c builderConfig) at(x, y float64) r3.Vec {
	return r3.Add(c.origin, r3.Vec{X: c.scale * x, Y: c.scale * y})
}
