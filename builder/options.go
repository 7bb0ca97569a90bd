// SPDX-License-Identifier: MIT
// Package: streetgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes fixture construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithScale sets the spacing between neighbouring fixture vertices, in metres.
// Panics unless scale is positive and finite.
func WithScale(scale float64) BuilderOption {
	if !(scale > 0) || math.IsInf(scale, 1) {
		panic("builder: WithScale requires a positive finite scale")
	}
	return func(c *builderConfig) { c.scale = scale }
}

// WithPopulation distributes population over the vertices in proportion to
// their weights. Panics on a negative or non-finite value.
func WithPopulation(population float64) BuilderOption {
	if population < 0 || math.IsNaN(population) || math.IsInf(population, 0) {
		panic("builder: WithPopulation requires a non-negative finite value")
	}
	return func(c *builderConfig) { c.population = population }
}

// WithOrigin translates the whole fixture.
func WithOrigin(origin r3.Vec) BuilderOption {
	return func(c *builderConfig) { c.origin = origin }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
