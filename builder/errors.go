// SPDX-License-Identifier: MIT
// Package: streetgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Validation panics are confined to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (side, arm count, probe
// count) is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadPopulation indicates a negative or non-finite vertex weight.
var ErrBadPopulation = errors.New("builder: invalid population")

// ErrConstructFailed indicates that the fixture could not be resolved into a
// topology (nil constructor, inconsistent edges).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the method context: "<method>: <msg>: <err>".
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
