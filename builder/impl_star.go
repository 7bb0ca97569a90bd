// SPDX-License-Identifier: MIT
// Package: streetgraph/builder
//
// impl_star.go - implementation of Junction(arms...) constructor.
//
// Contract:
//   - Adds a hub at the origin, then one leaf per arm at hub + arm (arm
//     offsets are in metres and are NOT multiplied by scale).
//   - Emits spokes hub → leaf[i] in arm order.
//   - All vertices weigh 1.
//   - Zero arms yields an isolated hub; a zero-length arm is rejected.
//
// Determinism:
//   - Hub first, leaves in argument order.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"
)

const methodJunction = "Junction"

// Junction returns a Constructor that builds a single intersection with the
// given arm offsets.
func Junction(arms ...r3.Vec) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		for i, a := range arms {
			if r3.Norm(a) == 0 {
				return builderErrorf(methodJunction, "arm %d has zero length", ErrConstructFailed, i)
			}
		}
		hub := s.addVertex(cfg.at(0, 0), 1)
		for _, a := range arms {
			leaf := s.addVertex(r3.Add(cfg.at(0, 0), a), 1)
			s.connect(hub, leaf)
		}

		return nil
	}
}
