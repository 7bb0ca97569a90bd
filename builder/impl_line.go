// SPDX-License-Identifier: MIT
// Package: streetgraph/builder
//
// impl_line.go - implementation of Line(weights...) constructor.
//
// Contract:
//   - len(weights) ≥ 2 (else ErrTooFewVertices).
//   - Vertex i sits at (scale·i, 0, 0) with weight weights[i].
//   - Emits segments i – i+1 in ascending order.
//
// Complexity:
//   - Time: O(n).

package builder

const (
	methodLine   = "Line"
	minLineNodes = 2
)

// Line returns a Constructor that builds a straight street with one vertex
// per weight.
func Line(weights ...float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if len(weights) < minLineNodes {
			return builderErrorf(methodLine, "n=%d (must be ≥ %d)", ErrTooFewVertices, len(weights), minLineNodes)
		}
		for i, w := range weights {
			v := s.addVertex(cfg.at(float64(i), 0), w)
			if i > 0 {
				s.connect(v-1, v)
			}
		}

		return nil
	}
}
