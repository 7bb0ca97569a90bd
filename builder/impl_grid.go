// SPDX-License-Identifier: MIT
// Package: streetgraph/builder
//
// impl_grid.go - implementation of Grid(side) and Mesh(side) constructors.
//
// Canonical model:
//   • side×side lattice; vertex (x,y) sits at (scale·x, scale·y, 0) with index
//     offset + x + y·side.
//   • Weight of (x,y) is 2·side − x − y: population thins out away from the
//     (0,0) corner, so the fixture has a dense centre of gravity.
//
// Grid:
//   • Only interior vertices (1 ≤ x,y ≤ side−2) emit segments, to each of their
//     four neighbours. Boundary vertices are therefore dead ends or isolated
//     corners, and the lattice of crossings is fully regular.
//
// Mesh:
//   • Every orthogonal neighbour pair is connected, plus the (x+1, y+1)
//     diagonal of every cell. Used as an over-connected starting point.
//
// Complexity:
//   • Time: O(side²) vertices + O(side²) edges.
//
// Determinism:
//   • Vertex order: index order x + y·side (y outer, x inner).
//   • Edge order: per interior vertex (west, north, east, south); per mesh
//     vertex (west, north, east, south, diagonal); duplicates are dropped.

package builder

// File-local constants: method tags and minima.
const (
	methodGrid  = "Grid"
	methodMesh  = "Mesh"
	minGridSide = 3
	minMeshSide = 2
)

// Grid returns a Constructor that builds the interior-crossing grid.
func Grid(side int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if side < minGridSide {
			return builderErrorf(methodGrid, "side=%d (must be ≥ %d)", ErrTooFewVertices, side, minGridSide)
		}
		offset := lattice(s, cfg, side)

		// 2) Interior vertices reach out to their four neighbours.
		id := func(x, y int) int { return offset + x + y*side }
		for x := 1; x < side-1; x++ {
			for y := 1; y < side-1; y++ {
				u := id(x, y)
				s.connect(u, id(x-1, y))
				s.connect(u, id(x, y+1))
				s.connect(u, id(x+1, y))
				s.connect(u, id(x, y-1))
			}
		}

		return nil
	}
}

// Mesh returns a Constructor that builds the fully connected lattice with
// one diagonal per cell.
func Mesh(side int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if side < minMeshSide {
			return builderErrorf(methodMesh, "side=%d (must be ≥ %d)", ErrTooFewVertices, side, minMeshSide)
		}
		offset := lattice(s, cfg, side)

		id := func(x, y int) int { return offset + x + y*side }
		for x := 0; x < side; x++ {
			for y := 0; y < side; y++ {
				u := id(x, y)
				if x > 0 {
					s.connect(u, id(x-1, y))
				}
				if y < side-1 {
					s.connect(u, id(x, y+1))
				}
				if x < side-1 {
					s.connect(u, id(x+1, y))
				}
				if y > 0 {
					s.connect(u, id(x, y-1))
				}
				if x < side-1 && y < side-1 {
					s.connect(u, id(x+1, y+1))
				}
			}
		}

		return nil
	}
}

// lattice adds the side×side vertices in index order and returns the index
// of (0,0).
func lattice(s *sketch, cfg builderConfig, side int) int {
	offset := len(s.locations)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			s.addVertex(cfg.at(float64(x), float64(y)), float64(2*side-x-y))
		}
	}

	return offset
}

// GridEdgeCount is the number of segments Grid(side) emits.
func GridEdgeCount(side int) int {
	if side < minGridSide {
		return 0
	}
	inner := side - 2
	// every interior vertex has 4 arms; arms between two interior vertices are shared
	return 4*inner*inner - 2*inner*(inner-1)
}

