package topology

import (
	"sort"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/edgeset"
)

// Triangulator proposes candidate street segments between points.
type Triangulator interface {
	Triangulate(points []r3.Vec) ([]edgeset.Edge, error)
}

// TriangulatorFunc adapts a plain function to Triangulator.
type TriangulatorFunc func(points []r3.Vec) ([]edgeset.Edge, error)

// Triangulate calls f.
func (f TriangulatorFunc) Triangulate(points []r3.Vec) ([]edgeset.Edge, error) { return f(points) }

// Delaunay triangulates the XY projection of the points. Inputs with no
// proper triangulation (two points, all points collinear) are chained along
// their sorted order instead.
type Delaunay struct{}

// Triangulate returns the unique Delaunay edges sorted by (U, V).
func (Delaunay) Triangulate(points []r3.Vec) ([]edgeset.Edge, error) {
	if len(points) < 2 {
		return nil, nil
	}
	pts := make([]delaunay.Point, len(points))
	for i, p := range points {
		pts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil || len(tri.Triangles) == 0 {
		return chain(points), nil
	}

	seen := make(map[edgeset.Edge]struct{}, len(tri.Triangles))
	res := make([]edgeset.Edge, 0, len(tri.Triangles)/2+1)
	var (
		i, j int
		e    edgeset.Edge
	)
	for i = range tri.Triangles {
		// next half-edge within the same triangle
		j = i + 1
		if i%3 == 2 {
			j = i - 2
		}
		e = edgeset.NewEdge(tri.Triangles[i], tri.Triangles[j])
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		res = append(res, e)
	}
	sortEdges(res)

	return res, nil
}

// chain connects points consecutively in (X, Y) order.
func chain(points []r3.Vec) []edgeset.Edge {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Y < pb.Y
	})
	res := make([]edgeset.Edge, 0, len(points)-1)
	for k := 1; k < len(order); k++ {
		res = append(res, edgeset.NewEdge(order[k-1], order[k]))
	}
	sortEdges(res)

	return res
}

func sortEdges(es []edgeset.Edge) {
	sort.Slice(es, func(a, b int) bool {
		if es[a].U != es[b].U {
			return es[a].U < es[b].U
		}
		return es[a].V < es[b].V
	})
}
