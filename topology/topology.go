// Package topology holds the street network being synthesized: per-vertex
// location and population data plus an undirected graph whose edge weights
// are static travel times.
package topology

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph/core"
	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/probe"
	"github.com/katalvlaran/streetgraph/travel"
)

// ErrTopology wraps every structural failure reported by a Topology
// (out-of-range vertex, duplicate or missing edge).
var ErrTopology = errors.New("topology: invalid operation")

// Vertex carries the immutable per-probe data a topology vertex needs.
type Vertex struct {
	Location        r3.Vec
	LocalPopulation float64
	Importance      float64 // share of the total population; all vertices sum to 1
}

// Topology is a set of vertices and the undirected street segments between
// them. The vertex set is fixed at construction; edges are added and removed
// through Connect and Disconnect, which keep every edge weighted by its
// static travel time.
type Topology struct {
	vertices []Vertex
	graph    *core.Graph
}

// New returns a topology over vertices with no edges.
func New(vertices []Vertex) *Topology {
	vs := make([]Vertex, len(vertices))
	copy(vs, vertices)

	return &Topology{vertices: vs, graph: core.NewGraph(len(vs))}
}

// VerticesFromProbes converts probes into vertices; importance is each
// probe's share of the total population (zero everywhere when the total is
// zero).
func VerticesFromProbes(probes []probe.Probe) []Vertex {
	total := probe.TotalPopulation(probes)
	vs := make([]Vertex, len(probes))
	for i, p := range probes {
		vs[i] = Vertex{Location: p.Location, LocalPopulation: p.Population}
		if total > 0 {
			vs[i].Importance = p.Population / total
		}
	}

	return vs
}

// FromProbes validates probes, triangulates their locations and returns the
// candidate topology. A nil tri means Delaunay{}.
//
// Triangulation sees only the XY projection, so probes stacked at the same
// X and Y are rejected with probe.ErrInvalidInput even when their Z differs.
func FromProbes(probes []probe.Probe, tri Triangulator) (*Topology, error) {
	if err := probe.Validate(probes, 2); err != nil {
		return nil, err
	}
	if err := checkPlanar(probes); err != nil {
		return nil, err
	}
	if tri == nil {
		tri = Delaunay{}
	}
	points := make([]r3.Vec, len(probes))
	for i, p := range probes {
		points[i] = p.Location
	}
	edges, err := tri.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("topology: triangulate %d probes: %w", len(points), err)
	}

	t := New(VerticesFromProbes(probes))
	for _, e := range edges {
		if t.HasEdge(e) {
			continue
		}
		if err = t.Connect(e.U, e.V); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func checkPlanar(probes []probe.Probe) error {
	seen := make(map[[2]float64]int, len(probes))
	for i, p := range probes {
		xy := [2]float64{p.Location.X, p.Location.Y}
		if j, ok := seen[xy]; ok {
			return fmt.Errorf("%w: probes %d and %d share the planar location (%g, %g)",
				probe.ErrInvalidInput, j, i, xy[0], xy[1])
		}
		seen[xy] = i
	}

	return nil
}

// Connect adds the segment u-v weighted by its static travel time.
func (t *Topology) Connect(u, v int) error {
	if err := t.checkVertex(u); err != nil {
		return err
	}
	if err := t.checkVertex(v); err != nil {
		return err
	}
	a, b := t.vertices[u], t.vertices[v]
	w := travel.Time(a.Location, b.Location, a.LocalPopulation, b.LocalPopulation)
	if err := t.graph.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%w: connect %d-%d: %v", ErrTopology, u, v, err)
	}

	return nil
}

// Disconnect removes the segment u-v.
func (t *Topology) Disconnect(u, v int) error {
	if err := t.graph.RemoveEdge(u, v); err != nil {
		return fmt.Errorf("%w: disconnect %d-%d: %v", ErrTopology, u, v, err)
	}

	return nil
}

// HasEdge reports whether e is a segment of t.
func (t *Topology) HasEdge(e edgeset.Edge) bool {
	return t.graph.HasEdge(e.U, e.V)
}

// StaticCost returns the static travel time of the segment u-v.
func (t *Topology) StaticCost(u, v int) (float64, error) {
	w, err := t.graph.Weight(u, v)
	if err != nil {
		return 0, fmt.Errorf("%w: static cost %d-%d: %v", ErrTopology, u, v, err)
	}

	return w, nil
}

// Degree returns the number of segments meeting at u.
func (t *Topology) Degree(u int) (int, error) {
	d, err := t.graph.Degree(u)
	if err != nil {
		return 0, fmt.Errorf("%w: degree %d: %v", ErrTopology, u, err)
	}

	return d, nil
}

// Neighbors returns the vertices adjacent to u in ascending order.
func (t *Topology) Neighbors(u int) ([]int, error) {
	var res []int
	err := t.graph.ForEachNeighbor(u, func(nb core.Neighbor) { res = append(res, nb.ID) })
	if err != nil {
		return nil, fmt.Errorf("%w: neighbors %d: %v", ErrTopology, u, err)
	}

	return res, nil
}

// Vertex returns the data of vertex i. i must be in range.
func (t *Topology) Vertex(i int) Vertex { return t.vertices[i] }

// Vertices returns a copy of all vertex data.
func (t *Topology) Vertices() []Vertex {
	vs := make([]Vertex, len(t.vertices))
	copy(vs, t.vertices)

	return vs
}

// VertexCount is the number of vertices.
func (t *Topology) VertexCount() int { return len(t.vertices) }

// EdgeCount is the number of segments.
func (t *Topology) EdgeCount() int { return t.graph.EdgeCount() }

// Edges returns every segment sorted by (U, V).
func (t *Topology) Edges() []edgeset.Edge {
	raw := t.graph.Edges()
	res := make([]edgeset.Edge, len(raw))
	for i, e := range raw {
		res[i] = edgeset.NewEdge(e.From, e.To)
	}

	return res
}

// Graph exposes the static-cost graph for read-only algorithms.
func (t *Topology) Graph() *core.Graph { return t.graph }

// Clone returns an independent copy; vertex data is immutable and shared.
func (t *Topology) Clone() *Topology {
	return &Topology{vertices: t.vertices, graph: t.graph.Clone()}
}

// WithEdges returns a topology over the same vertices containing exactly
// edges, each weighted by its static travel time.
func (t *Topology) WithEdges(edges []edgeset.Edge) (*Topology, error) {
	res := &Topology{vertices: t.vertices, graph: core.NewGraph(len(t.vertices))}
	for _, e := range edges {
		if err := res.Connect(e.U, e.V); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Probes converts the vertices back into probes (location and local population).
func (t *Topology) Probes() []probe.Probe {
	res := make([]probe.Probe, len(t.vertices))
	for i, v := range t.vertices {
		res[i] = probe.Probe{Location: v.Location, Population: v.LocalPopulation}
	}

	return res
}

func (t *Topology) checkVertex(u int) error {
	if u < 0 || u >= len(t.vertices) {
		return fmt.Errorf("%w: vertex %d out of range [0,%d)", ErrTopology, u, len(t.vertices))
	}

	return nil
}
