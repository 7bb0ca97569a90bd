// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), with O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Heap ties are broken by vertex index, so results never depend on push order.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/streetgraph/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g. Directed graphs are traversed along arc direction.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance (+Inf if unreachable).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be a vertex of g (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions(NoPredecessor)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	V := g.VertexCount()
	if cfg.Source >= V {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 2) Pre-scan all edges to detect negative weights.
	var e core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Prepare state and run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, V)
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []float64
	prev    []int // nil unless ReturnPath
	visited []bool
	pq      nodePQ
}

// init sets dist to +Inf everywhere except the source and seeds the heap.
func (r *runner) init() {
	var v int
	for v = range r.dist {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: pop the closest unvisited vertex, finalize it,
// relax its outgoing edges. Terminates when the heap is empty or the closest
// distance exceeds MaxDistance.
func (r *runner) process() error {
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and pushes improved distances.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	err := r.g.ForEachNeighbor(u, func(nb core.Neighbor) {
		if nb.Weight >= r.options.InfEdgeThreshold {
			return
		}
		nd := du + nb.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[nb.ID] {
			return
		}
		r.dist[nb.ID] = nd
		if r.prev != nil {
			r.prev[nb.ID] = u
		}
		heap.Push(&r.pq, nodeItem{id: nb.ID, dist: nd})
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to visit neighbors of %d: %w", u, err)
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo walks prev back from target and returns the vertex sequence
// source … target. Returns nil when target was not reached.
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}
	if target != source && prev[target] == NoPredecessor {
		return nil
	}
	var path []int
	for cur := target; cur != NoPredecessor; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
