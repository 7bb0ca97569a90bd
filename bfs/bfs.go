// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/streetgraph/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o, n)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// Components labels every vertex with the index of its connected component.
// Components are numbered 0.. in order of their smallest vertex. Directed
// graphs are labelled by forward reachability from each unlabelled vertex.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.VertexCount()
	w := newWalker(g, DefaultOptions(), n)

	labels := make([]int, n)
	count := 0
	var v, id int
	for v = 0; v < n; v++ {
		if w.res.Depth[v] >= 0 {
			continue
		}
		first := len(w.res.Order)
		w.enqueue(v, 0, -1)
		if err := w.loop(); err != nil {
			return nil, 0, err
		}
		for _, id = range w.res.Order[first:] {
			labels[id] = count
		}
		count++
	}

	return labels, count, nil
}

func newWalker(g *core.Graph, o BFSOptions, n int) *walker {
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	return w
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	var id int
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id = w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, w.res.Depth[id]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		if err := w.enqueueNeighbors(id); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(id int) error {
	next := w.res.Depth[id] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	var fresh []int
	err := w.graph.ForEachNeighbor(id, func(nb core.Neighbor) {
		if w.res.Depth[nb.ID] < 0 && w.opts.FilterNeighbor(id, nb.ID) {
			fresh = append(fresh, nb.ID)
		}
	})
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %d: %w", id, err)
	}
	for _, nb := range fresh {
		if w.res.Depth[nb] < 0 {
			w.enqueue(nb, next, id)
		}
	}

	return nil
}
