package edgeset

import "sort"

// Mutation is a batch of edge additions and deletions. The two sets are
// always disjoint: pushing an addition of an edge that is pending deletion
// cancels the deletion (and vice versa), so a Mutation only ever describes
// its net effect.
//
// Edges are kept in the order they were pushed, which keeps every
// computation driven by a Mutation reproducible for a fixed seed.
type Mutation struct {
	additions orderedSet
	deletions orderedSet
}

// PushAddition records that e becomes active.
func (m *Mutation) PushAddition(e Edge) {
	if m.deletions.remove(e) {
		return
	}
	m.additions.add(e)
}

// PushDeletion records that e becomes inactive.
func (m *Mutation) PushDeletion(e Edge) {
	if m.additions.remove(e) {
		return
	}
	m.deletions.add(e)
}

// Additions returns the edges to add, in push order.
func (m *Mutation) Additions() []Edge { return m.additions.snapshot() }

// Deletions returns the edges to delete, in push order.
func (m *Mutation) Deletions() []Edge { return m.deletions.snapshot() }

// IsAddition reports whether e is pending addition.
func (m *Mutation) IsAddition(e Edge) bool { return m.additions.has(e) }

// IsDeletion reports whether e is pending deletion.
func (m *Mutation) IsDeletion(e Edge) bool { return m.deletions.has(e) }

// Len is the number of net edge changes.
func (m *Mutation) Len() int { return len(m.additions.items) + len(m.deletions.items) }

// Endpoints returns every vertex touched by the mutation, ascending.
func (m *Mutation) Endpoints() []int {
	seen := make(map[int]struct{}, 2*m.Len())
	var res []int
	visit := func(v int) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			res = append(res, v)
		}
	}
	for _, e := range m.additions.items {
		visit(e.U)
		visit(e.V)
	}
	for _, e := range m.deletions.items {
		visit(e.U)
		visit(e.V)
	}
	sort.Ints(res)

	return res
}

// orderedSet is an insertion-ordered set of edges.
type orderedSet struct {
	items []Edge
	index map[Edge]int
}

func (s *orderedSet) has(e Edge) bool {
	_, ok := s.index[e]
	return ok
}

func (s *orderedSet) add(e Edge) {
	if s.index == nil {
		s.index = make(map[Edge]int)
	}
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = len(s.items)
	s.items = append(s.items, e)
}

// remove deletes e preserving the order of the rest. Reports whether e was present.
func (s *orderedSet) remove(e Edge) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	delete(s.index, e)
	copy(s.items[i:], s.items[i+1:])
	s.items = s.items[:len(s.items)-1]
	for k := i; k < len(s.items); k++ {
		s.index[s.items[k]] = k
	}

	return true
}

func (s *orderedSet) snapshot() []Edge {
	res := make([]Edge, len(s.items))
	copy(res, s.items)

	return res
}
