package edgeset

import "math/rand"

// State partitions a fixed set of candidate edges into active and deleted.
//
// edges[:separator] are active, edges[separator:] are deleted. Mutate moves
// edges across the separator with swaps and logs every swap; Revert replays
// the log backwards, restoring the exact array and separator.
type State struct {
	edges     []Edge
	separator int

	log          [][2]int // swapped positions of the last Mutate
	logSeparator int      // separator before the last Mutate
	pending      bool     // a Mutate has not been reverted yet

	rng *rand.Rand
}

// NewState returns an empty State drawing randomness from rng
// (a DefaultSeed stream when rng is nil).
func NewState(rng *rand.Rand) *State {
	return &State{rng: orDefault(rng)}
}

// StateFor returns a State with every edge of edges active.
func StateFor(edges []Edge, rng *rand.Rand) *State {
	s := NewState(rng)
	for _, e := range edges {
		s.Add(e)
	}

	return s
}

// Add appends e as an active edge. Must not be called between Mutate and
// Revert.
func (s *State) Add(e Edge) {
	s.edges = append(s.edges, e)
	last := len(s.edges) - 1
	s.edges[last], s.edges[s.separator] = s.edges[s.separator], s.edges[last]
	s.separator++
	s.pending = false
	s.log = s.log[:0]
}

// Len is the number of candidate edges.
func (s *State) Len() int { return len(s.edges) }

// ActiveCount is the number of active edges.
func (s *State) ActiveCount() int { return s.separator }

// ActiveEdges returns a snapshot of the active edges.
func (s *State) ActiveEdges() []Edge {
	res := make([]Edge, s.separator)
	copy(res, s.edges[:s.separator])

	return res
}

// DeletedEdges returns a snapshot of the deleted edges.
func (s *State) DeletedEdges() []Edge {
	res := make([]Edge, len(s.edges)-s.separator)
	copy(res, s.edges[s.separator:])

	return res
}

// Mutate performs operationCount random toggles and returns their net effect.
//
// Each step adds with probability probAdd and deletes otherwise; a step is
// forced to delete when nothing is deleted and forced to add when nothing is
// active. The toggled edge is drawn uniformly from the relevant partition.
// An edge toggled twice within one call cancels out of the Mutation.
func (s *State) Mutate(operationCount int, probAdd float64) Mutation {
	var m Mutation
	s.log = s.log[:0]
	s.logSeparator = s.separator
	s.pending = true

	if len(s.edges) == 0 {
		return m
	}
	var (
		add bool
		idx int
	)
	for k := 0; k < operationCount; k++ {
		add = s.rng.Float64() < probAdd
		if s.separator == len(s.edges) {
			add = false
		}
		if s.separator == 0 {
			add = true
		}

		if add {
			idx = s.separator + s.rng.Intn(len(s.edges)-s.separator)
			s.swap(idx, s.separator)
			s.separator++
			m.PushAddition(s.edges[s.separator-1])
		} else {
			idx = s.rng.Intn(s.separator)
			s.swap(idx, s.separator-1)
			s.separator--
			m.PushDeletion(s.edges[s.separator])
		}
	}

	return m
}

// Revert undoes the last Mutate. A second consecutive call is a no-op.
func (s *State) Revert() {
	if !s.pending {
		return
	}
	for i := len(s.log) - 1; i >= 0; i-- {
		a, b := s.log[i][0], s.log[i][1]
		s.edges[a], s.edges[b] = s.edges[b], s.edges[a]
	}
	s.separator = s.logSeparator
	s.log = s.log[:0]
	s.pending = false
}

func (s *State) swap(a, b int) {
	s.edges[a], s.edges[b] = s.edges[b], s.edges[a]
	s.log = append(s.log, [2]int{a, b})
}
