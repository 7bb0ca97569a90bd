package optimize

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/objective"
	"github.com/katalvlaran/streetgraph/topology"
)

// ErrBadIterations is returned for a negative iteration count.
var ErrBadIterations = errors.New("optimize: iterations must be non-negative")

// ErrNilTopology is returned when no topology is given.
var ErrNilTopology = errors.New("optimize: topology is nil")

// Result is the outcome of one optimizer run.
type Result struct {
	Topology *topology.Topology
	Score    float64
}

// Option configures an optimizer run.
type Option func(*options)

type options struct {
	reporter  Reporter
	sampler   objective.Sampler // nil: PopulationSampler over every vertex
	workers   int
	probAdd   float64
	weighting objective.Weighting
}

const defaultProbAdd = 0.5

func newOptions(opts []Option) options {
	o := options{reporter: NopReporter{}, workers: 1, probAdd: defaultProbAdd}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithReporter receives per-iteration progress. nil means NopReporter.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r == nil {
			r = NopReporter{}
		}
		o.reporter = r
	}
}

// WithSampler sets the source sampler of the efficiency objective.
func WithSampler(s objective.Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithWorkers evaluates up to n shortest-path sources concurrently.
// Panics on a negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("optimize: WithWorkers requires n ≥ 0")
	}
	return func(o *options) { o.workers = n }
}

// WithProbAdd sets the probability that a toggle re-adds a deleted edge.
// Panics outside [0, 1].
func WithProbAdd(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic("optimize: WithProbAdd requires 0 ≤ p ≤ 1")
	}
	return func(o *options) { o.probAdd = p }
}

// WithWeighting selects the efficiency population weighting.
func WithWeighting(w objective.Weighting) Option {
	return func(o *options) { o.weighting = w }
}

// NewRand returns the seeded stream for a run; seed 0 means the default seed.
func NewRand(seed int64) *rand.Rand { return edgeset.NewRand(seed) }
