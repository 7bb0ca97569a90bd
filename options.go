package streetgraph

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/streetgraph/optimize"
	"github.com/katalvlaran/streetgraph/topology"
)

// SamplerKind selects how the efficiency objective picks source vertices.
type SamplerKind int

const (
	// SamplerPopulation evaluates every vertex (exact).
	SamplerPopulation SamplerKind = iota
	// SamplerUniform draws sources uniformly.
	SamplerUniform
	// SamplerImportance draws sources in proportion to their population.
	SamplerImportance
)

// Defaults of ComputeProbeTopology.
const (
	DefaultRegularitySteps = 1000
	DefaultEfficiencySteps = 100
	DefaultSampleRatio     = 0.1
)

// Option configures ComputeProbeTopology and EstimateProbeTopologyFlow.
type Option func(*options)

type options struct {
	regularitySteps int
	efficiencySteps int
	seed            int64
	workers         int
	logger          *slog.Logger
	triangulator    topology.Triangulator
	reporter        optimize.Reporter // nil: optimize.LogReporter(logger)
	samplerKind     SamplerKind
	sampleRatio     float64
}

func newOptions(opts []Option) options {
	o := options{
		regularitySteps: DefaultRegularitySteps,
		efficiencySteps: DefaultEfficiencySteps,
		workers:         1,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		triangulator:    topology.Delaunay{},
		samplerKind:     SamplerPopulation,
		sampleRatio:     DefaultSampleRatio,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRegularitySteps sets the regularity iteration budget. Panics if n < 0.
func WithRegularitySteps(n int) Option {
	if n < 0 {
		panic("streetgraph: WithRegularitySteps requires n ≥ 0")
	}
	return func(o *options) { o.regularitySteps = n }
}

// WithEfficiencySteps sets the efficiency iteration budget. Panics if n < 0.
func WithEfficiencySteps(n int) Option {
	if n < 0 {
		panic("streetgraph: WithEfficiencySteps requires n ≥ 0")
	}
	return func(o *options) { o.efficiencySteps = n }
}

// WithSeed seeds the run; 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithWorkers bounds the concurrent shortest-path searches. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("streetgraph: WithWorkers requires n ≥ 0")
	}
	return func(o *options) { o.workers = n }
}

// WithLogger sets the structured logger. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTriangulator replaces the Delaunay candidate generator.
func WithTriangulator(t topology.Triangulator) Option {
	return func(o *options) {
		if t != nil {
			o.triangulator = t
		}
	}
}

// WithReporter receives optimizer progress instead of the logger.
func WithReporter(r optimize.Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithSamplerKind selects the efficiency sampler. ratio is the number of
// draws per vertex for the stochastic kinds; panics unless ratio > 0.
func WithSamplerKind(kind SamplerKind, ratio float64) Option {
	if !(ratio > 0) {
		panic("streetgraph: WithSamplerKind requires ratio > 0")
	}
	return func(o *options) {
		o.samplerKind = kind
		o.sampleRatio = ratio
	}
}
