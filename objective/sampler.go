package objective

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/streetgraph/topology"
)

// ErrBadImportance reports an importance distribution that does not sum to 1.
var ErrBadImportance = errors.New("objective: importance does not sum to one")

// importanceTolerance bounds |Σ importance - 1| for ImportanceSampler.
const importanceTolerance = 1e-3

// Sample is one weighted source vertex. Frequency counts how many draws hit
// the vertex; Correction is the inverse-probability weight 1/(N·p) that keeps
// the estimate unbiased.
type Sample struct {
	Source     int
	Frequency  int
	Correction float64
}

// Batch is one round of samples. Count is the total number of draws.
type Batch struct {
	Samples []Sample
	Count   int
}

// Sampler produces source batches for the efficiency objective.
type Sampler interface {
	Sample() Batch
}

// PopulationSampler returns every vertex once with unit weight. Its batches
// are deterministic, so it evaluates the objective exactly.
type PopulationSampler struct {
	batch Batch
}

// NewPopulationSampler covers n vertices.
func NewPopulationSampler(n int) *PopulationSampler {
	s := &PopulationSampler{batch: Batch{Samples: make([]Sample, n), Count: n}}
	for i := range s.batch.Samples {
		s.batch.Samples[i] = Sample{Source: i, Frequency: 1, Correction: 1}
	}

	return s
}

// Sample returns the full population.
func (s *PopulationSampler) Sample() Batch { return s.batch }

// UniformSampler draws count vertices uniformly with replacement.
type UniformSampler struct {
	n, count int
	rng      *rand.Rand
}

// NewUniformSampler draws count of n vertices per batch from rng.
func NewUniformSampler(n, count int, rng *rand.Rand) *UniformSampler {
	return &UniformSampler{n: n, count: count, rng: rng}
}

// Sample draws a fresh batch. Repeated vertices are merged into one Sample
// with a higher Frequency; samples are ordered by source.
func (s *UniformSampler) Sample() Batch {
	if s.n == 0 {
		return Batch{}
	}
	freq := make(map[int]int, s.count)
	for k := 0; k < s.count; k++ {
		freq[s.rng.Intn(s.n)]++
	}

	return collect(freq, s.count, func(int) float64 { return 1 })
}

// ImportanceSampler draws count vertices with probability equal to their
// importance, by inverse-CDF lookup.
type ImportanceSampler struct {
	pmf   []float64
	cdf   []float64
	count int
	rng   *rand.Rand
}

// NewImportanceSampler builds the CDF over t's vertex importances.
// Returns ErrBadImportance unless they sum to 1 within 1e-3.
func NewImportanceSampler(t *topology.Topology, count int, rng *rand.Rand) (*ImportanceSampler, error) {
	n := t.VertexCount()
	s := &ImportanceSampler{pmf: make([]float64, n), cdf: make([]float64, n), count: count, rng: rng}
	var acc float64
	for i := 0; i < n; i++ {
		s.pmf[i] = t.Vertex(i).Importance
		acc += s.pmf[i]
		s.cdf[i] = acc
	}
	if math.Abs(acc-1) > importanceTolerance {
		return nil, fmt.Errorf("%w: Σ=%g", ErrBadImportance, acc)
	}

	return s, nil
}

// Sample draws a fresh batch; correction is 1/(N·p).
func (s *ImportanceSampler) Sample() Batch {
	n := len(s.cdf)
	if n == 0 {
		return Batch{}
	}
	freq := make(map[int]int, s.count)
	var u float64
	for k := 0; k < s.count; k++ {
		u = s.rng.Float64() * s.cdf[n-1]
		i := sort.SearchFloat64s(s.cdf, u)
		// skip zero-probability vertices sharing the same CDF value
		for i < n-1 && s.pmf[i] == 0 {
			i++
		}
		if i >= n {
			i = n - 1
		}
		freq[i]++
	}

	return collect(freq, s.count, func(i int) float64 { return 1 / (float64(n) * s.pmf[i]) })
}

func collect(freq map[int]int, count int, correction func(int) float64) Batch {
	b := Batch{Samples: make([]Sample, 0, len(freq)), Count: count}
	for src, f := range freq {
		b.Samples = append(b.Samples, Sample{Source: src, Frequency: f, Correction: correction(src)})
	}
	sort.Slice(b.Samples, func(i, j int) bool { return b.Samples[i].Source < b.Samples[j].Source })

	return b
}
