// Package probe defines the spatial population sample the street network is
// synthesized from, and the validation applied to every probe set before it
// enters the pipeline.
package probe

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidInput reports a probe set that cannot be turned into a topology.
var ErrInvalidInput = errors.New("probe: invalid input")

// Probe is a spatial sample of population.
type Probe struct {
	// Location is the probe position in metres.
	Location r3.Vec

	// Population is the number of residents represented by the probe.
	Population float64
}

// Validate checks a probe set before topology construction.
//
// Rejected with ErrInvalidInput:
//   - fewer than minCount probes;
//   - NaN or infinite coordinates or populations;
//   - negative populations;
//   - zero total population;
//   - two probes at the same location.
func Validate(probes []Probe, minCount int) error {
	if len(probes) < minCount {
		return fmt.Errorf("%w: %d probes, need at least %d", ErrInvalidInput, len(probes), minCount)
	}
	seen := make(map[r3.Vec]int, len(probes))
	var total float64
	for i, p := range probes {
		if !finite(p.Location.X) || !finite(p.Location.Y) || !finite(p.Location.Z) {
			return fmt.Errorf("%w: probe %d has a non-finite location", ErrInvalidInput, i)
		}
		if !finite(p.Population) || p.Population < 0 {
			return fmt.Errorf("%w: probe %d has population %g", ErrInvalidInput, i, p.Population)
		}
		if j, ok := seen[p.Location]; ok {
			return fmt.Errorf("%w: probes %d and %d are coincident", ErrInvalidInput, j, i)
		}
		seen[p.Location] = i
		total += p.Population
	}
	if len(probes) > 0 && total <= 0 {
		return fmt.Errorf("%w: total population is zero", ErrInvalidInput)
	}

	return nil
}

// TotalPopulation sums the population of every probe.
func TotalPopulation(probes []Probe) float64 {
	var total float64
	for _, p := range probes {
		total += p.Population
	}

	return total
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
