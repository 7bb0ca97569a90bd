package probe

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Synthetic city constants.
const (
	squareMetresPerCore     = 7e6
	probesPerSquareMetre    = 30e-6
	probeGridSize           = 200.0
	residentsPerSquareMetre = 3.5e-3
	populationArea          = 200.0 // side of the square a probe's population covers
	populationPatch         = 50.0  // integration step inside that square
	generatorSeed           = 13
)

// cityCore is one population centre. Probes around it are laid out on a
// 200 m grid rotated into the (dir, ortho) frame.
type cityCore struct {
	centre r3.Vec
	dir    r3.Vec
	ortho  r3.Vec
	radius float64 // expected distance of a resident from the centre
	weight float64 // share of the city's residents
}

// Generate synthesizes the probes of a square city citySize metres wide,
// centred on the origin.
//
// The city has one core per 7 km²; each core gets a random centre, heading
// and weight. Probe locations are drawn from the mixture of the cores'
// isotropic bivariate exponential distributions, snapped to each core's
// 200 m grid and deduplicated. A probe's population integrates the mixture
// density over the 200 m square around it. Probes are returned sorted by
// (X, Y) with Z = 0.
//
// Cities smaller than one core yield no probes. A nil rng uses seed 13.
func Generate(citySize float64, rng *rand.Rand) ([]Probe, error) {
	if !finite(citySize) || citySize < 0 {
		return nil, fmt.Errorf("%w: city size %g", ErrInvalidInput, citySize)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(generatorSeed))
	}
	src := randSource{rng}

	area := citySize * citySize
	cores := generateCores(citySize, int(area/squareMetresPerCore), src)
	if len(cores) == 0 {
		return nil, nil
	}
	locations := sampleLocations(cores, int(area*probesPerSquareMetre), src)

	residents := area * residentsPerSquareMetre
	probes := make([]Probe, len(locations))
	for i, loc := range locations {
		probes[i] = Probe{Location: loc, Population: residents * patchMass(loc, cores)}
	}

	return probes, nil
}

func generateCores(citySize float64, count int, src exprand.Source) []cityCore {
	if count <= 0 {
		return nil
	}
	half := citySize / 2
	position := distuv.Uniform{Min: -half, Max: half, Src: src}
	heading := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	unit := distuv.Uniform{Min: 0, Max: 1, Src: src}

	cores := make([]cityCore, count)
	for i := range cores {
		cores[i].centre.X = position.Rand()
	}
	for i := range cores {
		cores[i].centre.Y = position.Rand()
	}
	radius := math.Sqrt(squareMetresPerCore / math.Pi)
	var theta float64
	for i := range cores {
		theta = heading.Rand()
		cores[i].dir = r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
		cores[i].ortho = r3.Vec{X: cores[i].dir.Y, Y: -cores[i].dir.X}
		cores[i].radius = radius
	}
	weights := make([]float64, count)
	for i := range weights {
		weights[i] = unit.Rand()
	}
	total := floats.Sum(weights)
	for i := range cores {
		cores[i].weight = weights[i] / total
	}

	return cores
}

// sampleLocations draws count probe locations and removes duplicates.
func sampleLocations(cores []cityCore, count int, src exprand.Source) []r3.Vec {
	weights := make([]float64, len(cores))
	for i, c := range cores {
		weights[i] = c.weight
	}
	choice := distuv.NewCategorical(weights, src)
	unit := distuv.Uniform{Min: 0, Max: 1, Src: src}
	heading := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}

	seen := make(map[r3.Vec]struct{}, count)
	res := make([]r3.Vec, 0, count)
	var (
		c        cityCore
		r, theta float64
		local    r3.Vec
		loc      r3.Vec
	)
	for k := 0; k < count; k++ {
		c = cores[int(choice.Rand())]
		r = -c.radius * math.Log(1-math.Sqrt(unit.Rand()))
		theta = heading.Rand()
		local = r3.Vec{X: snap(r * math.Cos(theta)), Y: snap(r * math.Sin(theta))}
		loc = r3.Add(c.centre, r3.Vec{X: r3.Dot(c.dir, local), Y: r3.Dot(c.ortho, local)})
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		res = append(res, loc)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].X != res[j].X {
			return res[i].X < res[j].X
		}
		return res[i].Y < res[j].Y
	})

	return res
}

func snap(x float64) float64 {
	return math.Floor(x/probeGridSize) * probeGridSize
}

// patchMass integrates the mixture density over the populationArea square
// centred on loc, sampled on a populationPatch lattice.
func patchMass(loc r3.Vec, cores []cityCore) float64 {
	steps := int(populationArea / populationPatch)
	offsets := make([]float64, steps)
	floats.Span(offsets, -populationArea/2, populationArea/2)

	var mass float64
	for _, dy := range offsets {
		for _, dx := range offsets {
			mass += density(r3.Vec{X: loc.X + dx, Y: loc.Y + dy}, cores)
		}
	}

	return mass * populationPatch * populationPatch
}

// density is the share of residents per square metre at p.
func density(p r3.Vec, cores []cityCore) float64 {
	var d, lambda float64
	for _, c := range cores {
		lambda = 1 / c.radius
		d += c.weight * lambda / (2 * math.Pi * (1 + c.radius)) * math.Exp(-lambda*r3.Norm(r3.Sub(p, c.centre)))
	}

	return d
}

// randSource lets gonum distributions draw from a math/rand stream, so one
// seed drives the whole generator.
type randSource struct {
	rng *rand.Rand
}

func (s randSource) Uint64() uint64 { return s.rng.Uint64() }

func (s randSource) Seed(seed uint64) { s.rng.Seed(int64(seed)) }
