package optimization

import (
	"math/rand"
	"time"
)

// RandomSource supplies the sampling primitives both optimizers draw from.
// Injecting it keeps runs reproducible under a fixed seed.
type RandomSource interface {
	// Float64 returns a uniform sample from [0, 1).
	Float64() float64
	// Uniform returns a uniform sample from [lo, hi). A degenerate range
	// (hi <= lo) returns lo.
	Uniform(lo, hi float64) float64
	// Norm returns a Gaussian sample with the given mean and standard
	// deviation. A zero or negative stdev returns mean.
	Norm(mean, stdev float64) float64
	// Intn returns a uniform integer from [0, n).
	Intn(n int) int
}

type randSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource backed by math/rand. Seed 0 selects
// a time-based seed.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Float64() float64 { return s.rng.Float64() }

func (s *randSource) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *randSource) Norm(mean, stdev float64) float64 {
	if stdev <= 0 {
		return mean
	}
	return mean + s.rng.NormFloat64()*stdev
}

func (s *randSource) Intn(n int) int { return s.rng.Intn(n) }
