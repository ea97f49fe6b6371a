package optimization

import (
	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization/benchmark"
)

// Params carries the union of both algorithms' hyperparameters. Each
// constructor only reads its own fields.
type Params struct {
	// GA
	PopulationSize int     `json:"populationSize"`
	MutationRate   float64 `json:"mutationRate"`
	CrossoverRate  float64 `json:"crossoverRate"`
	Elitism        bool    `json:"elitism"`

	// PSO
	SwarmSize int     `json:"swarmSize"`
	Inertia   float64 `json:"inertia"`
	Cognitive float64 `json:"cognitive"`
	Social    float64 `json:"social"`

	// Seed selects the random stream; 0 means time-based.
	Seed int64 `json:"seed"`
}

// New builds an optimizer of the given kind against the named benchmark
// function. It fails with an invalid-configuration error on an unknown kind,
// an unknown function or out-of-range hyperparameters.
func New(kind Algorithm, params Params, functionName string) (Optimizer, error) {
	return NewWithSource(kind, params, functionName, NewRandomSource(params.Seed))
}

// NewWithSource is New with an explicit random source, for deterministic
// construction in tests.
func NewWithSource(kind Algorithm, params Params, functionName string, rng RandomSource) (Optimizer, error) {
	fn, ok := benchmark.Lookup(functionName)
	if !ok {
		return nil, NewErrorf(KindInvalidConfiguration, "unknown benchmark function %q", functionName).WithOperation("New")
	}

	switch kind {
	case AlgorithmGA:
		return NewGeneticOptimizer(GeneticConfig{
			PopulationSize: params.PopulationSize,
			MutationRate:   params.MutationRate,
			CrossoverRate:  params.CrossoverRate,
			Elitism:        params.Elitism,
		}, fn, rng)
	case AlgorithmPSO:
		return NewParticleSwarmOptimizer(SwarmConfig{
			SwarmSize: params.SwarmSize,
			Inertia:   params.Inertia,
			Cognitive: params.Cognitive,
			Social:    params.Social,
		}, fn, rng)
	default:
		return nil, NewErrorf(KindInvalidConfiguration, "unknown algorithm %q", kind).WithOperation("New")
	}
}
