package optimization

import (
	"math"
	"sort"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization/benchmark"
)

const tournamentSize = 3

// mutationSpread scales the Gaussian mutation stdev relative to the width of
// the search space.
const mutationSpread = 0.05

// GeneticConfig holds the GA hyperparameters. Immutable after construction.
type GeneticConfig struct {
	PopulationSize int
	MutationRate   float64
	CrossoverRate  float64
	Elitism        bool
}

// GeneticOptimizer evolves a fixed-size population with tournament
// selection, blend crossover and Gaussian mutation. After every Evaluate the
// population is sorted ascending by fitness; selection and elitism rely on
// that ordering.
type GeneticOptimizer struct {
	cfg GeneticConfig
	fn  benchmark.Function
	rng RandomSource
	pop []Member
}

// NewGeneticOptimizer validates the configuration and builds an optimizer.
// The population is empty until Initialize is called.
func NewGeneticOptimizer(cfg GeneticConfig, fn benchmark.Function, rng RandomSource) (*GeneticOptimizer, error) {
	if cfg.PopulationSize < 2 {
		return nil, NewErrorf(KindInvalidConfiguration, "population size must be at least 2, got %d", cfg.PopulationSize).WithOperation("NewGeneticOptimizer")
	}
	if cfg.MutationRate < 0 || cfg.MutationRate > 1 {
		return nil, NewErrorf(KindInvalidConfiguration, "mutation rate must be in [0,1], got %g", cfg.MutationRate).WithOperation("NewGeneticOptimizer")
	}
	if cfg.CrossoverRate < 0 || cfg.CrossoverRate > 1 {
		return nil, NewErrorf(KindInvalidConfiguration, "crossover rate must be in [0,1], got %g", cfg.CrossoverRate).WithOperation("NewGeneticOptimizer")
	}
	return &GeneticOptimizer{cfg: cfg, fn: fn, rng: rng}, nil
}

// Initialize samples PopulationSize members uniformly within bounds.
// Fitness stays +Inf until the first Evaluate.
func (g *GeneticOptimizer) Initialize() {
	g.pop = make([]Member, g.cfg.PopulationSize)
	for i := range g.pop {
		g.pop[i] = Member{
			X:       g.rng.Uniform(g.fn.Lo, g.fn.Hi),
			Y:       g.rng.Uniform(g.fn.Lo, g.fn.Hi),
			Fitness: math.Inf(1),
		}
	}
}

// Evaluate computes every member's fitness, reports improvements into best
// and sorts the population ascending by fitness.
func (g *GeneticOptimizer) Evaluate(best *Best) {
	for i := range g.pop {
		m := &g.pop[i]
		m.Fitness = g.fn.Eval(m.X, m.Y)
		best.Observe(m.X, m.Y, m.Fitness)
	}
	sort.SliceStable(g.pop, func(i, j int) bool {
		return g.pop[i].Fitness < g.pop[j].Fitness
	})
}

// Step breeds the next generation and re-evaluates it. It fails only when
// called before Initialize.
func (g *GeneticOptimizer) Step(best *Best) error {
	if len(g.pop) == 0 {
		return NewError(KindInvalidState, "step before initialization: population is empty").WithOperation("Step")
	}

	next := make([]Member, 0, g.cfg.PopulationSize)

	if g.cfg.Elitism {
		// Population is sorted after Evaluate, so index 0 is the elite.
		next = append(next, g.pop[0])
	}

	for len(next) < g.cfg.PopulationSize {
		p1 := g.tournament()
		p2 := g.tournament()

		c1, c2 := p1, p2
		if g.rng.Float64() < g.cfg.CrossoverRate {
			alpha := g.rng.Float64()
			c1 = Member{
				X: alpha*p1.X + (1-alpha)*p2.X,
				Y: alpha*p1.Y + (1-alpha)*p2.Y,
			}
			c2 = Member{
				X: alpha*p2.X + (1-alpha)*p1.X,
				Y: alpha*p2.Y + (1-alpha)*p1.Y,
			}
		}

		g.mutate(&c1)
		next = append(next, c1)
		if len(next) < g.cfg.PopulationSize {
			g.mutate(&c2)
			next = append(next, c2)
		}
	}

	g.pop = next
	g.Evaluate(best)
	return nil
}

// tournament draws tournamentSize members with replacement and returns the
// fittest.
func (g *GeneticOptimizer) tournament() Member {
	winner := g.pop[g.rng.Intn(len(g.pop))]
	for i := 1; i < tournamentSize; i++ {
		c := g.pop[g.rng.Intn(len(g.pop))]
		if c.Fitness < winner.Fitness {
			winner = c
		}
	}
	return winner
}

// mutate perturbs each coordinate independently with probability
// MutationRate and clamps the result into bounds.
func (g *GeneticOptimizer) mutate(m *Member) {
	stdev := mutationSpread * g.fn.Width()
	if g.rng.Float64() < g.cfg.MutationRate {
		m.X = g.fn.Clamp(m.X + g.rng.Norm(0, stdev))
	}
	if g.rng.Float64() < g.cfg.MutationRate {
		m.Y = g.fn.Clamp(m.Y + g.rng.Norm(0, stdev))
	}
	m.Fitness = math.Inf(1)
}

// Population returns a copy of the current members, best first after any
// Evaluate.
func (g *GeneticOptimizer) Population() []Member {
	out := make([]Member, len(g.pop))
	copy(out, g.pop)
	return out
}

// Algorithm returns AlgorithmGA.
func (g *GeneticOptimizer) Algorithm() Algorithm { return AlgorithmGA }

// Function returns the benchmark function.
func (g *GeneticOptimizer) Function() benchmark.Function { return g.fn }

// Config returns the hyperparameters the optimizer was built with.
func (g *GeneticOptimizer) Config() GeneticConfig { return g.cfg }
