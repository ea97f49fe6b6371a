// Package optimization implements the population-based optimization engine:
// a genetic algorithm and a particle swarm, the run driver that steps them,
// and the archive that stores completed runs for replay.
package optimization

import (
	"math"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization/benchmark"
)

// Algorithm identifies an optimizer implementation.
type Algorithm string

const (
	// AlgorithmGA is the genetic algorithm.
	AlgorithmGA Algorithm = "ga"
	// AlgorithmPSO is particle swarm optimization.
	AlgorithmPSO Algorithm = "pso"
)

// Member is one population member as seen from outside the optimizer.
// Fitness is +Inf until the member has been evaluated at least once, and is
// never stale after Step returns.
type Member struct {
	X       float64
	Y       float64
	Fitness float64
}

// Position is a bare (x, y) pair. Snapshots drop fitness and velocity on
// purpose: replay only needs positions.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Best tracks the run-global best fitness and position. It is owned by the
// run driver and passed explicitly into Evaluate and Step, never shared
// between runs.
type Best struct {
	Fitness float64
	X       float64
	Y       float64
	defined bool
}

// NewBest returns a Best initialized to (+Inf, undefined).
func NewBest() Best {
	return Best{Fitness: math.Inf(1)}
}

// Defined reports whether any evaluation has established a best position.
func (b *Best) Defined() bool { return b.defined }

// Observe records a candidate. The best is updated only on strict
// improvement, which keeps it monotonically non-increasing.
func (b *Best) Observe(x, y, fitness float64) {
	if fitness < b.Fitness {
		b.Fitness = fitness
		b.X = x
		b.Y = y
		b.defined = true
	}
}

// Optimizer is the contract shared by the genetic algorithm and the particle
// swarm. The two implementations share no state, only this surface.
//
// Call order matters: Initialize, then Evaluate at least once, then Step as
// often as desired. The particle swarm reads the global-best position during
// Step and rejects the call with an invalid-state error if no evaluation has
// defined one yet.
type Optimizer interface {
	// Initialize samples a fresh population within the function bounds.
	Initialize()

	// Evaluate computes the fitness of every member and reports strict
	// improvements into best.
	Evaluate(best *Best)

	// Step produces the next generation (GA) or moves every particle (PSO)
	// and re-evaluates.
	Step(best *Best) error

	// Population returns a copy of the current members.
	Population() []Member

	// Algorithm identifies the implementation.
	Algorithm() Algorithm

	// Function returns the benchmark function the optimizer was built for.
	Function() benchmark.Function
}
