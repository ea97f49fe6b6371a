package optimization

import (
	"math"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization/benchmark"
)

// initialVelocityBound bounds the uniform initial velocity on each axis.
const initialVelocityBound = 1.0

// SwarmConfig holds the PSO hyperparameters. Immutable after construction.
type SwarmConfig struct {
	SwarmSize int
	// Inertia is the velocity carry-over weight w.
	Inertia float64
	// Cognitive is the personal-best attraction coefficient c1.
	Cognitive float64
	// Social is the global-best attraction coefficient c2.
	Social float64
}

// particle carries the swarm-only state on top of a Member.
type particle struct {
	Member
	vx, vy       float64
	pbestX       float64
	pbestY       float64
	pbestFitness float64
}

// ParticleSwarmOptimizer moves a fixed-size swarm through the search space.
// Positions are hard-clamped into bounds on every step; velocity is
// deliberately never clamped or reflected, so a particle pushed against the
// boundary stays pinned there while its velocity keeps growing. Keep that
// boundary sticking: it is intentional behavior, not a bug.
type ParticleSwarmOptimizer struct {
	cfg   SwarmConfig
	fn    benchmark.Function
	rng   RandomSource
	swarm []particle
}

// NewParticleSwarmOptimizer validates the configuration and builds an
// optimizer. The swarm is empty until Initialize is called.
func NewParticleSwarmOptimizer(cfg SwarmConfig, fn benchmark.Function, rng RandomSource) (*ParticleSwarmOptimizer, error) {
	if cfg.SwarmSize < 1 {
		return nil, NewErrorf(KindInvalidConfiguration, "swarm size must be at least 1, got %d", cfg.SwarmSize).WithOperation("NewParticleSwarmOptimizer")
	}
	return &ParticleSwarmOptimizer{cfg: cfg, fn: fn, rng: rng}, nil
}

// Initialize samples positions uniformly within bounds and velocities
// uniformly from [-1, 1]. Personal bests start at the initial position with
// +Inf fitness.
func (p *ParticleSwarmOptimizer) Initialize() {
	p.swarm = make([]particle, p.cfg.SwarmSize)
	for i := range p.swarm {
		x := p.rng.Uniform(p.fn.Lo, p.fn.Hi)
		y := p.rng.Uniform(p.fn.Lo, p.fn.Hi)
		p.swarm[i] = particle{
			Member:       Member{X: x, Y: y, Fitness: math.Inf(1)},
			vx:           p.rng.Uniform(-initialVelocityBound, initialVelocityBound),
			vy:           p.rng.Uniform(-initialVelocityBound, initialVelocityBound),
			pbestX:       x,
			pbestY:       y,
			pbestFitness: math.Inf(1),
		}
	}
}

// Evaluate computes every particle's fitness, updates personal bests on
// strict improvement and reports improvements into best.
func (p *ParticleSwarmOptimizer) Evaluate(best *Best) {
	for i := range p.swarm {
		pt := &p.swarm[i]
		pt.Fitness = p.fn.Eval(pt.X, pt.Y)
		if pt.Fitness < pt.pbestFitness {
			pt.pbestFitness = pt.Fitness
			pt.pbestX = pt.X
			pt.pbestY = pt.Y
		}
		best.Observe(pt.X, pt.Y, pt.Fitness)
	}
}

// Step updates every particle's velocity and position, clamps positions into
// bounds and re-evaluates. The global-best position must be defined, which
// the run driver guarantees by evaluating during start.
func (p *ParticleSwarmOptimizer) Step(best *Best) error {
	if !best.Defined() {
		return NewError(KindInvalidState, "step before any evaluation: global best position is undefined").WithOperation("Step")
	}

	for i := range p.swarm {
		pt := &p.swarm[i]
		r1 := p.rng.Float64()
		r2 := p.rng.Float64()

		pt.vx = p.cfg.Inertia*pt.vx +
			p.cfg.Cognitive*r1*(pt.pbestX-pt.X) +
			p.cfg.Social*r2*(best.X-pt.X)
		pt.vy = p.cfg.Inertia*pt.vy +
			p.cfg.Cognitive*r1*(pt.pbestY-pt.Y) +
			p.cfg.Social*r2*(best.Y-pt.Y)

		pt.X = p.fn.Clamp(pt.X + pt.vx)
		pt.Y = p.fn.Clamp(pt.Y + pt.vy)
	}

	p.Evaluate(best)
	return nil
}

// Population returns a copy of the swarm's member view. Velocity and
// personal-best state stay internal.
func (p *ParticleSwarmOptimizer) Population() []Member {
	out := make([]Member, len(p.swarm))
	for i := range p.swarm {
		out[i] = p.swarm[i].Member
	}
	return out
}

// Algorithm returns AlgorithmPSO.
func (p *ParticleSwarmOptimizer) Algorithm() Algorithm { return AlgorithmPSO }

// Function returns the benchmark function.
func (p *ParticleSwarmOptimizer) Function() benchmark.Function { return p.fn }

// Config returns the hyperparameters the optimizer was built with.
func (p *ParticleSwarmOptimizer) Config() SwarmConfig { return p.cfg }
