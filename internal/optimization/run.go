package optimization

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// State names a phase of the run state machine.
type State string

const (
	// StateIdle is the state before Start.
	StateIdle State = "idle"
	// StateRunning accepts Advance and Stop.
	StateRunning State = "running"
	// StateCompleted is reached when the iteration budget is exhausted.
	StateCompleted State = "completed"
	// StateStopped is reached by an explicit Stop.
	StateStopped State = "stopped"
)

// IterationStats summarizes one recorded iteration.
type IterationStats struct {
	Iteration   int     `json:"iteration"`
	BestFitness float64 `json:"bestFitness"`
	MeanFitness float64 `json:"meanFitness"`
}

// StepSnapshot is the per-step payload a renderer needs: the member
// positions plus scalar statistics. Population order carries no meaning for
// presentation.
type StepSnapshot struct {
	Iteration   int        `json:"iteration"`
	Positions   []Position `json:"positions"`
	BestFitness float64    `json:"bestFitness"`
	BestX       float64    `json:"bestX"`
	BestY       float64    `json:"bestY"`
}

// Summary describes a run at a point in time.
type Summary struct {
	State        State     `json:"state"`
	Iterations   int       `json:"iterations"`
	BestFitness  float64   `json:"bestFitness"`
	BestX        float64   `json:"bestX"`
	BestY        float64   `json:"bestY"`
	Algorithm    Algorithm `json:"algorithm"`
	FunctionName string    `json:"function"`
	Params       Params    `json:"params"`
}

// Run drives one optimizer through the Idle -> Running -> {Completed,
// Stopped} lifecycle. It owns the run-global best and the position history;
// the optimizer owns only its population.
//
// A Run is single-threaded by design: each Advance is atomic and the caller
// is responsible for scheduling between steps. Concurrent runs are safe as
// long as each has its own Run instance.
type Run struct {
	opt           Optimizer
	params        Params
	maxIterations int

	state     State
	iteration int
	best      Best
	history   [][]Position
	stats     []IterationStats
}

// NewRun wraps an optimizer. maxIterations 0 means unbounded: the run keeps
// accepting Advance until Stop is called.
func NewRun(opt Optimizer, params Params, maxIterations int) *Run {
	return &Run{
		opt:           opt,
		params:        params,
		maxIterations: maxIterations,
		state:         StateIdle,
		best:          NewBest(),
	}
}

// Start initializes the optimizer, evaluates once so the global best is
// defined before any velocity update reads it, and records snapshot 0.
func (r *Run) Start() error {
	if r.state != StateIdle {
		return NewErrorf(KindInvalidState, "start in state %q", r.state).WithOperation("Start")
	}

	r.best = NewBest()
	r.history = nil
	r.stats = nil
	r.iteration = 0

	r.opt.Initialize()
	r.opt.Evaluate(&r.best)
	r.record()

	r.state = StateRunning
	return nil
}

// Advance performs one step. Outside Running it rejects the call without
// mutating anything.
func (r *Run) Advance() error {
	if r.state != StateRunning {
		return NewErrorf(KindInvalidState, "advance in state %q", r.state).WithOperation("Advance")
	}

	if err := r.opt.Step(&r.best); err != nil {
		return err
	}
	r.iteration++
	r.record()

	if r.maxIterations > 0 && r.iteration >= r.maxIterations {
		r.state = StateCompleted
	}
	return nil
}

// Stop halts a running run and keeps its history.
func (r *Run) Stop() error {
	if r.state != StateRunning {
		return NewErrorf(KindInvalidState, "stop in state %q", r.state).WithOperation("Stop")
	}
	r.state = StateStopped
	return nil
}

// record appends the current population snapshot and its statistics, so
// len(history) stays iteration+1 at all times.
func (r *Run) record() {
	pop := r.opt.Population()
	positions := make([]Position, len(pop))
	fitness := make([]float64, 0, len(pop))
	for i, m := range pop {
		positions[i] = Position{X: m.X, Y: m.Y}
		if !math.IsInf(m.Fitness, 1) {
			fitness = append(fitness, m.Fitness)
		}
	}

	mean := math.Inf(1)
	if len(fitness) > 0 {
		mean = stat.Mean(fitness, nil)
	}

	r.history = append(r.history, positions)
	r.stats = append(r.stats, IterationStats{
		Iteration:   r.iteration,
		BestFitness: r.best.Fitness,
		MeanFitness: mean,
	})
}

// State returns the current lifecycle state.
func (r *Run) State() State { return r.state }

// Iteration returns the number of completed iterations.
func (r *Run) Iteration() int { return r.iteration }

// Best returns the run-global best observed so far.
func (r *Run) Best() Best { return r.best }

// Snapshot returns the latest recorded step snapshot.
func (r *Run) Snapshot() StepSnapshot {
	var positions []Position
	if len(r.history) > 0 {
		last := r.history[len(r.history)-1]
		positions = make([]Position, len(last))
		copy(positions, last)
	}
	return StepSnapshot{
		Iteration:   r.iteration,
		Positions:   positions,
		BestFitness: r.best.Fitness,
		BestX:       r.best.X,
		BestY:       r.best.Y,
	}
}

// History returns a deep copy of all recorded snapshots.
func (r *Run) History() [][]Position {
	out := make([][]Position, len(r.history))
	for i, snap := range r.history {
		out[i] = make([]Position, len(snap))
		copy(out[i], snap)
	}
	return out
}

// Stats returns a copy of the per-iteration statistics series. Its length
// always matches the history.
func (r *Run) Stats() []IterationStats {
	out := make([]IterationStats, len(r.stats))
	copy(out, r.stats)
	return out
}

// Summary describes the run as of now. After Completed or Stopped the
// summary is final.
func (r *Run) Summary() Summary {
	return Summary{
		State:        r.state,
		Iterations:   r.iteration,
		BestFitness:  r.best.Fitness,
		BestX:        r.best.X,
		BestY:        r.best.Y,
		Algorithm:    r.opt.Algorithm(),
		FunctionName: r.opt.Function().Name,
		Params:       r.params,
	}
}
