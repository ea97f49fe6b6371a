package optimization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRun(t *testing.T, maxIterations int) *Run {
	t.Helper()
	params := Params{
		PopulationSize: 20,
		MutationRate:   0.1,
		CrossoverRate:  0.9,
		Elitism:        true,
		Seed:           7,
	}
	opt, err := New(AlgorithmGA, params, "sphere")
	require.NoError(t, err)
	return NewRun(opt, params, maxIterations)
}

func TestRunLifecycle(t *testing.T) {
	run := newTestRun(t, 3)

	require.Equal(t, StateIdle, run.State())

	assert.True(t, IsInvalidState(run.Advance()), "advance while idle")
	assert.True(t, IsInvalidState(run.Stop()), "stop while idle")

	require.NoError(t, run.Start())
	require.Equal(t, StateRunning, run.State())
	assert.True(t, IsInvalidState(run.Start()), "second start")

	for i := 0; i < 3; i++ {
		require.NoError(t, run.Advance())
	}
	require.Equal(t, StateCompleted, run.State())

	assert.True(t, IsInvalidState(run.Advance()), "advance after completion")
	assert.True(t, IsInvalidState(run.Stop()), "stop after completion")
}

func TestRunStop(t *testing.T) {
	run := newTestRun(t, 100)
	require.NoError(t, run.Start())
	require.NoError(t, run.Advance())
	require.NoError(t, run.Stop())
	require.Equal(t, StateStopped, run.State())

	// History survives the stop.
	assert.Len(t, run.History(), 2)
}

func TestRunHistoryLengthInvariant(t *testing.T) {
	run := newTestRun(t, 10)
	require.NoError(t, run.Start())

	require.Len(t, run.History(), 1, "snapshot zero recorded at start")

	for i := 1; i <= 10; i++ {
		require.NoError(t, run.Advance())
		require.Len(t, run.History(), i+1, "after %d advances", i)
		require.Len(t, run.Stats(), i+1, "after %d advances", i)
	}
}

func TestRunUnboundedIterations(t *testing.T) {
	run := newTestRun(t, 0)
	require.NoError(t, run.Start())

	for i := 0; i < 250; i++ {
		require.NoError(t, run.Advance())
	}
	require.Equal(t, StateRunning, run.State(), "no budget means the run keeps going")
	require.NoError(t, run.Stop())
}

func TestRunSnapshotZero(t *testing.T) {
	run := newTestRun(t, 5)
	require.NoError(t, run.Start())

	snap := run.Snapshot()
	assert.Equal(t, 0, snap.Iteration)
	assert.Len(t, snap.Positions, 20)
	assert.False(t, math.IsInf(snap.BestFitness, 1), "best defined after the initial evaluation")
}

func TestRunHistoryIsDeepCopy(t *testing.T) {
	run := newTestRun(t, 2)
	require.NoError(t, run.Start())
	require.NoError(t, run.Advance())

	h1 := run.History()
	h1[0][0] = Position{X: 999, Y: 999}

	h2 := run.History()
	assert.NotEqual(t, 999.0, h2[0][0].X, "mutating a returned history must not leak into the run")
}

func TestRunStatsTrackBest(t *testing.T) {
	run := newTestRun(t, 20)
	require.NoError(t, run.Start())
	for run.State() == StateRunning {
		require.NoError(t, run.Advance())
	}

	stats := run.Stats()
	require.Len(t, stats, 21)
	for i := 1; i < len(stats); i++ {
		require.Equal(t, stats[i-1].Iteration+1, stats[i].Iteration, "iteration sequence has a gap")
		require.LessOrEqual(t, stats[i].BestFitness, stats[i-1].BestFitness, "recorded best worsened")
	}

	last := stats[len(stats)-1]
	assert.Equal(t, run.Best().Fitness, last.BestFitness, "final recorded best matches the run best")
}

func TestRunSummary(t *testing.T) {
	run := newTestRun(t, 4)
	require.NoError(t, run.Start())
	for run.State() == StateRunning {
		require.NoError(t, run.Advance())
	}

	s := run.Summary()
	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, 4, s.Iterations)
	assert.Equal(t, AlgorithmGA, s.Algorithm)
	assert.Equal(t, "sphere", s.FunctionName)
	assert.Equal(t, 20, s.Params.PopulationSize, "params snapshot preserved")
}

func TestRunsAreIndependent(t *testing.T) {
	a := newTestRun(t, 10)
	b := newTestRun(t, 10)

	require.NoError(t, a.Start())
	require.NoError(t, b.Start())

	for i := 0; i < 10; i++ {
		require.NoError(t, a.Advance())
	}
	// b has not advanced; a's progress must not leak into b.
	assert.Equal(t, 0, b.Iteration())
	assert.Len(t, b.History(), 1)
}
