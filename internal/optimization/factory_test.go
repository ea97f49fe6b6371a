package optimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptimizer(t *testing.T) {
	gaParams := Params{PopulationSize: 30, MutationRate: 0.1, CrossoverRate: 0.9, Elitism: true}
	psoParams := Params{SwarmSize: 30, Inertia: 0.729, Cognitive: 1.494, Social: 1.494}

	tests := []struct {
		name     string
		kind     Algorithm
		params   Params
		function string
		wantErr  bool
	}{
		{name: "ga", kind: AlgorithmGA, params: gaParams, function: "sphere"},
		{name: "pso", kind: AlgorithmPSO, params: psoParams, function: "ackley"},
		{name: "case insensitive function", kind: AlgorithmGA, params: gaParams, function: "Sphere"},
		{name: "unknown algorithm", kind: Algorithm("annealing"), params: gaParams, function: "sphere", wantErr: true},
		{name: "unknown function", kind: AlgorithmGA, params: gaParams, function: "griewank", wantErr: true},
		{name: "ga population too small", kind: AlgorithmGA, params: Params{PopulationSize: 1}, function: "sphere", wantErr: true},
		{name: "pso empty swarm", kind: AlgorithmPSO, params: Params{SwarmSize: 0}, function: "sphere", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := New(tt.kind, tt.params, tt.function)
			if tt.wantErr {
				assert.True(t, IsInvalidConfiguration(err), "got err = %v, want invalid configuration", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, opt.Algorithm())
		})
	}
}

func TestNewWithSourceIsDeterministic(t *testing.T) {
	params := Params{PopulationSize: 10, MutationRate: 0.1, CrossoverRate: 0.9}

	a, err := NewWithSource(AlgorithmGA, params, "sphere", NewRandomSource(5))
	require.NoError(t, err)
	b, err := NewWithSource(AlgorithmGA, params, "sphere", NewRandomSource(5))
	require.NoError(t, err)

	a.Initialize()
	b.Initialize()

	assert.Equal(t, b.Population(), a.Population(), "identical seeds must produce identical populations")
}
