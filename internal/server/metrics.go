package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gapso",
		Name:      "runs_started_total",
		Help:      "Optimization runs started, by algorithm and benchmark function.",
	}, []string{"algorithm", "function"})

	runsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gapso",
		Name:      "runs_finished_total",
		Help:      "Optimization runs finished, by terminal state.",
	}, []string{"state"})

	iterationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gapso",
		Name:      "iterations_total",
		Help:      "Advance calls executed across all runs.",
	})

	bestFitness = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gapso",
		Name:      "run_best_fitness",
		Help:      "Best fitness observed so far, by algorithm and benchmark function.",
	}, []string{"algorithm", "function"})

	archivedRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gapso",
		Name:      "archived_runs_total",
		Help:      "Runs recorded into the archive.",
	})
)
