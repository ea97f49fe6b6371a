package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization"
	"github.com/igorsergioJS/GA-PSO-web-app/internal/report"
)

var (
	runAlgorithm string
	runFunction  string
	runIters     int
	runSeed      int64
	runPlotPath  string

	gaPopSize   int
	gaMutation  float64
	gaCrossover float64
	gaElitism   bool

	psoSwarmSize int
	psoInertia   float64
	psoCognitive float64
	psoSocial    float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single optimization to completion",
	Long:  `Runs one GA or PSO optimization synchronously and prints the summary.`,
	RunE:  runOptimization,
}

func init() {
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "ga", "Algorithm: ga or pso")
	runCmd.Flags().StringVar(&runFunction, "function", "sphere", "Benchmark function name")
	runCmd.Flags().IntVar(&runIters, "iters", 200, "Number of iterations")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "Random seed (0 = time-based)")
	runCmd.Flags().StringVar(&runPlotPath, "plot", "", "Write a convergence plot PNG to this path")

	runCmd.Flags().IntVar(&gaPopSize, "pop", 30, "GA population size")
	runCmd.Flags().Float64Var(&gaMutation, "mutation", 0.1, "GA per-coordinate mutation rate")
	runCmd.Flags().Float64Var(&gaCrossover, "crossover", 0.9, "GA crossover rate")
	runCmd.Flags().BoolVar(&gaElitism, "elitism", true, "GA elitism")

	runCmd.Flags().IntVar(&psoSwarmSize, "swarm", 30, "PSO swarm size")
	runCmd.Flags().Float64Var(&psoInertia, "inertia", 0.729, "PSO inertia weight w")
	runCmd.Flags().Float64Var(&psoCognitive, "cognitive", 1.494, "PSO cognitive coefficient c1")
	runCmd.Flags().Float64Var(&psoSocial, "social", 1.494, "PSO social coefficient c2")

	rootCmd.AddCommand(runCmd)
}

func runOptimization(cmd *cobra.Command, args []string) error {
	if runIters < 1 {
		return fmt.Errorf("iters must be at least 1")
	}

	params := optimization.Params{
		PopulationSize: gaPopSize,
		MutationRate:   gaMutation,
		CrossoverRate:  gaCrossover,
		Elitism:        gaElitism,
		SwarmSize:      psoSwarmSize,
		Inertia:        psoInertia,
		Cognitive:      psoCognitive,
		Social:         psoSocial,
		Seed:           runSeed,
	}

	opt, err := optimization.New(optimization.Algorithm(runAlgorithm), params, runFunction)
	if err != nil {
		return err
	}

	run := optimization.NewRun(opt, params, runIters)
	if err := run.Start(); err != nil {
		return err
	}

	logger.Info("run started",
		zap.String("algorithm", runAlgorithm),
		zap.String("function", runFunction),
		zap.Int("iterations", runIters),
	)

	logEvery := runIters / 10
	if logEvery == 0 {
		logEvery = 1
	}

	for run.State() == optimization.StateRunning {
		if err := run.Advance(); err != nil {
			return err
		}
		if run.Iteration()%logEvery == 0 {
			best := run.Best()
			logger.Info("progress",
				zap.Int("iteration", run.Iteration()),
				zap.Float64("best_fitness", best.Fitness),
			)
		}
	}

	summary := run.Summary()
	fmt.Printf("%s on %s: best %.6g at (%.4f, %.4f) after %d iterations\n",
		summary.Algorithm, summary.FunctionName,
		summary.BestFitness, summary.BestX, summary.BestY, summary.Iterations)

	if runPlotPath != "" {
		title := fmt.Sprintf("%s / %s", summary.Algorithm, summary.FunctionName)
		if err := report.RenderConvergence(run.Stats(), title, runPlotPath); err != nil {
			return fmt.Errorf("render plot: %w", err)
		}
		fmt.Printf("wrote %s\n", runPlotPath)
	}

	return nil
}
