package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/logging"
)

var (
	logLevel  string
	logFormat string
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gapso",
	Short: "Genetic algorithm and particle swarm sandbox over 2-D benchmark functions",
	Long: `gapso runs population-based optimization (GA and PSO) against a fixed
catalog of 2-D benchmark functions, records per-iteration population
snapshots for replay, and serves the engine over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(&logging.Config{
			Level:  logLevel,
			Format: logFormat,
			Output: "stderr",
		})
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (json, console)")
}
