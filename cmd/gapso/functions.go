package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization/benchmark"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the benchmark function catalog",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-12s %-18s %s\n", "NAME", "DOMAIN", "OPTIMUM")
		for _, fn := range benchmark.List() {
			domain := fmt.Sprintf("[%g, %g]", fn.Lo, fn.Hi)
			fmt.Printf("%-12s %-18s (%g, %g)\n", fn.Name, domain, fn.OptimumX, fn.OptimumY)
		}
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
