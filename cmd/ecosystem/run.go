package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/cwbudde/ecosystem"
	"github.com/cwbudde/ecosystem/organism"
	"github.com/spf13/cobra"
)

var (
	runTarget      float64
	runSpan        float64
	runPop         int
	runGenerations int
	runRate        float64
	runSeed        int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evolve scalar approximators toward a target number",
	Long: `Runs the classic approximation demo: a population of scalar organisms
with fitness 1/|target - value| is bred toward the target.`,
	RunE: runApproximation,
}

func init() {
	runCmd.Flags().Float64Var(&runTarget, "target", math.Pi, "Number to approximate")
	runCmd.Flags().Float64Var(&runSpan, "span", 10, "Half-width of the random initial value range")
	runCmd.Flags().IntVar(&runPop, "pop", 10, "Population size")
	runCmd.Flags().IntVar(&runGenerations, "generations", 50, "Generations to evolve")
	runCmd.Flags().Float64Var(&runRate, "rate", 0.1, "Mutation rate")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "Random seed")

	rootCmd.AddCommand(runCmd)
}

func runApproximation(cmd *cobra.Command, args []string) error {
	slog.Info("Starting approximation run",
		"target", runTarget, "pop", runPop, "generations", runGenerations, "rate", runRate)

	rng := rand.New(rand.NewSource(runSeed))
	organisms := make([]*organism.Approximator, runPop)
	for i := range organisms {
		organisms[i] = organism.NewApproximator(runTarget, runSpan, rng)
	}

	eco, err := ecosystem.NewWithRand(organisms, rng)
	if err != nil {
		return fmt.Errorf("failed to build population: %w", err)
	}

	start := time.Now()
	for g := 0; g < runGenerations; g++ {
		eco.AdvanceGeneration(runRate)
		slog.Debug("Generation complete",
			"generation", eco.Generation(), "best_value", eco.Fittest().Value)
	}
	elapsed := time.Since(start)

	best := eco.Fittest()
	slog.Info("Run complete",
		"elapsed", elapsed,
		"best_value", best.Value,
		"error", math.Abs(runTarget-best.Value),
	)

	fmt.Printf("Best approximation of %g after %d generations: %g (error %.2e)\n",
		runTarget, eco.Generation(), best.Value, math.Abs(runTarget-best.Value))

	return nil
}
