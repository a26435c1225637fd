package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/cwbudde/ecosystem"
	"github.com/cwbudde/ecosystem/organism"
	"github.com/spf13/cobra"
)

var (
	phraseTarget  string
	phrasePop     int
	phraseMaxGens int
	phraseRate    float64
	phraseSeed    int64
)

var phraseCmd = &cobra.Command{
	Use:   "phrase",
	Short: "Evolve random strings toward a target phrase",
	Long: `Runs the typing-monkeys demo: a population of random strings is bred
until one matches the target phrase exactly or the generation limit is hit.`,
	RunE: runPhrase,
}

func init() {
	phraseCmd.Flags().StringVar(&phraseTarget, "target", "To be or not to be?", "Phrase to evolve toward")
	phraseCmd.Flags().IntVar(&phrasePop, "pop", 500, "Population size")
	phraseCmd.Flags().IntVar(&phraseMaxGens, "max-generations", 2000, "Generation limit")
	phraseCmd.Flags().Float64Var(&phraseRate, "rate", 0.01, "Per-character mutation probability")
	phraseCmd.Flags().Int64Var(&phraseSeed, "seed", 42, "Random seed")

	rootCmd.AddCommand(phraseCmd)
}

func runPhrase(cmd *cobra.Command, args []string) error {
	if phraseTarget == "" {
		return fmt.Errorf("target phrase must not be empty")
	}

	slog.Info("Starting phrase run",
		"target", phraseTarget, "pop", phrasePop, "rate", phraseRate)

	rng := rand.New(rand.NewSource(phraseSeed))
	organisms := make([]*organism.Phrase, phrasePop)
	for i := range organisms {
		organisms[i] = organism.NewPhrase(phraseTarget, rng)
	}

	eco, err := ecosystem.NewWithRand(organisms, rng)
	if err != nil {
		return fmt.Errorf("failed to build population: %w", err)
	}

	start := time.Now()
	for eco.Generation() < phraseMaxGens {
		eco.AdvanceGeneration(phraseRate)

		best := eco.Fittest()
		fmt.Printf("gen %4d: %s\n", eco.Generation(), best.Text)

		if best.Solved() {
			slog.Info("Phrase matched",
				"generation", eco.Generation(), "elapsed", time.Since(start))
			return nil
		}
	}

	best := eco.Fittest()
	slog.Warn("Generation limit reached before match",
		"generations", eco.Generation(), "best", best.Text, "fitness", best.Fitness())
	fmt.Printf("No exact match after %d generations; best: %s\n", eco.Generation(), best.Text)

	return nil
}
