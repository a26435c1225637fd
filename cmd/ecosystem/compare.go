package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/ecosystem/internal/objective"
	"github.com/cwbudde/ecosystem/internal/opt"
	"github.com/spf13/cobra"
)

var (
	compareObjective string
	compareDim       int
	compareIters     int
	comparePop       int
	compareRate      float64
	compareSeed      int64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Benchmark the genetic engine against the mayfly optimizer",
	Long: `Runs the genetic engine and the external mayfly swarm optimizer on the
same benchmark objective and reports both results.`,
	RunE: runComparison,
}

func init() {
	compareCmd.Flags().StringVar(&compareObjective, "objective", "sphere", "Benchmark objective (sphere, rastrigin, rosenbrock)")
	compareCmd.Flags().IntVar(&compareDim, "dim", 3, "Problem dimensionality")
	compareCmd.Flags().IntVar(&compareIters, "iters", 200, "Generations / iterations per optimizer")
	compareCmd.Flags().IntVar(&comparePop, "pop", 30, "Population size")
	compareCmd.Flags().Float64Var(&compareRate, "rate", 0.05, "Genetic mutation rate")
	compareCmd.Flags().Int64Var(&compareSeed, "seed", 42, "Random seed")

	rootCmd.AddCommand(compareCmd)
}

func runComparison(cmd *cobra.Command, args []string) error {
	obj, err := objective.Lookup(compareObjective)
	if err != nil {
		return err
	}
	lower, upper := obj.Bounds(compareDim)

	slog.Info("Starting comparison",
		"objective", obj.Name, "dim", compareDim, "iters", compareIters, "pop", comparePop)

	optimizers := []struct {
		name string
		opt  opt.Optimizer
	}{
		{"genetic", opt.NewGenetic(compareIters, comparePop, compareRate, compareSeed)},
		{"mayfly", opt.NewMayfly(compareIters, comparePop, compareSeed)},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OPTIMIZER\tBEST COST\tELAPSED")
	fmt.Fprintln(w, "---------\t---------\t-------")

	for _, entry := range optimizers {
		start := time.Now()
		_, cost := entry.opt.Run(obj.Eval, lower, upper, compareDim)
		elapsed := time.Since(start)

		slog.Info("Optimizer finished", "optimizer", entry.name, "cost", cost, "elapsed", elapsed)
		fmt.Fprintf(w, "%s\t%.6e\t%s\n", entry.name, cost, elapsed.Round(time.Millisecond))
	}

	return w.Flush()
}
