package opt

import (
	"math/rand"

	"github.com/cwbudde/ecosystem"
	"github.com/cwbudde/ecosystem/organism"
)

// GeneticAdapter runs the ecosystem engine over vector organisms to
// minimize a continuous objective.
type GeneticAdapter struct {
	generations  int
	popSize      int
	mutationRate float64
	seed         int64
}

// NewGenetic creates a genetic optimizer. The mutation rate is the
// fraction of each dimension's span a child may move per generation.
func NewGenetic(generations, popSize int, mutationRate float64, seed int64) Optimizer {
	return &GeneticAdapter{
		generations:  generations,
		popSize:      popSize,
		mutationRate: mutationRate,
		seed:         seed,
	}
}

// Run evolves a random population inside the bounds and returns the
// fittest genome with its cost.
func (g *GeneticAdapter) Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64) {
	rng := rand.New(rand.NewSource(g.seed))

	organisms := make([]*organism.Vector, g.popSize)
	for i := range organisms {
		organisms[i] = organism.NewVector(eval, lower[:dim], upper[:dim], rng)
	}

	eco, err := ecosystem.NewWithRand(organisms, rng)
	if err != nil {
		// Zero population size is a misconfiguration; report the cost of
		// the zero vector rather than failing the run.
		zero := make([]float64, dim)
		return zero, eval(zero)
	}

	for i := 0; i < g.generations; i++ {
		eco.AdvanceGeneration(g.mutationRate)
	}

	best := make([]float64, dim)
	copy(best, eco.Fittest().Genome)
	return best, eval(best)
}
