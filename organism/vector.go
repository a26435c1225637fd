package organism

import (
	"math/rand"
	randv2 "math/rand/v2"
)

// Vector evolves a bounded []float64 genome against an arbitrary cost
// function to minimize. Fitness is 1 / (1 + cost), mapping any
// non-negative cost into (0, 1] so the engine's selection weights stay
// finite and non-negative.
type Vector struct {
	Genome []float64
	Lower  []float64
	Upper  []float64
	Cost   func([]float64) float64
}

// NewVector creates a vector organism with a genome drawn uniformly
// within the per-dimension bounds.
func NewVector(cost func([]float64) float64, lower, upper []float64, rng *rand.Rand) *Vector {
	genome := make([]float64, len(lower))
	for i := range genome {
		genome[i] = lower[i] + rng.Float64()*(upper[i]-lower[i])
	}
	return &Vector{Genome: genome, Lower: lower, Upper: upper, Cost: cost}
}

// Fitness returns 1 / (1 + cost(genome)).
func (v *Vector) Fitness() float64 {
	return 1 / (1 + v.Cost(v.Genome))
}

// Breed blends both genomes with a random weight shared across all
// dimensions: child[i] = w*self[i] + (1-w)*other[i].
func (v *Vector) Breed(other *Vector) *Vector {
	w := randv2.Float64()
	genome := make([]float64, len(v.Genome))
	for i := range genome {
		genome[i] = w*v.Genome[i] + (1-w)*other.Genome[i]
	}
	return &Vector{Genome: genome, Lower: v.Lower, Upper: v.Upper, Cost: v.Cost}
}

// Mutate perturbs each dimension by a uniform random amount scaled by
// rate and the dimension's range, clamping back into bounds. A rate of
// 0.1 allows moves of up to 10% of each dimension's span.
func (v *Vector) Mutate(rate float64) {
	if rate <= 0 {
		return
	}
	for i := range v.Genome {
		span := v.Upper[i] - v.Lower[i]
		v.Genome[i] += (randv2.Float64()*2 - 1) * rate * span
		if v.Genome[i] < v.Lower[i] {
			v.Genome[i] = v.Lower[i]
		}
		if v.Genome[i] > v.Upper[i] {
			v.Genome[i] = v.Upper[i]
		}
	}
}
