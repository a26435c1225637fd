// Package organism provides ready-made Organism implementations used by
// the CLI, the job server, and the optimizer bridge: a scalar approximator,
// a target-phrase matcher, and a bounded float64 vector genome.
//
// Construction takes a *rand.Rand so initial populations are reproducible
// for a fixed seed. Randomness during breeding and mutation uses the
// concurrency-safe math/rand/v2 package-level source, since the engine may
// build children from multiple goroutines.
package organism

import (
	"math"
	"math/rand"
	randv2 "math/rand/v2"
)

// Approximator evolves a scalar value toward a target number.
// Fitness is the reciprocal of the distance to the target, so it grows
// without bound as the value converges (and is +Inf on an exact hit).
type Approximator struct {
	Target float64
	Value  float64
}

// NewApproximator creates an approximator with a random initial value
// drawn uniformly from [-span, span].
func NewApproximator(target, span float64, rng *rand.Rand) *Approximator {
	return &Approximator{
		Target: target,
		Value:  (rng.Float64()*2 - 1) * span,
	}
}

// Fitness returns 1 / |target - value|.
func (a *Approximator) Fitness() float64 {
	return 1 / math.Abs(a.Target-a.Value)
}

// Breed returns a child holding the midpoint of both parents' values.
func (a *Approximator) Breed(other *Approximator) *Approximator {
	return &Approximator{
		Target: a.Target,
		Value:  (a.Value + other.Value) / 2,
	}
}

// Mutate shifts the value by a uniform random amount in [-rate, rate).
func (a *Approximator) Mutate(rate float64) {
	if rate <= 0 {
		return
	}
	a.Value += (randv2.Float64()*2 - 1) * rate
}
