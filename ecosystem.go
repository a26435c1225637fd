// Package ecosystem implements a small generic genetic-algorithm engine.
//
// Callers supply a population of values implementing the Organism
// interface and repeatedly call AdvanceGeneration to evolve it toward
// higher fitness using fitness-proportionate parent selection, crossover,
// and mutation. The engine treats organisms purely through the interface;
// genome representation, fitness scaling, and mutation semantics are
// entirely caller-owned.
package ecosystem

import (
	"errors"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// Organism is the capability contract a candidate solution must satisfy.
//
// Fitness values are treated as non-negative selection weights; higher is
// better. Supplying negative fitness is a caller contract violation and
// leaves the parent-selection draw undefined for the affected organism.
// Fitness must be deterministic for a fixed organism state.
//
// Organisms are typically implemented with pointer receivers (O = *T) so
// that Mutate can modify the value in place.
type Organism[O any] interface {
	// Fitness evaluates the organism's fitness. Higher is better.
	Fitness() float64

	// Breed produces a new child organism derived from the receiver and
	// other. Neither parent may be mutated.
	Breed(other O) O

	// Mutate perturbs the organism in place. The rate is an opaque
	// non-negative scalar whose magnitude semantics belong to the
	// implementation; the engine passes it through unchanged.
	Mutate(rate float64)
}

// ErrEmptyPopulation is returned when an Ecosystem is constructed with no
// organisms. An empty population has no valid selection distribution, so
// every operation on it would be a programming error.
var ErrEmptyPopulation = errors.New("ecosystem: population must contain at least one organism")

// Ecosystem owns a fixed-size ordered population of organisms and evolves
// it generation over generation. The population size never changes after
// construction: every generational advance produces exactly as many
// children as there were parents.
//
// An Ecosystem is not safe for concurrent use; callers must not issue more
// than one operation at a time on the same instance.
type Ecosystem[O Organism[O]] struct {
	organisms  []O
	generation int
	rng        *rand.Rand
}

// New creates an ecosystem from the given organisms, seeding its random
// source from the current time. Returns ErrEmptyPopulation if organisms
// is empty.
func New[O Organism[O]](organisms []O) (*Ecosystem[O], error) {
	return NewWithRand(organisms, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates an ecosystem that draws parent selections from the
// given random source, making runs reproducible for a fixed seed. A nil
// rng falls back to a time-seeded source.
func NewWithRand[O Organism[O]](organisms []O, rng *rand.Rand) (*Ecosystem[O], error) {
	if len(organisms) == 0 {
		return nil, ErrEmptyPopulation
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	members := make([]O, len(organisms))
	copy(members, organisms)
	return &Ecosystem[O]{organisms: members, rng: rng}, nil
}

// Size returns the fixed population size.
func (e *Ecosystem[O]) Size() int {
	return len(e.organisms)
}

// Generation returns the number of completed generational advances.
func (e *Ecosystem[O]) Generation() int {
	return e.generation
}

// Organisms returns the current members. The slice is owned by the
// ecosystem; callers must not mutate organisms while an advance is in
// progress.
func (e *Ecosystem[O]) Organisms() []O {
	return e.organisms
}

// Fittest returns the member with the greatest fitness, evaluating every
// organism fresh. Ties resolve to the lowest index so repeated calls on
// unchanged state return the same organism.
func (e *Ecosystem[O]) Fittest() O {
	best := e.organisms[0]
	bestFit := best.Fitness()
	for _, o := range e.organisms[1:] {
		if f := o.Fitness(); f > bestFit {
			best, bestFit = o, f
		}
	}
	return best
}

// AdvanceGeneration replaces the entire population with a newly bred
// generation of the same size.
//
// Fitness is evaluated exactly once per member and cached for the call,
// giving selection a consistent snapshot. For each slot two parents are
// drawn independently by roulette-wheel selection (with replacement; an
// organism may parent any number of children, including both sides of the
// same child), the child is bred, then mutated with mutationRate. When the
// total fitness is zero, parents are drawn uniformly instead.
//
// Children are constructed in parallel across slots. Parent draws happen
// up front on the ecosystem's random source, so a seeded run selects the
// same lineage regardless of scheduling. The replacement is atomic: the
// new generation is swapped in only after every child is complete.
func (e *Ecosystem[O]) AdvanceGeneration(mutationRate float64) {
	n := len(e.organisms)
	weights := e.evaluateAll()

	cum := make([]float64, n)
	total := 0.0
	for i, w := range weights {
		total += w
		cum[i] = total
	}

	parents := make([][2]int, n)
	for i := range parents {
		parents[i] = [2]int{e.selectParent(cum, total), e.selectParent(cum, total)}
	}

	next := make([]O, n)
	p := pool.New().WithMaxGoroutines(runtime.GOMAXPROCS(0))
	for i := range next {
		p.Go(func() {
			mother := e.organisms[parents[i][0]]
			father := e.organisms[parents[i][1]]
			child := mother.Breed(father)
			child.Mutate(mutationRate)
			next[i] = child
		})
	}
	p.Wait()

	e.organisms = next
	e.generation++
}

// evaluateAll computes the fitness of every member concurrently and
// returns the values in population order.
func (e *Ecosystem[O]) evaluateAll() []float64 {
	fits := make([]float64, len(e.organisms))
	p := pool.New().WithMaxGoroutines(runtime.GOMAXPROCS(0))
	for i, o := range e.organisms {
		p.Go(func() {
			fits[i] = o.Fitness()
		})
	}
	p.Wait()
	return fits
}

// selectParent draws one parent index by roulette-wheel selection over the
// cumulative weights. The draw is taken from (0, total] so zero-weight
// members are never selected while any positive weight exists. A zero
// total falls back to a uniform draw.
func (e *Ecosystem[O]) selectParent(cum []float64, total float64) int {
	if total <= 0 {
		return e.rng.Intn(len(cum))
	}
	r := total * (1 - e.rng.Float64())
	return sort.SearchFloat64s(cum, r)
}
