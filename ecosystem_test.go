package ecosystem

import (
	"errors"
	"math/rand"
	"testing"
)

// creature is a minimal organism for exercising the engine. Fitness is
// fixed per instance, children inherit the mother's fitness, and breeding
// records which parents were drawn.
type creature struct {
	fit       float64
	id        int
	parents   [2]int
	mutations int
	lastRate  float64
}

func (c *creature) Fitness() float64 { return c.fit }

func (c *creature) Breed(other *creature) *creature {
	return &creature{fit: c.fit, id: -1, parents: [2]int{c.id, other.id}}
}

func (c *creature) Mutate(rate float64) {
	c.mutations++
	c.lastRate = rate
}

func newTestEcosystem(t *testing.T, fitnesses ...float64) *Ecosystem[*creature] {
	t.Helper()

	organisms := make([]*creature, len(fitnesses))
	for i, f := range fitnesses {
		organisms[i] = &creature{fit: f, id: i}
	}

	eco, err := NewWithRand(organisms, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWithRand failed: %v", err)
	}
	return eco
}

func TestNewEmptyPopulation(t *testing.T) {
	_, err := New[*creature](nil)
	if !errors.Is(err, ErrEmptyPopulation) {
		t.Errorf("Expected ErrEmptyPopulation, got %v", err)
	}

	_, err = NewWithRand([]*creature{}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrEmptyPopulation) {
		t.Errorf("Expected ErrEmptyPopulation, got %v", err)
	}
}

func TestPopulationSizeInvariance(t *testing.T) {
	for _, size := range []int{1, 2, 10} {
		fits := make([]float64, size)
		for i := range fits {
			fits[i] = float64(i + 1)
		}
		eco := newTestEcosystem(t, fits...)

		for g := 0; g < 20; g++ {
			eco.AdvanceGeneration(0.1)
			if eco.Size() != size {
				t.Fatalf("Size %d after %d advances, want %d", eco.Size(), g+1, size)
			}
		}
	}
}

func TestGenerationCounter(t *testing.T) {
	eco := newTestEcosystem(t, 1, 2, 3)

	if eco.Generation() != 0 {
		t.Errorf("New ecosystem should be at generation 0, got %d", eco.Generation())
	}

	for g := 1; g <= 5; g++ {
		eco.AdvanceGeneration(0.1)
		if eco.Generation() != g {
			t.Errorf("Generation = %d, want %d", eco.Generation(), g)
		}
	}
}

func TestGenerationReplacement(t *testing.T) {
	eco := newTestEcosystem(t, 1, 2, 3, 4)

	before := make(map[*creature]bool)
	for _, o := range eco.Organisms() {
		before[o] = true
	}

	eco.AdvanceGeneration(0.25)

	for i, o := range eco.Organisms() {
		if before[o] {
			t.Errorf("Organism %d aliases a pre-advance member", i)
		}
		if o.mutations != 1 {
			t.Errorf("Child %d mutated %d times, want exactly once", i, o.mutations)
		}
		if o.lastRate != 0.25 {
			t.Errorf("Child %d mutated with rate %v, want 0.25", i, o.lastRate)
		}
	}
}

func TestSelectionWeighting(t *testing.T) {
	// With weights [0, 0, 100] the draw interval is (0, 100], which is
	// covered entirely by the third organism.
	eco := newTestEcosystem(t, 0, 0, 100)
	cum := []float64{0, 0, 100}

	for i := 0; i < 10000; i++ {
		if idx := eco.selectParent(cum, 100); idx != 2 {
			t.Fatalf("Draw %d selected index %d, want 2", i, idx)
		}
	}
}

func TestSelectionProportions(t *testing.T) {
	eco := newTestEcosystem(t, 1, 3)
	cum := []float64{1, 4}

	const trials = 20000
	counts := [2]int{}
	for i := 0; i < trials; i++ {
		counts[eco.selectParent(cum, 4)]++
	}

	// Expect roughly 25% / 75%.
	ratio := float64(counts[1]) / trials
	if ratio < 0.70 || ratio > 0.80 {
		t.Errorf("Heavier organism selected %.3f of draws, want ~0.75", ratio)
	}
}

func TestSelectionWeightingThroughBreeding(t *testing.T) {
	parentCounts := make(map[int]int)

	for trial := 0; trial < 50; trial++ {
		organisms := []*creature{
			{fit: 0, id: 0},
			{fit: 0, id: 1},
			{fit: 100, id: 2},
		}
		eco, err := NewWithRand(organisms, rand.New(rand.NewSource(int64(trial))))
		if err != nil {
			t.Fatalf("NewWithRand failed: %v", err)
		}

		eco.AdvanceGeneration(0)
		for _, child := range eco.Organisms() {
			parentCounts[child.parents[0]]++
			parentCounts[child.parents[1]]++
		}
	}

	total := parentCounts[0] + parentCounts[1] + parentCounts[2]
	if share := float64(parentCounts[2]) / float64(total); share < 0.9 {
		t.Errorf("High-fitness organism parented %.3f of children, want > 0.9", share)
	}
}

func TestZeroFitnessFallback(t *testing.T) {
	eco := newTestEcosystem(t, 0, 0, 0, 0)

	// Must not divide by zero; selection degenerates to uniform.
	for g := 0; g < 10; g++ {
		eco.AdvanceGeneration(0.1)
	}
	if eco.Size() != 4 {
		t.Errorf("Size = %d, want 4", eco.Size())
	}

	// Uniform fallback should spread draws over the whole population.
	cum := []float64{0, 0, 0, 0}
	counts := make([]int, 4)
	for i := 0; i < 20000; i++ {
		counts[eco.selectParent(cum, 0)]++
	}
	for i, c := range counts {
		share := float64(c) / 20000
		if share < 0.20 || share > 0.30 {
			t.Errorf("Index %d drawn %.3f of the time under uniform fallback, want ~0.25", i, share)
		}
	}
}

func TestFittest(t *testing.T) {
	eco := newTestEcosystem(t, 3.0, 7.5, 1.2)

	best := eco.Fittest()
	if best.fit != 7.5 {
		t.Errorf("Fittest returned organism with fitness %v, want 7.5", best.fit)
	}
}

func TestFittestTieBreak(t *testing.T) {
	eco := newTestEcosystem(t, 5.0, 5.0, 2.0)

	first := eco.Organisms()[0]
	for i := 0; i < 10; i++ {
		if got := eco.Fittest(); got != first {
			t.Fatalf("Call %d returned organism %d, want the lowest-index tie at 0", i, got.id)
		}
	}
}

func TestSingleOrganismPopulation(t *testing.T) {
	eco := newTestEcosystem(t, 1.0)

	for g := 0; g < 25; g++ {
		eco.AdvanceGeneration(0.1)
	}

	if eco.Size() != 1 {
		t.Errorf("Size = %d, want 1", eco.Size())
	}
	// The sole organism breeds with itself on both sides.
	child := eco.Organisms()[0]
	if child.parents[0] != child.parents[1] {
		t.Errorf("Self-breeding parents = %v, want identical indices", child.parents)
	}
}

func TestNilRandFallsBack(t *testing.T) {
	eco, err := NewWithRand([]*creature{{fit: 1}}, nil)
	if err != nil {
		t.Fatalf("NewWithRand failed: %v", err)
	}
	eco.AdvanceGeneration(0.1)
	if eco.Generation() != 1 {
		t.Errorf("Generation = %d, want 1", eco.Generation())
	}
}

func TestConstructionCopiesInput(t *testing.T) {
	organisms := []*creature{{fit: 1, id: 0}, {fit: 2, id: 1}}
	eco, err := NewWithRand(organisms, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWithRand failed: %v", err)
	}

	organisms[0] = &creature{fit: 99, id: 9}
	if eco.Organisms()[0].id != 0 {
		t.Error("Mutating the caller's slice changed the ecosystem's population")
	}
}
