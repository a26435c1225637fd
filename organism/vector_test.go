package organism

import (
	"math"
	"math/rand"
	"testing"
)

func sphere(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func TestNewVectorBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	lower := []float64{-1, 0, 10}
	upper := []float64{1, 2, 20}

	for i := 0; i < 100; i++ {
		v := NewVector(sphere, lower, upper, rng)
		for d := range v.Genome {
			if v.Genome[d] < lower[d] || v.Genome[d] > upper[d] {
				t.Fatalf("Dimension %d value %v outside [%v, %v]", d, v.Genome[d], lower[d], upper[d])
			}
		}
	}
}

func TestVectorFitness(t *testing.T) {
	v := &Vector{Genome: []float64{0, 0}, Cost: sphere}
	if got := v.Fitness(); got != 1 {
		t.Errorf("Zero-cost fitness = %v, want 1", got)
	}

	v.Genome = []float64{3, 0}
	if got := v.Fitness(); got != 0.1 {
		t.Errorf("Cost-9 fitness = %v, want 0.1", got)
	}
}

func TestVectorBreedBlend(t *testing.T) {
	lower := []float64{-10, -10}
	upper := []float64{10, 10}
	a := &Vector{Genome: []float64{0, 0}, Lower: lower, Upper: upper, Cost: sphere}
	b := &Vector{Genome: []float64{4, 8}, Lower: lower, Upper: upper, Cost: sphere}

	for i := 0; i < 50; i++ {
		child := a.Breed(b)
		// A blended child lies on the segment between its parents.
		for d := range child.Genome {
			lo := math.Min(a.Genome[d], b.Genome[d])
			hi := math.Max(a.Genome[d], b.Genome[d])
			if child.Genome[d] < lo || child.Genome[d] > hi {
				t.Fatalf("Dimension %d value %v outside parent range [%v, %v]", d, child.Genome[d], lo, hi)
			}
		}
		// The blend weight is shared across dimensions.
		if b.Genome[0] != 0 {
			w0 := child.Genome[0] / b.Genome[0]
			w1 := child.Genome[1] / b.Genome[1]
			if math.Abs(w0-w1) > 1e-12 {
				t.Fatalf("Blend weights differ across dimensions: %v vs %v", w0, w1)
			}
		}
	}

	if a.Genome[0] != 0 || b.Genome[0] != 4 {
		t.Error("Breed must not mutate either parent")
	}
}

func TestVectorMutateClamps(t *testing.T) {
	lower := []float64{-1}
	upper := []float64{1}
	v := &Vector{Genome: []float64{0.99}, Lower: lower, Upper: upper, Cost: sphere}

	for i := 0; i < 200; i++ {
		v.Mutate(0.5)
		if v.Genome[0] < -1 || v.Genome[0] > 1 {
			t.Fatalf("Mutation escaped bounds: %v", v.Genome[0])
		}
	}

	v.Genome[0] = 0.5
	v.Mutate(0)
	if v.Genome[0] != 0.5 {
		t.Errorf("Rate 0 should not move the genome, got %v", v.Genome[0])
	}
}
