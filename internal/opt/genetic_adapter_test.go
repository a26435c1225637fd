package opt

import (
	"testing"

	"github.com/cwbudde/ecosystem/internal/objective"
)

func TestGeneticRunSphere(t *testing.T) {
	o, err := objective.Lookup("sphere")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	const dim = 3
	lower, upper := o.Bounds(dim)

	optimizer := NewGenetic(200, 40, 0.05, 42)
	best, cost := optimizer.Run(o.Eval, lower, upper, dim)

	if len(best) != dim {
		t.Fatalf("Best params length = %d, want %d", len(best), dim)
	}
	for i, v := range best {
		if v < lower[i] || v > upper[i] {
			t.Errorf("Dimension %d value %v escaped bounds", i, v)
		}
	}

	// A random point in [-5.12, 5.12]^3 has expected cost ~26; after 200
	// generations the engine should be far below that.
	if cost > 5 {
		t.Errorf("Cost after optimization = %v, want well below random baseline", cost)
	}
}

func TestGeneticRunZeroPopulation(t *testing.T) {
	o, err := objective.Lookup("sphere")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	lower, upper := o.Bounds(2)
	optimizer := NewGenetic(10, 0, 0.1, 1)

	best, cost := optimizer.Run(o.Eval, lower, upper, 2)
	if len(best) != 2 {
		t.Fatalf("Fallback params length = %d, want 2", len(best))
	}
	if cost != 0 {
		t.Errorf("Fallback cost = %v, want sphere(0) = 0", cost)
	}
}
