// Package objective provides standard benchmark objective functions for
// exercising and comparing optimizers.
package objective

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Objective is a minimization benchmark with scalar per-dimension bounds.
type Objective struct {
	Name  string
	Eval  func(x []float64) float64
	Lower float64
	Upper float64
}

// Bounds expands the scalar bounds to per-dimension slices for dim
// dimensions.
func (o *Objective) Bounds(dim int) (lower, upper []float64) {
	lower = make([]float64, dim)
	upper = make([]float64, dim)
	for i := 0; i < dim; i++ {
		lower[i] = o.Lower
		upper[i] = o.Upper
	}
	return lower, upper
}

var objectives = map[string]*Objective{
	"sphere": {
		Name:  "sphere",
		Eval:  Sphere,
		Lower: -5.12,
		Upper: 5.12,
	},
	"rastrigin": {
		Name:  "rastrigin",
		Eval:  Rastrigin,
		Lower: -5.12,
		Upper: 5.12,
	},
	"rosenbrock": {
		Name:  "rosenbrock",
		Eval:  Rosenbrock,
		Lower: -2.048,
		Upper: 2.048,
	},
}

// Lookup returns the named objective, case-insensitively.
func Lookup(name string) (*Objective, error) {
	if o, ok := objectives[strings.ToLower(name)]; ok {
		return o, nil
	}
	return nil, fmt.Errorf("unknown objective %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the available objective names in sorted order.
func Names() []string {
	names := make([]string, 0, len(objectives))
	for name := range objectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sphere is the sum of squares; global minimum 0 at the origin.
func Sphere(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

// Rastrigin is a highly multimodal benchmark; global minimum 0 at the
// origin.
func Rastrigin(x []float64) float64 {
	sum := 10 * float64(len(x))
	for _, v := range x {
		sum += v*v - 10*math.Cos(2*math.Pi*v)
	}
	return sum
}

// Rosenbrock is the classic banana-valley benchmark; global minimum 0 at
// (1, ..., 1).
func Rosenbrock(x []float64) float64 {
	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		sum += 100*a*a + b*b
	}
	return sum
}
