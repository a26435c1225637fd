package opt

// Optimizer is the common contract for the continuous optimizers the CLI
// and job server can run against an objective function.
type Optimizer interface {
	// Run minimizes eval over the box given by lower/upper in dim
	// dimensions and returns the best parameters found with their cost.
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64)
}
