package forward

import (
	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/parallel"
)

// Gradient returns the value of a single-output objective at x and its
// gradient.
//
// It uses the same seeding as Evaluate: one pass per input, each pass
// producing one gradient component.
func Gradient(f ScalarObjective, x []float64) (value float64, gradient []float64) {
	checkInputs(x)
	gradient = make([]float64, len(x))
	for i := range x {
		res := f(seed(x, i))
		value = res.Value
		gradient[i] = res.Derivative
	}
	return value, gradient
}

// GradientParallel is Gradient with passes distributed across goroutines
// according to cfg.
func GradientParallel(f ScalarObjective, x []float64, cfg parallel.Config) (value float64, gradient []float64) {
	values, jacobian := evaluate(Vector(f), x, 1, cfg)
	return values[0], jacobian[0]
}

// Vector adapts a ScalarObjective to the multi-output Objective form.
func Vector(f ScalarObjective) Objective {
	return func(x []dual.Dual) []dual.Dual {
		return []dual.Dual{f(x)}
	}
}
