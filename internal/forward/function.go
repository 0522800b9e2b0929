package forward

import (
	"fmt"

	"github.com/born-ml/dualdiff/internal/parallel"
)

// Function is an Objective with a declared arity.
//
// Evaluate checks the input length and every pass's output count against
// the declared sizes and panics on mismatch.
type Function struct {
	Inputs    int
	Outputs   int
	Objective Objective
}

// Evaluate evaluates fn at x. See the package-level Evaluate.
func (fn Function) Evaluate(x []float64) (values []float64, jacobian [][]float64) {
	return fn.evaluate(x, parallel.Sequential())
}

// EvaluateParallel evaluates fn at x with passes distributed according to cfg.
func (fn Function) EvaluateParallel(x []float64, cfg parallel.Config) (values []float64, jacobian [][]float64) {
	return fn.evaluate(x, cfg)
}

func (fn Function) evaluate(x []float64, cfg parallel.Config) ([]float64, [][]float64) {
	if fn.Inputs < 1 || fn.Outputs < 1 {
		panic(fmt.Sprintf("forward: invalid arity %d -> %d (must be >= 1)", fn.Inputs, fn.Outputs))
	}
	if len(x) != fn.Inputs {
		panic(fmt.Sprintf("forward: got %d inputs, declared %d", len(x), fn.Inputs))
	}
	return evaluate(fn.Objective, x, fn.Outputs, cfg)
}
