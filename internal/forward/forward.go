// Package forward evaluates values and first-order derivatives of functions
// written against dual numbers.
//
// The evaluator runs the objective once per input dimension. Pass i seeds
// input i with derivative 1 and every other input with derivative 0, so the
// derivatives of the outputs form column i of the Jacobian. Cost is
// proportional to the number of inputs and independent of the number of
// outputs.
//
// Example:
//
//	f := func(x []dual.Dual) []dual.Dual {
//	    return []dual.Dual{x[0].Mul(x[1]), dual.Sin(x[0])}
//	}
//	values, jacobian := forward.Evaluate(f, []float64{1, 2})
//	// jacobian[0] = [2, 1], jacobian[1] = [cos(1), 0]
//
// Objectives must be pure: the evaluator calls them several times (possibly
// concurrently, see EvaluateParallel) and relies on every call seeing the same
// function. Contract violations such as an empty input vector or an objective
// whose output count changes between passes panic.
package forward

import (
	"fmt"

	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/parallel"
)

// Objective maps input dual numbers to one or more output dual numbers.
type Objective func(x []dual.Dual) []dual.Dual

// ScalarObjective maps input dual numbers to a single output.
type ScalarObjective func(x []dual.Dual) dual.Dual

// seed builds the inputs for pass index: values copied from x, derivative 1
// at index and 0 elsewhere.
func seed(x []float64, index int) []dual.Dual {
	if index < 0 || index >= len(x) {
		panic(fmt.Sprintf("forward: seed index %d out of range [0, %d)", index, len(x)))
	}
	vars := make([]dual.Dual, len(x))
	for i, v := range x {
		vars[i] = dual.Constant(v)
	}
	vars[index].Derivative = 1
	return vars
}

func checkInputs(x []float64) {
	if len(x) == 0 {
		panic("forward: input vector must have at least one element")
	}
}

func newJacobian(outputs, inputs int) [][]float64 {
	jacobian := make([][]float64, outputs)
	cells := make([]float64, outputs*inputs)
	for o := range jacobian {
		jacobian[o] = cells[o*inputs : (o+1)*inputs : (o+1)*inputs]
	}
	return jacobian
}

// evaluator holds the output buffers of one Evaluate call.
type evaluator struct {
	f        Objective
	x        []float64
	outputs  int
	values   []float64
	jacobian [][]float64
}

// first runs pass 0, which fixes the output count and allocates buffers.
func (e *evaluator) first(wantOutputs int) {
	res := e.f(seed(e.x, 0))
	if len(res) == 0 {
		panic("forward: objective returned no outputs")
	}
	if wantOutputs > 0 && len(res) != wantOutputs {
		panic(fmt.Sprintf("forward: objective returned %d outputs, declared %d", len(res), wantOutputs))
	}
	e.outputs = len(res)
	e.values = make([]float64, e.outputs)
	e.jacobian = newJacobian(e.outputs, len(e.x))
	e.store(0, res, true)
}

// pass runs pass index and writes column index.
func (e *evaluator) pass(index int, storeValues bool) {
	e.store(index, e.f(seed(e.x, index)), storeValues)
}

func (e *evaluator) store(index int, res []dual.Dual, storeValues bool) {
	if len(res) != e.outputs {
		panic(fmt.Sprintf("forward: objective returned %d outputs on pass %d, expected %d",
			len(res), index, e.outputs))
	}
	for o, r := range res {
		if storeValues {
			e.values[o] = r.Value
		}
		e.jacobian[o][index] = r.Derivative
	}
}

func evaluate(f Objective, x []float64, wantOutputs int, cfg parallel.Config) ([]float64, [][]float64) {
	checkInputs(x)
	e := &evaluator{f: f, x: x}
	e.first(wantOutputs)

	if !cfg.Enabled {
		for i := 1; i < len(x); i++ {
			e.pass(i, true)
		}
		return e.values, e.jacobian
	}

	// Values are pass-invariant and already stored by pass 0; concurrent
	// passes only touch their own column.
	parallel.For(len(x)-1, func(i int) {
		e.pass(i+1, false)
	}, cfg)
	return e.values, e.jacobian
}

// Evaluate returns the output values of f at x and its Jacobian, where
// jacobian[o][i] is the partial derivative of output o with respect to
// input i.
//
// The objective is called exactly len(x) times.
func Evaluate(f Objective, x []float64) (values []float64, jacobian [][]float64) {
	return evaluate(f, x, 0, parallel.Sequential())
}

// EvaluateParallel is Evaluate with passes distributed across goroutines
// according to cfg. Results are identical to Evaluate.
func EvaluateParallel(f Objective, x []float64, cfg parallel.Config) (values []float64, jacobian [][]float64) {
	return evaluate(f, x, 0, cfg)
}
