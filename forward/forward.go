// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package forward computes values, gradients and Jacobians of functions
// written with dual numbers, using forward-mode automatic differentiation.
//
// Example:
//
//	import (
//	    "github.com/born-ml/dualdiff/dual"
//	    "github.com/born-ml/dualdiff/forward"
//	)
//
//	func main() {
//	    f := func(x []dual.Dual) dual.Dual {
//	        return x[0].Add(dual.ScalarMul(2, x[1]))
//	    }
//	    value, gradient := forward.Gradient(f, []float64{1, 2})
//	    // value = 5, gradient = [1, 2]
//	}
package forward

import (
	"github.com/born-ml/dualdiff/internal/forward"
	"github.com/born-ml/dualdiff/internal/parallel"
)

// Objective maps input dual numbers to one or more outputs.
type Objective = forward.Objective

// ScalarObjective maps input dual numbers to a single output.
type ScalarObjective = forward.ScalarObjective

// Function is an Objective with declared input and output counts.
type Function = forward.Function

// ParallelConfig controls how evaluation passes are spread across goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a ParallelConfig sized to the machine.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// Evaluate returns the outputs of f at x and the Jacobian
// (rows = outputs, columns = inputs).
func Evaluate(f Objective, x []float64) (values []float64, jacobian [][]float64) {
	return forward.Evaluate(f, x)
}

// EvaluateParallel is Evaluate with passes run concurrently.
func EvaluateParallel(f Objective, x []float64, cfg ParallelConfig) (values []float64, jacobian [][]float64) {
	return forward.EvaluateParallel(f, x, cfg)
}

// Gradient returns the value of f at x and its gradient.
func Gradient(f ScalarObjective, x []float64) (value float64, gradient []float64) {
	return forward.Gradient(f, x)
}

// GradientParallel is Gradient with passes run concurrently.
func GradientParallel(f ScalarObjective, x []float64, cfg ParallelConfig) (value float64, gradient []float64) {
	return forward.GradientParallel(f, x, cfg)
}

// Vector adapts a ScalarObjective to an Objective.
func Vector(f ScalarObjective) Objective { return forward.Vector(f) }
