// Package optim implements gradient-based minimisation of functions written
// with dual numbers.
//
// This package provides:
//   - Optimizer interface: one update from a point and its gradient
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//   - Minimize: the evaluate/update loop driving any Optimizer
//
// Gradients come from the forward-mode evaluator, so the objective is a
// plain forward.ScalarObjective.
//
// Example usage:
//
//	f := func(x []dual.Dual) dual.Dual {
//	    return dual.Square(x[0]).Add(x[0].MulScalar(2)).AddScalar(1)
//	}
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.3})
//	res := optim.Minimize(f, []float64{5}, opt, optim.MinimizeConfig{MaxSteps: 30})
//	// res.X[0] ≈ -1
package optim

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"

	"github.com/born-ml/dualdiff/internal/forward"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step returns the next position given the current position and the
	// gradient of the objective there. x is not modified.
	Step(x, gradient []float64) []float64

	// Reset clears any state accumulated by previous steps.
	Reset()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// MinimizeConfig bounds a Minimize run.
type MinimizeConfig struct {
	MaxSteps  int     // Number of updates to apply at most
	Tolerance float64 // Stop once max|gradient| < Tolerance (0 disables)
}

// Result is the outcome of Minimize.
type Result struct {
	X         []float64 // Final position
	Value     float64   // Objective value at X
	Gradient  []float64 // Gradient at X
	Steps     int       // Updates applied
	Converged bool      // Whether the tolerance was reached
}

// Step performs one stateless gradient descent update x - lr * ∇f(x).
func Step(f forward.ScalarObjective, x []float64, lr float64) []float64 {
	_, gradient := forward.Gradient(f, x)
	next := make([]float64, len(x))
	for i := range x {
		next[i] = x[i] - lr*gradient[i]
	}
	return next
}

// Minimize repeatedly evaluates f and applies opt until MaxSteps updates
// have been made or the gradient falls below Tolerance.
func Minimize(f forward.ScalarObjective, x0 []float64, opt Optimizer, cfg MinimizeConfig) Result {
	x := append([]float64(nil), x0...)
	value, gradient := forward.Gradient(f, x)

	res := Result{}
	for res.Steps < cfg.MaxSteps {
		if cfg.Tolerance > 0 && maxAbs(gradient) < cfg.Tolerance {
			res.Converged = true
			break
		}
		x = opt.Step(x, gradient)
		res.Steps++
		value, gradient = forward.Gradient(f, x)
		klog.V(4).InfoS("optimizer step", "step", res.Steps, "value", value)
	}
	if !res.Converged && cfg.Tolerance > 0 && maxAbs(gradient) < cfg.Tolerance {
		res.Converged = true
	}

	res.X = x
	res.Value = value
	res.Gradient = gradient
	klog.V(2).InfoS("minimization finished", "steps", res.Steps, "value", value, "converged", res.Converged)
	return res
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, e := range v {
		m = math.Max(m, math.Abs(e))
	}
	return m
}

func checkDims(x, gradient []float64) {
	if len(x) != len(gradient) {
		panic(fmt.Sprintf("optim: position has %d elements, gradient %d", len(x), len(gradient)))
	}
}
