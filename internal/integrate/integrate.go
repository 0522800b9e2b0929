// Package integrate estimates definite integrals of univariate functions,
// using the derivative from the forward-mode evaluator to correct the
// classical rules.
//
// Supported rules:
//   - Euler: left Riemann sum
//   - EulerWithGradients: left Riemann sum plus the first-order Taylor term
//   - Trapezoidal: composite trapezoid
//   - TrapezoidalCorrected: trapezoid plus the Euler–Maclaurin end correction,
//     exact for polynomials up to degree three
package integrate

import (
	"fmt"

	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/forward"
)

// Integrand is a function of one variable written with dual numbers.
type Integrand func(x dual.Dual) dual.Dual

// at returns f(x) and f'(x).
func (f Integrand) at(x float64) (float64, float64) {
	value, gradient := forward.Gradient(func(v []dual.Dual) dual.Dual {
		return f(v[0])
	}, []float64{x})
	return value, gradient[0]
}

// Linspace returns steps evenly spaced points starting at start with spacing
// (end-start)/steps. end itself is not included.
//
// Panics if start > end or steps <= 0.
func Linspace(start, end float64, steps int) []float64 {
	checkRange(start, end, steps)
	delta := (end - start) / float64(steps)
	points := make([]float64, steps)
	for i := range points {
		points[i] = start + float64(i)*delta
	}
	return points
}

func checkRange(start, end float64, steps int) {
	if start > end {
		panic(fmt.Sprintf("integrate: start %v > end %v", start, end))
	}
	if steps <= 0 {
		panic(fmt.Sprintf("integrate: steps must be positive, got %d", steps))
	}
}

// Euler returns the left Riemann sum of f over [start, end].
func Euler(f Integrand, start, end float64, steps int) float64 {
	points := Linspace(start, end, steps)
	delta := (end - start) / float64(steps)
	sum := 0.0
	for _, x := range points {
		value, _ := f.at(x)
		sum += delta * value
	}
	return sum
}

// EulerWithGradients returns the left Riemann sum with each step extended by
// its first-order Taylor term: δ·f(x) + ½δ²·f'(x).
func EulerWithGradients(f Integrand, start, end float64, steps int) float64 {
	points := Linspace(start, end, steps)
	delta := (end - start) / float64(steps)
	sum := 0.0
	for _, x := range points {
		value, derivative := f.at(x)
		sum += delta*value + 0.5*delta*delta*derivative
	}
	return sum
}

// Trapezoidal returns the composite trapezoid rule over steps intervals.
func Trapezoidal(f Integrand, start, end float64, steps int) float64 {
	sum, _, _ := trapezoid(f, start, end, steps)
	return sum
}

// TrapezoidalCorrected returns the composite trapezoid rule plus the
// Euler–Maclaurin end correction δ²/12·(f'(start) - f'(end)).
func TrapezoidalCorrected(f Integrand, start, end float64, steps int) float64 {
	sum, first, last := trapezoid(f, start, end, steps)
	delta := (end - start) / float64(steps)
	return sum + delta*delta/12*(first-last)
}

// trapezoid returns the trapezoid sum and the derivatives at both ends.
func trapezoid(f Integrand, start, end float64, steps int) (sum, firstDerivative, lastDerivative float64) {
	checkRange(start, end, steps)
	delta := (end - start) / float64(steps)

	prev, firstDerivative := f.at(start)
	lastDerivative = firstDerivative
	for k := 1; k <= steps; k++ {
		x := start + float64(k)*delta
		if k == steps {
			x = end
		}
		value, derivative := f.at(x)
		sum += delta * (prev + value) / 2
		prev = value
		lastDerivative = derivative
	}
	return sum, firstDerivative, lastDerivative
}
