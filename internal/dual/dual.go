// Package dual implements dual numbers for forward-mode automatic differentiation.
//
// A Dual carries a primal value together with the directional derivative of
// that value with respect to the single input seeded in the current pass.
// Every operation returns a new Dual and propagates the derivative using the
// matching differentiation rule:
//   - Add/Sub: d(a±b) = da ± db
//   - Mul: d(a*b) = da*b + a*db (product rule)
//   - Div: d(a/b) = (da*b - a*db) / b² (quotient rule)
//   - Pow: d(a^e) = e * da * a^(e-1)
//
// Division by zero and similar degenerate inputs are not guarded: IEEE
// infinities and NaNs propagate exactly as they would in plain float64 code.
package dual

import (
	"fmt"
	"math"
)

// Dual is a (value, derivative) pair.
type Dual struct {
	Value      float64 // primal quantity
	Derivative float64 // derivative w.r.t. the seeded input
}

// Constant creates a dual number that does not depend on the seeded input.
func Constant(v float64) Dual {
	return Dual{Value: v}
}

// Seeded creates an independent variable with derivative 1.
//
// Example:
//
//	x := dual.Seeded(2.0)
//	y := dual.Square(x) // y.Value = 4, y.Derivative = 4
func Seeded(v float64) Dual {
	return Dual{Value: v, Derivative: 1}
}

// WithDerivative creates a dual number with an explicit initial derivative.
func WithDerivative(v, d float64) Dual {
	return Dual{Value: v, Derivative: d}
}

// Add returns a + b.
func (a Dual) Add(b Dual) Dual {
	return Dual{
		Value:      a.Value + b.Value,
		Derivative: a.Derivative + b.Derivative,
	}
}

// AddScalar returns a + s.
func (a Dual) AddScalar(s float64) Dual {
	return Dual{Value: a.Value + s, Derivative: a.Derivative}
}

// Sub returns a - b.
func (a Dual) Sub(b Dual) Dual {
	return Dual{
		Value:      a.Value - b.Value,
		Derivative: a.Derivative - b.Derivative,
	}
}

// SubScalar returns a - s.
func (a Dual) SubScalar(s float64) Dual {
	return Dual{Value: a.Value - s, Derivative: a.Derivative}
}

// Mul returns a * b using the product rule.
func (a Dual) Mul(b Dual) Dual {
	return Dual{
		Value:      a.Value * b.Value,
		Derivative: a.Derivative*b.Value + a.Value*b.Derivative,
	}
}

// MulScalar returns a * s.
func (a Dual) MulScalar(s float64) Dual {
	return Dual{Value: a.Value * s, Derivative: a.Derivative * s}
}

// Div returns a / b using the quotient rule.
func (a Dual) Div(b Dual) Dual {
	return Dual{
		Value:      a.Value / b.Value,
		Derivative: (a.Derivative*b.Value - a.Value*b.Derivative) / (b.Value * b.Value),
	}
}

// DivScalar returns a / s.
func (a Dual) DivScalar(s float64) Dual {
	return Dual{Value: a.Value / s, Derivative: a.Derivative / s}
}

// Neg returns -a.
func (a Dual) Neg() Dual {
	return Dual{Value: -a.Value, Derivative: -a.Derivative}
}

// Pow returns a raised to a constant exponent.
//
// Follows math.Pow semantics for the value and for a^(e-1) in the
// derivative, so negative bases with fractional exponents yield NaN.
func (a Dual) Pow(exponent float64) Dual {
	return Dual{
		Value:      math.Pow(a.Value, exponent),
		Derivative: exponent * a.Derivative * math.Pow(a.Value, exponent-1),
	}
}

// String implements fmt.Stringer.
func (a Dual) String() string {
	return fmt.Sprintf("Dual{value: %g, derivative: %g}", a.Value, a.Derivative)
}

// ScalarAdd returns s + a.
func ScalarAdd(s float64, a Dual) Dual {
	return Dual{Value: s + a.Value, Derivative: a.Derivative}
}

// ScalarSub returns s - a.
func ScalarSub(s float64, a Dual) Dual {
	return Dual{Value: s - a.Value, Derivative: -a.Derivative}
}

// ScalarMul returns s * a.
func ScalarMul(s float64, a Dual) Dual {
	return Dual{Value: s * a.Value, Derivative: s * a.Derivative}
}

// ScalarDiv returns s / a.
//
// d(s/a) = -s * da / a².
func ScalarDiv(s float64, a Dual) Dual {
	return Dual{
		Value:      s / a.Value,
		Derivative: -s * a.Derivative / (a.Value * a.Value),
	}
}
