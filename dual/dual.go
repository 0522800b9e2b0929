// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides dual numbers for forward-mode automatic differentiation.
//
// Example:
//
//	import "github.com/born-ml/dualdiff/dual"
//
//	func main() {
//	    x := dual.Seeded(2.0)
//
//	    // f(x) = tan(ln(x) + sin(x)) + x*cos(x)
//	    fx := dual.Tan(dual.Ln(x).Add(dual.Sin(x))).Add(x.Mul(dual.Cos(x)))
//
//	    fmt.Println(fx.Value, fx.Derivative)
//	}
package dual

import "github.com/born-ml/dualdiff/internal/dual"

// Dual is a (value, derivative) pair.
type Dual = dual.Dual

// Tolerance is the absolute tolerance used by AlmostEqual.
const Tolerance = dual.Tolerance

// Constant creates a dual number with derivative 0.
func Constant(v float64) Dual { return dual.Constant(v) }

// Seeded creates an independent variable with derivative 1.
func Seeded(v float64) Dual { return dual.Seeded(v) }

// WithDerivative creates a dual number with an explicit derivative.
func WithDerivative(v, d float64) Dual { return dual.WithDerivative(v, d) }

// Scalar-on-the-left operations.

// ScalarAdd returns s + a.
func ScalarAdd(s float64, a Dual) Dual { return dual.ScalarAdd(s, a) }

// ScalarSub returns s - a.
func ScalarSub(s float64, a Dual) Dual { return dual.ScalarSub(s, a) }

// ScalarMul returns s * a.
func ScalarMul(s float64, a Dual) Dual { return dual.ScalarMul(s, a) }

// ScalarDiv returns s / a.
func ScalarDiv(s float64, a Dual) Dual { return dual.ScalarDiv(s, a) }

// Elementary functions.

// Sin returns sin(x).
func Sin(x Dual) Dual { return dual.Sin(x) }

// Cos returns cos(x).
func Cos(x Dual) Dual { return dual.Cos(x) }

// Tan returns tan(x).
func Tan(x Dual) Dual { return dual.Tan(x) }

// Ln returns the natural logarithm of x.
func Ln(x Dual) Dual { return dual.Ln(x) }

// Sqrt returns the square root of x.
func Sqrt(x Dual) Dual { return dual.Sqrt(x) }

// Square returns x * x.
func Square(x Dual) Dual { return dual.Square(x) }

// Pow returns x raised to a constant exponent.
func Pow(x Dual, exponent float64) Dual { return dual.Pow(x, exponent) }

// AlmostEqual reports whether |a - b| < Tolerance.
func AlmostEqual(a, b float64) bool { return dual.AlmostEqual(a, b) }

// AlmostEqualSlices reports whether a and b are element-wise AlmostEqual.
func AlmostEqualSlices(a, b []float64) bool { return dual.AlmostEqualSlices(a, b) }
