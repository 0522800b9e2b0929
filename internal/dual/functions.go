package dual

import "math"

// Elementary functions. Each returns f(x.Value) together with
// x.Derivative * f'(x.Value) (chain rule).

// Sin returns sin(x).
//
//	d(sin(x)) = cos(x) * dx
func Sin(x Dual) Dual {
	return Dual{
		Value:      math.Sin(x.Value),
		Derivative: x.Derivative * math.Cos(x.Value),
	}
}

// Cos returns cos(x).
//
//	d(cos(x)) = -sin(x) * dx
func Cos(x Dual) Dual {
	return Dual{
		Value:      math.Cos(x.Value),
		Derivative: -x.Derivative * math.Sin(x.Value),
	}
}

// Tan returns tan(x).
//
//	d(tan(x)) = sec²(x) * dx
func Tan(x Dual) Dual {
	sec := 1 / math.Cos(x.Value)
	return Dual{
		Value:      math.Tan(x.Value),
		Derivative: x.Derivative * sec * sec,
	}
}

// Ln returns the natural logarithm of x.
//
//	d(ln(x)) = dx / x
func Ln(x Dual) Dual {
	return Dual{
		Value:      math.Log(x.Value),
		Derivative: x.Derivative / x.Value,
	}
}

// Sqrt returns the square root of x.
//
//	d(sqrt(x)) = dx / (2 * sqrt(x))
func Sqrt(x Dual) Dual {
	root := math.Sqrt(x.Value)
	return Dual{
		Value:      root,
		Derivative: x.Derivative / (2 * root),
	}
}

// Square returns x * x.
func Square(x Dual) Dual {
	return x.Mul(x)
}

// Pow returns x^exponent. See Dual.Pow.
func Pow(x Dual, exponent float64) Dual {
	return x.Pow(exponent)
}
