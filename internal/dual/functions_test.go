package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementaryFunctions(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(Dual) Dual
		x          float64
		value      float64
		derivative float64
	}{
		{"sin 90deg", Sin, math.Pi / 2, 1, 0},
		{"sin 30deg", Sin, math.Pi / 6, 0.5, math.Sqrt(3) / 2},
		{"cos 90deg", Cos, math.Pi / 2, 0, -1},
		{"cos 30deg", Cos, math.Pi / 6, math.Sqrt(3) / 2, -0.5},
		{"tan 45deg", Tan, math.Pi / 4, 1, 2},
		{"ln 2", Ln, 2, math.Ln2, 0.5},
		{"square 3", Square, 3, 9, 6},
		{"cube 2", func(x Dual) Dual { return Pow(x, 3) }, 2, 8, 12},
		{"sqrt 2", Sqrt, 2, math.Sqrt2, 0.5 / math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := tt.fn(Seeded(tt.x))
			assert.InDelta(t, tt.value, fx.Value, Tolerance)
			assert.InDelta(t, tt.derivative, fx.Derivative, Tolerance)
		})
	}
}

// The value must match plain float64 evaluation bit for bit.
func TestElementaryFunctions_ValueMatchesFloat(t *testing.T) {
	x := 0.7
	assert.Equal(t, math.Sin(x), Sin(Seeded(x)).Value)
	assert.Equal(t, math.Cos(x), Cos(Seeded(x)).Value)
	assert.Equal(t, math.Tan(x), Tan(Seeded(x)).Value)
	assert.Equal(t, math.Log(x), Ln(Seeded(x)).Value)
	assert.Equal(t, math.Sqrt(x), Sqrt(Seeded(x)).Value)
	assert.Equal(t, x*x, Square(Seeded(x)).Value)
	assert.Equal(t, math.Pow(x, 2.5), Pow(Seeded(x), 2.5).Value)
}

func TestElementaryFunctions_ConstantHasZeroDerivative(t *testing.T) {
	for _, fn := range []func(Dual) Dual{Sin, Cos, Tan, Ln, Sqrt, Square} {
		assert.Zero(t, fn(Constant(1.3)).Derivative)
	}
}

func TestElementaryFunctions_ScaleWithSeed(t *testing.T) {
	x := WithDerivative(0.4, 3)
	assert.InDelta(t, 3*math.Cos(0.4), Sin(x).Derivative, Tolerance)
	assert.InDelta(t, -3*math.Sin(0.4), Cos(x).Derivative, Tolerance)
	assert.InDelta(t, 3/0.4, Ln(x).Derivative, Tolerance)
}

func TestChainRule(t *testing.T) {
	x := Seeded(2)

	// tan(ln(x) + sin(x)) + x*cos(x)
	fx := Tan(Ln(x).Add(Sin(x))).Add(x.Mul(Cos(x)))

	assert.InDelta(t, -32.4190367069393, fx.Value, Tolerance)
	assert.InDelta(t, 81.5112855513418, fx.Derivative, Tolerance)
}

func TestDomainErrors_Propagate(t *testing.T) {
	assert.True(t, math.IsNaN(Ln(Seeded(-1)).Value))
	assert.True(t, math.IsInf(Ln(Seeded(0)).Value, -1))
	assert.True(t, math.IsNaN(Sqrt(Seeded(-4)).Value))
	assert.True(t, math.IsInf(Sqrt(Seeded(0)).Derivative, 1))
	assert.True(t, math.IsNaN(Pow(Seeded(-2), 0.5).Value))
}

// finiteDifference returns the central difference of f at x.
func finiteDifference(f func(float64) float64, x float64) float64 {
	const h = 1e-6
	return (f(x+h) - f(x-h)) / (2 * h)
}

func TestElementaryFunctions_MatchFiniteDifferences(t *testing.T) {
	tests := []struct {
		name string
		fn   func(Dual) Dual
		ref  func(float64) float64
	}{
		{"sin", Sin, math.Sin},
		{"cos", Cos, math.Cos},
		{"tan", Tan, math.Tan},
		{"ln", Ln, math.Log},
		{"sqrt", Sqrt, math.Sqrt},
		{"pow", func(x Dual) Dual { return Pow(x, -1.5) }, func(x float64) float64 { return math.Pow(x, -1.5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range []float64{0.3, 1, 1.2, 2.5} {
				want := finiteDifference(tt.ref, x)
				got := tt.fn(Seeded(x)).Derivative
				assert.InDelta(t, want, got, 1e-5, "x=%v", x)
			}
		})
	}
}
