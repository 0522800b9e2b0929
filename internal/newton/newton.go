// Package newton finds roots of square systems of equations with the
// Newton–Raphson method, using Jacobians from the forward-mode evaluator, and
// renders the basins of attraction of those roots.
//
// Each iteration evaluates F and its Jacobian J at x and moves to
// x + J⁻¹(-F(x)).
package newton

import (
	"github.com/pkg/errors"

	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/forward"
)

// Config controls root finding.
type Config struct {
	MaxIter   int     // Iterations before giving up (default: 50)
	Tolerance float64 // Squared distance to a known root that counts as a hit (default: 1e-6)
}

// DefaultConfig returns the default root finding configuration.
func DefaultConfig() Config {
	return Config{MaxIter: 50, Tolerance: 1e-6}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxIter == 0 {
		c.MaxIter = d.MaxIter
	}
	if c.Tolerance == 0 {
		c.Tolerance = d.Tolerance
	}
	return c
}

// Step performs one Newton iteration on f from x.
func Step(f forward.Objective, x []float64) ([]float64, error) {
	values, jacobian := forward.Evaluate(f, x)
	if len(values) != len(x) {
		return nil, errors.Errorf("system has %d equations for %d unknowns", len(values), len(x))
	}

	neg := make([]float64, len(values))
	for i, v := range values {
		neg[i] = -v
	}
	delta, err := Solve(jacobian, neg)
	if err != nil {
		return nil, errors.Wrap(err, "newton step")
	}

	next := make([]float64, len(x))
	for i := range x {
		next[i] = x[i] + delta[i]
	}
	return next, nil
}

// FindRoot iterates from start until the iterate lies within cfg.Tolerance
// (squared distance) of one of roots and returns that root's index. It
// reports false if the Jacobian becomes singular or MaxIter iterations pass
// without reaching a root.
func FindRoot(f forward.Objective, start []float64, roots [][]float64, cfg Config) (int, bool) {
	cfg = cfg.withDefaults()
	x := start
	for iter := 0; iter < cfg.MaxIter; iter++ {
		next, err := Step(f, x)
		if err != nil {
			return 0, false
		}
		x = next

		for k, root := range roots {
			if squaredDistance(x, root) < cfg.Tolerance {
				return k, true
			}
		}
	}
	return 0, false
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// CubicUnity is z³ - 1 = 0 for z = x + iy, split into real and imaginary
// parts:
//
//	x³ - 3xy² - 1 = 0
//	3x²y - y³     = 0
func CubicUnity(v []dual.Dual) []dual.Dual {
	x, y := v[0], v[1]
	re := dual.Pow(x, 3).Sub(dual.ScalarMul(3, x).Mul(dual.Square(y))).SubScalar(1)
	im := dual.ScalarMul(3, dual.Square(x)).Mul(y).Sub(dual.Pow(y, 3))
	return []dual.Dual{re, im}
}

// UnityRoots returns the three cube roots of unity as (x, y) pairs.
func UnityRoots() [][]float64 {
	h := 0.5 * 1.7320508075688772 // √3 / 2
	return [][]float64{
		{1, 0},
		{-0.5, h},
		{-0.5, -h},
	}
}
