// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package forward_test

import (
	"testing"

	"github.com/born-ml/dualdiff/dual"
	"github.com/born-ml/dualdiff/forward"
)

func TestGradient(t *testing.T) {
	f := func(x []dual.Dual) dual.Dual {
		return x[0].Add(dual.ScalarMul(2, x[1])).Add(dual.ScalarMul(3, x[2]))
	}

	value, gradient := forward.Gradient(f, []float64{1, 2, 3})
	if !dual.AlmostEqual(value, 14) {
		t.Errorf("value = %v, want 14", value)
	}
	if !dual.AlmostEqualSlices(gradient, []float64{1, 2, 3}) {
		t.Errorf("gradient = %v, want [1 2 3]", gradient)
	}

	pValue, pGradient := forward.GradientParallel(f, []float64{1, 2, 3}, forward.DefaultParallelConfig())
	if pValue != value || !dual.AlmostEqualSlices(pGradient, gradient) {
		t.Errorf("parallel = (%v, %v), want (%v, %v)", pValue, pGradient, value, gradient)
	}
}

func TestEvaluate(t *testing.T) {
	fn := forward.Function{
		Inputs:  2,
		Outputs: 2,
		Objective: func(x []dual.Dual) []dual.Dual {
			return []dual.Dual{x[0].Mul(x[1]), x[0].Sub(x[1])}
		},
	}

	values, jacobian := fn.Evaluate([]float64{3, 5})
	if !dual.AlmostEqualSlices(values, []float64{15, -2}) {
		t.Errorf("values = %v, want [15 -2]", values)
	}
	if !dual.AlmostEqualSlices(jacobian[0], []float64{5, 3}) {
		t.Errorf("row 0 = %v, want [5 3]", jacobian[0])
	}
	if !dual.AlmostEqualSlices(jacobian[1], []float64{1, -1}) {
		t.Errorf("row 1 = %v, want [1 -1]", jacobian[1])
	}

	v2, j2 := forward.Evaluate(fn.Objective, []float64{3, 5})
	v3, j3 := forward.EvaluateParallel(fn.Objective, []float64{3, 5}, forward.DefaultParallelConfig())
	for o := range values {
		if v2[o] != values[o] || v3[o] != values[o] {
			t.Errorf("values differ at %d: %v %v %v", o, values[o], v2[o], v3[o])
		}
		if !dual.AlmostEqualSlices(j2[o], jacobian[o]) || !dual.AlmostEqualSlices(j3[o], jacobian[o]) {
			t.Errorf("jacobian row %d differs", o)
		}
	}
}

func TestVector(t *testing.T) {
	f := forward.Vector(func(x []dual.Dual) dual.Dual { return dual.Square(x[0]) })

	values, jacobian := forward.Evaluate(f, []float64{3})
	if values[0] != 9 || jacobian[0][0] != 6 {
		t.Errorf("got (%v, %v), want (9, 6)", values[0], jacobian[0][0])
	}
}
