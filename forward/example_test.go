// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package forward_test

import (
	"fmt"

	"github.com/born-ml/dualdiff/dual"
	"github.com/born-ml/dualdiff/forward"
)

func ExampleGradient() {
	// f(x0, x1, x2) = x0 + 2*x1 + 3*x2
	f := func(x []dual.Dual) dual.Dual {
		return x[0].Add(dual.ScalarMul(2, x[1])).Add(dual.ScalarMul(3, x[2]))
	}

	value, gradient := forward.Gradient(f, []float64{1, 2, 3})
	fmt.Println(value, gradient)
	// Output: 14 [1 2 3]
}

func ExampleEvaluate() {
	// (x, y) -> (x*y, x - y)
	f := func(v []dual.Dual) []dual.Dual {
		return []dual.Dual{v[0].Mul(v[1]), v[0].Sub(v[1])}
	}

	values, jacobian := forward.Evaluate(f, []float64{3, 5})
	fmt.Println(values)
	fmt.Println(jacobian)
	// Output:
	// [15 -2]
	// [[5 3] [1 -1]]
}
