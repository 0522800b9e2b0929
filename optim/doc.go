// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based minimisation of functions written
// with dual numbers.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//   - Minimize: the evaluate/update loop
//
// Gradients are computed by forward-mode automatic differentiation, one
// evaluation pass per input dimension.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/dualdiff/dual"
//	    "github.com/born-ml/dualdiff/optim"
//	)
//
//	func main() {
//	    // f(x) = x² + 2x + 1
//	    f := func(x []dual.Dual) dual.Dual {
//	        return dual.Square(x[0]).Add(dual.ScalarMul(2, x[0])).AddScalar(1)
//	    }
//
//	    opt := optim.NewSGD(optim.SGDConfig{LR: 0.3})
//	    res := optim.Minimize(f, []float64{5}, opt, optim.MinimizeConfig{
//	        MaxSteps:  100,
//	        Tolerance: 1e-9,
//	    })
//	    fmt.Println(res.X[0]) // ≈ -1
//	}
//
// # Choosing an optimizer
//
// SGD with a learning rate below 1/L (L the largest curvature) converges on
// smooth convex objectives; momentum speeds up ill-conditioned ones. Adam
// rescales each coordinate by its gradient history and needs less tuning of
// the learning rate.
package optim
