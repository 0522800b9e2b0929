package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/optim"
)

// parabola is f(x) = x² + 2x + 1, minimum at x = -1.
func parabola(x []dual.Dual) dual.Dual {
	return dual.Square(x[0]).Add(dual.ScalarMul(2, x[0])).AddScalar(1)
}

// bowl is f(x, y) = (x - 3)² + 2(y + 1)², minimum at (3, -1).
func bowl(v []dual.Dual) dual.Dual {
	return dual.Square(v[0].SubScalar(3)).Add(dual.ScalarMul(2, dual.Square(v[1].AddScalar(1))))
}

func TestStep_Converges(t *testing.T) {
	x := []float64{0}
	for i := 0; i < 30; i++ {
		x = optim.Step(parabola, x, 0.5)
	}
	assert.InDelta(t, -1.0, x[0], dual.Tolerance)
}

func TestStep_DoesNotModifyInput(t *testing.T) {
	x := []float64{5}
	next := optim.Step(parabola, x, 0.3)

	assert.Equal(t, []float64{5}, x)
	assert.InDelta(t, 5-0.3*12, next[0], dual.Tolerance)
}

func TestSGD_SimpleUpdate(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	next := opt.Step([]float64{2}, []float64{1})
	assert.InDelta(t, 1.9, next[0], 1e-12)
}

func TestSGD_WithMomentum(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// v = 1, x = 2 - 0.1
	x := opt.Step([]float64{2}, []float64{1})
	assert.InDelta(t, 1.9, x[0], 1e-12)

	// v = 0.9 + 1 = 1.9, x = 1.9 - 0.19
	x = opt.Step(x, []float64{1})
	assert.InDelta(t, 1.71, x[0], 1e-12)

	opt.Reset()
	x = opt.Step([]float64{2}, []float64{1})
	assert.InDelta(t, 1.9, x[0], 1e-12)
}

func TestSGD_Defaults(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{})
	assert.Equal(t, 0.01, opt.GetLR())

	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.GetLR())
}

func TestSGD_DimensionMismatch(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	assert.Panics(t, func() { opt.Step([]float64{1, 2}, []float64{1}) })
}

func TestMinimize_SGD(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 0.3})
	res := optim.Minimize(parabola, []float64{5}, opt, optim.MinimizeConfig{MaxSteps: 30})

	assert.Equal(t, 30, res.Steps)
	assert.False(t, res.Converged)
	assert.InDelta(t, -1.0, res.X[0], dual.Tolerance)
	assert.InDelta(t, 0.0, res.Value, dual.Tolerance)
}

func TestMinimize_EarlyStop(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 0.3})
	res := optim.Minimize(parabola, []float64{5}, opt, optim.MinimizeConfig{
		MaxSteps:  1000,
		Tolerance: 1e-6,
	})

	assert.True(t, res.Converged)
	assert.Less(t, res.Steps, 1000)
	assert.InDelta(t, -1.0, res.X[0], 1e-6)
	require.Len(t, res.Gradient, 1)
	assert.Less(t, res.Gradient[0], 1e-6)
}

func TestMinimize_AlreadyAtMinimum(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 0.3})
	res := optim.Minimize(parabola, []float64{-1}, opt, optim.MinimizeConfig{
		MaxSteps:  10,
		Tolerance: 1e-9,
	})

	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Steps)
}

func TestMinimize_Momentum(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})
	res := optim.Minimize(bowl, []float64{0, 0}, opt, optim.MinimizeConfig{MaxSteps: 500})

	assert.InDelta(t, 3.0, res.X[0], 1e-6)
	assert.InDelta(t, -1.0, res.X[1], 1e-6)
}

func TestMinimize_Adam(t *testing.T) {
	opt := optim.NewAdam(optim.AdamConfig{LR: 0.05})
	res := optim.Minimize(bowl, []float64{0, 0}, opt, optim.MinimizeConfig{MaxSteps: 3000})

	assert.InDelta(t, 3.0, res.X[0], 1e-2)
	assert.InDelta(t, -1.0, res.X[1], 1e-2)
}

func TestMinimize_DoesNotModifyStart(t *testing.T) {
	x0 := []float64{5}
	optim.Minimize(parabola, x0, optim.NewSGD(optim.SGDConfig{LR: 0.3}), optim.MinimizeConfig{MaxSteps: 3})
	assert.Equal(t, []float64{5}, x0)
}

func TestAdam_FirstStep(t *testing.T) {
	opt := optim.NewAdam(optim.AdamConfig{LR: 0.1})

	// After bias correction the first step moves by lr * sign(grad).
	x := opt.Step([]float64{1, 1}, []float64{4, -0.5})
	assert.InDelta(t, 0.9, x[0], 1e-6)
	assert.InDelta(t, 1.1, x[1], 1e-6)
}

func TestAdam_Defaults(t *testing.T) {
	opt := optim.NewAdam(optim.AdamConfig{})
	assert.Equal(t, 0.001, opt.GetLR())

	opt.SetLR(0.01)
	assert.Equal(t, 0.01, opt.GetLR())

	opt.Step([]float64{1}, []float64{1})
	opt.Reset()
	assert.NotPanics(t, func() { opt.Step([]float64{1, 2}, []float64{1, 1}) })
}

func TestOptimizerInterface(_ *testing.T) {
	var _ optim.Optimizer = (*optim.SGD)(nil)
	var _ optim.Optimizer = (*optim.Adam)(nil)
}
