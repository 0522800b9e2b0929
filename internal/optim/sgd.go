package optim

import "fmt"

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	x = x - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	x = x - lr * velocity
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(x, gradient []float64) []float64 {
	checkDims(x, gradient)
	next := make([]float64, len(x))

	if s.momentum == 0 {
		for i := range x {
			next[i] = x[i] - s.lr*gradient[i]
		}
		return next
	}

	if s.velocity == nil {
		s.velocity = make([]float64, len(x))
	} else if len(s.velocity) != len(x) {
		panic(fmt.Sprintf("optim: SGD velocity has %d elements, position %d", len(s.velocity), len(x)))
	}
	for i := range x {
		s.velocity[i] = s.momentum*s.velocity[i] + gradient[i]
		next[i] = x[i] - s.lr*s.velocity[i]
	}
	return next
}

// Reset clears the velocity buffer.
func (s *SGD) Reset() {
	s.velocity = nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
