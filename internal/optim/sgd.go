package optim

// SGD implements gradient descent with optional momentum.
//
// Update rule (without momentum):
//
//	param = param - lr * gradient
//
// Update rule (with momentum):
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR, momentum: config.Momentum}
}

// Step implements Optimizer.
func (s *SGD) Step(params, grad []float64) {
	if s.momentum == 0 {
		for i, g := range grad {
			params[i] -= s.lr * g
		}
		return
	}

	s.velocity = ensure(s.velocity, len(params))
	for i, g := range grad {
		s.velocity[i] = s.momentum*s.velocity[i] + g
		params[i] -= s.lr * s.velocity[i]
	}
}

// Reset implements Optimizer.
func (s *SGD) Reset() {
	s.velocity = nil
}

// LR implements Optimizer.
func (s *SGD) LR() float64 {
	return s.lr
}
