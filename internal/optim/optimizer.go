// Package optim implements first-order optimization algorithms driven by
// reverse-mode gradients.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Gradient descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - Minimize: the loop that evaluates gradients on a tape and steps
//
// Example usage:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.05})
//	res, err := optim.Minimize(tape, f[autodiff.Var], x0, opt, optim.DefaultMinimizeConfig())
package optim

// Optimizer updates a parameter vector in place from its gradient.
//
// All optimizers must implement:
//   - Step: Apply one gradient update to params
//   - Reset: Drop accumulated state (moments, velocities)
//   - LR: Current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update. params and grad have equal length; the
	// first call fixes that length until Reset.
	Step(params, grad []float64)

	// Reset clears per-parameter state so the optimizer can be reused on
	// a new problem.
	Reset()

	// LR returns the current learning rate.
	LR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// ensure returns buf resized to n, zeroed if it was reallocated.
func ensure(buf []float64, n int) []float64 {
	if len(buf) == n {
		return buf
	}
	return make([]float64, n)
}
