package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/adjoint/internal/autodiff"
	"github.com/born-ml/adjoint/internal/check"
	"github.com/born-ml/adjoint/internal/functional"
)

// MinimizeConfig controls the Minimize loop.
type MinimizeConfig struct {
	MaxIter int     // Maximum number of optimizer steps (default: 1000)
	GradTol float64 // Stop when the gradient's Euclidean norm falls below this (default: 1e-8)
}

// DefaultMinimizeConfig returns the default loop configuration.
func DefaultMinimizeConfig() MinimizeConfig {
	return MinimizeConfig{MaxIter: 1000, GradTol: 1e-8}
}

// Result is the outcome of Minimize.
type Result struct {
	X          []float64 // Final parameters
	Value      float64   // f(X)
	Gradient   []float64 // Gradient at X
	Iterations int       // Optimizer steps taken
	Converged  bool      // Whether GradTol was reached
}

// Minimize runs opt on f starting from x0 until the gradient norm drops
// below cfg.GradTol or cfg.MaxIter steps have been taken. Every gradient is
// evaluated in its own nested scope on t, so memory use does not grow with
// the number of iterations. x0 is not modified.
func Minimize(t *autodiff.Tape, f functional.Func[autodiff.Var], x0 []float64, opt Optimizer, cfg MinimizeConfig) (Result, error) {
	if err := check.Finite("optim.Minimize", "x0", x0...); err != nil {
		return Result{}, err
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = DefaultMinimizeConfig().MaxIter
	}

	x := append([]float64(nil), x0...)
	res := Result{X: x}
	for {
		fx, grad, err := functional.Gradient(t, f, x)
		if err != nil {
			return Result{}, fmt.Errorf("optim.Minimize: iteration %d: %w", res.Iterations, err)
		}
		res.Value, res.Gradient = fx, grad
		if norm(grad) < cfg.GradTol {
			res.Converged = true
			return res, nil
		}
		if res.Iterations == cfg.MaxIter {
			return res, nil
		}
		opt.Step(x, grad)
		res.Iterations++
	}
}

func norm(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x * x
	}
	return math.Sqrt(s)
}
