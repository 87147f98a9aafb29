package functional

import (
	"fmt"

	"github.com/born-ml/adjoint/internal/check"
	"github.com/born-ml/adjoint/internal/scalar"
)

// DefaultEpsilon is the default finite-difference step.
const DefaultEpsilon = 1e-3

// FiniteDiffConfig controls the finite-difference drivers.
type FiniteDiffConfig struct {
	Epsilon float64 // Step size; must be positive.
}

// DefaultFiniteDiffConfig returns the default finite-difference
// configuration.
func DefaultFiniteDiffConfig() FiniteDiffConfig {
	return FiniteDiffConfig{Epsilon: DefaultEpsilon}
}

// stencil holds the offsets (in steps) and weights (in 1/(60 eps)) of the
// sixth-order central difference.
var stencil = [6]struct {
	off    float64
	weight float64
}{
	{3, 1}, {2, -9}, {1, 45},
	{-3, -1}, {-2, 9}, {-1, -45},
}

// FiniteDiffGradient approximates the gradient of f at x with a sixth-order
// central difference, six evaluations per coordinate. It is the fallback for
// functions that cannot be evaluated with AD scalars; f sees plain floats.
func FiniteDiffGradient(f Func[scalar.Float], x []float64, cfg FiniteDiffConfig) (fx float64, grad []float64, err error) {
	if err := validateFiniteDiff("functional.FiniteDiffGradient", x, cfg); err != nil {
		return 0, nil, err
	}
	fx, grad, err = finiteDiffGradient(f, scalar.Floats(x), cfg.Epsilon)
	if err != nil {
		return 0, nil, fmt.Errorf("functional.FiniteDiffGradient: %w", err)
	}
	return fx, grad, nil
}

// FiniteDiffHessian approximates the Hessian of f at x by applying the same
// stencil to finite-difference gradients. The result is symmetrised.
func FiniteDiffHessian(f Func[scalar.Float], x []float64, cfg FiniteDiffConfig) (fx float64, grad []float64, hess [][]float64, err error) {
	if err := validateFiniteDiff("functional.FiniteDiffHessian", x, cfg); err != nil {
		return 0, nil, nil, err
	}
	xs := scalar.Floats(x)
	fx, grad, err = finiteDiffGradient(f, xs, cfg.Epsilon)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("functional.FiniteDiffHessian: %w", err)
	}

	n, eps := len(x), cfg.Epsilon
	hess = make([][]float64, n)
	for i := range hess {
		hess[i] = make([]float64, n)
	}
	for i := range n {
		xi := xs[i]
		for _, s := range stencil {
			xs[i] = xi + scalar.Float(s.off*eps)
			_, g, err := finiteDiffGradient(f, xs, eps)
			if err != nil {
				xs[i] = xi
				return 0, nil, nil, fmt.Errorf("functional.FiniteDiffHessian: %w", err)
			}
			for j := range n {
				hess[j][i] += s.weight * g[j]
			}
		}
		xs[i] = xi
	}
	for i := range n {
		for j := range n {
			hess[i][j] /= 60 * eps
		}
	}
	for i := range n {
		for j := i + 1; j < n; j++ {
			avg := (hess[i][j] + hess[j][i]) / 2
			hess[i][j], hess[j][i] = avg, avg
		}
	}
	return fx, grad, hess, nil
}

// finiteDiffGradient perturbs xs in place and restores it before returning.
func finiteDiffGradient(f Func[scalar.Float], xs []scalar.Float, eps float64) (float64, []float64, error) {
	y, err := f(xs)
	if err != nil {
		return 0, nil, err
	}
	grad := make([]float64, len(xs))
	for i := range xs {
		xi := xs[i]
		var acc float64
		for _, s := range stencil {
			xs[i] = xi + scalar.Float(s.off*eps)
			yi, err := f(xs)
			if err != nil {
				xs[i] = xi
				return 0, nil, err
			}
			acc += s.weight * float64(yi)
		}
		xs[i] = xi
		grad[i] = acc / (60 * eps)
	}
	return float64(y), grad, nil
}

func validateFiniteDiff(function string, x []float64, cfg FiniteDiffConfig) error {
	if err := check.NonEmpty(function, "x", x); err != nil {
		return err
	}
	return check.Positive(function, "epsilon", cfg.Epsilon)
}
