package functional

import (
	"fmt"

	"github.com/born-ml/adjoint/internal/check"
	"github.com/born-ml/adjoint/internal/fwd"
	"github.com/born-ml/adjoint/internal/scalar"
)

// Derivative returns f(x) and f'(x) for a function of one variable.
func Derivative(f func(x Dual) (Dual, error), x float64) (fx, dfx float64, err error) {
	y, err := f(fwd.Variable(scalar.Float(x)))
	if err != nil {
		return 0, 0, fmt.Errorf("functional.Derivative: %w", err)
	}
	return y.Val(), float64(y.D), nil
}

// PartialDerivative returns f(x) and the partial derivative of f with
// respect to x[n], in one forward pass.
func PartialDerivative(f Func[Dual], x []float64, n int) (fx, dfx float64, err error) {
	if n < 0 || n >= len(x) {
		return 0, 0, &check.DomainError{
			Function: "functional.PartialDerivative",
			Argument: "n",
			Value:    float64(n),
			Index:    -1,
			Reason:   fmt.Sprintf("index x (length %d)", len(x)),
		}
	}
	y, err := f(seed(x, n))
	if err != nil {
		return 0, 0, fmt.Errorf("functional.PartialDerivative: %w", err)
	}
	return y.Val(), float64(y.D), nil
}

// GradientDotVector returns f(x) and the directional derivative grad f(x) . v
// in one forward pass.
func GradientDotVector(f Func[Dual], x, v []float64) (fx, gv float64, err error) {
	if err := check.SameSize("functional.GradientDotVector", "v", x, v); err != nil {
		return 0, 0, err
	}
	y, err := f(fwd.Lift(scalar.Floats(x), scalar.Floats(v)))
	if err != nil {
		return 0, 0, fmt.Errorf("functional.GradientDotVector: %w", err)
	}
	return y.Val(), float64(y.D), nil
}

// ForwardGradient returns f(x) and its gradient using one forward pass per
// coordinate. It needs no tape and is the better choice for functions of
// very few inputs.
func ForwardGradient(f Func[Dual], x []float64) (fx float64, grad []float64, err error) {
	if err := check.NonEmpty("functional.ForwardGradient", "x", x); err != nil {
		return 0, nil, err
	}
	grad = make([]float64, len(x))
	for i := range x {
		y, err := f(seed(x, i))
		if err != nil {
			return 0, nil, fmt.Errorf("functional.ForwardGradient: %w", err)
		}
		fx, grad[i] = y.Val(), float64(y.D)
	}
	return fx, grad, nil
}

// ForwardJacobian returns f(x) and the Jacobian of f, one row per output,
// computing one column per forward pass.
func ForwardJacobian(f VectorFunc[Dual], x []float64) (fx []float64, jac [][]float64, err error) {
	if err := check.NonEmpty("functional.ForwardJacobian", "x", x); err != nil {
		return nil, nil, err
	}
	for j := range x {
		ys, err := f(seed(x, j))
		if err != nil {
			return nil, nil, fmt.Errorf("functional.ForwardJacobian: %w", err)
		}
		if jac == nil {
			fx = scalar.Values(ys)
			jac = make([][]float64, len(ys))
			for i := range jac {
				jac[i] = make([]float64, len(x))
			}
		}
		if len(ys) != len(jac) {
			return nil, nil, &check.SizeMismatchError{
				Function: "functional.ForwardJacobian",
				Argument: "f(x)",
				Expected: len(jac),
				Actual:   len(ys),
			}
		}
		for i, y := range ys {
			jac[i][j] = float64(y.D)
		}
	}
	return fx, jac, nil
}

// ForwardHessian returns f(x), the gradient and the Hessian of f using
// second-order dual numbers only. Pass (i, j) seeds the outer tangent with
// e_i and the inner tangent with e_j, so the d.d part of the result is
// H[i][j]; symmetry halves the number of passes.
func ForwardHessian(f Func[Dual2], x []float64) (fx float64, grad []float64, hess [][]float64, err error) {
	if err := check.NonEmpty("functional.ForwardHessian", "x", x); err != nil {
		return 0, nil, nil, err
	}
	n := len(x)
	grad = make([]float64, n)
	hess = make([][]float64, n)
	for i := range hess {
		hess[i] = make([]float64, n)
	}

	xs := make([]Dual2, n)
	for i := range n {
		for j := i; j < n; j++ {
			for k := range xs {
				xs[k] = fwd.New(
					fwd.New(scalar.Float(x[k]), scalar.Float(indicator(k == i))),
					fwd.New(scalar.Float(indicator(k == j)), 0),
				)
			}
			y, err := f(xs)
			if err != nil {
				return 0, nil, nil, fmt.Errorf("functional.ForwardHessian: %w", err)
			}
			fx = y.Val()
			hess[i][j] = float64(y.D.D)
			hess[j][i] = hess[i][j]
			if i == j {
				grad[i] = float64(y.D.V)
			}
		}
	}
	return fx, grad, hess, nil
}

// seed lifts x to dual numbers with tangent e_i.
func seed(x []float64, i int) []Dual {
	xs := make([]Dual, len(x))
	for k, v := range x {
		xs[k] = fwd.New(scalar.Float(v), scalar.Float(indicator(k == i)))
	}
	return xs
}
