// Package functional implements derivative drivers on top of the tape and
// dual-number types: gradients, Jacobians, Hessians and Hessian-vector
// products of user functions, plus finite-difference fallbacks.
//
// A user function is written once against scalar.Scalar and instantiated at
// whatever type a driver needs:
//
//	func f[T scalar.Scalar[T]](x []T) (T, error) {
//		return x[0].Square().Mul(x[1]).Add(x[1].Sin()), nil
//	}
//
//	fx, grad, err := functional.Gradient(tape, f[autodiff.Var], []float64{3, 2})
//	fx, hv, err := functional.HessianTimesVector(tape, f[functional.MixedVar], x, v)
//	fx, grad, h, err := functional.ForwardHessian(f[functional.Dual2], x)
//
// Reverse-mode drivers evaluate inside a nested scope of the given tape, so
// the tape is left exactly as it was found even when f fails or panics.
// Arguments are validated before any node is built; every driver needs at
// least one input.
package functional

import (
	"fmt"

	"github.com/born-ml/adjoint/internal/autodiff"
	"github.com/born-ml/adjoint/internal/check"
	"github.com/born-ml/adjoint/internal/fwd"
	"github.com/born-ml/adjoint/internal/scalar"
)

// Func is a scalar-valued function of a vector.
type Func[T scalar.Scalar[T]] func(x []T) (T, error)

// VectorFunc is a vector-valued function of a vector.
type VectorFunc[T scalar.Scalar[T]] func(x []T) ([]T, error)

// Scalar types the drivers instantiate user functions at.
type (
	Dual     = fwd.Dual[scalar.Float] // first-order forward mode
	Dual2    = fwd.Dual[Dual]         // second-order forward mode
	MixedVar = fwd.Dual[autodiff.Var] // forward over reverse
)

// Gradient evaluates f at x and returns its value and gradient, using one
// forward and one reverse pass on t.
func Gradient(t *autodiff.Tape, f Func[autodiff.Var], x []float64) (fx float64, grad []float64, err error) {
	if err := check.NonEmpty("functional.Gradient", "x", x); err != nil {
		return 0, nil, err
	}
	err = t.Nested(func() error {
		xs := t.Vars(x)
		y, err := f(xs)
		if err != nil {
			return err
		}
		t.Grad(y)
		fx, grad = y.Val(), autodiff.Adjoints(xs)
		return nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("functional.Gradient: %w", err)
	}
	return fx, grad, nil
}

// Jacobian evaluates f at x and returns its values and the Jacobian, one row
// per output, using one reverse pass per output.
func Jacobian(t *autodiff.Tape, f VectorFunc[autodiff.Var], x []float64) (fx []float64, jac [][]float64, err error) {
	if err := check.NonEmpty("functional.Jacobian", "x", x); err != nil {
		return nil, nil, err
	}
	err = t.Nested(func() error {
		xs := t.Vars(x)
		ys, err := f(xs)
		if err != nil {
			return err
		}
		fx = autodiff.Values(ys)
		jac = make([][]float64, len(ys))
		for i, y := range ys {
			t.Grad(y)
			jac[i] = autodiff.Adjoints(xs)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("functional.Jacobian: %w", err)
	}
	return fx, jac, nil
}

// HessianTimesVector returns f(x) and the product of the Hessian of f at x
// with v. The inputs carry v as their tangent, so the tangent of the result
// is the directional derivative grad f . v, and a single reverse pass over
// it yields H v.
func HessianTimesVector(t *autodiff.Tape, f Func[MixedVar], x, v []float64) (fx float64, hv []float64, err error) {
	if err := check.NonEmpty("functional.HessianTimesVector", "x", x); err != nil {
		return 0, nil, err
	}
	if err := check.SameSize("functional.HessianTimesVector", "v", x, v); err != nil {
		return 0, nil, err
	}
	err = t.Nested(func() error {
		xs := make([]MixedVar, len(x))
		for i := range x {
			xs[i] = fwd.New(t.NewVar(x[i]), t.NewVar(v[i]))
		}
		y, err := f(xs)
		if err != nil {
			return err
		}
		t.Grad(y.D)
		fx = y.Val()
		hv = make([]float64, len(xs))
		for i, xi := range xs {
			hv[i] = xi.V.Adj()
		}
		return nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("functional.HessianTimesVector: %w", err)
	}
	return fx, hv, nil
}

// Hessian returns f(x), the gradient and the Hessian of f at x, using one
// forward-over-reverse pass per coordinate. Row i is H e_i, and the tangent
// of pass i is the i-th gradient component.
func Hessian(t *autodiff.Tape, f Func[MixedVar], x []float64) (fx float64, grad []float64, hess [][]float64, err error) {
	if err := check.NonEmpty("functional.Hessian", "x", x); err != nil {
		return 0, nil, nil, err
	}
	n := len(x)
	grad = make([]float64, n)
	hess = make([][]float64, n)
	for i := range n {
		err = t.Nested(func() error {
			xs := make([]MixedVar, n)
			for j := range x {
				xs[j] = fwd.New(t.NewVar(x[j]), t.NewVar(indicator(i == j)))
			}
			y, err := f(xs)
			if err != nil {
				return err
			}
			t.Grad(y.D)
			fx, grad[i] = y.Val(), y.D.Val()
			hess[i] = make([]float64, n)
			for j, xj := range xs {
				hess[i][j] = xj.V.Adj()
			}
			return nil
		})
		if err != nil {
			return 0, nil, nil, fmt.Errorf("functional.Hessian: %w", err)
		}
	}
	return fx, grad, hess, nil
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
