// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package functional computes gradients, Jacobians, Hessians and
// Hessian-vector products of user functions.
//
// Write the function once, generic over scalar.Scalar, and instantiate it at
// the type each driver expects:
//
//	func f[T scalar.Scalar[T]](x []T) (T, error) {
//	    return x[0].Square().Mul(x[1]).Add(x[1].Sin()), nil
//	}
//
//	t := autodiff.New()
//	fx, grad, err := functional.Gradient(t, f[autodiff.Var], []float64{3, 2})
//	fx, hv, err := functional.HessianTimesVector(t, f[functional.MixedVar], x, v)
//	fx, grad, hess, err := functional.ForwardHessian(f[functional.Dual2], x)
package functional

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/born-ml/adjoint/internal/autodiff"
	"github.com/born-ml/adjoint/internal/functional"
	"github.com/born-ml/adjoint/internal/scalar"
)

// Func is a scalar-valued function of a vector.
type Func[T scalar.Scalar[T]] = functional.Func[T]

// VectorFunc is a vector-valued function of a vector.
type VectorFunc[T scalar.Scalar[T]] = functional.VectorFunc[T]

// Scalar types the drivers instantiate user functions at.
type (
	Dual     = functional.Dual
	Dual2    = functional.Dual2
	MixedVar = functional.MixedVar
)

// FiniteDiffConfig controls the finite-difference drivers.
type FiniteDiffConfig = functional.FiniteDiffConfig

// DefaultFiniteDiffConfig returns the default finite-difference
// configuration.
func DefaultFiniteDiffConfig() FiniteDiffConfig {
	return functional.DefaultFiniteDiffConfig()
}

// Gradient returns f(x) and its gradient (one reverse pass).
func Gradient(t *autodiff.Tape, f Func[autodiff.Var], x []float64) (float64, []float64, error) {
	return functional.Gradient(t, f, x)
}

// Jacobian returns f(x) and its Jacobian (one reverse pass per output).
func Jacobian(t *autodiff.Tape, f VectorFunc[autodiff.Var], x []float64) ([]float64, [][]float64, error) {
	return functional.Jacobian(t, f, x)
}

// HessianTimesVector returns f(x) and H(x) v.
func HessianTimesVector(t *autodiff.Tape, f Func[MixedVar], x, v []float64) (float64, []float64, error) {
	return functional.HessianTimesVector(t, f, x, v)
}

// Hessian returns f(x), the gradient and the Hessian (mixed mode).
func Hessian(t *autodiff.Tape, f Func[MixedVar], x []float64) (float64, []float64, [][]float64, error) {
	return functional.Hessian(t, f, x)
}

// Derivative returns f(x) and f'(x).
func Derivative(f func(Dual) (Dual, error), x float64) (float64, float64, error) {
	return functional.Derivative(f, x)
}

// PartialDerivative returns f(x) and the partial derivative along x[n].
func PartialDerivative(f Func[Dual], x []float64, n int) (float64, float64, error) {
	return functional.PartialDerivative(f, x, n)
}

// GradientDotVector returns f(x) and grad f(x) . v.
func GradientDotVector(f Func[Dual], x, v []float64) (float64, float64, error) {
	return functional.GradientDotVector(f, x, v)
}

// ForwardGradient returns f(x) and its gradient in forward mode.
func ForwardGradient(f Func[Dual], x []float64) (float64, []float64, error) {
	return functional.ForwardGradient(f, x)
}

// ForwardJacobian returns f(x) and its Jacobian in forward mode.
func ForwardJacobian(f VectorFunc[Dual], x []float64) ([]float64, [][]float64, error) {
	return functional.ForwardJacobian(f, x)
}

// ForwardHessian returns f(x), the gradient and the Hessian using
// second-order dual numbers.
func ForwardHessian(f Func[Dual2], x []float64) (float64, []float64, [][]float64, error) {
	return functional.ForwardHessian(f, x)
}

// FiniteDiffGradient approximates the gradient with a sixth-order central
// difference.
func FiniteDiffGradient(f Func[scalar.Float], x []float64, cfg FiniteDiffConfig) (float64, []float64, error) {
	return functional.FiniteDiffGradient(f, x, cfg)
}

// FiniteDiffHessian approximates the Hessian by finite differences.
func FiniteDiffHessian(f Func[scalar.Float], x []float64, cfg FiniteDiffConfig) (float64, []float64, [][]float64, error) {
	return functional.FiniteDiffHessian(f, x, cfg)
}

// SparsityPattern reports the input indices each output of f depends on.
func SparsityPattern(t *autodiff.Tape, f VectorFunc[autodiff.Var], x []float64) ([]*roaring.Bitmap, error) {
	return functional.SparsityPattern(t, f, x)
}

// Runner evaluates drivers at many points concurrently.
type Runner = functional.Runner

// RunnerConfig configures a Runner.
type RunnerConfig = functional.RunnerConfig

// Result is the outcome of one evaluation point.
type Result = functional.Result

// Observer receives Runner metrics.
type Observer = functional.Observer

// NoopObserver discards all metrics.
type NoopObserver = functional.NoopObserver

// BasicObserver keeps in-memory counters.
type BasicObserver = functional.BasicObserver

// DefaultRunnerConfig returns the default Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return functional.DefaultRunnerConfig()
}

// NewRunner creates a Runner.
func NewRunner(cfg RunnerConfig) *Runner {
	return functional.NewRunner(cfg)
}
