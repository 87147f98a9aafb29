// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar defines the scalar contract shared by floats, reverse-mode
// variables and dual numbers. Code written against Scalar runs unchanged at
// every differentiation order.
package scalar

import "github.com/born-ml/adjoint/internal/scalar"

// Scalar is implemented by every type that can stand in for float64 in
// differentiable code.
type Scalar[T any] = scalar.Scalar[T]

// Float is a float64 satisfying Scalar[Float].
type Float = scalar.Float

// Floats converts xs to []Float.
func Floats(xs []float64) []Float {
	return scalar.Floats(xs)
}

// Values extracts the float64 values of xs.
func Values[T Scalar[T]](xs []T) []float64 {
	return scalar.Values(xs)
}

// Sum adds xs; zero supplies the context for the empty sum.
func Sum[T Scalar[T]](zero T, xs []T) T {
	return scalar.Sum(zero, xs)
}

// Dot returns the inner product of xs and ys.
func Dot[T Scalar[T]](xs, ys []T) T {
	return scalar.Dot(xs, ys)
}

// Trigamma returns the second derivative of log Gamma, differentiable at
// any nesting depth.
func Trigamma[T Scalar[T]](x T) T {
	return scalar.Trigamma(x)
}

// Digamma returns the first derivative of log Gamma.
func Digamma(x float64) float64 {
	return scalar.Digamma(x)
}

// InvLogit returns 1 / (1 + exp(-x)).
func InvLogit(x float64) float64 {
	return scalar.InvLogit(x)
}

// Log1pExp returns log(1 + exp(x)).
func Log1pExp(x float64) float64 {
	return scalar.Log1pExp(x)
}
