// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fwd provides forward-mode automatic differentiation with dual
// numbers.
//
// Dual numbers nest: Dual[scalar.Float] gives first derivatives,
// Dual[Dual[scalar.Float]] second derivatives, and Dual[autodiff.Var] mixes
// forward and reverse mode.
//
// Example:
//
//	x := fwd.Variable(scalar.Float(2))
//	y := x.Mul(x).Sin() // sin(x^2)
//	fmt.Println(y.V, y.D) // sin(4), 4cos(4)
package fwd

import (
	"github.com/born-ml/adjoint/internal/fwd"
	"github.com/born-ml/adjoint/internal/scalar"
)

// Dual is a value with a directional derivative.
type Dual[T scalar.Scalar[T]] = fwd.Dual[T]

// New returns the dual number (v, d).
func New[T scalar.Scalar[T]](v, d T) Dual[T] {
	return fwd.New(v, d)
}

// Variable returns (v, 1).
func Variable[T scalar.Scalar[T]](v T) Dual[T] {
	return fwd.Variable(v)
}

// Constant returns (v, 0).
func Constant[T scalar.Scalar[T]](v T) Dual[T] {
	return fwd.Constant(v)
}

// Lift converts xs to dual numbers with the tangents ds.
func Lift[T scalar.Scalar[T]](xs, ds []T) []Dual[T] {
	return fwd.Lift(xs, ds)
}

// Tangents returns the D parts of xs.
func Tangents[T scalar.Scalar[T]](xs []Dual[T]) []T {
	return fwd.Tangents(xs)
}
