// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package check validates arguments before differentiable code runs.
package check

import "github.com/born-ml/adjoint/internal/check"

// ErrInvalidArgument is matched by every error this package returns.
var ErrInvalidArgument = check.ErrInvalidArgument

// DomainError reports a value outside the domain of a function.
type DomainError = check.DomainError

// SizeMismatchError reports arguments whose lengths disagree.
type SizeMismatchError = check.SizeMismatchError

// Positive requires x > 0.
func Positive(function, argument string, x float64) error {
	return check.Positive(function, argument, x)
}

// NonNegative requires x >= 0.
func NonNegative(function, argument string, x float64) error {
	return check.NonNegative(function, argument, x)
}

// Finite requires every element of xs to be finite.
func Finite(function, argument string, xs ...float64) error {
	return check.Finite(function, argument, xs...)
}

// NotNaN requires no element of xs to be NaN.
func NotNaN(function, argument string, xs ...float64) error {
	return check.NotNaN(function, argument, xs...)
}

// Bounded requires lo <= x <= hi.
func Bounded(function, argument string, x, lo, hi float64) error {
	return check.Bounded(function, argument, x, lo, hi)
}

// SameSize requires len(a) == len(b).
func SameSize[A, B any](function, argument string, a []A, b []B) error {
	return check.SameSize(function, argument, a, b)
}

// NonEmpty requires len(xs) > 0.
func NonEmpty[T any](function, argument string, xs []T) error {
	return check.NonEmpty(function, argument, xs)
}

// Square requires m to be a square matrix.
func Square[T any](function, argument string, m [][]T) error {
	return check.Square(function, argument, m)
}
