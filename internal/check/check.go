package check

import (
	"fmt"
	"math"
)

// Positive requires x > 0.
func Positive(function, argument string, x float64) error {
	if !(x > 0) {
		return &DomainError{Function: function, Argument: argument, Value: x, Index: -1, Reason: "be positive"}
	}
	return nil
}

// NonNegative requires x >= 0.
func NonNegative(function, argument string, x float64) error {
	if !(x >= 0) {
		return &DomainError{Function: function, Argument: argument, Value: x, Index: -1, Reason: "be non-negative"}
	}
	return nil
}

// Finite requires every element of xs to be finite.
func Finite(function, argument string, xs ...float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &DomainError{Function: function, Argument: argument, Value: x, Index: index(xs, i), Reason: "be finite"}
		}
	}
	return nil
}

// NotNaN requires no element of xs to be NaN.
func NotNaN(function, argument string, xs ...float64) error {
	for i, x := range xs {
		if math.IsNaN(x) {
			return &DomainError{Function: function, Argument: argument, Value: x, Index: index(xs, i), Reason: "not be NaN"}
		}
	}
	return nil
}

// Bounded requires lo <= x <= hi.
func Bounded(function, argument string, x, lo, hi float64) error {
	if !(x >= lo && x <= hi) {
		return &DomainError{
			Function: function,
			Argument: argument,
			Value:    x,
			Index:    -1,
			Reason:   fmt.Sprintf("be in [%v, %v]", lo, hi),
		}
	}
	return nil
}

// SameSize requires len(a) == len(b). The error names argument b.
func SameSize[A, B any](function, argument string, a []A, b []B) error {
	if len(a) != len(b) {
		return &SizeMismatchError{Function: function, Argument: argument, Expected: len(a), Actual: len(b)}
	}
	return nil
}

// NonEmpty requires len(xs) > 0.
func NonEmpty[T any](function, argument string, xs []T) error {
	if len(xs) == 0 {
		return &SizeMismatchError{Function: function, Argument: argument, Expected: 1, Actual: 0}
	}
	return nil
}

// Square requires m to have as many rows as every row has columns.
func Square[T any](function, argument string, m [][]T) error {
	for _, row := range m {
		if len(row) != len(m) {
			return &SizeMismatchError{Function: function, Argument: argument, Expected: len(m), Actual: len(row)}
		}
	}
	return nil
}

// index reports -1 for a single value so that scalars read naturally.
func index(xs []float64, i int) int {
	if len(xs) == 1 {
		return -1
	}
	return i
}
