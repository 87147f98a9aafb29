// Package check validates arguments of differentiable functions before any
// graph node is built.
//
// Node construction itself never checks anything: an out-of-domain input to
// an elementary function produces NaN. Functions that must reject bad input
// call these helpers up front and return the resulting error.
package check

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched (via errors.Is) by every error this package
// returns.
var ErrInvalidArgument = errors.New("invalid argument")

// DomainError reports a value outside the domain of a function.
type DomainError struct {
	Function string  // calling function, e.g. "functional.Gradient"
	Argument string  // argument name
	Value    float64 // offending value
	Index    int     // element index, or -1 for scalars
	Reason   string  // requirement that failed, e.g. "be positive"
}

func (e *DomainError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s[%d] is %v, but must %s", e.Function, e.Argument, e.Index, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s is %v, but must %s", e.Function, e.Argument, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrInvalidArgument }

// SizeMismatchError reports arguments whose lengths disagree.
type SizeMismatchError struct {
	Function string
	Argument string
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: size mismatch for %s: expected %d, got %d",
		e.Function, e.Argument, e.Expected, e.Actual)
}

func (e *SizeMismatchError) Unwrap() error { return ErrInvalidArgument }
