// Package fwd implements forward-mode automatic differentiation with dual
// numbers.
//
// A Dual[T] pairs a value V with a tangent D, the derivative of V along an
// implicit direction. Every operation applies the chain rule eagerly, so no
// graph is recorded. T is any scalar.Scalar: scalar.Float for first
// derivatives, Dual[scalar.Float] for second derivatives, and autodiff.Var
// for mixed forward-over-reverse derivatives such as Hessian-vector products.
package fwd

import (
	"fmt"

	"github.com/born-ml/adjoint/internal/scalar"
)

var (
	_ scalar.Scalar[Dual[scalar.Float]]       = Dual[scalar.Float]{}
	_ scalar.Scalar[Dual[Dual[scalar.Float]]] = Dual[Dual[scalar.Float]]{}
)

// Dual is a value with a directional derivative.
type Dual[T scalar.Scalar[T]] struct {
	V T // value
	D T // tangent
}

// New returns the dual number (v, d).
func New[T scalar.Scalar[T]](v, d T) Dual[T] {
	return Dual[T]{V: v, D: d}
}

// Variable returns (v, 1), the seed of the identity direction.
func Variable[T scalar.Scalar[T]](v T) Dual[T] {
	return Dual[T]{V: v, D: v.Const(1)}
}

// Constant returns (v, 0).
func Constant[T scalar.Scalar[T]](v T) Dual[T] {
	return Dual[T]{V: v, D: v.Const(0)}
}

// Lift converts xs to dual numbers with the tangents ds.
func Lift[T scalar.Scalar[T]](xs, ds []T) []Dual[T] {
	out := make([]Dual[T], len(xs))
	for i := range xs {
		out[i] = Dual[T]{V: xs[i], D: ds[i]}
	}
	return out
}

// Tangents returns the D parts of xs.
func Tangents[T scalar.Scalar[T]](xs []Dual[T]) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = x.D
	}
	return out
}

// Val returns the innermost float64 value.
func (a Dual[T]) Val() float64 { return a.V.Val() }

// Const returns (c, 0) in the context of a.
func (a Dual[T]) Const(c float64) Dual[T] {
	return Dual[T]{V: a.V.Const(c), D: a.V.Const(0)}
}

// String formats the pair as (value, tangent).
func (a Dual[T]) String() string {
	return fmt.Sprintf("(%v, %v)", a.V, a.D)
}

func (a Dual[T]) Add(b Dual[T]) Dual[T] {
	return Dual[T]{V: a.V.Add(b.V), D: a.D.Add(b.D)}
}

func (a Dual[T]) Sub(b Dual[T]) Dual[T] {
	return Dual[T]{V: a.V.Sub(b.V), D: a.D.Sub(b.D)}
}

// Mul applies the product rule.
func (a Dual[T]) Mul(b Dual[T]) Dual[T] {
	return Dual[T]{
		V: a.V.Mul(b.V),
		D: a.D.Mul(b.V).Add(a.V.Mul(b.D)),
	}
}

// Div applies the quotient rule: (a' b - a b') / b^2.
func (a Dual[T]) Div(b Dual[T]) Dual[T] {
	return Dual[T]{
		V: a.V.Div(b.V),
		D: a.D.Mul(b.V).Sub(a.V.Mul(b.D)).Div(b.V.Square()),
	}
}

func (a Dual[T]) AddScalar(c float64) Dual[T] { return Dual[T]{V: a.V.AddScalar(c), D: a.D} }
func (a Dual[T]) SubScalar(c float64) Dual[T] { return Dual[T]{V: a.V.SubScalar(c), D: a.D} }

func (a Dual[T]) MulScalar(c float64) Dual[T] {
	return Dual[T]{V: a.V.MulScalar(c), D: a.D.MulScalar(c)}
}

func (a Dual[T]) DivScalar(c float64) Dual[T] {
	return Dual[T]{V: a.V.DivScalar(c), D: a.D.DivScalar(c)}
}

// RSub returns c - a.
func (a Dual[T]) RSub(c float64) Dual[T] { return Dual[T]{V: a.V.RSub(c), D: a.D.Neg()} }

// RDiv returns c / a.
func (a Dual[T]) RDiv(c float64) Dual[T] {
	return Dual[T]{
		V: a.V.RDiv(c),
		D: a.D.MulScalar(-c).Div(a.V.Square()),
	}
}

func (a Dual[T]) Neg() Dual[T] { return Dual[T]{V: a.V.Neg(), D: a.D.Neg()} }

func (a Dual[T]) Inv() Dual[T] {
	return Dual[T]{V: a.V.Inv(), D: a.D.Neg().Div(a.V.Square())}
}

func (a Dual[T]) Square() Dual[T] {
	return Dual[T]{V: a.V.Square(), D: a.D.Mul(a.V).MulScalar(2)}
}
