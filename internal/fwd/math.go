package fwd

import (
	"math"

	"github.com/born-ml/adjoint/internal/scalar"
)

// Elementary functions: (g(v), g'(v) * d). Like the reverse-mode versions
// they propagate NaN rather than checking domains.

const twoOverSqrtPi = 2 / math.SqrtPi

func (a Dual[T]) Sqrt() Dual[T] {
	s := a.V.Sqrt()
	return Dual[T]{V: s, D: a.D.Div(s.MulScalar(2))}
}

func (a Dual[T]) Cbrt() Dual[T] {
	r := a.V.Cbrt()
	return Dual[T]{V: r, D: a.D.Div(r.Square().MulScalar(3))}
}

func (a Dual[T]) Exp() Dual[T] {
	e := a.V.Exp()
	return Dual[T]{V: e, D: a.D.Mul(e)}
}

func (a Dual[T]) Expm1() Dual[T] {
	e := a.V.Expm1()
	return Dual[T]{V: e, D: a.D.Mul(e.AddScalar(1))}
}

func (a Dual[T]) Log() Dual[T] {
	return Dual[T]{V: a.V.Log(), D: a.D.Div(a.V)}
}

func (a Dual[T]) Log1p() Dual[T] {
	return Dual[T]{V: a.V.Log1p(), D: a.D.Div(a.V.AddScalar(1))}
}

// Pow returns a**b: d = (b' log a + b a' / a) a**b. The log term is dropped
// when the result is zero so that log(0) does not produce NaN.
func (a Dual[T]) Pow(b Dual[T]) Dual[T] {
	p := a.V.Pow(b.V)
	d := a.D.Mul(b.V).Mul(a.V.Pow(b.V.SubScalar(1)))
	if p.Val() != 0 {
		d = d.Add(b.D.Mul(a.V.Log()).Mul(p))
	}
	return Dual[T]{V: p, D: d}
}

// PowScalar returns a**c.
func (a Dual[T]) PowScalar(c float64) Dual[T] {
	return Dual[T]{
		V: a.V.PowScalar(c),
		D: a.D.Mul(a.V.PowScalar(c - 1)).MulScalar(c),
	}
}

func (a Dual[T]) Sin() Dual[T] {
	return Dual[T]{V: a.V.Sin(), D: a.D.Mul(a.V.Cos())}
}

func (a Dual[T]) Cos() Dual[T] {
	return Dual[T]{V: a.V.Cos(), D: a.D.Mul(a.V.Sin()).Neg()}
}

func (a Dual[T]) Tan() Dual[T] {
	t := a.V.Tan()
	return Dual[T]{V: t, D: a.D.Mul(t.Square().AddScalar(1))}
}

func (a Dual[T]) Asin() Dual[T] {
	return Dual[T]{V: a.V.Asin(), D: a.D.Div(a.V.Square().RSub(1).Sqrt())}
}

func (a Dual[T]) Acos() Dual[T] {
	return Dual[T]{V: a.V.Acos(), D: a.D.Div(a.V.Square().RSub(1).Sqrt()).Neg()}
}

func (a Dual[T]) Atan() Dual[T] {
	return Dual[T]{V: a.V.Atan(), D: a.D.Div(a.V.Square().AddScalar(1))}
}

// Atan2 returns atan2(a, b): d = (b a' - a b') / (a^2 + b^2).
func (a Dual[T]) Atan2(b Dual[T]) Dual[T] {
	den := a.V.Square().Add(b.V.Square())
	return Dual[T]{
		V: a.V.Atan2(b.V),
		D: b.V.Mul(a.D).Sub(a.V.Mul(b.D)).Div(den),
	}
}

func (a Dual[T]) Sinh() Dual[T] {
	return Dual[T]{V: a.V.Sinh(), D: a.D.Mul(a.V.Cosh())}
}

func (a Dual[T]) Cosh() Dual[T] {
	return Dual[T]{V: a.V.Cosh(), D: a.D.Mul(a.V.Sinh())}
}

func (a Dual[T]) Tanh() Dual[T] {
	t := a.V.Tanh()
	return Dual[T]{V: t, D: a.D.Mul(t.Square().RSub(1))}
}

// Abs returns |a|, with derivative 0 at 0 and NaN for NaN.
func (a Dual[T]) Abs() Dual[T] {
	v := a.Val()
	switch {
	case v > 0:
		return a
	case v < 0:
		return a.Neg()
	case v == 0:
		return a.Const(0)
	default:
		nan := a.V.Const(math.NaN())
		return Dual[T]{V: nan, D: nan}
	}
}

func (a Dual[T]) Hypot(b Dual[T]) Dual[T] {
	h := a.V.Hypot(b.V)
	return Dual[T]{V: h, D: a.V.Mul(a.D).Add(b.V.Mul(b.D)).Div(h)}
}

func (a Dual[T]) Erf() Dual[T] {
	w := a.V.Square().Neg().Exp().MulScalar(twoOverSqrtPi)
	return Dual[T]{V: a.V.Erf(), D: a.D.Mul(w)}
}

func (a Dual[T]) Erfc() Dual[T] {
	w := a.V.Square().Neg().Exp().MulScalar(-twoOverSqrtPi)
	return Dual[T]{V: a.V.Erfc(), D: a.D.Mul(w)}
}

func (a Dual[T]) InvLogit() Dual[T] {
	s := a.V.InvLogit()
	return Dual[T]{V: s, D: a.D.Mul(s.Mul(s.RSub(1)))}
}

func (a Dual[T]) Log1pExp() Dual[T] {
	return Dual[T]{V: a.V.Log1pExp(), D: a.D.Mul(a.V.InvLogit())}
}

func (a Dual[T]) Lgamma() Dual[T] {
	return Dual[T]{V: a.V.Lgamma(), D: a.D.Mul(a.V.Digamma())}
}

// Digamma uses the generic Trigamma so that it remains differentiable at
// every nesting depth.
func (a Dual[T]) Digamma() Dual[T] {
	return Dual[T]{V: a.V.Digamma(), D: a.D.Mul(scalar.Trigamma(a.V))}
}
