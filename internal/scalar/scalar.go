// Package scalar defines the field-like scalar contract shared by plain
// floats, reverse-mode variables and forward-mode dual numbers.
//
// Generic numeric code written against Scalar[T] runs unchanged on Float,
// autodiff.Var, fwd.Dual[Float], fwd.Dual[autodiff.Var] and deeper nestings,
// which is how the same function body yields values, gradients and Hessians.
package scalar

// Scalar is implemented by every type that can stand in for float64 in
// differentiable code. Methods never mutate the receiver.
type Scalar[T any] interface {
	// Val returns the underlying float64 value, stripping all derivative
	// information.
	Val() float64
	// Const lifts c into T as a constant (zero derivative) in the same
	// context as the receiver.
	Const(c float64) T

	Add(b T) T
	Sub(b T) T
	Mul(b T) T
	Div(b T) T

	AddScalar(c float64) T
	SubScalar(c float64) T
	MulScalar(c float64) T
	DivScalar(c float64) T
	RSub(c float64) T // c - x
	RDiv(c float64) T // c / x

	Neg() T
	Inv() T
	Square() T
	Sqrt() T
	Cbrt() T
	Exp() T
	Expm1() T
	Log() T
	Log1p() T
	Pow(b T) T
	PowScalar(c float64) T

	Sin() T
	Cos() T
	Tan() T
	Asin() T
	Acos() T
	Atan() T
	Atan2(x T) T // atan2(receiver, x)
	Sinh() T
	Cosh() T
	Tanh() T

	Abs() T
	Hypot(b T) T
	Erf() T
	Erfc() T
	InvLogit() T
	Log1pExp() T
	Lgamma() T
	Digamma() T
}

// Values extracts the float64 values of xs.
func Values[T Scalar[T]](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Val()
	}
	return out
}

// Sum adds xs with the scalar type's own arithmetic. zero supplies the
// context for the empty sum.
func Sum[T Scalar[T]](zero T, xs []T) T {
	if len(xs) == 0 {
		return zero.Const(0)
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = acc.Add(x)
	}
	return acc
}

// Dot returns the inner product of xs and ys, which must have equal length.
func Dot[T Scalar[T]](xs, ys []T) T {
	acc := xs[0].Mul(ys[0])
	for i := 1; i < len(xs); i++ {
		acc = acc.Add(xs[i].Mul(ys[i]))
	}
	return acc
}
