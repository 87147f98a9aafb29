package autodiff

import (
	"math"

	"github.com/born-ml/adjoint/internal/scalar"
)

// Elementary functions. None of them checks its domain: out-of-domain
// arguments produce NaN values and NaN partials, following IEEE 754.

const twoOverSqrtPi = 2 / math.SqrtPi

// Sqrt returns the square root of x. Negative x yields NaN.
func (x Var) Sqrt() Var {
	s := math.Sqrt(x.Val())
	return x.t.unary(s, x, 0.5/s)
}

// Cbrt returns the cube root of x.
func (x Var) Cbrt() Var {
	r := math.Cbrt(x.Val())
	return x.t.unary(r, x, 1/(3*r*r))
}

// Exp returns e**x.
func (x Var) Exp() Var {
	e := math.Exp(x.Val())
	return x.t.unary(e, x, e)
}

// Expm1 returns e**x - 1, accurate near zero.
func (x Var) Expm1() Var {
	e := math.Expm1(x.Val())
	return x.t.unary(e, x, e+1)
}

// Log returns the natural logarithm of x.
func (x Var) Log() Var {
	v := x.Val()
	return x.t.unary(math.Log(v), x, 1/v)
}

// Log1p returns log(1 + x), accurate near zero.
func (x Var) Log1p() Var {
	v := x.Val()
	return x.t.unary(math.Log1p(v), x, 1/(1+v))
}

// Pow returns x**y.
func (x Var) Pow(y Var) Var {
	a, b := x.Val(), y.Val()
	val := math.Pow(a, b)
	da := b * math.Pow(a, b-1)
	db := 0.0
	if val != 0 {
		db = math.Log(a) * val
	}
	return x.t.binary(val, x, y, da, db)
}

// PowScalar returns x**c.
func (x Var) PowScalar(c float64) Var {
	v := x.Val()
	return x.t.unary(math.Pow(v, c), x, c*math.Pow(v, c-1))
}

func (x Var) Sin() Var {
	v := x.Val()
	return x.t.unary(math.Sin(v), x, math.Cos(v))
}

func (x Var) Cos() Var {
	v := x.Val()
	return x.t.unary(math.Cos(v), x, -math.Sin(v))
}

// Tan returns the tangent of x.
func (x Var) Tan() Var {
	t := math.Tan(x.Val())
	return x.t.unary(t, x, 1+t*t)
}

// Asin returns the arcsine of x.
func (x Var) Asin() Var {
	v := x.Val()
	return x.t.unary(math.Asin(v), x, 1/math.Sqrt(1-v*v))
}

// Acos returns the arccosine of x.
func (x Var) Acos() Var {
	v := x.Val()
	return x.t.unary(math.Acos(v), x, -1/math.Sqrt(1-v*v))
}

// Atan returns the arctangent of x.
func (x Var) Atan() Var {
	v := x.Val()
	return x.t.unary(math.Atan(v), x, 1/(1+v*v))
}

// Atan2 returns atan2(x, b), the angle of the point (b, x).
func (x Var) Atan2(b Var) Var {
	y, z := x.Val(), b.Val()
	d := y*y + z*z
	return x.t.binary(math.Atan2(y, z), x, b, z/d, -y/d)
}

func (x Var) Sinh() Var {
	v := x.Val()
	return x.t.unary(math.Sinh(v), x, math.Cosh(v))
}

func (x Var) Cosh() Var {
	v := x.Val()
	return x.t.unary(math.Cosh(v), x, math.Sinh(v))
}

// Tanh returns the hyperbolic tangent of x.
func (x Var) Tanh() Var {
	t := math.Tanh(x.Val())
	return x.t.unary(t, x, 1-t*t)
}

// Abs returns |x|. The derivative at 0 is taken to be 0.
func (x Var) Abs() Var {
	v := x.Val()
	switch {
	case v > 0:
		return x
	case v < 0:
		return x.Neg()
	case v == 0:
		return x.Const(0)
	default:
		return x.t.unary(v, x, math.NaN())
	}
}

// Hypot returns sqrt(x*x + y*y).
func (x Var) Hypot(y Var) Var {
	a, b := x.Val(), y.Val()
	h := math.Hypot(a, b)
	return x.t.binary(h, x, y, a/h, b/h)
}

// Erf returns the error function of x.
func (x Var) Erf() Var {
	v := x.Val()
	return x.t.unary(math.Erf(v), x, twoOverSqrtPi*math.Exp(-v*v))
}

// Erfc returns 1 - Erf(x).
func (x Var) Erfc() Var {
	v := x.Val()
	return x.t.unary(math.Erfc(v), x, -twoOverSqrtPi*math.Exp(-v*v))
}

// InvLogit returns the logistic sigmoid 1 / (1 + exp(-x)).
func (x Var) InvLogit() Var {
	s := scalar.InvLogit(x.Val())
	return x.t.unary(s, x, s*(1-s))
}

// Log1pExp returns log(1 + exp(x)).
func (x Var) Log1pExp() Var {
	v := x.Val()
	return x.t.unary(scalar.Log1pExp(v), x, scalar.InvLogit(v))
}

// Lgamma returns log|Gamma(x)|; its derivative is Digamma.
func (x Var) Lgamma() Var {
	v := x.Val()
	lg, _ := math.Lgamma(v)
	return x.t.unary(lg, x, scalar.Digamma(v))
}

// Digamma returns the derivative of Lgamma at x.
func (x Var) Digamma() Var {
	v := x.Val()
	return x.t.unary(scalar.Digamma(v), x, scalar.Trigamma(scalar.Float(v)).Val())
}
