package scalar

import "math"

// logEpsilon is log(machine epsilon); below it 1+exp(x) rounds to 1.
var logEpsilon = math.Log(0x1p-52)

// InvLogit returns 1 / (1 + exp(-x)) without overflow for large |x|.
func InvLogit(x float64) float64 {
	if x < 0 {
		e := math.Exp(x)
		if x < logEpsilon {
			return e
		}
		return e / (1 + e)
	}
	return 1 / (1 + math.Exp(-x))
}

// Log1pExp returns log(1 + exp(x)) without overflow for large x.
func Log1pExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// Digamma returns the logarithmic derivative of the gamma function. Poles
// (zero and negative integers) yield NaN.
func Digamma(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, -1):
		return math.NaN()
	case math.IsInf(x, 1):
		return x
	case x <= 0 && x == math.Floor(x):
		return math.NaN()
	case x < 0:
		// Reflection: psi(1-x) - psi(x) = pi / tan(pi x).
		return Digamma(1-x) - math.Pi/math.Tan(math.Pi*x)
	}

	result := 0.0
	for x < 10 {
		result -= 1 / x
		x++
	}
	// Asymptotic expansion in 1/x^2 (Bernoulli numbers).
	y := 1 / (x * x)
	series := y * (1.0/12 - y*(1.0/120-y*(1.0/252-y*(1.0/240-y*(1.0/132)))))
	return result + math.Log(x) - 0.5/x - series
}

// Trigamma returns the derivative of Digamma. It is written purely in terms
// of Scalar operations, so applying it to a Var or Dual differentiates it to
// any order.
func Trigamma[T Scalar[T]](x T) T {
	const (
		small = 1e-4
		large = 5.0
		b2    = 1.0 / 6
		b4    = -1.0 / 30
		b6    = 1.0 / 42
		b8    = -1.0 / 30
	)

	v := x.Val()
	if v <= 0 && v == math.Floor(v) {
		return x.Const(math.Inf(1))
	}
	if v <= 0 {
		// Reflection: psi1(1-x) + psi1(x) = pi^2 / sin^2(pi x).
		s := x.MulScalar(math.Pi).Sin().Square()
		return s.RDiv(math.Pi * math.Pi).Sub(Trigamma(x.RSub(1)))
	}
	if v <= small {
		return x.Square().Inv()
	}

	value := x.Const(0)
	z := x
	for z.Val() < large {
		value = value.Add(z.Square().Inv())
		z = z.AddScalar(1)
	}

	// value += 0.5 y + (1 + y (b2 + y (b4 + y (b6 + y b8)))) / z
	y := z.Square().Inv()
	poly := y.MulScalar(b8).AddScalar(b6).Mul(y).AddScalar(b4).Mul(y).AddScalar(b2).Mul(y).AddScalar(1)
	return value.Add(y.MulScalar(0.5)).Add(poly.Div(z))
}
