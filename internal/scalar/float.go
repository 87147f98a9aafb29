package scalar

import "math"

// Float is a float64 satisfying Scalar[Float]. It carries no derivative and is
// the base case of every dual-number nesting.
type Float float64

var _ Scalar[Float] = Float(0)

func (x Float) Val() float64        { return float64(x) }
func (Float) Const(c float64) Float { return Float(c) }

func (x Float) Add(b Float) Float { return x + b }
func (x Float) Sub(b Float) Float { return x - b }
func (x Float) Mul(b Float) Float { return x * b }
func (x Float) Div(b Float) Float { return x / b }

func (x Float) AddScalar(c float64) Float { return x + Float(c) }
func (x Float) SubScalar(c float64) Float { return x - Float(c) }
func (x Float) MulScalar(c float64) Float { return x * Float(c) }
func (x Float) DivScalar(c float64) Float { return x / Float(c) }
func (x Float) RSub(c float64) Float      { return Float(c) - x }
func (x Float) RDiv(c float64) Float      { return Float(c) / x }

func (x Float) Neg() Float    { return -x }
func (x Float) Inv() Float    { return 1 / x }
func (x Float) Square() Float { return x * x }
func (x Float) Sqrt() Float   { return Float(math.Sqrt(float64(x))) }
func (x Float) Cbrt() Float   { return Float(math.Cbrt(float64(x))) }
func (x Float) Exp() Float    { return Float(math.Exp(float64(x))) }
func (x Float) Expm1() Float  { return Float(math.Expm1(float64(x))) }
func (x Float) Log() Float    { return Float(math.Log(float64(x))) }
func (x Float) Log1p() Float  { return Float(math.Log1p(float64(x))) }

func (x Float) Pow(b Float) Float         { return Float(math.Pow(float64(x), float64(b))) }
func (x Float) PowScalar(c float64) Float { return Float(math.Pow(float64(x), c)) }

func (x Float) Sin() Float          { return Float(math.Sin(float64(x))) }
func (x Float) Cos() Float          { return Float(math.Cos(float64(x))) }
func (x Float) Tan() Float          { return Float(math.Tan(float64(x))) }
func (x Float) Asin() Float         { return Float(math.Asin(float64(x))) }
func (x Float) Acos() Float         { return Float(math.Acos(float64(x))) }
func (x Float) Atan() Float         { return Float(math.Atan(float64(x))) }
func (x Float) Atan2(b Float) Float { return Float(math.Atan2(float64(x), float64(b))) }
func (x Float) Sinh() Float         { return Float(math.Sinh(float64(x))) }
func (x Float) Cosh() Float         { return Float(math.Cosh(float64(x))) }
func (x Float) Tanh() Float         { return Float(math.Tanh(float64(x))) }

func (x Float) Abs() Float          { return Float(math.Abs(float64(x))) }
func (x Float) Hypot(b Float) Float { return Float(math.Hypot(float64(x), float64(b))) }
func (x Float) Erf() Float          { return Float(math.Erf(float64(x))) }
func (x Float) Erfc() Float         { return Float(math.Erfc(float64(x))) }
func (x Float) InvLogit() Float     { return Float(InvLogit(float64(x))) }
func (x Float) Log1pExp() Float     { return Float(Log1pExp(float64(x))) }

func (x Float) Lgamma() Float {
	v, _ := math.Lgamma(float64(x))
	return Float(v)
}

func (x Float) Digamma() Float { return Float(Digamma(float64(x))) }

// Floats converts xs to []Float.
func Floats(xs []float64) []Float {
	out := make([]Float, len(xs))
	for i, x := range xs {
		out[i] = Float(x)
	}
	return out
}
