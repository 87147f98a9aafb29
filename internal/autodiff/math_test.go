package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/adjoint/internal/autodiff"
	"github.com/born-ml/adjoint/internal/scalar"
)

const fdStep = 1e-5

// centralDiff estimates f'(x).
func centralDiff(f func(float64) float64, x float64) float64 {
	return (f(x+fdStep) - f(x-fdStep)) / (2 * fdStep)
}

// assertClose compares with a tolerance relative to the magnitude of want.
func assertClose(t *testing.T, want, got float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want, got, 1e-6*math.Max(1, math.Abs(want)), msgAndArgs...)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

func TestUnaryOps_MatchFiniteDifferences(t *testing.T) {
	tests := []struct {
		name   string
		op     func(autodiff.Var) autodiff.Var
		f      func(float64) float64
		points []float64
	}{
		{"Neg", autodiff.Var.Neg, func(x float64) float64 { return -x }, []float64{-1, 2}},
		{"Inv", autodiff.Var.Inv, func(x float64) float64 { return 1 / x }, []float64{-3, 0.5}},
		{"Square", autodiff.Var.Square, func(x float64) float64 { return x * x }, []float64{-1.5, 4}},
		{"Sqrt", autodiff.Var.Sqrt, math.Sqrt, []float64{0.2, 9}},
		{"Cbrt", autodiff.Var.Cbrt, math.Cbrt, []float64{-8, 0.7}},
		{"Exp", autodiff.Var.Exp, math.Exp, []float64{-2, 0, 1.3}},
		{"Expm1", autodiff.Var.Expm1, math.Expm1, []float64{-0.1, 2}},
		{"Log", autodiff.Var.Log, math.Log, []float64{0.3, 12}},
		{"Log1p", autodiff.Var.Log1p, math.Log1p, []float64{-0.5, 3}},
		{"Sin", autodiff.Var.Sin, math.Sin, []float64{-1, 0.4, 3}},
		{"Cos", autodiff.Var.Cos, math.Cos, []float64{-1, 0.4, 3}},
		{"Tan", autodiff.Var.Tan, math.Tan, []float64{-0.7, 1.1}},
		{"Asin", autodiff.Var.Asin, math.Asin, []float64{-0.6, 0.3}},
		{"Acos", autodiff.Var.Acos, math.Acos, []float64{-0.6, 0.3}},
		{"Atan", autodiff.Var.Atan, math.Atan, []float64{-4, 0.5}},
		{"Sinh", autodiff.Var.Sinh, math.Sinh, []float64{-1, 2}},
		{"Cosh", autodiff.Var.Cosh, math.Cosh, []float64{-1, 2}},
		{"Tanh", autodiff.Var.Tanh, math.Tanh, []float64{-1, 0.2}},
		{"Abs", autodiff.Var.Abs, math.Abs, []float64{-2.5, 1.5}},
		{"Erf", autodiff.Var.Erf, math.Erf, []float64{-0.8, 1.2}},
		{"Erfc", autodiff.Var.Erfc, math.Erfc, []float64{-0.8, 1.2}},
		{"InvLogit", autodiff.Var.InvLogit, scalar.InvLogit, []float64{-3, 0, 2}},
		{"Log1pExp", autodiff.Var.Log1pExp, scalar.Log1pExp, []float64{-3, 0, 5}},
		{"Lgamma", autodiff.Var.Lgamma, lgamma, []float64{0.4, 3.5, 20}},
		{"Digamma", autodiff.Var.Digamma, scalar.Digamma, []float64{0.6, 2, 15}},
		{"AddScalar", func(x autodiff.Var) autodiff.Var { return x.AddScalar(2.5) }, func(x float64) float64 { return x + 2.5 }, []float64{1}},
		{"SubScalar", func(x autodiff.Var) autodiff.Var { return x.SubScalar(2.5) }, func(x float64) float64 { return x - 2.5 }, []float64{1}},
		{"MulScalar", func(x autodiff.Var) autodiff.Var { return x.MulScalar(-3) }, func(x float64) float64 { return -3 * x }, []float64{1}},
		{"DivScalar", func(x autodiff.Var) autodiff.Var { return x.DivScalar(4) }, func(x float64) float64 { return x / 4 }, []float64{1}},
		{"RSub", func(x autodiff.Var) autodiff.Var { return x.RSub(7) }, func(x float64) float64 { return 7 - x }, []float64{1}},
		{"RDiv", func(x autodiff.Var) autodiff.Var { return x.RDiv(7) }, func(x float64) float64 { return 7 / x }, []float64{0.5, -2}},
		{"PowScalar", func(x autodiff.Var) autodiff.Var { return x.PowScalar(2.5) }, func(x float64) float64 { return math.Pow(x, 2.5) }, []float64{0.5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range tt.points {
				tape := autodiff.New()
				x := tape.NewVar(p)
				y := tt.op(x)
				tape.Grad(y)

				assertClose(t, tt.f(p), y.Val(), "value at %v", p)
				assertClose(t, centralDiff(tt.f, p), x.Adj(), "derivative at %v", p)
			}
		})
	}
}

func TestBinaryOps_MatchFiniteDifferences(t *testing.T) {
	tests := []struct {
		name   string
		op     func(a, b autodiff.Var) autodiff.Var
		f      func(a, b float64) float64
		points [][2]float64
	}{
		{"Add", autodiff.Var.Add, func(a, b float64) float64 { return a + b }, [][2]float64{{1, 2}}},
		{"Sub", autodiff.Var.Sub, func(a, b float64) float64 { return a - b }, [][2]float64{{1, 2}}},
		{"Mul", autodiff.Var.Mul, func(a, b float64) float64 { return a * b }, [][2]float64{{1.5, -2}, {0, 3}}},
		{"Div", autodiff.Var.Div, func(a, b float64) float64 { return a / b }, [][2]float64{{1.5, -2}, {0, 3}}},
		{"Pow", autodiff.Var.Pow, math.Pow, [][2]float64{{1.7, 2.3}, {0.4, -1.5}}},
		{"Atan2", autodiff.Var.Atan2, math.Atan2, [][2]float64{{1, 2}, {-0.5, -1}}},
		{"Hypot", autodiff.Var.Hypot, math.Hypot, [][2]float64{{3, 4}, {-1, 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range tt.points {
				tape := autodiff.New()
				a, b := tape.NewVar(p[0]), tape.NewVar(p[1])
				y := tt.op(a, b)
				tape.Grad(y)

				da := centralDiff(func(v float64) float64 { return tt.f(v, p[1]) }, p[0])
				db := centralDiff(func(v float64) float64 { return tt.f(p[0], v) }, p[1])
				assertClose(t, tt.f(p[0], p[1]), y.Val(), "value at %v", p)
				assertClose(t, da, a.Adj(), "d/da at %v", p)
				assertClose(t, db, b.Adj(), "d/db at %v", p)
			}
		})
	}
}

func TestPow_ZeroBase(t *testing.T) {
	tape := autodiff.New()
	x, y := tape.NewVar(0), tape.NewVar(2)
	f := x.Pow(y)
	tape.Grad(f)

	assert.Equal(t, 0.0, f.Val())
	assert.Equal(t, 0.0, x.Adj())
	assert.Equal(t, 0.0, y.Adj(), "log(0) must not leak into the gradient")
}

func TestAbs_AtZero(t *testing.T) {
	tape := autodiff.New()
	x := tape.NewVar(0)
	f := x.Abs()
	tape.Grad(f)
	assert.Equal(t, 0.0, f.Val())
	assert.Equal(t, 0.0, x.Adj())

	n := tape.NewVar(math.NaN())
	g := n.Abs()
	tape.Grad(g)
	assert.True(t, math.IsNaN(g.Val()))
	assert.True(t, math.IsNaN(n.Adj()))
}

func TestDomainErrorsPropagateNaN(t *testing.T) {
	tests := []struct {
		name string
		op   func(autodiff.Var) autodiff.Var
		at   float64
	}{
		{"Sqrt", autodiff.Var.Sqrt, -1},
		{"Asin", autodiff.Var.Asin, 2},
		{"Acos", autodiff.Var.Acos, -3},
		{"PowScalar", func(x autodiff.Var) autodiff.Var { return x.PowScalar(0.5) }, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape := autodiff.New()
			x := tape.NewVar(tt.at)
			y := tt.op(x)
			tape.Grad(y)
			assert.True(t, math.IsNaN(y.Val()))
			assert.True(t, math.IsNaN(x.Adj()))
		})
	}
}
