package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/adjoint/internal/autodiff"
)

func TestSum(t *testing.T) {
	tape := autodiff.New()
	xs := tape.Vars([]float64{1, 2, 3})
	s := tape.Sum(xs)
	assert.Equal(t, 1, tape.NumChainable(), "one n-ary node")

	tape.Grad(s.Square())
	assert.Equal(t, 6.0, s.Val())
	assert.Equal(t, []float64{12, 12, 12}, autodiff.Adjoints(xs))

	assert.Equal(t, 0.0, tape.Sum(nil).Val())
}

func TestDotScalar(t *testing.T) {
	tape := autodiff.New()
	xs := tape.Vars([]float64{1, 2})
	c := []float64{3, -4}
	f := tape.DotScalar(xs, c)
	c[0] = 100 // the tape holds its own copy

	tape.Grad(f)
	assert.Equal(t, -5.0, f.Val())
	assert.Equal(t, []float64{3, -4}, autodiff.Adjoints(xs))
}

func TestDot(t *testing.T) {
	tape := autodiff.New()
	xs := tape.Vars([]float64{1, 2, 3})
	ys := tape.Vars([]float64{4, 5, 6})
	f := tape.Dot(xs, ys)

	tape.Grad(f)
	assert.Equal(t, 32.0, f.Val())
	assert.Equal(t, []float64{4, 5, 6}, autodiff.Adjoints(xs))
	assert.Equal(t, []float64{1, 2, 3}, autodiff.Adjoints(ys))
}

func TestLogSumExp(t *testing.T) {
	tape := autodiff.New()
	vals := []float64{1000, 1001, 999}
	xs := tape.Vars(vals)
	f := tape.LogSumExp(xs)
	tape.Grad(f)

	want := 1001 + math.Log(math.Exp(-1)+1+math.Exp(-2))
	assert.InDelta(t, want, f.Val(), 1e-12)

	total := 0.0
	for i, x := range xs {
		assert.InDelta(t, math.Exp(vals[i]-want), x.Adj(), 1e-12, "softmax weight %d", i)
		total += x.Adj()
	}
	assert.InDelta(t, 1, total, 1e-12)

	assert.True(t, math.IsInf(tape.LogSumExp(nil).Val(), -1))
}

func TestLogSumExp_AllNegInf(t *testing.T) {
	tape := autodiff.New()
	xs := tape.Vars([]float64{math.Inf(-1), math.Inf(-1)})
	f := tape.LogSumExp(xs)
	tape.Grad(f)
	assert.True(t, math.IsInf(f.Val(), -1))
	assert.Equal(t, []float64{0, 0}, autodiff.Adjoints(xs))
}

func TestPrecomputed(t *testing.T) {
	tape := autodiff.New()
	x, y := tape.NewVar(2), tape.NewVar(3)

	// f = x^2 y with hand-supplied partials.
	f := tape.Precomputed(12, []autodiff.Var{x, y}, []float64{12, 4})
	tape.Grad(f.MulScalar(0.5))
	assert.Equal(t, 6.0, x.Adj())
	assert.Equal(t, 2.0, y.Adj())

	assert.Panics(t, func() { tape.Precomputed(0, []autodiff.Var{x}, nil) })
}

// squareNode is a custom node computing x^2 with a lazily computed partial.
type squareNode struct{ x autodiff.Var }

func (n squareNode) Chain(t *autodiff.Tape, adj float64) {
	t.AddAdj(n.x, adj*2*n.x.Val())
}

func (n squareNode) Operands() []autodiff.Var { return []autodiff.Var{n.x} }

func TestPush_CustomChainer(t *testing.T) {
	tape := autodiff.New()
	x := tape.NewVar(-3)
	sq := tape.Push(9, squareNode{x})
	require.Equal(t, 1, tape.NumChainable())

	tape.Grad(sq.Exp())
	assert.InDelta(t, math.Exp(9)*-6, x.Adj(), 1e-6)
	assert.InDelta(t, math.Exp(9), tape.Adj(sq), 1e-9)
}
