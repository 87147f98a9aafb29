package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/adjoint/internal/arena"
	"github.com/born-ml/adjoint/internal/autodiff"
)

func TestTape_Lists(t *testing.T) {
	tape := autodiff.New()
	x := tape.NewVar(2)
	c := x.Const(4)
	assert.Equal(t, 2, tape.NumNodes())
	assert.Zero(t, tape.NumChainable(), "leaves are not chainable")

	x.Mul(c).Exp()
	assert.Equal(t, 4, tape.NumNodes())
	assert.Equal(t, 2, tape.NumChainable())

	stats := tape.Stats()
	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, 2, stats.Chainable)
	assert.Equal(t, 4, stats.PeakNodes)
	assert.Zero(t, stats.NestedDepth)
}

func TestTape_RecoverMemory(t *testing.T) {
	tape := autodiff.NewTape(autodiff.Config{Arena: arena.Config{BlockSize: 256}, NodeCapacity: 4})
	xs := tape.Vars(make([]float64, 100))
	tape.Sum(xs)
	require.Greater(t, tape.Stats().Arena.InUse, 0)

	tape.RecoverMemory()
	stats := tape.Stats()
	assert.Zero(t, stats.Nodes)
	assert.Zero(t, stats.Chainable)
	assert.Zero(t, stats.Arena.InUse)
	assert.Equal(t, 101, stats.PeakNodes)
	assert.False(t, xs[0].IsValid())

	// The tape is reusable.
	y := tape.NewVar(3)
	tape.Grad(y.Square())
	assert.Equal(t, 6.0, y.Adj())
}

func TestTape_RecoverMemoryInsideNested(t *testing.T) {
	tape := autodiff.New()
	tape.StartNested()
	assert.Panics(t, func() { tape.RecoverMemory() })
}

func TestTape_Release(t *testing.T) {
	tape := autodiff.New()
	tape.NewVar(1)
	tape.Release()
	assert.Panics(t, func() { tape.Sum([]autodiff.Var{tape.NewVar(1)}) })
}

func TestTape_ArenaBudgetIsFatal(t *testing.T) {
	tape := autodiff.NewTape(autodiff.Config{Arena: arena.Config{BlockSize: 64, MaxBytes: 64}})
	xs := tape.Vars(make([]float64, 32))
	assert.Panics(t, func() { tape.Sum(xs) })
}

func TestNoGrad(t *testing.T) {
	tape := autodiff.New()
	x := tape.NewVar(3)
	assert.True(t, tape.IsRecording())

	var y autodiff.Var
	tape.NoGrad(func() {
		assert.False(t, tape.IsRecording())
		y = x.Square()
		tape.NoGrad(func() {
			x.Exp()
		})
		assert.False(t, tape.IsRecording(), "inner NoGrad restores outer state")
	})
	assert.True(t, tape.IsRecording())
	assert.Zero(t, tape.NumChainable())
	assert.Equal(t, 9.0, y.Val())

	f := y.Mul(x)
	tape.Grad(f)
	assert.Equal(t, 9.0, x.Adj(), "y is a constant, so df/dx = y")
}

func TestNoGrad_RestoresOnPanic(t *testing.T) {
	tape := autodiff.New()
	assert.Panics(t, func() {
		tape.NoGrad(func() { panic("boom") })
	})
	assert.True(t, tape.IsRecording())
}

func TestDetach(t *testing.T) {
	tape := autodiff.New()
	x := tape.NewVar(2)
	d := x.Detach()

	assert.Equal(t, x.Val(), d.Val())
	assert.False(t, x.Same(d))

	f := x.Mul(d)
	tape.Grad(f)
	assert.Equal(t, 2.0, x.Adj())
	assert.Equal(t, 2.0, d.Adj())
}

func TestVar_String(t *testing.T) {
	tape := autodiff.New()
	assert.Equal(t, "2.5", tape.NewVar(2.5).String())
	assert.Equal(t, "NaN", tape.NewVar(math.NaN()).String())
	assert.Equal(t, "<nil>", autodiff.Var{}.String())
	assert.False(t, autodiff.Var{}.IsValid())
	assert.Nil(t, autodiff.Var{}.Tape())
}
