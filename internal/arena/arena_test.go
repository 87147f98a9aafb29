package arena

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		blockSize int
		expected  int
	}{
		{"default block size", 0, DefaultBlockSize},
		{"negative block size", -1, DefaultBlockSize},
		{"custom block size", 8192, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(Config{BlockSize: tt.blockSize})
			assert.Equal(t, 1, a.NumBlocks())
			assert.Equal(t, tt.expected, a.Capacity())
			assert.Zero(t, a.InUse())
		})
	}
}

func TestAllocBytes(t *testing.T) {
	a := New(Config{BlockSize: 1024})

	b := a.AllocBytes(100)
	assert.Len(t, b, 100)
	assert.Equal(t, 100, a.InUse())

	assert.Nil(t, a.AllocBytes(0))
	assert.Nil(t, a.AllocBytes(-1))

	// Second allocation is aligned to 8 bytes.
	b2 := a.AllocBytes(1)
	assert.Equal(t, uintptr(0), uintptr(unsafe.Pointer(&b2[0]))%8)
	assert.Equal(t, 105, a.InUse())
}

func TestGeometricGrowth(t *testing.T) {
	a := New(Config{BlockSize: 1024})

	a.AllocBytes(1000)
	a.AllocBytes(100)
	require.Equal(t, 2, a.NumBlocks())
	assert.Equal(t, 1024+2048, a.Capacity())
	assert.Equal(t, 1024+100, a.InUse())

	a.AllocBytes(2000)
	require.Equal(t, 3, a.NumBlocks())
	assert.Equal(t, 1024+2048+4096, a.Capacity())
}

func TestOversizedRequest(t *testing.T) {
	a := New(Config{BlockSize: 1024})

	b := a.AllocBytes(5000)
	assert.Len(t, b, 5000)
	assert.Equal(t, 2, a.NumBlocks())
	assert.Equal(t, 1024+5000, a.Capacity())
}

func TestAllocationsNeverMove(t *testing.T) {
	a := New(Config{BlockSize: 256})

	first := AllocSlice[float64](a, 4)
	for i := range first {
		first[i] = float64(i) + 0.5
	}
	addr := &first[0]

	for i := 0; i < 100; i++ {
		s := AllocSlice[float64](a, 16)
		for j := range s {
			s[j] = -1
		}
	}

	assert.Greater(t, a.NumBlocks(), 1)
	assert.Same(t, addr, &first[0])
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, first)
}

func TestMarkResetTo(t *testing.T) {
	a := New(Config{BlockSize: 512})
	a.AllocBytes(64)

	m := a.Mark()
	before := a.InUse()

	b1 := a.AllocBytes(32)
	for i := 0; i < 20; i++ {
		a.AllocBytes(100)
	}
	blocks := a.NumBlocks()
	require.Greater(t, blocks, 1)

	a.ResetTo(m)
	assert.Equal(t, before, a.InUse())
	assert.Equal(t, blocks, a.NumBlocks(), "blocks are kept")

	// The cursor is back where it was, so memory is reused.
	b2 := a.AllocBytes(32)
	assert.Same(t, &b1[0], &b2[0])
}

func TestResetReusesLargerBlocks(t *testing.T) {
	a := New(Config{BlockSize: 1024})
	a.AllocBytes(1000)
	a.AllocBytes(1500) // second block of 2048
	require.Equal(t, 2, a.NumBlocks())

	a.Reset()
	assert.Zero(t, a.InUse())

	// Too big for block 0, fits block 1: no new block.
	a.AllocBytes(1500)
	assert.Equal(t, 2, a.NumBlocks())
	assert.Equal(t, 1024+1500, a.InUse())
}

func TestPeak(t *testing.T) {
	a := New(Config{BlockSize: 1024})
	a.AllocBytes(800)
	a.Reset()
	a.AllocBytes(100)
	assert.Equal(t, 800, a.Peak())
	assert.Equal(t, 100, a.InUse())
}

type releaser struct{ released *int }

func (r releaser) Release() { *r.released++ }

func TestOwn(t *testing.T) {
	a := New(DefaultConfig())
	var count int

	a.Own(releaser{&count})
	m := a.Mark()
	a.Own(releaser{&count})
	a.Own("not a releaser")
	a.Own(releaser{&count})
	assert.Equal(t, 4, a.Metrics().Owned)

	a.ResetTo(m)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, a.Metrics().Owned)

	a.Release()
	assert.Equal(t, 3, count)
}

func TestMaxBytesIsFatal(t *testing.T) {
	a := New(Config{BlockSize: 1024, MaxBytes: 2048})
	a.AllocBytes(1024)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		a.AllocBytes(8)
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "panic value should be an error")
	assert.True(t, errors.Is(err, ErrOutOfMemory))
}

func TestUseAfterRelease(t *testing.T) {
	a := New(DefaultConfig())
	a.AllocBytes(10)
	a.Release()

	assert.Zero(t, a.NumBlocks())
	assert.Zero(t, a.Capacity())
	assert.PanicsWithValue(t, "arena: use after Release()", func() { a.AllocBytes(1) })
	assert.Panics(t, func() { a.Reset() })
	assert.NotPanics(t, func() { a.Release() }, "second Release is a no-op")
}
