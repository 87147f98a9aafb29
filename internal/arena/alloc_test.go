package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocSlice(t *testing.T) {
	a := New(DefaultConfig())

	assert.Nil(t, AllocSlice[int32](a, 0))

	s := AllocSlice[int32](a, 10)
	assert.Len(t, s, 10)
	assert.Equal(t, 40, a.InUse())

	f := AllocSlice[float64](a, 3)
	assert.Len(t, f, 3)
	assert.Equal(t, 40+24, a.InUse())
}

func TestAllocSliceZeroed(t *testing.T) {
	a := New(Config{BlockSize: 64})

	dirty := AllocSlice[uint64](a, 8)
	for i := range dirty {
		dirty[i] = ^uint64(0)
	}
	a.Reset()

	clean := AllocSliceZeroed[uint64](a, 8)
	for _, v := range clean {
		assert.Zero(t, v)
	}
}

func TestCopySlice(t *testing.T) {
	a := New(DefaultConfig())
	src := []float64{1, 2, 3}

	dst := CopySlice(a, src)
	src[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, dst)
	assert.Nil(t, CopySlice[float64](a, nil))
}

func TestMetrics(t *testing.T) {
	a := New(Config{BlockSize: 1000})
	a.AllocBytes(250)

	m := a.Metrics()
	assert.Equal(t, 250, m.InUse)
	assert.Equal(t, 1000, m.Capacity)
	assert.Equal(t, 1, m.NumBlocks)
	assert.Equal(t, 250, m.Peak)
	assert.InDelta(t, 0.25, m.Utilization, 1e-12)
}
