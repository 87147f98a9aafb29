// Package arena implements the block allocator that backs an AD tape.
//
// Memory is carved sequentially out of a list of blocks whose sizes grow
// geometrically. Nothing is freed individually: a generation of allocations
// is discarded by moving the cursor back to a Mark, and the blocks stay
// around for reuse. Returned memory never moves, so slices handed out by the
// arena stay valid (and at a fixed address) until the cursor is reset past
// them.
//
// An Arena is not safe for concurrent use. Each goroutine that records a
// tape owns its own arena.
package arena

import (
	"errors"
	"fmt"
	"unsafe"
)

const (
	// DefaultBlockSize is the size of the first block (64 KiB).
	DefaultBlockSize = 1 << 16

	// align is the alignment of every allocation (8 bytes covers float64,
	// int64 and every smaller scalar).
	align = unsafe.Sizeof(uint64(0))
)

// ErrOutOfMemory is the panic value (wrapped) raised when an allocation
// would exceed Config.MaxBytes. It is fatal: there is no safe way to
// continue building a partially allocated node.
var ErrOutOfMemory = errors.New("arena: out of memory")

// Config controls block sizing.
type Config struct {
	BlockSize int // Size of the first block. Later blocks double.
	MaxBytes  int // Upper bound on reserved bytes; 0 means unlimited.
}

// DefaultConfig returns the default arena configuration.
func DefaultConfig() Config {
	return Config{BlockSize: DefaultBlockSize}
}

// Releaser is implemented by owned objects that hold resources which must be
// dropped when their arena generation is discarded.
type Releaser interface {
	Release()
}

// Mark is a saved allocation cursor.
type Mark struct {
	block int     // index of the current block
	off   uintptr // offset within that block
	owned int     // length of the owned-object list
}

// Arena is a growable block allocator.
type Arena struct {
	blocks   [][]byte
	cur      int     // index of the block being carved
	off      uintptr // offset within blocks[cur]
	base     int     // total size of blocks[:cur]
	owned    []any   // heap objects tied to the current generation
	reserved int     // total bytes across blocks
	peak     int     // high-water mark of InUse
	maxBytes int
	released bool
}

// New creates an arena. The first block is allocated eagerly.
func New(cfg Config) *Arena {
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	a := &Arena{maxBytes: cfg.MaxBytes}
	a.grow(cfg.BlockSize)
	return a
}

// AllocBytes returns n bytes of arena memory. The memory is not zeroed.
// Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	if a.released {
		panic("arena: use after Release()")
	}

	// Fast path: fits in the current block.
	buf := a.blocks[a.cur]
	off := alignUp(a.off)
	if off+uintptr(n) <= uintptr(len(buf)) {
		a.off = off + uintptr(n)
		a.notePeak()
		return unsafe.Slice((*byte)(unsafe.Pointer(&buf[off])), n)
	}

	return a.allocSlow(n)
}

// allocSlow moves to the next block large enough for n bytes, allocating one
// if none of the existing blocks fits.
func (a *Arena) allocSlow(n int) []byte {
	next, base := a.cur+1, a.base+len(a.blocks[a.cur])
	for next < len(a.blocks) && len(a.blocks[next]) < n {
		base += len(a.blocks[next])
		next++
	}
	if next == len(a.blocks) {
		size := max(2*len(a.blocks[len(a.blocks)-1]), n)
		a.grow(size)
	}

	a.cur, a.base = next, base
	a.off = uintptr(n)
	a.notePeak()
	buf := a.blocks[a.cur]
	return unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), n)
}

// Own ties obj to the current generation. When the cursor is reset to a mark
// taken before the call, obj is dropped and, if it implements Releaser,
// released.
func (a *Arena) Own(obj any) {
	a.panicIfReleased()
	a.owned = append(a.owned, obj)
}

// Mark records the current cursor.
func (a *Arena) Mark() Mark {
	return Mark{block: a.cur, off: a.off, owned: len(a.owned)}
}

// ResetTo moves the cursor back to m. Blocks are kept; memory handed out
// after m becomes invalid by convention and is reused by later allocations.
// Marks must be restored in LIFO order.
func (a *Arena) ResetTo(m Mark) {
	a.panicIfReleased()
	a.cur = m.block
	a.off = m.off
	a.base = 0
	for _, b := range a.blocks[:m.block] {
		a.base += len(b)
	}
	for i := len(a.owned) - 1; i >= m.owned; i-- {
		if r, ok := a.owned[i].(Releaser); ok {
			r.Release()
		}
		a.owned[i] = nil
	}
	a.owned = a.owned[:m.owned]
}

// Reset discards every allocation but keeps the blocks.
func (a *Arena) Reset() {
	a.ResetTo(Mark{})
}

// Release drops all blocks and owned objects. The arena is unusable after
// Release; any further allocation panics.
func (a *Arena) Release() {
	if a.released {
		return
	}
	a.Reset()
	a.blocks = nil
	a.owned = nil
	a.cur = 0
	a.off = 0
	a.base = 0
	a.reserved = 0
	a.released = true
}

// grow appends a block of exactly size bytes.
func (a *Arena) grow(size int) {
	if a.maxBytes > 0 && a.reserved+size > a.maxBytes {
		panic(fmt.Errorf("%w: reserving %d bytes would exceed limit of %d (reserved %d)",
			ErrOutOfMemory, size, a.maxBytes, a.reserved))
	}
	a.blocks = append(a.blocks, make([]byte, size))
	a.reserved += size
}

func (a *Arena) notePeak() {
	if used := a.base + int(a.off); used > a.peak {
		a.peak = used
	}
}

func (a *Arena) panicIfReleased() {
	if a.released {
		panic("arena: use after Release()")
	}
}

// alignUp rounds off up to the allocation alignment.
func alignUp(off uintptr) uintptr {
	const mask = align - 1
	return (off + mask) &^ mask
}
