package arena

import "unsafe"

// Plain lists the element types that may live in arena memory. They hold no
// Go pointers, so the garbage collector never needs to scan the blocks.
type Plain interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// AllocSlice allocates room for n values of type T without initialising
// them. Returns nil if n <= 0.
func AllocSlice[T Plain](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.AllocBytes(int(unsafe.Sizeof(zero)) * n)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AllocSliceZeroed is AllocSlice with the elements set to the zero value.
func AllocSliceZeroed[T Plain](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	clear(s)
	return s
}

// CopySlice allocates a slice in the arena holding a copy of src.
func CopySlice[T Plain](a *Arena, src []T) []T {
	dst := AllocSlice[T](a, len(src))
	copy(dst, src)
	return dst
}
