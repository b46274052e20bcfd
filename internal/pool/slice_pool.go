package pool

import "sync"

// Slice pools for efficient reuse of the bits-type scratch buffers the
// codec drivers transform hypercubes through. Reusing these avoids an
// allocation per hypercube on the hot compress/decompress path.
var (
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
	uint64SlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
)

// GetUint32Slice retrieves and resizes a uint32 scratch slice from the pool.
//
// The returned slice will have the exact length specified by size. If the
// pooled slice has insufficient capacity, a new slice is allocated. The
// caller must call the returned cleanup function (typically via defer) to
// return the slice to the pool.
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint32SlicePool.Put(ptr) }
}

// GetUint64Slice is the uint64 analogue of GetUint32Slice.
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint64SlicePool.Put(ptr) }
}
