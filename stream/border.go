package stream

import (
	"math"

	"github.com/arloliu/ndzip/bits"
	"github.com/arloliu/ndzip/extent"
)

// borderWalk enumerates, in canonical scan order (outermost dimension
// slowest), every coordinate of e that lies outside the hypercube-aligned
// region for the given side length — the elements left over once the
// extent is tiled by S-sided hypercubes. visit is called with the
// coordinate's linear offset into a row-major buffer shaped like e.
func borderWalk(e extent.Extent, side int, visit func(linearOffset int)) {
	aligned := e.AlignedSize(side)
	dims := e.Dimensions()
	index := make([]int, dims)

	var rec func(d int)
	rec = func(d int) {
		if d == dims {
			isBorder := false
			for i := 0; i < dims; i++ {
				if index[i] >= aligned[i] {
					isBorder = true
					break
				}
			}

			if isBorder {
				visit(e.LinearOffset(index))
			}

			return
		}

		for index[d] = 0; index[d] < e.Size(d); index[d]++ {
			rec(d + 1)
		}
	}

	rec(0)
}

// PackBorderF32 writes the border elements of data (shaped like e) into out
// as verbatim little-endian float32 values, in canonical scan order. data
// must be a row-major buffer of e.LinearSize() elements. It returns the
// number of bytes written, which equals e.BorderElementCount(side)*4.
func PackBorderF32(data []float32, e extent.Extent, side int, out []byte) int {
	pos := 0
	borderWalk(e, side, func(linearOffset int) {
		bits.StoreUnaligned32(out[pos:], math.Float32bits(data[linearOffset]))
		pos += 4
	})

	return pos
}

// UnpackBorderF32 reads border values out of data (packed as PackBorderF32
// produced) and scatters them back into their coordinates in dst, which must
// already hold the hypercube-decoded interior values. It returns the number
// of bytes consumed from data.
func UnpackBorderF32(data []byte, dst []float32, e extent.Extent, side int) int {
	pos := 0
	borderWalk(e, side, func(linearOffset int) {
		dst[linearOffset] = math.Float32frombits(bits.LoadUnaligned32(data[pos:]))
		pos += 4
	})

	return pos
}

// PackBorderF64 is the float64 analogue of PackBorderF32.
func PackBorderF64(data []float64, e extent.Extent, side int, out []byte) int {
	pos := 0
	borderWalk(e, side, func(linearOffset int) {
		bits.StoreUnaligned64(out[pos:], math.Float64bits(data[linearOffset]))
		pos += 8
	})

	return pos
}

// UnpackBorderF64 is the float64 analogue of UnpackBorderF32.
func UnpackBorderF64(data []byte, dst []float64, e extent.Extent, side int) int {
	pos := 0
	borderWalk(e, side, func(linearOffset int) {
		dst[linearOffset] = math.Float64frombits(bits.LoadUnaligned64(data[pos:]))
		pos += 8
	})

	return pos
}
