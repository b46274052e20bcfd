// Package transform implements the in-place forward and inverse block
// transform: a rotate-left-by-one of every element, followed by a
// hierarchical neighbor difference along each dimension, in a fixed axis
// order (last dimension first). The inverse undoes both stages in reverse.
//
// The transform is generic over the bits-type width via the difference/scan
// stage (which only ever XORs, so it is width-agnostic), but the rotate
// stage is width-specific — Forward32/Inverse32 and Forward64/Inverse64 are
// the two monomorphic entry points callers use, selected once by the
// caller's Profile, so the hot path never pays for width dispatch.
package transform

import "github.com/arloliu/ndzip/bits"

// Forward32 applies the forward transform in place to a hypercube buffer of
// float32 bits-type values. len(buf) must equal side^dims.
func Forward32(buf []uint32, dims, side int) {
	for i, v := range buf {
		buf[i] = bits.RotateLeft1_32(v)
	}
	axisDifference(buf, dims, side)
}

// Inverse32 undoes Forward32 in place.
func Inverse32(buf []uint32, dims, side int) {
	axisRestore(buf, dims, side)
	for i, v := range buf {
		buf[i] = bits.RotateRight1_32(v)
	}
}

// Forward64 applies the forward transform in place to a hypercube buffer of
// float64 bits-type values. len(buf) must equal side^dims.
func Forward64(buf []uint64, dims, side int) {
	for i, v := range buf {
		buf[i] = bits.RotateLeft1_64(v)
	}
	axisDifference(buf, dims, side)
}

// Inverse64 undoes Forward64 in place.
func Inverse64(buf []uint64, dims, side int) {
	axisRestore(buf, dims, side)
	for i, v := range buf {
		buf[i] = bits.RotateRight1_64(v)
	}
}

// axisDifference replaces every element (except the first) of every line
// along every axis with itself XOR its immediate predecessor along that
// axis, processing axes last-dimension-first. Each line is walked from its
// last element down to its second, so the predecessor read on each step is
// always still the pre-difference value.
func axisDifference[B bits.Unsigned](buf []B, dims, side int) {
	for axis := dims - 1; axis >= 0; axis-- {
		forEachLine(dims, side, axis, func(base, stride int) {
			for k := side - 1; k >= 1; k-- {
				buf[base+k*stride] ^= buf[base+(k-1)*stride]
			}
		})
	}
}

// axisRestore is the inverse of axisDifference: a prefix-XOR scan along each
// line, processing axes in the reverse of axisDifference's order (dimension
// 0 first). Each line is walked from its second element up to its last, so
// the predecessor read on each step has already been restored to its
// original value.
func axisRestore[B bits.Unsigned](buf []B, dims, side int) {
	for axis := range dims {
		forEachLine(dims, side, axis, func(base, stride int) {
			for k := 1; k < side; k++ {
				buf[base+k*stride] ^= buf[base+(k-1)*stride]
			}
		})
	}
}

// forEachLine calls body(base, stride) once for every line of side elements
// running along axis within a dims-dimensional side^dims hypercube buffer,
// where stride is the flat-array step between consecutive elements of the
// line and base is the flat offset of the line's first element. body must
// walk base, base+stride, ..., base+(side-1)*stride itself; forEachLine only
// enumerates the lines, not their elements, since forward and inverse walk
// them in opposite directions.
func forEachLine(dims, side, axis int, body func(base, stride int)) {
	strides := make([]int, dims)
	strides[dims-1] = 1
	for d := dims - 2; d >= 0; d-- {
		strides[d] = strides[d+1] * side
	}

	idx := make([]int, dims)

	var rec func(d int)
	rec = func(d int) {
		if d == dims {
			base := 0
			for dd := range dims {
				if dd != axis {
					base += idx[dd] * strides[dd]
				}
			}
			body(base, strides[axis])

			return
		}

		if d == axis {
			idx[d] = 0
			rec(d + 1)

			return
		}

		for idx[d] = 0; idx[d] < side; idx[d]++ {
			rec(d + 1)
		}
	}
	rec(0)
}
