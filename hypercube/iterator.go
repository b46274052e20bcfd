// Package hypercube enumerates the hypercube decomposition of an extent: the
// origins of every S-aligned hypercube in canonical scan order, and the
// S^D element indices within a single hypercube in canonical nested
// row-major order (outermost dimension first).
//
// Both enumerations are exposed as restartable iter.Seq sequences (Go 1.23
// range-over-func), the same idiom idiomatic Go iterator code uses for
// lazy, allocation-free traversal.
package hypercube

import (
	"iter"

	"github.com/arloliu/ndzip/extent"
)

// Count returns the number of hypercubes of side length side that fit in e,
// the product over every dimension of ⌊e_d/side⌋.
func Count(e extent.Extent, side int) int {
	aligned := e.AlignedSize(side)
	count := 1
	for d := range e.Dimensions() {
		count *= aligned[d] / side
	}

	return count
}

// Offsets returns a restartable sequence of every hypercube origin in e, in
// row-major scan order: each origin is a D-tuple whose every component is a
// multiple of side and strictly less than ⌊e_d/side⌋·side.
//
// The yielded slice is reused across iterations; callers that need to retain
// an origin must copy it.
func Offsets(e extent.Extent, side int) iter.Seq[[]int] {
	dims := e.Dimensions()
	aligned := e.AlignedSize(side)

	return func(yield func([]int) bool) {
		origin := make([]int, dims)
		if !offsetsRec(origin, 0, dims, side, aligned, yield) {
			return
		}
	}
}

func offsetsRec(origin []int, d, dims, side int, aligned [extent.MaxDimensions]int, yield func([]int) bool) bool {
	if d == dims {
		return yield(origin)
	}

	for origin[d] = 0; origin[d] < aligned[d]; origin[d] += side {
		if !offsetsRec(origin, d+1, dims, side, aligned, yield) {
			return false
		}
	}

	return true
}

// Elements returns a restartable sequence of every element multi-index
// within the hypercube of side length side whose lowest corner is at origin,
// in canonical nested row-major order (outermost dimension varies slowest).
//
// The yielded slice is reused across iterations; callers that need to retain
// an index must copy it.
func Elements(origin []int, side int) iter.Seq[[]int] {
	dims := len(origin)

	return func(yield func([]int) bool) {
		index := make([]int, dims)
		copy(index, origin)
		if !elementsRec(index, origin, 0, dims, side, yield) {
			return
		}
	}
}

func elementsRec(index, origin []int, d, dims, side int, yield func([]int) bool) bool {
	if d == dims {
		return yield(index)
	}

	end := origin[d] + side
	for index[d] = origin[d]; index[d] < end; index[d]++ {
		if !elementsRec(index, origin, d+1, dims, side, yield) {
			return false
		}
	}

	return true
}
