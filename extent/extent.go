// Package extent models the D-dimensional shape of an ndzip input array:
// row-major linear offsets, hypercube-aligned sizes, and the border element
// count left over once hypercubes are carved out of an extent whose
// components are not multiples of the hypercube side length.
package extent

import (
	"fmt"
	"math"

	"github.com/arloliu/ndzip/errs"
)

// MaxDimensions is the largest rank ndzip supports (D ∈ {1, 2, 3}).
const MaxDimensions = 3

// Extent is an immutable D-tuple of positive sizes, 1 ≤ D ≤ MaxDimensions.
type Extent struct {
	sizes [MaxDimensions]int
	dims  int
}

// New validates and builds an Extent from 1, 2, or 3 positive sizes.
//
// Returns errs.ErrInvalidExtent if dims is out of [1, MaxDimensions], any
// size is non-positive, or the total element count would overflow an int.
func New(sizes ...int) (Extent, error) {
	dims := len(sizes)
	if dims < 1 || dims > MaxDimensions {
		return Extent{}, fmt.Errorf("%w: rank %d not in [1,%d]", errs.ErrInvalidExtent, dims, MaxDimensions)
	}

	total := 1
	for _, s := range sizes {
		if s <= 0 {
			return Extent{}, fmt.Errorf("%w: non-positive size %d", errs.ErrInvalidExtent, s)
		}

		if s > 0 && total > math.MaxInt/s {
			return Extent{}, fmt.Errorf("%w: element count overflows", errs.ErrInvalidExtent)
		}

		total *= s
	}

	var e Extent
	e.dims = dims
	copy(e.sizes[:], sizes)

	return e, nil
}

// Dimensions returns D, the rank of the extent.
func (e Extent) Dimensions() int { return e.dims }

// Size returns the size of dimension d (0-indexed, outermost first).
func (e Extent) Size(d int) int { return e.sizes[d] }

// Sizes returns the extent's sizes as a freshly allocated slice of length
// Dimensions().
func (e Extent) Sizes() []int {
	out := make([]int, e.dims)
	copy(out, e.sizes[:e.dims])

	return out
}

// LinearSize returns the total number of elements, the product of all
// dimension sizes.
func (e Extent) LinearSize() int {
	total := 1
	for i := range e.dims {
		total *= e.sizes[i]
	}

	return total
}

// LinearOffset returns the row-major linear offset of a multi-index: for a
// rank-D extent, index[0]*e[1]*...*e[D-1] + ... + index[D-1].
func (e Extent) LinearOffset(index []int) int {
	offset := 0
	for d := range e.dims {
		offset = offset*e.sizes[d] + index[d]
	}

	return offset
}

// AlignedSize returns, for each dimension, the largest multiple of side not
// exceeding that dimension's size: ⌊e_d/side⌋·side.
func (e Extent) AlignedSize(side int) [MaxDimensions]int {
	var aligned [MaxDimensions]int
	for d := range e.dims {
		aligned[d] = (e.sizes[d] / side) * side
	}

	return aligned
}

// BorderElementCount returns the number of elements not covered by any
// hypercube of side length side: ∏e_d − ∏⌊e_d/side⌋·side.
func (e Extent) BorderElementCount(side int) int {
	aligned := e.AlignedSize(side)

	alignedTotal := 1
	for d := range e.dims {
		alignedTotal *= aligned[d]
	}

	return e.LinearSize() - alignedTotal
}
