package codec

import (
	"github.com/arloliu/ndzip/blockcodec"
	"github.com/arloliu/ndzip/extent"
	"github.com/arloliu/ndzip/hypercube"
	"github.com/arloliu/ndzip/profile"
	"github.com/arloliu/ndzip/transform"
)

// gatherF32 copies one hypercube's elements out of data (shaped like e) into
// scratch, in the row-major order hypercube.Elements enumerates them, total-order
// mapping each float32 to its bits-type word via profile.LoadF32.
func gatherF32(data []float32, e extent.Extent, origin []int, side int, scratch []uint32) {
	dims := e.Dimensions()
	abs := make([]int, dims)
	i := 0
	for local := range hypercube.Elements(origin, side) {
		for d := 0; d < dims; d++ {
			abs[d] = origin[d] + local[d]
		}
		scratch[i] = profile.LoadF32(data[e.LinearOffset(abs)])
		i++
	}
}

// scatterF32 is the inverse of gatherF32: it writes scratch's bits-type words
// back into dst at their hypercube coordinates, converting each back to
// float32 via profile.StoreF32.
func scatterF32(dst []float32, e extent.Extent, origin []int, side int, scratch []uint32) {
	dims := e.Dimensions()
	abs := make([]int, dims)
	i := 0
	for local := range hypercube.Elements(origin, side) {
		for d := 0; d < dims; d++ {
			abs[d] = origin[d] + local[d]
		}
		dst[e.LinearOffset(abs)] = profile.StoreF32(scratch[i])
		i++
	}
}

// encodeHypercubeF32 gathers, transforms, and block-encodes one hypercube,
// writing its compressed bytes to out. It returns the number of bytes
// written.
func encodeHypercubeF32(data []float32, e extent.Extent, origin []int, side int, scratch []uint32, out []byte) (int, error) {
	gatherF32(data, e, origin, side, scratch)
	transform.Forward32(scratch, e.Dimensions(), side)

	return blockcodec.EncodeBlock32(scratch, out)
}

// decodeHypercubeF32 block-decodes, inverse-transforms, and scatters one
// hypercube's bytes from data into dst. It returns the number of bytes
// consumed from data.
func decodeHypercubeF32(data []byte, dst []float32, e extent.Extent, origin []int, side int, scratch []uint32) (int, error) {
	n, err := blockcodec.DecodeBlock32(data, scratch)
	if err != nil {
		return 0, err
	}

	transform.Inverse32(scratch, e.Dimensions(), side)
	scatterF32(dst, e, origin, side, scratch)

	return n, nil
}

// gatherF64 is the float64 analogue of gatherF32.
func gatherF64(data []float64, e extent.Extent, origin []int, side int, scratch []uint64) {
	dims := e.Dimensions()
	abs := make([]int, dims)
	i := 0
	for local := range hypercube.Elements(origin, side) {
		for d := 0; d < dims; d++ {
			abs[d] = origin[d] + local[d]
		}
		scratch[i] = profile.LoadF64(data[e.LinearOffset(abs)])
		i++
	}
}

// scatterF64 is the float64 analogue of scatterF32.
func scatterF64(dst []float64, e extent.Extent, origin []int, side int, scratch []uint64) {
	dims := e.Dimensions()
	abs := make([]int, dims)
	i := 0
	for local := range hypercube.Elements(origin, side) {
		for d := 0; d < dims; d++ {
			abs[d] = origin[d] + local[d]
		}
		dst[e.LinearOffset(abs)] = profile.StoreF64(scratch[i])
		i++
	}
}

// encodeHypercubeF64 is the float64 analogue of encodeHypercubeF32.
func encodeHypercubeF64(data []float64, e extent.Extent, origin []int, side int, scratch []uint64, out []byte) (int, error) {
	gatherF64(data, e, origin, side, scratch)
	transform.Forward64(scratch, e.Dimensions(), side)

	return blockcodec.EncodeBlock64(scratch, out)
}

// decodeHypercubeF64 is the float64 analogue of decodeHypercubeF32.
func decodeHypercubeF64(data []byte, dst []float64, e extent.Extent, origin []int, side int, scratch []uint64) (int, error) {
	n, err := blockcodec.DecodeBlock64(data, scratch)
	if err != nil {
		return 0, err
	}

	transform.Inverse64(scratch, e.Dimensions(), side)
	scatterF64(dst, e, origin, side, scratch)

	return n, nil
}

// collectOrigins materializes hypercube.Offsets into an owned slice of
// origins, since the iterator reuses its yielded slice across iterations.
func collectOrigins(e extent.Extent, side int) [][]int {
	total := hypercube.Count(e, side)
	origins := make([][]int, 0, total)
	for o := range hypercube.Offsets(e, side) {
		origins = append(origins, append([]int(nil), o...))
	}

	return origins
}

// partitionOrigins splits origins into consecutive groups whose sizes are
// given by counts (a stream.Plan's HypercubesPerSuperblock).
func partitionOrigins(origins [][]int, counts []int) [][][]int {
	groups := make([][][]int, len(counts))
	idx := 0
	for i, c := range counts {
		groups[i] = origins[idx : idx+c]
		idx += c
	}

	return groups
}
