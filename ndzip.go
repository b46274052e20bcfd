// Package ndzip provides a high-throughput, lossless compression codec for
// dense, regularly sampled multidimensional arrays of IEEE-754 floating
// point values (float32 and float64, rank 1 through 3).
//
// ndzip targets the same data shape general-purpose byte compressors
// (deflate, LZ4, zstd) handle poorly: large arrays of nearby floating point
// samples, where a domain-aware bit transform concentrates most of the
// entropy into a handful of low bitplanes before the variable-length
// encoder ever runs. The result is a codec that runs near memcpy bandwidth
// on a single CPU thread and scales across cores or a simulated accelerator
// without changing the bytes it produces.
//
// # Core Algorithm
//
// The array is decomposed into fixed-size hypercube blocks (4096 elements
// each) plus a border remainder for extents not evenly divided
// by the hypercube side length. Each hypercube is transformed in place
// (bit rotation followed by hierarchical neighbor differencing,
// [transform.Forward32]/[transform.Forward64]) and the result is encoded as
// a sequence of bitplane chunks ([blockcodec.EncodeBlock32]): each
// chunk emits an occupancy mask naming which bitplanes are non-zero,
// followed by just those bitplanes, transposed. The [stream] package lays
// the encoded hypercubes out behind an offset-table hierarchy (file header
// → superblock headers → hypercube bodies → packed border) so any block can
// be located and decoded independently.
//
// # Basic Usage
//
// Compressing a float64 array:
//
//	import "github.com/arloliu/ndzip"
//
//	e, _ := ndzip.NewExtent(64, 64, 64)
//	data := make([]float64, e.LinearSize())
//	// ... fill data ...
//
//	bound, _ := ndzip.CompressedSizeBoundF64(e)
//	out := make([]byte, bound)
//	n, err := ndzip.CompressF64(e, data, out)
//	if err != nil {
//	    // handle err
//	}
//	compressed := out[:n]
//
// Decompressing it back:
//
//	dst := make([]float64, e.LinearSize())
//	_, err = ndzip.DecompressF64(e, compressed, dst)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around
// [codec.Sequential], ndzip's single-threaded driver. For multi-threaded
// compression use [codec.MultiThreaded] directly; for the simulated SIMT
// accelerator driver use the [accel] package. All three drivers produce
// byte-identical streams for the same input.
package ndzip

import (
	"github.com/arloliu/ndzip/codec"
	"github.com/arloliu/ndzip/extent"
)

// Extent re-exports extent.Extent, the D-dimensional shape of an array this
// package's functions operate on.
type Extent = extent.Extent

// NewExtent validates and builds an Extent from 1, 2, or 3 positive sizes,
// outermost dimension first.
func NewExtent(sizes ...int) (Extent, error) {
	return extent.New(sizes...)
}

var sequential = codec.NewSequential()

// CompressedSizeBoundF32 returns the worst-case compressed byte length for a
// float32 array shaped like e. Callers should size their output buffer with
// this before calling CompressF32.
func CompressedSizeBoundF32(e Extent) (int, error) {
	return codec.CompressedSizeBoundF32(e)
}

// CompressedSizeBoundF64 is the float64 analogue of CompressedSizeBoundF32.
func CompressedSizeBoundF64(e Extent) (int, error) {
	return codec.CompressedSizeBoundF64(e)
}

// CompressF32 compresses data (shaped like e, row-major) into out using the
// sequential driver, returning the number of bytes written.
func CompressF32(e Extent, data []float32, out []byte) (int, error) {
	return sequential.CompressF32(e, data, out)
}

// DecompressF32 decompresses data into dst (shaped like e, row-major),
// returning the number of input bytes consumed.
func DecompressF32(e Extent, data []byte, dst []float32) (int, error) {
	return sequential.DecompressF32(e, data, dst)
}

// CompressF64 is the float64 analogue of CompressF32.
func CompressF64(e Extent, data []float64, out []byte) (int, error) {
	return sequential.CompressF64(e, data, out)
}

// DecompressF64 is the float64 analogue of DecompressF32.
func DecompressF64(e Extent, data []byte, dst []float64) (int, error) {
	return sequential.DecompressF64(e, data, dst)
}
