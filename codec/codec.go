package codec

import (
	"github.com/arloliu/ndzip/errs"
	"github.com/arloliu/ndzip/extent"
	"github.com/arloliu/ndzip/profile"
)

// Sequential walks every hypercube on the calling goroutine. It allocates
// no goroutines and is the baseline driver every other driver's output must
// match byte-for-byte.
type Sequential struct{}

// NewSequential returns a Sequential driver.
func NewSequential() *Sequential { return &Sequential{} }

// MultiThreaded fans superblock compression and decompression out across a
// bounded worker pool: each superblock is an independent unit of work, so
// parallelism is applied at superblock granularity rather than per
// hypercube, keeping scheduling overhead proportional to superblock count
// rather than element count.
type MultiThreaded struct {
	workers int
}

// NewMultiThreaded returns a MultiThreaded driver configured by opts.
func NewMultiThreaded(opts ...Option) *MultiThreaded {
	c := newConfig(opts...)

	return &MultiThreaded{workers: c.workers}
}

// resolve validates e's rank against isF64 and returns the matching Profile.
func resolve(isF64 bool, e extent.Extent) (profile.Profile, error) {
	kind, ok := profile.KindFor(isF64, e.Dimensions())
	if !ok {
		return profile.Profile{}, errs.ErrInvalidExtent
	}

	return profile.For(kind), nil
}

// CompressedSizeBoundF32 returns the worst-case compressed byte length for a
// float32 array shaped like e.
func CompressedSizeBoundF32(e extent.Extent) (int, error) {
	p, err := resolve(false, e)
	if err != nil {
		return 0, err
	}

	return compressedSizeBound(p, e), nil
}

// CompressedSizeBoundF64 is the float64 analogue of CompressedSizeBoundF32.
func CompressedSizeBoundF64(e extent.Extent) (int, error) {
	p, err := resolve(true, e)
	if err != nil {
		return 0, err
	}

	return compressedSizeBound(p, e), nil
}

// CompressF32 compresses data (shaped like e, row-major) into out, returning
// the number of bytes written.
func (s *Sequential) CompressF32(e extent.Extent, data []float32, out []byte) (int, error) {
	p, err := resolve(false, e)
	if err != nil {
		return 0, err
	}

	return compressF32(p, e, data, out, 1)
}

// DecompressF32 decompresses data into dst (shaped like e, row-major),
// returning the number of bytes consumed from data.
func (s *Sequential) DecompressF32(e extent.Extent, data []byte, dst []float32) (int, error) {
	p, err := resolve(false, e)
	if err != nil {
		return 0, err
	}

	return decompressF32(p, e, data, dst, 1)
}

// CompressF64 is the float64 analogue of CompressF32.
func (s *Sequential) CompressF64(e extent.Extent, data []float64, out []byte) (int, error) {
	p, err := resolve(true, e)
	if err != nil {
		return 0, err
	}

	return compressF64(p, e, data, out, 1)
}

// DecompressF64 is the float64 analogue of DecompressF32.
func (s *Sequential) DecompressF64(e extent.Extent, data []byte, dst []float64) (int, error) {
	p, err := resolve(true, e)
	if err != nil {
		return 0, err
	}

	return decompressF64(p, e, data, dst, 1)
}

// CompressF32 is the MultiThreaded analogue of Sequential.CompressF32: it
// produces byte-identical output, only the scheduling of per-superblock
// work differs.
func (m *MultiThreaded) CompressF32(e extent.Extent, data []float32, out []byte) (int, error) {
	p, err := resolve(false, e)
	if err != nil {
		return 0, err
	}

	return compressF32(p, e, data, out, m.workers)
}

// DecompressF32 is the MultiThreaded analogue of Sequential.DecompressF32.
func (m *MultiThreaded) DecompressF32(e extent.Extent, data []byte, dst []float32) (int, error) {
	p, err := resolve(false, e)
	if err != nil {
		return 0, err
	}

	return decompressF32(p, e, data, dst, m.workers)
}

// CompressF64 is the MultiThreaded analogue of Sequential.CompressF64.
func (m *MultiThreaded) CompressF64(e extent.Extent, data []float64, out []byte) (int, error) {
	p, err := resolve(true, e)
	if err != nil {
		return 0, err
	}

	return compressF64(p, e, data, out, m.workers)
}

// DecompressF64 is the MultiThreaded analogue of Sequential.DecompressF64.
func (m *MultiThreaded) DecompressF64(e extent.Extent, data []byte, dst []float64) (int, error) {
	p, err := resolve(true, e)
	if err != nil {
		return 0, err
	}

	return decompressF64(p, e, data, dst, m.workers)
}
