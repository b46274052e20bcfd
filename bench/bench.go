// Package bench runs ndzip and a set of general-purpose byte compressors
// over the same input array and reports comparable ratio/throughput
// figures, driven by a minimum-reps/minimum-duration stopping rule.
//
// Unlike mebo's regression package, which fits a statistical model to
// observed blob sizes across many inputs, this package needs no model: a
// single run already knows its exact input and output sizes, so a
// CompressionStats value is plain arithmetic over already-known lengths.
package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/ndzip/codec"
	"github.com/arloliu/ndzip/extent"
	"github.com/arloliu/ndzip/internal/hash"
	"github.com/arloliu/ndzip/reference"
)

// CompressionStats reports the outcome of running one codec over one
// dataset for at least MinReps repetitions or MinDuration, whichever is
// reached last.
type CompressionStats struct {
	// Name identifies the codec that produced this result, e.g. "ndzip",
	// "zstd", "s2", "lz4", "none".
	Name string

	// InputBytes is the uncompressed size in bytes.
	InputBytes int

	// OutputBytes is the compressed size in bytes.
	OutputBytes int

	// Reps is the number of compress+decompress iterations actually run.
	Reps int

	// CompressElapsed is the total wall-clock time spent in Compress calls
	// across all reps.
	CompressElapsed time.Duration

	// DecompressElapsed is the total wall-clock time spent in Decompress
	// calls across all reps.
	DecompressElapsed time.Duration

	// Verified is true if every rep's round trip matched the source
	// fingerprint (see internal/hash).
	Verified bool
}

// Ratio returns InputBytes/OutputBytes, the compression ratio (values
// above 1.0 indicate the output is smaller than the input).
func (s CompressionStats) Ratio() float64 {
	if s.OutputBytes == 0 {
		return 0
	}

	return float64(s.InputBytes) / float64(s.OutputBytes)
}

// CompressBytesPerSec returns the average compression throughput across
// all reps.
func (s CompressionStats) CompressBytesPerSec() float64 {
	return bytesPerSec(s.InputBytes, s.Reps, s.CompressElapsed)
}

// DecompressBytesPerSec returns the average decompression throughput
// across all reps.
func (s CompressionStats) DecompressBytesPerSec() float64 {
	return bytesPerSec(s.InputBytes, s.Reps, s.DecompressElapsed)
}

func bytesPerSec(inputBytes, reps int, elapsed time.Duration) float64 {
	if elapsed <= 0 || reps == 0 {
		return 0
	}

	totalBytes := float64(inputBytes) * float64(reps)

	return totalBytes / elapsed.Seconds()
}

func (s CompressionStats) String() string {
	return fmt.Sprintf(
		"%-6s ratio=%.3f compress=%.1f MiB/s decompress=%.1f MiB/s verified=%v",
		s.Name, s.Ratio(),
		s.CompressBytesPerSec()/(1<<20), s.DecompressBytesPerSec()/(1<<20),
		s.Verified,
	)
}

// Params bounds how long RunReference/RunNdzipF32/RunNdzipF64 keep
// repeating: they stop once both MinReps repetitions and MinDuration of
// wall-clock time have elapsed.
type Params struct {
	MinReps     int
	MinDuration time.Duration

	// Workers selects the driver RunNdzipF32/RunNdzipF64 benchmark: 0 or 1
	// runs codec.Sequential, anything higher runs codec.MultiThreaded with
	// that many worker goroutines.
	Workers int
}

func (p Params) normalized() Params {
	if p.MinReps <= 0 {
		p.MinReps = 1
	}

	return p
}

func (p Params) done(reps int, elapsed time.Duration) bool {
	return reps >= p.MinReps && elapsed >= p.MinDuration
}

// RunReference benchmarks one reference.Codec (a general-purpose byte
// compressor) over raw, fingerprinting the decompressed output against raw
// on every rep rather than comparing full buffers.
func RunReference(c reference.Codec, raw []byte, params Params) (CompressionStats, error) {
	params = params.normalized()
	want := hash.Bytes(raw)

	stats := CompressionStats{Name: c.Name(), InputBytes: len(raw), Verified: true}

	var compressed []byte
	for !params.done(stats.Reps, stats.CompressElapsed+stats.DecompressElapsed) {
		start := time.Now()

		out, err := c.Compress(raw)
		if err != nil {
			return CompressionStats{}, fmt.Errorf("bench: %s compress: %w", c.Name(), err)
		}
		stats.CompressElapsed += time.Since(start)
		compressed = out

		start = time.Now()
		decoded, err := c.Decompress(compressed)
		if err != nil {
			return CompressionStats{}, fmt.Errorf("bench: %s decompress: %w", c.Name(), err)
		}
		stats.DecompressElapsed += time.Since(start)

		if hash.Bytes(decoded) != want {
			stats.Verified = false
		}

		stats.Reps++
	}

	stats.OutputBytes = len(compressed)

	return stats, nil
}

// driver32 is the subset of codec.Sequential's and codec.MultiThreaded's
// float32 methods RunNdzipF32 needs, so a single call site can benchmark
// either driver selected by Params.Workers.
type driver32 interface {
	CompressF32(e extent.Extent, data []float32, out []byte) (int, error)
	DecompressF32(e extent.Extent, data []byte, dst []float32) (int, error)
}

// driver64 is the driver32 analogue for float64.
type driver64 interface {
	CompressF64(e extent.Extent, data []float64, out []byte) (int, error)
	DecompressF64(e extent.Extent, data []byte, dst []float64) (int, error)
}

func resolveDriver32(workers int) driver32 {
	if workers <= 1 {
		return codec.NewSequential()
	}

	return codec.NewMultiThreaded(codec.WithWorkers(workers))
}

func resolveDriver64(workers int) driver64 {
	if workers <= 1 {
		return codec.NewSequential()
	}

	return codec.NewMultiThreaded(codec.WithWorkers(workers))
}

// RunNdzipF32 benchmarks ndzip over a float32 array, using the sequential
// driver (Params.Workers <= 1) or the multi-threaded driver.
func RunNdzipF32(e extent.Extent, data []float32, params Params) (CompressionStats, error) {
	params = params.normalized()

	bound, err := codec.CompressedSizeBoundF32(e)
	if err != nil {
		return CompressionStats{}, err
	}

	want := hash.Float32Slice(data)
	drv := resolveDriver32(params.Workers)
	out := make([]byte, bound)
	dst := make([]float32, e.LinearSize())

	stats := CompressionStats{Name: "ndzip", InputBytes: e.LinearSize() * 4, Verified: true}

	var n int
	for !params.done(stats.Reps, stats.CompressElapsed+stats.DecompressElapsed) {
		start := time.Now()
		n, err = drv.CompressF32(e, data, out)
		if err != nil {
			return CompressionStats{}, fmt.Errorf("bench: ndzip compress: %w", err)
		}
		stats.CompressElapsed += time.Since(start)

		start = time.Now()
		if _, err = drv.DecompressF32(e, out[:n], dst); err != nil {
			return CompressionStats{}, fmt.Errorf("bench: ndzip decompress: %w", err)
		}
		stats.DecompressElapsed += time.Since(start)

		if hash.Float32Slice(dst) != want {
			stats.Verified = false
		}

		stats.Reps++
	}

	stats.OutputBytes = n

	return stats, nil
}

// RunNdzipF64 is the float64 analogue of RunNdzipF32.
func RunNdzipF64(e extent.Extent, data []float64, params Params) (CompressionStats, error) {
	params = params.normalized()

	bound, err := codec.CompressedSizeBoundF64(e)
	if err != nil {
		return CompressionStats{}, err
	}

	want := hash.Float64Slice(data)
	drv := resolveDriver64(params.Workers)
	out := make([]byte, bound)
	dst := make([]float64, e.LinearSize())

	stats := CompressionStats{Name: "ndzip", InputBytes: e.LinearSize() * 8, Verified: true}

	var n int
	for !params.done(stats.Reps, stats.CompressElapsed+stats.DecompressElapsed) {
		start := time.Now()
		n, err = drv.CompressF64(e, data, out)
		if err != nil {
			return CompressionStats{}, fmt.Errorf("bench: ndzip compress: %w", err)
		}
		stats.CompressElapsed += time.Since(start)

		start = time.Now()
		if _, err = drv.DecompressF64(e, out[:n], dst); err != nil {
			return CompressionStats{}, fmt.Errorf("bench: ndzip decompress: %w", err)
		}
		stats.DecompressElapsed += time.Since(start)

		if hash.Float64Slice(dst) != want {
			stats.Verified = false
		}

		stats.Reps++
	}

	stats.OutputBytes = n

	return stats, nil
}

// Float32ToBytes packs a float32 array into raw little-endian bytes, the
// shape RunReference's reference.Codec implementations consume (they
// operate on opaque byte streams, not typed arrays).
func Float32ToBytes(data []float32) []byte {
	out := make([]byte, len(data)*4)
	for i, v := range data {
		bits := math.Float32bits(v)
		out[i*4] = byte(bits)
		out[i*4+1] = byte(bits >> 8)
		out[i*4+2] = byte(bits >> 16)
		out[i*4+3] = byte(bits >> 24)
	}

	return out
}

// Float64ToBytes is the float64 analogue of Float32ToBytes.
func Float64ToBytes(data []float64) []byte {
	out := make([]byte, len(data)*8)
	for i, v := range data {
		bits := math.Float64bits(v)
		for b := 0; b < 8; b++ {
			out[i*8+b] = byte(bits >> (8 * b))
		}
	}

	return out
}
