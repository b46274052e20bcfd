package codec

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/ndzip/errs"
	"github.com/arloliu/ndzip/extent"
	"github.com/stretchr/testify/require"
)

func randomF32(n int, seed1, seed2 uint64) []float32 {
	rng := rand.New(rand.NewPCG(seed1, seed2))
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(rng.NormFloat64() * 1000)
	}

	return out
}

func randomF64(n int, seed1, seed2 uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed1, seed2))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64() * 1000
	}

	return out
}

func TestSequentialRoundTripF32AllRanks(t *testing.T) {
	cases := []struct {
		name   string
		sizes  []int
	}{
		{"1D exact multiple", []int{8192}},
		{"1D with border", []int{5000}},
		{"2D exact multiple", []int{128, 128}},
		{"2D with border", []int{130, 70}},
		{"3D exact multiple", []int{32, 32, 32}},
		{"3D with border", []int{20, 20, 20}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := extent.New(c.sizes...)
			require.NoError(t, err)

			data := randomF32(e.LinearSize(), 1, 2)

			bound, err := CompressedSizeBoundF32(e)
			require.NoError(t, err)

			drv := NewSequential()
			out := make([]byte, bound)
			n, err := drv.CompressF32(e, data, out)
			require.NoError(t, err)
			require.LessOrEqual(t, n, bound)

			got := make([]float32, e.LinearSize())
			consumed, err := drv.DecompressF32(e, out[:n], got)
			require.NoError(t, err)
			require.Equal(t, n, consumed)
			require.Equal(t, data, got)
		})
	}
}

func TestSequentialRoundTripF64(t *testing.T) {
	e, err := extent.New(50, 50)
	require.NoError(t, err)

	data := randomF64(e.LinearSize(), 3, 4)

	bound, err := CompressedSizeBoundF64(e)
	require.NoError(t, err)

	drv := NewSequential()
	out := make([]byte, bound)
	n, err := drv.CompressF64(e, data, out)
	require.NoError(t, err)

	got := make([]float64, e.LinearSize())
	consumed, err := drv.DecompressF64(e, out[:n], got)
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.Equal(t, data, got)
}

func TestCompressDecompressAllZero(t *testing.T) {
	e, err := extent.New(64, 64)
	require.NoError(t, err)

	data := make([]float32, e.LinearSize())
	bound, err := CompressedSizeBoundF32(e)
	require.NoError(t, err)

	drv := NewSequential()
	out := make([]byte, bound)
	n, err := drv.CompressF32(e, data, out)
	require.NoError(t, err)

	got := make([]float32, e.LinearSize())
	_, err = drv.DecompressF32(e, out[:n], got)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestCompressDecompressNaNAndInf(t *testing.T) {
	e, err := extent.New(8192)
	require.NoError(t, err)

	data := make([]float32, e.LinearSize())
	data[0] = float32(math.NaN())
	data[1] = float32(math.Inf(1))
	data[2] = float32(math.Inf(-1))
	data[3] = float32(math.Copysign(0, -1))

	bound, err := CompressedSizeBoundF32(e)
	require.NoError(t, err)

	drv := NewSequential()
	out := make([]byte, bound)
	n, err := drv.CompressF32(e, data, out)
	require.NoError(t, err)

	got := make([]float32, e.LinearSize())
	_, err = drv.DecompressF32(e, out[:n], got)
	require.NoError(t, err)

	require.True(t, math.IsNaN(float64(got[0])))
	require.Equal(t, data[1], got[1])
	require.Equal(t, data[2], got[2])
	require.Equal(t, data[3], got[3])
	require.Equal(t, math.Signbit(float64(data[3])), math.Signbit(float64(got[3])))
}

func TestDriverEquivalenceSequentialVsMultiThreaded(t *testing.T) {
	// 576/64 = 9 hypercubes per side, 81 total: enough to span more than one
	// superblock (max 64 hypercubes each) and exercise the worker pool.
	e, err := extent.New(576, 576)
	require.NoError(t, err)

	data := randomF32(e.LinearSize(), 7, 9)

	bound, err := CompressedSizeBoundF32(e)
	require.NoError(t, err)

	seq := NewSequential()
	seqOut := make([]byte, bound)
	seqN, err := seq.CompressF32(e, data, seqOut)
	require.NoError(t, err)

	mt := NewMultiThreaded(WithWorkers(4))
	mtOut := make([]byte, bound)
	mtN, err := mt.CompressF32(e, data, mtOut)
	require.NoError(t, err)

	require.Equal(t, seqN, mtN)
	require.Equal(t, seqOut[:seqN], mtOut[:mtN])

	got := make([]float32, e.LinearSize())
	_, err = mt.DecompressF32(e, mtOut[:mtN], got)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestCompressInsufficientBuffer(t *testing.T) {
	e, err := extent.New(8192)
	require.NoError(t, err)

	data := randomF32(e.LinearSize(), 5, 6)
	out := make([]byte, 4)

	drv := NewSequential()
	_, err = drv.CompressF32(e, data, out)
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)
}

func TestDecompressTruncatedStreamIsFormatError(t *testing.T) {
	e, err := extent.New(8192)
	require.NoError(t, err)

	data := randomF32(e.LinearSize(), 11, 12)
	bound, err := CompressedSizeBoundF32(e)
	require.NoError(t, err)

	drv := NewSequential()
	out := make([]byte, bound)
	n, err := drv.CompressF32(e, data, out)
	require.NoError(t, err)

	got := make([]float32, e.LinearSize())
	_, err = drv.DecompressF32(e, out[:n-1], got)
	require.ErrorIs(t, err, errs.ErrFormatError)
}

func TestDecompressIdempotentOnSameInput(t *testing.T) {
	e, err := extent.New(100, 100)
	require.NoError(t, err)

	data := randomF32(e.LinearSize(), 21, 22)
	bound, err := CompressedSizeBoundF32(e)
	require.NoError(t, err)

	drv := NewSequential()
	out := make([]byte, bound)
	n, err := drv.CompressF32(e, data, out)
	require.NoError(t, err)

	got1 := make([]float32, e.LinearSize())
	_, err = drv.DecompressF32(e, out[:n], got1)
	require.NoError(t, err)

	got2 := make([]float32, e.LinearSize())
	_, err = drv.DecompressF32(e, out[:n], got2)
	require.NoError(t, err)

	require.Equal(t, got1, got2)
}

func TestCompressF32InvalidDataLength(t *testing.T) {
	e, err := extent.New(64, 64)
	require.NoError(t, err)

	drv := NewSequential()
	out := make([]byte, 1<<20)
	_, err = drv.CompressF32(e, make([]float32, 10), out)
	require.ErrorIs(t, err, errs.ErrInvalidExtent)
}
