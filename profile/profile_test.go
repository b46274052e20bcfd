package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForAllProfilesHave4096Elements(t *testing.T) {
	for _, kind := range []Kind{F32D1, F32D2, F32D3, F64D1, F64D2, F64D3} {
		p := For(kind)
		elems := 1
		for range p.Dimensions {
			elems *= p.SideLength
		}
		require.Equal(t, 4096, elems, "profile %s", kind)
		require.Equal(t, 4096, p.ElementCount())
	}
}

func TestChunksPerHypercube(t *testing.T) {
	require.Equal(t, 128, For(F32D1).ChunksPerHypercube())
	require.Equal(t, 64, For(F64D1).ChunksPerHypercube())
}

func TestCompressedBlockSizeBoundIsWorstCase(t *testing.T) {
	p := For(F32D1)
	chunks := p.ChunksPerHypercube()
	worstCasePerChunk := (p.BitsWidth + 1) * (p.BitsWidth / 8)
	require.Equal(t, chunks*worstCasePerChunk, p.CompressedBlockSizeBound)
}

func TestKindFor(t *testing.T) {
	kind, ok := KindFor(false, 2)
	require.True(t, ok)
	require.Equal(t, F32D2, kind)

	kind, ok = KindFor(true, 3)
	require.True(t, ok)
	require.Equal(t, F64D3, kind)

	_, ok = KindFor(true, 4)
	require.False(t, ok)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "f32d1", F32D1.String())
	require.Equal(t, "f64d3", F64D3.String())
	require.Equal(t, "unknown", Kind(255).String())
}

func TestLoadF32RoundTrip(t *testing.T) {
	values := []float32{0, -0, 1, -1, 3.14159, -3.14159, math.MaxFloat32, -math.MaxFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN())}
	for _, v := range values {
		got := StoreF32(LoadF32(v))
		require.Equal(t, math.Float32bits(v), math.Float32bits(got), "value %v", v)
	}
}

func TestLoadF32Bijective(t *testing.T) {
	seen := make(map[uint32]uint32, 4096)
	// Sample across the uint32 space rather than exhaustively (2^32 values).
	for i := 0; i < 100000; i++ {
		b := uint32(i) * 104729 // large prime stride for spread
		mapped := LoadF32(math.Float32frombits(b))
		if prev, ok := seen[mapped]; ok {
			require.Equal(t, prev, b, "collision mapping to %x", mapped)
		}
		seen[mapped] = b
	}
}

func TestLoadF32OrderPreservingOnPositives(t *testing.T) {
	a := LoadF32(1.0)
	b := LoadF32(2.0)
	c := LoadF32(100.0)
	require.Less(t, a, b)
	require.Less(t, b, c)
}

func TestLoadF32OrderPreservingAcrossSign(t *testing.T) {
	neg := LoadF32(-1.0)
	pos := LoadF32(1.0)
	require.Less(t, neg, pos)
}

func TestLoadF64RoundTrip(t *testing.T) {
	values := []float64{0, -0, 1, -1, 2.71828182845, -2.71828182845, math.MaxFloat64, -math.MaxFloat64,
		math.Inf(1), math.Inf(-1), math.NaN()}
	for _, v := range values {
		got := StoreF64(LoadF64(v))
		require.Equal(t, math.Float64bits(v), math.Float64bits(got), "value %v", v)
	}
}

func TestLoadF64NaNPayloadsRoundTrip(t *testing.T) {
	payloads := []uint64{
		0x7ff8000000000001,
		0x7ff80000cafebabe,
		0xfff8000000000001,
		0x7fffffffffffffff,
	}
	for _, bits := range payloads {
		v := math.Float64frombits(bits)
		got := StoreF64(LoadF64(v))
		require.Equal(t, bits, math.Float64bits(got))
	}
}
