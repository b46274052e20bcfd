package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlanEvenDivision(t *testing.T) {
	p := NewPlan(128, 64)
	require.Equal(t, 2, p.NumSuperblocks())
	require.Equal(t, []int{64, 64}, p.HypercubesPerSuperblock)
}

func TestNewPlanShortLastSuperblock(t *testing.T) {
	p := NewPlan(130, 64)
	require.Equal(t, 3, p.NumSuperblocks())
	require.Equal(t, []int{64, 64, 2}, p.HypercubesPerSuperblock)
}

func TestNewPlanZeroHypercubes(t *testing.T) {
	p := NewPlan(0, 64)
	require.Equal(t, 0, p.NumSuperblocks())
	require.Equal(t, 8, p.FileHeaderLength(), "an all-border stream still carries a one-entry file header")
}

func TestFileHeaderLength(t *testing.T) {
	p := NewPlan(200, 64)
	require.Equal(t, 4*8, p.FileHeaderLength())
}

func TestSuperblockHeaderLength(t *testing.T) {
	require.Equal(t, 0, SuperblockHeaderLength(0))
	require.Equal(t, 0, SuperblockHeaderLength(1))
	require.Equal(t, 63*4, SuperblockHeaderLength(64))
}

func TestCompressedSizeBound(t *testing.T) {
	p := NewPlan(128, 64)
	bound := p.CompressedSizeBound(33280, 17, 8)
	want := p.FileHeaderLength() + 2*SuperblockHeaderLength(64) + 128*33280 + 17*8
	require.Equal(t, want, bound)
}
