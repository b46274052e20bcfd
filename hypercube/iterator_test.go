package hypercube

import (
	"testing"

	"github.com/arloliu/ndzip/extent"
	"github.com/stretchr/testify/require"
)

func TestCountNoHypercubes(t *testing.T) {
	e, err := extent.New(3)
	require.NoError(t, err)
	require.Equal(t, 0, Count(e, 4096))
}

func TestCountSingle1D(t *testing.T) {
	e, err := extent.New(4096)
	require.NoError(t, err)
	require.Equal(t, 1, Count(e, 4096))
}

func TestCount2D(t *testing.T) {
	e, err := extent.New(128, 128)
	require.NoError(t, err)
	require.Equal(t, 4, Count(e, 64))
}

func TestOffsets1D(t *testing.T) {
	e, err := extent.New(8192)
	require.NoError(t, err)

	var got [][]int
	for o := range Offsets(e, 4096) {
		cp := append([]int(nil), o...)
		got = append(got, cp)
	}
	require.Equal(t, [][]int{{0}, {4096}}, got)
}

func TestOffsets2DScanOrder(t *testing.T) {
	e, err := extent.New(128, 128)
	require.NoError(t, err)

	var got [][]int
	for o := range Offsets(e, 64) {
		cp := append([]int(nil), o...)
		got = append(got, cp)
	}
	require.Equal(t, [][]int{{0, 0}, {0, 64}, {64, 0}, {64, 64}}, got)
}

func TestOffsetsEarlyStop(t *testing.T) {
	e, err := extent.New(128, 128)
	require.NoError(t, err)

	count := 0
	for range Offsets(e, 64) {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestElementsCountMatchesSD(t *testing.T) {
	count := 0
	for range Elements([]int{0, 0}, 64) {
		count++
	}
	require.Equal(t, 4096, count)
}

func TestElementsOrderNestedRowMajor(t *testing.T) {
	var got [][]int
	for idx := range Elements([]int{0, 0}, 2) {
		cp := append([]int(nil), idx...)
		got = append(got, cp)
	}
	require.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, got)
}

func TestElementsRespectsOrigin(t *testing.T) {
	var got [][]int
	for idx := range Elements([]int{64, 128}, 2) {
		cp := append([]int(nil), idx...)
		got = append(got, cp)
	}
	require.Equal(t, [][]int{{64, 128}, {64, 129}, {65, 128}, {65, 129}}, got)
}

func TestElementsEarlyStop(t *testing.T) {
	count := 0
	for range Elements([]int{0}, 4096) {
		count++
		if count == 10 {
			break
		}
	}
	require.Equal(t, 10, count)
}
