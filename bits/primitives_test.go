package bits

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// hostIsBigEndian reports the native byte order of the test process, so
// TestWireFormatIsAlwaysLittleEndian can assert wireEngine ignores it.
func hostIsBigEndian() bool {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	return b[0] == 0x01
}

func TestLoadStoreUnaligned32(t *testing.T) {
	buf := make([]byte, 4)
	StoreUnaligned32(buf, 0xdeadbeef)
	require.Equal(t, uint32(0xdeadbeef), LoadUnaligned32(buf))
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, buf)
}

// TestWireFormatIsAlwaysLittleEndian pins the wire format's endian-invariance
// at the primitive level: LoadUnaligned32/64 and StoreUnaligned32/64 always
// use little-endian byte order, regardless of what the host's native byte
// order happens to be.
func TestWireFormatIsAlwaysLittleEndian(t *testing.T) {
	require.Equal(t, binary.LittleEndian, wireEngine)

	buf := make([]byte, 8)
	StoreUnaligned64(buf, 0x0102030405060708)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf)

	if hostIsBigEndian() {
		t.Log("test environment is big-endian; wireEngine still produced the little-endian bytes asserted above")
	}
}

func TestLoadStoreUnaligned64(t *testing.T) {
	buf := make([]byte, 8)
	StoreUnaligned64(buf, 0x0102030405060708)
	require.Equal(t, uint64(0x0102030405060708), LoadUnaligned64(buf))
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf)
}

func TestRotate32Involution(t *testing.T) {
	values := []uint32{0, 1, 0x80000000, 0xffffffff, 0x12345678}
	for _, v := range values {
		require.Equal(t, v, RotateRight1_32(RotateLeft1_32(v)))
	}
}

func TestRotate64Involution(t *testing.T) {
	values := []uint64{0, 1, 0x8000000000000000, 0xffffffffffffffff, 0x123456789abcdef0}
	for _, v := range values {
		require.Equal(t, v, RotateRight1_64(RotateLeft1_64(v)))
	}
}

func TestRotateLeft1Moves(t *testing.T) {
	require.Equal(t, uint32(1), RotateLeft1_32(0x80000000))
	require.Equal(t, uint64(1), RotateLeft1_64(0x8000000000000000))
}

func TestIPow(t *testing.T) {
	require.Equal(t, 4096, IPow(4096, 1))
	require.Equal(t, 4096, IPow(64, 2))
	require.Equal(t, 4096, IPow(16, 3))
	require.Equal(t, 1, IPow(5, 0))
}

func TestPopCount(t *testing.T) {
	require.Equal(t, 0, PopCount32(0))
	require.Equal(t, 32, PopCount32(0xffffffff))
	require.Equal(t, 0, PopCount64(0))
	require.Equal(t, 64, PopCount64(0xffffffffffffffff))
}
