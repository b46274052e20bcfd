package stream

import (
	"github.com/arloliu/ndzip/bits"
	"github.com/arloliu/ndzip/errs"
)

// WriteFileOffsetTable writes entries as the file header offset table: one
// little-endian u64 per entry, entry i holding the file offset of
// superblock i+1's body start, with the final entry holding the border
// region's start offset. out must have length len(entries)*8.
func WriteFileOffsetTable(out []byte, entries []uint64) {
	for i, v := range entries {
		bits.StoreUnaligned64(out[i*FileHeaderOffsetWidth:], v)
	}
}

// ReadFileOffsetTable reads count little-endian u64 entries from data. It
// returns errs.ErrFormatError if data is too short.
func ReadFileOffsetTable(data []byte, count int) ([]uint64, error) {
	need := count * FileHeaderOffsetWidth
	if len(data) < need {
		return nil, errs.ErrFormatError
	}

	entries := make([]uint64, count)
	for i := range entries {
		entries[i] = bits.LoadUnaligned64(data[i*FileHeaderOffsetWidth:])
	}

	return entries, nil
}

// WriteSuperblockOffsetTable writes entries as a superblock's internal
// hypercube offset table: H-1 little-endian u32 entries, entry i holding
// hypercube i+1's offset measured from the end of this table, not from the
// superblock body start (the first hypercube, i=0, is implicitly located
// right after this table, at offset 0 on that scale). out must have length
// len(entries)*4.
func WriteSuperblockOffsetTable(out []byte, entries []uint32) {
	for i, v := range entries {
		bits.StoreUnaligned32(out[i*HypercubeOffsetWidth:], v)
	}
}

// ReadSuperblockOffsetTable reads count little-endian u32 entries from data.
// It returns errs.ErrFormatError if data is too short.
func ReadSuperblockOffsetTable(data []byte, count int) ([]uint32, error) {
	need := count * HypercubeOffsetWidth
	if len(data) < need {
		return nil, errs.ErrFormatError
	}

	entries := make([]uint32, count)
	for i := range entries {
		entries[i] = bits.LoadUnaligned32(data[i*HypercubeOffsetWidth:])
	}

	return entries, nil
}

// StrictlyIncreasingU64 reports whether values is strictly increasing, the
// invariant offset tables must hold (each entry must point strictly past
// the previous region so regions never overlap or reorder).
func StrictlyIncreasingU64(values []uint64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return false
		}
	}

	return true
}

// StrictlyIncreasingU32 is the u32 analogue of StrictlyIncreasingU64.
func StrictlyIncreasingU32(values []uint32) bool {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return false
		}
	}

	return true
}
