package blockcodec

import "github.com/arloliu/ndzip/errs"

// EncodeBlock32 serializes a transformed hypercube of 32-bit bits-type
// values into out, chunk by chunk. len(buf) must be a multiple of 32. It
// returns the number of bytes written, or errs.ErrInsufficientBuffer if out
// is too small to hold the encoding (callers size out using a profile's
// CompressedBlockSizeBound, which always suffices).
func EncodeBlock32(buf []uint32, out []byte) (int, error) {
	pos := 0
	for start := 0; start < len(buf); start += 32 {
		chunk := buf[start : start+32]

		var mask uint32
		for _, v := range chunk {
			mask |= v
		}

		need := ChunkByteLen32(mask)
		if len(out)-pos < need {
			return 0, errs.ErrInsufficientBuffer
		}

		pos += encodeChunk32(chunk, out[pos:])
	}

	return pos, nil
}

// DecodeBlock32 parses an encoded hypercube from data into buf (which must
// have a length that is a multiple of 32). It returns the number of bytes
// consumed from data, or errs.ErrFormatError if data is truncated or
// otherwise malformed.
func DecodeBlock32(data []byte, buf []uint32) (int, error) {
	pos := 0
	for start := 0; start < len(buf); start += 32 {
		n, err := decodeChunk32(data[pos:], buf[start:start+32])
		if err != nil {
			return 0, err
		}

		pos += n
	}

	return pos, nil
}

// EncodeBlock64 is the 64-bit analogue of EncodeBlock32.
func EncodeBlock64(buf []uint64, out []byte) (int, error) {
	pos := 0
	for start := 0; start < len(buf); start += 64 {
		chunk := buf[start : start+64]

		var mask uint64
		for _, v := range chunk {
			mask |= v
		}

		need := ChunkByteLen64(mask)
		if len(out)-pos < need {
			return 0, errs.ErrInsufficientBuffer
		}

		pos += encodeChunk64(chunk, out[pos:])
	}

	return pos, nil
}

// DecodeBlock64 is the 64-bit analogue of DecodeBlock32.
func DecodeBlock64(data []byte, buf []uint64) (int, error) {
	pos := 0
	for start := 0; start < len(buf); start += 64 {
		n, err := decodeChunk64(data[pos:], buf[start:start+64])
		if err != nil {
			return 0, err
		}

		pos += n
	}

	return pos, nil
}
