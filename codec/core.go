// Package codec implements the top-level compress/decompress drivers: a
// Sequential driver that walks hypercubes on the calling goroutine, and a
// MultiThreaded driver that fans superblock
// encoding/decoding out across a worker pool. Both share the same
// superblock assembly logic in this file — a driver only decides how the
// per-superblock work is scheduled, never how a hypercube's bytes are
// shaped.
package codec

import (
	"sync"

	"github.com/arloliu/ndzip/errs"
	"github.com/arloliu/ndzip/extent"
	"github.com/arloliu/ndzip/internal/pool"
	"github.com/arloliu/ndzip/profile"
	"github.com/arloliu/ndzip/stream"
)

// compressSuperblock32 encodes one superblock's hypercubes into a freshly
// allocated byte slice: the superblock's internal offset table followed by
// each hypercube's compressed bytes back to back. It follows the same
// two-pass shape as a streaming single-threaded encoder — gather offsets
// while appending bodies, then backfill the header — since the header
// precedes data whose length isn't known until it's encoded.
func compressSuperblock32(p profile.Profile, e extent.Extent, data []float32, origins [][]int) ([]byte, error) {
	headerLen := stream.SuperblockHeaderLength(len(origins))

	buf := pool.GetSuperblockBuffer()
	defer pool.PutSuperblockBuffer(buf)
	buf.ExtendOrGrow(headerLen)

	scratch, cleanup := pool.GetUint32Slice(p.ElementCount())
	defer cleanup()

	blockOut := make([]byte, p.CompressedBlockSizeBound)
	hcOffsets := make([]uint32, 0, len(origins)-1)

	for i, origin := range origins {
		n, err := encodeHypercubeF32(data, e, origin, p.SideLength, scratch, blockOut)
		if err != nil {
			return nil, err
		}

		if i > 0 {
			hcOffsets = append(hcOffsets, uint32(buf.Len()-headerLen))
		}

		buf.MustWrite(blockOut[:n])
	}

	stream.WriteSuperblockOffsetTable(buf.Bytes()[:headerLen], hcOffsets)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// decodeSuperblock32 decodes one superblock body into dst, using origins to
// locate where each hypercube belongs in the extent.
func decodeSuperblock32(p profile.Profile, e extent.Extent, body []byte, origins [][]int, dst []float32) error {
	headerLen := stream.SuperblockHeaderLength(len(origins))
	if len(body) < headerLen {
		return errs.ErrFormatError
	}

	var hcOffsets []uint32
	if len(origins) > 1 {
		var err error

		hcOffsets, err = stream.ReadSuperblockOffsetTable(body, len(origins)-1)
		if err != nil {
			return err
		}

		if !stream.StrictlyIncreasingU32(hcOffsets) {
			return errs.ErrFormatError
		}
	}

	scratch, cleanup := pool.GetUint32Slice(p.ElementCount())
	defer cleanup()

	for i, origin := range origins {
		start := headerLen
		if i > 0 {
			start = headerLen + int(hcOffsets[i-1])
		}

		if start > len(body) {
			return errs.ErrFormatError
		}

		if _, err := decodeHypercubeF32(body[start:], dst, e, origin, p.SideLength, scratch); err != nil {
			return err
		}
	}

	return nil
}

// runSuperblocks runs fn(i) for every superblock index in [0,n), either on
// the calling goroutine (workers<=1) or across a bounded worker pool,
// returning the first error encountered.
func runSuperblocks(n, workers int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}

	if workers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := fn(i); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()

	return firstErr
}

// compressF32 is the shared engine behind Sequential.CompressF32 and
// MultiThreaded.CompressF32: workers<=1 runs every superblock on the
// calling goroutine, workers>1 fans them out across a bounded pool.
func compressF32(p profile.Profile, e extent.Extent, data []float32, out []byte, workers int) (int, error) {
	if len(data) != e.LinearSize() {
		return 0, errs.ErrInvalidExtent
	}

	side := p.SideLength
	origins := collectOrigins(e, side)
	plan := stream.NewPlan(len(origins), p.MaxHypercubesPerSuperblock)
	groups := partitionOrigins(origins, plan.HypercubesPerSuperblock)

	sbBodies := make([][]byte, len(groups))
	err := runSuperblocks(len(groups), workers, func(i int) error {
		b, err := compressSuperblock32(p, e, data, groups[i])
		if err != nil {
			return err
		}
		sbBodies[i] = b

		return nil
	})
	if err != nil {
		return 0, err
	}

	fileHeaderLen := plan.FileHeaderLength()
	starts := make([]uint64, len(sbBodies)+1)
	starts[0] = uint64(fileHeaderLen)
	for i, b := range sbBodies {
		starts[i+1] = starts[i] + uint64(len(b))
	}

	borderStart := starts[len(starts)-1]
	borderCount := e.BorderElementCount(side)
	total := int(borderStart) + borderCount*(p.BitsWidth/8)

	if len(out) < total {
		return 0, errs.ErrInsufficientBuffer
	}

	var entries []uint64
	if len(sbBodies) == 0 {
		entries = []uint64{borderStart}
	} else {
		entries = starts[1:]
	}

	stream.WriteFileOffsetTable(out[:fileHeaderLen], entries)

	pos := fileHeaderLen
	for _, b := range sbBodies {
		copy(out[pos:], b)
		pos += len(b)
	}

	pos += stream.PackBorderF32(data, e, side, out[pos:])

	return pos, nil
}

// decompressF32 is the shared engine behind Sequential.DecompressF32 and
// MultiThreaded.DecompressF32.
func decompressF32(p profile.Profile, e extent.Extent, data []byte, dst []float32, workers int) (int, error) {
	if len(dst) != e.LinearSize() {
		return 0, errs.ErrInvalidExtent
	}

	side := p.SideLength
	origins := collectOrigins(e, side)
	plan := stream.NewPlan(len(origins), p.MaxHypercubesPerSuperblock)

	numEntries := plan.NumSuperblocks()
	if numEntries == 0 {
		numEntries = 1
	}

	entries, err := stream.ReadFileOffsetTable(data, numEntries)
	if err != nil {
		return 0, err
	}

	if !stream.StrictlyIncreasingU64(entries) {
		return 0, errs.ErrFormatError
	}

	fileHeaderLen := plan.FileHeaderLength()
	starts := make([]uint64, len(entries)+1)
	starts[0] = uint64(fileHeaderLen)
	copy(starts[1:], entries)

	groups := partitionOrigins(origins, plan.HypercubesPerSuperblock)

	err = runSuperblocks(len(groups), workers, func(i int) error {
		bodyStart, bodyEnd := starts[i], starts[i+1]
		if bodyEnd < bodyStart || bodyEnd > uint64(len(data)) {
			return errs.ErrFormatError
		}

		return decodeSuperblock32(p, e, data[bodyStart:bodyEnd], groups[i], dst)
	})
	if err != nil {
		return 0, err
	}

	borderStart := entries[len(entries)-1]
	if borderStart > uint64(len(data)) {
		return 0, errs.ErrFormatError
	}

	borderCount := e.BorderElementCount(side)
	need := int(borderStart) + borderCount*(p.BitsWidth/8)
	if len(data) < need {
		return 0, errs.ErrFormatError
	}

	stream.UnpackBorderF32(data[borderStart:], dst, e, side)

	return need, nil
}

// compressedSizeBound returns the worst-case compressed byte length for an
// extent under profile p.
func compressedSizeBound(p profile.Profile, e extent.Extent) int {
	total := collectOrigins(e, p.SideLength)
	plan := stream.NewPlan(len(total), p.MaxHypercubesPerSuperblock)
	border := e.BorderElementCount(p.SideLength)

	return plan.CompressedSizeBound(p.CompressedBlockSizeBound, border, p.BitsWidth/8)
}
