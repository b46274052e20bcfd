// Command ndzipc is a small CLI front end over the ndzip, bench, and
// reference packages. It loads a raw little-endian float32/float64 array
// from a file, runs either the ndzip codec or a reference byte compressor
// over it for a minimum number of repetitions and/or a minimum duration,
// and prints a CompressionStats line.
//
// ndzipc is deliberately thin: option parsing only, no codec logic of its
// own. Everything it reports comes from bench.RunNdzipF32/F64 or
// bench.RunReference.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/ndzip/bench"
	"github.com/arloliu/ndzip/extent"
	"github.com/arloliu/ndzip/reference"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("ndzipc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	dataset := fs.String("dataset", "", "path to a raw little-endian float32/float64 array")
	algorithm := fs.String("algorithm", "ndzip", "ndzip, zstd, s2, lz4, or none")
	dims := fs.String("dims", "", "comma-separated extent, outermost dimension first (e.g. 64,64,64)")
	f32 := fs.Bool("f32", false, "treat the dataset as float32 instead of float64")
	threads := fs.Int("threads", 1, "worker count for algorithm=ndzip (>1 selects the multi-threaded driver); unused by the reference codecs")
	minTime := fs.Duration("min-time", 0, "keep repeating until at least this much wall-clock time has elapsed")
	minReps := fs.Int("min-reps", 1, "minimum number of compress+decompress repetitions")
	tunable := fs.Int("tunable", 0, "opaque integer forwarded to the selected algorithm; unused by the algorithms ndzipc ships today")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	_ = tunable // reserved: no shipped algorithm currently consumes an opaque tunable.

	if *dataset == "" {
		fmt.Fprintln(stderr, "ndzipc: -dataset is required")
		return 2
	}

	raw, err := os.ReadFile(*dataset)
	if err != nil {
		fmt.Fprintf(stderr, "ndzipc: %v\n", err)
		return 2
	}

	params := bench.Params{MinReps: *minReps, MinDuration: *minTime, Workers: *threads}

	stats, err := runAlgorithm(*algorithm, raw, *dims, *f32, params)
	if err != nil {
		fmt.Fprintf(stderr, "ndzipc: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, stats)

	return 0
}

func runAlgorithm(algorithm string, raw []byte, dims string, f32 bool, params bench.Params) (bench.CompressionStats, error) {
	if algorithm != "ndzip" {
		kind, err := parseReferenceKind(algorithm)
		if err != nil {
			return bench.CompressionStats{}, err
		}

		c, err := reference.New(kind)
		if err != nil {
			return bench.CompressionStats{}, err
		}

		return bench.RunReference(c, raw, params)
	}

	e, err := parseExtent(dims)
	if err != nil {
		return bench.CompressionStats{}, err
	}

	if f32 {
		data, err := bytesToFloat32(raw, e.LinearSize())
		if err != nil {
			return bench.CompressionStats{}, err
		}

		return bench.RunNdzipF32(e, data, params)
	}

	data, err := bytesToFloat64(raw, e.LinearSize())
	if err != nil {
		return bench.CompressionStats{}, err
	}

	return bench.RunNdzipF64(e, data, params)
}

func parseReferenceKind(algorithm string) (reference.Kind, error) {
	switch strings.ToLower(algorithm) {
	case "none":
		return reference.None, nil
	case "zstd":
		return reference.Zstd, nil
	case "s2":
		return reference.S2, nil
	case "lz4":
		return reference.LZ4, nil
	default:
		return 0, fmt.Errorf("ndzipc: unknown algorithm %q", algorithm)
	}
}

func parseExtent(dims string) (extent.Extent, error) {
	if dims == "" {
		return extent.Extent{}, fmt.Errorf("ndzipc: -dims is required for algorithm=ndzip")
	}

	parts := strings.Split(dims, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return extent.Extent{}, fmt.Errorf("ndzipc: invalid -dims %q: %w", dims, err)
		}
		sizes[i] = n
	}

	return extent.New(sizes...)
}

func bytesToFloat32(raw []byte, n int) ([]float32, error) {
	if len(raw) < n*4 {
		return nil, fmt.Errorf("ndzipc: dataset has %d bytes, need %d for %d float32 elements", len(raw), n*4, n)
	}

	out := make([]float32, n)
	for i := range out {
		bits := uint32(raw[i*4]) | uint32(raw[i*4+1])<<8 | uint32(raw[i*4+2])<<16 | uint32(raw[i*4+3])<<24
		out[i] = math.Float32frombits(bits)
	}

	return out, nil
}

func bytesToFloat64(raw []byte, n int) ([]float64, error) {
	if len(raw) < n*8 {
		return nil, fmt.Errorf("ndzipc: dataset has %d bytes, need %d for %d float64 elements", len(raw), n*8, n)
	}

	out := make([]float64, n)
	for i := range out {
		var bits uint64
		for b := 0; b < 8; b++ {
			bits |= uint64(raw[i*8+b]) << (8 * b)
		}
		out[i] = math.Float64frombits(bits)
	}

	return out, nil
}
