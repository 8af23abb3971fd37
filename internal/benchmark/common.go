// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package benchmark compares the HPACK Huffman codec against other codecs
// with respect to encode speed, decode speed, and ratio. The comparison is
// not apples-to-apples: flate and xz are general-purpose compressors with
// framing overhead, while the Huffman coding is a fixed per-octet code.
// The numbers exist to sanity-check that the fixed code stays worthwhile
// on header-like data.
package benchmark

import (
	"runtime"
	"testing"

	"github.com/dsnet/golib/strconv"
)

// Codec encodes and decodes whole buffers. Every implementation is
// registered under a short name, keyed the way the bench tool names them
// on the command line.
type Codec struct {
	Encode func([]byte) ([]byte, error)
	Decode func([]byte) ([]byte, error)
}

var Codecs = make(map[string]Codec)

func Register(name string, c Codec) {
	Codecs[name] = c
}

// BenchmarkEncoder benchmarks a single encoder on the given input data
// and reports the result.
func BenchmarkEncoder(input []byte, c Codec) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := c.Encode(input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecoder benchmarks a single decoder on the given pre-encoded
// input data and reports the result.
func BenchmarkDecoder(input []byte, c Codec) testing.BenchmarkResult {
	enc, err := c.Encode(input)
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := c.Decode(enc); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// Ratio returns the compression ratio achieved on the input.
func Ratio(input []byte, c Codec) (float64, error) {
	enc, err := c.Encode(input)
	if err != nil || len(enc) == 0 {
		return 0, err
	}
	return float64(len(input)) / float64(len(enc)), nil
}

// FormatRate renders a benchmark result as a human readable bytes-per-second
// figure with a base-1024 unit prefix.
func FormatRate(r testing.BenchmarkResult) string {
	if r.N == 0 || r.T == 0 {
		return "-"
	}
	rate := float64(r.Bytes) * float64(r.N) / r.T.Seconds()
	return strconv.FormatPrefix(rate, strconv.Base1024, 2) + "B/s"
}
