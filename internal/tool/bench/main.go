// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to compare performance between the HPACK Huffman codec
// and other codecs. Individual implementations are referred to as codecs.
//
// Example usage:
//	$ go build -o bench main.go
//	$ ./bench \
//		-codecs h2v,xnet,fl \
//		-file   ../../../testdata/headers.txt \
//		-sizes  1e3,1e4,1e5
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dsnet/golib/strconv"
	"github.com/lwdjohari/h2v/internal/benchmark"
	"github.com/lwdjohari/h2v/internal/testutil"
)

func main() {
	codecs := flag.String("codecs", "h2v,xnet,fl,xz", "comma-separated list of codecs to run")
	file := flag.String("file", "testdata/headers.txt", "corpus file to benchmark on")
	sizes := flag.String("sizes", "1e4,1e5", "comma-separated list of input sizes")
	flag.Parse()

	input := testutil.MustLoadFile(*file)
	for _, ss := range strings.Split(*sizes, ",") {
		nf, err := strconv.ParsePrefix(ss, strconv.AutoParse)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid size %q: %v\n", ss, err)
			os.Exit(1)
		}
		data := testutil.ResizeData(input, int(nf))

		fmt.Printf("size %s:\n", ss)
		for _, name := range strings.Split(*codecs, ",") {
			c, ok := benchmark.Codecs[name]
			if !ok {
				fmt.Fprintf(os.Stderr, "unknown codec %q\n", name)
				os.Exit(1)
			}
			ratio, err := benchmark.Ratio(data, c)
			if err != nil {
				fmt.Fprintf(os.Stderr, "codec %q: %v\n", name, err)
				os.Exit(1)
			}
			fmt.Printf("\t%-5s  enc:%-12s dec:%-12s ratio:%0.3f\n", name,
				benchmark.FormatRate(benchmark.BenchmarkEncoder(data, c)),
				benchmark.FormatRate(benchmark.BenchmarkDecoder(data, c)),
				ratio)
		}
	}
}
