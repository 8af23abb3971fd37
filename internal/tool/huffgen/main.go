// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// huffgen derives the HPACK Huffman lookup tables from the codebook and
// writes one of them out as a Go source artifact.
//
// Example usage:
//	$ go build -o huffgen github.com/lwdjohari/h2v/internal/tool/huffgen
//	$ ./huffgen -mode=full   huffman_byte_table_full.go
//	$ ./huffgen -mode=nibble huffman_byte_table_nibble.go
//	$ ./huffgen -mode=encode huffman_table_encode.go
//
// The runtime builds the identical tables at init, so the artifacts are
// not linked in; they exist so that table changes can be reviewed and
// diffed. Every invariant of the derivation is verified before a single
// byte is written; any violation aborts with a non-zero exit code.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lwdjohari/h2v/internal/prefix"
)

var emitters = map[string]func(io.Writer) error{
	"full":   prefix.WriteByteTable,
	"nibble": prefix.WriteNibbleTable,
	"encode": prefix.WriteEncodeTable,
}

func main() {
	mode := flag.String("mode", "", "table to emit: full, nibble, or encode")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -mode={full|nibble|encode} OUTFILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	emit, ok := emitters[*mode]
	if !ok || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Create(flag.Arg(0))
	if err != nil {
		die(err)
	}
	if err := emit(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		die(err)
	}
	if err := f.Close(); err != nil {
		die(err)
	}
}

func die(err error) {
	fmt.Fprintln(os.Stderr, "huffgen:", err)
	os.Exit(1)
}
