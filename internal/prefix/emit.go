// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"bufio"
	"fmt"
	"io"
)

// Artifact writers used by the huffgen tool. Each one rebuilds the trie,
// verifies every invariant, and emits a standalone Go source file holding
// one derived table. The runtime builds the same tables at init, so the
// artifacts exist for inspection and for diffing one toolchain's output
// against another's rather than for linking.

const emitHeader = `// Code generated by huffgen. DO NOT EDIT.

package huffman
`

// WriteByteTable emits the full-byte FSM.
func WriteByteTable(w io.Writer) error {
	t := NewTrie()
	if err := t.Verify(); err != nil {
		return err
	}
	table := t.ByteTable()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\nvar byteDecodeTable = [%d]struct {\n", emitHeader, len(table))
	fmt.Fprintf(bw, "\tnext       uint16\n\temit       uint8\n\tsym0, sym1 uint8\n}{\n")
	for i, e := range table {
		if i%256 == 0 {
			fmt.Fprintf(bw, "\t// state %d\n", i/256)
		}
		fmt.Fprintf(bw, "\t{%d, %#02x, %d, %d},\n", e.Next, e.Emit, e.Syms[0], e.Syms[1])
	}
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

// WriteNibbleTable emits the packed 4-bit FSM.
func WriteNibbleTable(w io.Writer) error {
	t := NewTrie()
	if err := t.Verify(); err != nil {
		return err
	}
	table := t.NibbleTable()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\nvar nibbleDecodeTable = [%d]uint32{\n", emitHeader, len(table))
	for i := 0; i < len(table); i += 8 {
		fmt.Fprintf(bw, "\t")
		for _, v := range table[i : i+8] {
			fmt.Fprintf(bw, "%#08x, ", v)
		}
		if i%16 == 0 {
			fmt.Fprintf(bw, "// state %d", i/16)
		}
		fmt.Fprintf(bw, "\n")
	}
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

// WriteEncodeTable emits the per-symbol encode entries.
func WriteEncodeTable(w io.Writer) error {
	t := NewTrie()
	if err := t.Verify(); err != nil {
		return err
	}
	table := EncodeTable()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\nvar encodeTable = [%d]struct {\n", emitHeader, len(table))
	fmt.Fprintf(bw, "\tlen      uint8\n\tnumBytes uint8\n\tbytes    [5]uint8\n}{\n")
	for sym, e := range table {
		fmt.Fprintf(bw, "\t{%d, %d, [5]uint8{%#02x, %#02x, %#02x, %#02x, %#02x}}, // %d\n",
			e.Len, e.NumBytes, e.Bytes[0], e.Bytes[1], e.Bytes[2], e.Bytes[3], e.Bytes[4], sym)
	}
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}
