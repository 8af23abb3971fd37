// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"math/bits"

	"github.com/lwdjohari/h2v/internal/errors"
)

// Verify checks the structural invariants of the trie and of every derived
// table. It is run by the huffgen tool before any artifact is written and
// by the tests; a failure means the codebook or the derivation is broken
// and the build must not proceed.
func (t *Trie) Verify() (err error) {
	defer errors.Recover(&err)

	t.verifyShape()
	byteTable := t.ByteTable()
	t.verifyByteTable(byteTable)
	t.verifyNibbleTable(t.NibbleTable())
	t.verifyRootRow(byteTable)
	t.verifyAccepting()
	t.verifyRoundTrip()
	return nil
}

// verifyShape checks that the trie is the complete binary tree a full
// prefix code produces: NumSymbols leaves, NumSymbols-1 internal nodes,
// and no internal node with a missing child.
func (t *Trie) verifyShape() {
	var nLeaf, nInner int
	for _, n := range t.nodes {
		if n.leaf() {
			nLeaf++
			continue
		}
		nInner++
		if n.child[0] == nil || n.child[1] == nil {
			verifyFail("internal node with a missing child")
		}
	}
	if nLeaf != NumSymbols || nInner != NumSymbols-1 {
		verifyFail("trie is not a complete code tree")
	}
}

func (t *Trie) verifyByteTable(table []ByteEntry) {
	if len(table) != t.NumStates()*256 {
		verifyFail("byte table has wrong size")
	}
	for _, e := range table {
		if e.Emit == EmitError {
			continue
		}
		if e.Emit > 2 {
			verifyFail("byte entry emits more than two symbols")
		}
		if int(e.Next) >= t.NumStates() || t.nodes[e.Next].leaf() {
			verifyFail("byte entry transitions to an invalid state")
		}
	}
}

func (t *Trie) verifyNibbleTable(table []uint32) {
	if len(table) != t.NumStates()*16 {
		verifyFail("nibble table has wrong size")
	}
	for _, w := range table {
		if w&NibbleError != 0 {
			continue
		}
		next := int(w >> NibbleStateShift & NibbleStateMask)
		if w>>NibbleStateShift > NibbleStateMask {
			verifyFail("nibble state does not fit its field")
		}
		if next >= t.NumStates() || t.nodes[next].leaf() {
			verifyFail("nibble entry transitions to an invalid state")
		}
		if w>>NibbleEmitShift&NibbleEmitMask > 1 {
			// A nibble cannot complete two codes: the second would
			// need at most 3 bits and the shortest code has 5.
			verifyFail("nibble entry emits more than one symbol")
		}
	}
}

// verifyRootRow checks that decoding any single octet from the root agrees
// with the codebook: the symbols whose codes fit within 8 bits must appear
// exactly as the byte's leading bits dictate.
func (t *Trie) verifyRootRow(table []ByteEntry) {
	for b := 0; b < 256; b++ {
		e := table[b]
		if e.Emit == EmitError || e.Emit == 0 {
			continue
		}
		length := Len(int(e.Syms[0]))
		if length > 8 || Code(int(e.Syms[0])) != uint32(b)>>(8-length) {
			verifyFail("root row disagrees with the codebook")
		}
	}
}

func (t *Trie) verifyAccepting() {
	var n int
	for _, w := range t.AcceptingBitmap() {
		n += bits.OnesCount64(w)
	}
	if n != 8 {
		verifyFail("accepting set is not the root plus seven EOS prefixes")
	}
}

// verifyRoundTrip encodes every symbol on its own, pads it per RFC 7541,
// and decodes the result through both FSM tables.
func (t *Trie) verifyRoundTrip() {
	byteTable := t.ByteTable()
	nibbleTable := t.NibbleTable()
	encTable := EncodeTable()
	accepting := t.AcceptingBitmap()

	for sym := 0; sym < EOS; sym++ {
		e := encTable[sym]
		buf := make([]byte, e.NumBytes)
		copy(buf, e.Bytes[:e.NumBytes])
		if pad := uint(e.NumBytes)*8 - uint(e.Len); pad > 0 {
			buf[len(buf)-1] |= 1<<pad - 1
		}

		if got := decodeBytes(byteTable, accepting, buf); got != sym {
			verifyFail("full-byte FSM fails to round-trip a symbol")
		}
		if got := decodeNibbles(nibbleTable, accepting, buf); got != sym {
			verifyFail("nibble FSM fails to round-trip a symbol")
		}
	}
}

// decodeBytes runs the full-byte FSM over buf and returns the single
// decoded symbol, or -1 on any error or if the count differs from one.
func decodeBytes(table []ByteEntry, accepting []uint64, buf []byte) int {
	var state uint16
	syms := make([]uint8, 0, 2)
	for _, b := range buf {
		e := table[int(state)*256+int(b)]
		if e.Emit == EmitError {
			return -1
		}
		syms = append(syms, e.Syms[:e.Emit]...)
		state = e.Next
	}
	if len(syms) != 1 || accepting[state/64]>>(state%64)&1 == 0 {
		return -1
	}
	return int(syms[0])
}

func decodeNibbles(table []uint32, accepting []uint64, buf []byte) int {
	var state uint32
	syms := make([]uint8, 0, 2)
	for _, b := range buf {
		for _, nib := range [2]byte{b >> 4, b & 0x0F} {
			w := table[state*16+uint32(nib)]
			if w&NibbleError != 0 {
				return -1
			}
			switch w >> NibbleEmitShift & NibbleEmitMask {
			case 1:
				syms = append(syms, uint8(w>>NibbleSym0Shift&NibbleSymMask))
			case 2:
				syms = append(syms, uint8(w>>NibbleSym0Shift&NibbleSymMask))
				syms = append(syms, uint8(w>>NibbleSym1Shift&NibbleSymMask))
			}
			state = w >> NibbleStateShift & NibbleStateMask
		}
	}
	if len(syms) != 1 || accepting[state/64]>>(state%64)&1 == 0 {
		return -1
	}
	return int(syms[0])
}

func verifyFail(msg string) {
	errors.Panic(errors.Error{Code: errors.Internal, Pkg: "prefix", Msg: msg})
}
