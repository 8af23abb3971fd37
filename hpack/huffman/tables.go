// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"github.com/lwdjohari/h2v/internal"
	"github.com/lwdjohari/h2v/internal/prefix"
)

// The decode loops index these tables directly. They are built once here
// and never mutated; the huffgen tool can emit the same tables as source
// artifacts for inspection.
var (
	encTable    []prefix.EncodeEntry
	byteTable   []prefix.ByteEntry
	nibbleTable []uint32
	bitTable    []prefix.BitEntry
	stateDepth  []uint8
	accepting   []uint64
)

func init() {
	t := prefix.NewTrie()
	if internal.Debug {
		if err := t.Verify(); err != nil {
			panic(err)
		}
	}
	encTable = prefix.EncodeTable()
	byteTable = t.ByteTable()
	nibbleTable = t.NibbleTable()
	bitTable = t.BitTable()
	stateDepth = t.StateDepths()
	accepting = t.AcceptingBitmap()
}
