// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package huffman

import "bytes"

// Fuzz treats data both as plaintext and as a coded stream. A coded stream
// that decodes successfully must re-encode to the identical bytes, since
// the deterministic padding makes the coding a bijection.
func Fuzz(data []byte) int {
	enc := AppendEncode(nil, data)
	dec, err := AppendDecode(nil, enc)
	if err != nil || !bytes.Equal(dec, data) {
		panic("round-trip failure")
	}

	out1 := make([]byte, MaxDecodedLen(len(data)))
	n1, err1 := decodeFullByte(out1, data)
	out2 := make([]byte, MaxDecodedLen(len(data)))
	n2, err2 := decodeNibble(out2, data)
	if (err1 == nil) != (err2 == nil) || err1 != err2 {
		panic("backend disagreement")
	}
	if err1 != nil {
		return 0
	}
	if n1 != n2 || !bytes.Equal(out1[:n1], out2[:n2]) {
		panic("backend output disagreement")
	}
	if !bytes.Equal(AppendEncode(nil, out1[:n1]), data) {
		panic("decode is not the inverse of encode")
	}
	return 1
}
