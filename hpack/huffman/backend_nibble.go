// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build hpack_nibble
// +build hpack_nibble

package huffman

func decode(dst, src []byte) (int, error) {
	return decodeNibble(dst, src)
}
