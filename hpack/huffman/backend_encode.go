// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !hpack_encbitop
// +build !hpack_encbitop

package huffman

// The table-driven encoder is the default backend. Build with the
// hpack_encbitop tag to use direct bit operations on the codebook instead;
// the two emit identical bytes and differ only in throughput.
func encode(dst, src []byte) int {
	return encodeFlatmap(dst, src)
}
