// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build hpack_encbitop
// +build hpack_encbitop

package huffman

func encode(dst, src []byte) int {
	return encodeBitOps(dst, src)
}
