// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements the static Huffman code used by HPACK
// (RFC 7541, Appendix B) to compress string literals in HTTP/2 header
// blocks.
//
// The codec is byte transparent: it maps octets to codewords and back and
// never interprets the octets as text. Both directions operate on whole,
// caller-owned buffers; there is no streaming form. All lookup tables are
// derived once at init from the codebook in internal/prefix and are
// immutable afterwards, so any number of goroutines may encode and decode
// concurrently without synchronization.
package huffman

import (
	"github.com/lwdjohari/h2v/internal/errors"
	"github.com/lwdjohari/h2v/internal/prefix"
)

// Errors returned by Encode and Decode. A caller that does not care which
// rule a corrupted stream violated can match the whole class with
// errors.IsCorrupted; ErrOutputTooSmall is an errors.Invalid misuse of
// the API instead.
//
// Null-pointer errors of the wire-level predecessor of this API have no
// analogue here: a nil slice is simply an empty buffer.
var (
	ErrOutputTooSmall error = errors.Error{Code: errors.Invalid, Pkg: "huffman", Msg: "output buffer is too small"}
	ErrInvalidPrefix  error = errors.Error{Code: errors.Corrupted, Pkg: "huffman", Msg: "bit pattern is not a codeword prefix"}
	ErrInvalidPadding error = errors.Error{Code: errors.Corrupted, Pkg: "huffman", Msg: "trailing padding is not a prefix of EOS"}
	ErrInvalidEOS     error = errors.Error{Code: errors.Corrupted, Pkg: "huffman", Msg: "stream does not end at a codeword boundary"}
)

// EncodedLen returns the exact number of bytes that encoding src produces,
// including the trailing padding.
func EncodedLen(src []byte) int {
	var n uint64
	for _, b := range src {
		n += uint64(encTable[b].Len)
	}
	return int((n + 7) / 8)
}

// MaxEncodedLen returns the number of bytes that encoding any input of n
// bytes may produce at most. The longest codeword is 30 bits.
func MaxEncodedLen(n int) int {
	return (n*prefix.MaxCodeLen + 7) / 8
}

// MaxDecodedLen returns the number of bytes that decoding any valid input
// of n bytes may produce at most. The shortest codeword is 5 bits.
func MaxDecodedLen(n int) int {
	return n * 8 / prefix.MinCodeLen
}
