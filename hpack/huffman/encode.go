// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"encoding/binary"

	"github.com/lwdjohari/h2v/internal/prefix"
)

// Encode writes the Huffman coding of src into dst, padding the final byte
// with the high bits of EOS, and returns the number of bytes written.
// Encoding never fails on content since every octet has a codeword; the
// only error is ErrOutputTooSmall. Empty input writes nothing.
//
// Both backends keep pending bits right-justified in a 64-bit accumulator
// and flush 32 bits at a time. A codeword is at most 30 bits and a flush
// runs whenever 32 or more bits are pending, so at most 31+30 bits are
// ever live and the accumulator cannot overflow.
func Encode(dst, src []byte) (int, error) {
	n := EncodedLen(src)
	if n == 0 {
		return 0, nil
	}
	if len(dst) < n {
		return 0, ErrOutputTooSmall
	}
	return encode(dst, src), nil
}

// AppendEncode appends the Huffman coding of src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte) []byte {
	pos := len(dst)
	dst = append(dst, make([]byte, EncodedLen(src))...)
	encode(dst[pos:], src)
	return dst
}

// encodeFlatmap splices the pre-aligned codeword bytes of each symbol into
// the accumulator. Output is byte-for-byte identical to encodeBitOps.
func encodeFlatmap(dst, src []byte) int {
	var acc uint64
	var nbits uint
	var pos int
	for _, b := range src {
		e := &encTable[b]
		nb := uint(e.Len)

		var piece uint64
		for i := uint(0); i < uint(e.NumBytes); i++ {
			piece |= uint64(e.Bytes[i]) << (56 - 8*i)
		}
		acc = acc<<nb | piece>>(64-nb)
		nbits += nb

		for nbits >= 32 {
			nbits -= 32
			binary.BigEndian.PutUint32(dst[pos:], uint32(acc>>nbits))
			pos += 4
			acc &= 1<<nbits - 1
		}
	}
	return flushTail(dst, pos, acc, nbits)
}

// encodeBitOps shifts each right-justified codeword in from the codebook.
func encodeBitOps(dst, src []byte) int {
	var acc uint64
	var nbits uint
	var pos int
	for _, b := range src {
		nb := prefix.Len(int(b))
		acc = acc<<nb | uint64(prefix.Code(int(b)))
		nbits += nb

		for nbits >= 32 {
			nbits -= 32
			binary.BigEndian.PutUint32(dst[pos:], uint32(acc>>nbits))
			pos += 4
			acc &= 1<<nbits - 1
		}
	}
	return flushTail(dst, pos, acc, nbits)
}

// flushTail pads the pending bits with ones up to the byte boundary and
// writes out the remaining whole bytes.
func flushTail(dst []byte, pos int, acc uint64, nbits uint) int {
	if nbits == 0 {
		return pos
	}
	pad := (8 - nbits%8) % 8
	acc = acc<<pad | (1<<pad - 1)
	for nbits += pad; nbits > 0; nbits -= 8 {
		dst[pos] = uint8(acc >> (nbits - 8))
		pos++
	}
	return pos
}
