// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string.
//
// The BitGen format allows bit-streams to be generated from a series of
// tokens describing bits in the resulting string. The format is designed for
// testing purposes by aiding a human in the manual scripting of Huffman
// streams from individual bit-strings. HPACK packs bits starting with the
// most-significant bits of a byte, so that is the only packing mode; the
// left-most bits of every token are written to the stream first.
//
// The format consists of a series of tokens separated by white space of any
// kind. The '#' character is used for commenting. Thus, any bytes on a given
// line that appear after the '#' character is ignored.
//
// A token of the pattern "[01]{1,64}" forms a bit-string (e.g. 11010).
//
// A token of the pattern "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}"
// represents either a decimal value or a hexadecimal value, respectively.
// This numeric value is converted to the unsigned binary representation and
// used as the bit-string to write. The first number indicates the bit-length
// of the bit-string and must be between 0 and 64 bits. The second number
// represents the numeric value. The bit-length must be long enough to
// contain the resulting binary value.
//
// A token that is of the pattern "X:[0-9a-fA-F]+" represents literal bytes
// in hexadecimal format that should be written to the resulting bit-stream.
// It may only be used when the bit-stream is already byte-aligned.
//
// A token decorator of the pattern "[*][0-9]+" may trail any token. This is
// a quantifier decorator which indicates that the current token is to be
// repeated some number of times. It is used to quickly replicate data and
// allows the format to quickly generate large quantities of data.
//
// If the total bit-stream does not end on a byte-aligned edge, then the
// stream will automatically be padded up to the nearest byte with 1 bits,
// matching the padding rule of RFC 7541.
//
// Example BitGen file:
//	X:f1e3             # Literal bytes
//	00000 00001        # The codes for '0' and '1'
//	H13:1ff8           # The code for the NUL octet
//	111111*5           # Thirty one-bits: an explicit EOS code
func DecodeBitGen(str string) ([]byte, error) {
	// Tokenize the input string by removing comments and superfluous spaces.
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		for _, t := range strings.Fields(s) {
			toks = append(toks, t)
		}
	}

	var bw bitBuffer
	for _, t := range toks {
		// Check for quantifier decorators.
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			// Handle binary tokens.
			var v uint64
			for _, b := range t {
				v <<= 1
				v |= uint64(b - '0')
			}
			for i := 0; i < rep; i++ {
				bw.WriteBits64(v, uint(len(t)))
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			// Handle decimal and hexadecimal tokens.
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]

			base := 10
			if tb == 'H' {
				base = 16
			}

			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				bw.WriteBits64(v, uint(n))
			}
		case reRaw.MatchString(t):
			// Handle raw byte tokens.
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			b = bytes.Repeat(b, rep)
			if _, err := bw.Write(b); err != nil {
				return nil, err
			}
		default:
			// Handle invalid tokens.
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bw.Bytes(), nil
}

// bitBuffer packs bits starting from the most-significant bit of each byte.
type bitBuffer struct {
	b []byte
	n uint // Number of bits written by WriteBits64 and padding; n%8 is the fill of the last byte
}

func (b *bitBuffer) Write(buf []byte) (int, error) {
	if b.n%8 != 0 {
		return 0, errors.New("testutil: unaligned write")
	}
	b.b = append(b.b, buf...)
	return len(buf), nil
}

func (b *bitBuffer) WriteBits64(v uint64, n uint) {
	for i := n; i > 0; i-- {
		if b.n%8 == 0 {
			b.b = append(b.b, 0x00)
		}
		if v&(1<<(i-1)) != 0 {
			b.b[len(b.b)-1] |= 0x80 >> (b.n % 8)
		}
		b.n++
	}
}

func (b *bitBuffer) Bytes() []byte {
	if pad := (8 - b.n%8) % 8; pad > 0 {
		b.b[len(b.b)-1] |= 1<<pad - 1
		b.n += pad
	}
	return b.b
}
