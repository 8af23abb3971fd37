// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"testing"

	"github.com/lwdjohari/h2v/internal/errors"
	"github.com/lwdjohari/h2v/internal/testutil"
	"golang.org/x/net/http2/hpack"
)

var backends = []struct {
	name   string
	decode func(dst, src []byte) (int, error)
}{
	{"FullByte", decodeFullByte},
	{"Nibble", decodeNibble},
}

func TestRoundTrip(t *testing.T) {
	dh := testutil.MustDecodeHex

	// The positive vectors are the examples of RFC 7541, Appendix C.4.
	vectors := []struct {
		desc   string
		input  []byte
		output []byte
	}{{
		desc: "empty string",
	}, {
		desc:   "www.example.com",
		input:  []byte("www.example.com"),
		output: dh("f1e3c2e5f23a6ba0ab90f4ff"),
	}, {
		desc:   "no-cache",
		input:  []byte("no-cache"),
		output: dh("a8eb10649cbf"),
	}, {
		desc:   "custom-key",
		input:  []byte("custom-key"),
		output: dh("25a849e95ba97d7f"),
	}, {
		desc:   "custom-value",
		input:  []byte("custom-value"),
		output: dh("25a849e95bb8e8b4bf"),
	}, {
		desc:   "NUL octet",
		input:  []byte{0x00},
		output: dh("ffc7"),
	}, {
		desc:   "random octets",
		input:  testutil.NewRand(0).Bytes(1 << 12),
		output: nil, // checked against EncodedLen and the reference below
	}}

	for i, v := range vectors {
		buf := make([]byte, MaxEncodedLen(len(v.input)))
		n, err := Encode(buf, v.input)
		if err != nil {
			t.Errorf("test %d (%s), unexpected Encode error: %v", i, v.desc, err)
			continue
		}
		buf = buf[:n]
		if n != EncodedLen(v.input) {
			t.Errorf("test %d (%s), Encode wrote %d bytes, EncodedLen is %d",
				i, v.desc, n, EncodedLen(v.input))
		}
		if v.output != nil && !bytes.Equal(buf, v.output) {
			t.Errorf("test %d (%s), output mismatch:\ngot  %x\nwant %x",
				i, v.desc, buf, v.output)
		}

		// The wire format admits exactly one coding per input, so any
		// conformant peer must agree byte for byte.
		if ref := hpack.AppendHuffmanString(nil, string(v.input)); !bytes.Equal(buf, ref) {
			t.Errorf("test %d (%s), disagrees with x/net reference:\ngot  %x\nwant %x",
				i, v.desc, buf, ref)
		}

		for _, be := range backends {
			out := make([]byte, MaxDecodedLen(len(buf)))
			n, err := be.decode(out, buf)
			if err != nil {
				t.Errorf("test %d (%s), unexpected %s decode error: %v", i, v.desc, be.name, err)
				continue
			}
			if !bytes.Equal(out[:n], v.input) {
				t.Errorf("test %d (%s), %s decode mismatch:\ngot  %x\nwant %x",
					i, v.desc, be.name, out[:n], v.input)
			}
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	db := testutil.MustDecodeBitGen
	dh := testutil.MustDecodeHex

	errFuncs := map[string]func(error) bool{
		"IsInvalidPrefix":  func(err error) bool { return err == ErrInvalidPrefix },
		"IsInvalidPadding": func(err error) bool { return err == ErrInvalidPadding },
		"IsInvalidEOS":     func(err error) bool { return err == ErrInvalidEOS },
	}
	vectors := []struct {
		desc   string
		input  []byte
		output []byte
		errf   string
	}{{
		desc:  "single padding-only byte",
		input: dh("ff"),
		errf:  "IsInvalidEOS",
	}, {
		desc:  "trailing zero bits",
		input: dh("00"),
		errf:  "IsInvalidPadding",
	}, {
		desc:  "zero bit inside the padding",
		input: db("00000 011"), // '0' then a 0 bit where padding must be ones
		errf:  "IsInvalidPadding",
	}, {
		desc:   "one-bit EOS prefix as padding",
		input:  dh("f1"), // 'w' plus a single one bit
		output: []byte("w"),
	}, {
		desc:   "three-bit EOS prefix as padding",
		input:  dh("ffc7"), // NUL plus three one bits
		output: []byte{0x00},
	}, {
		desc:   "seven-bit EOS prefix as padding",
		input:  dh("0000007f"), // five '0' octets are twenty-five bits
		output: []byte("00000"),
	}, {
		desc:  "explicit EOS code",
		input: db("111111*5"), // thirty one-bits, padded with two more
		errf:  "IsInvalidPrefix",
	}, {
		desc:  "EOS code after a symbol",
		input: db("00000 111111*5"), // '0' then EOS
		errf:  "IsInvalidPrefix",
	}, {
		desc:  "eight bits of padding after a symbol",
		input: db("11111000 X:ff"), // '&' then a full byte of ones
		errf:  "IsInvalidEOS",
	}, {
		desc:  "byte-aligned ending inside a code",
		input: dh("ffff"), // sixteen one bits reach no codeword
		errf:  "IsInvalidEOS",
	}, {
		desc:  "zero padding after a multi-byte code",
		input: dh("ffc0"), // NUL is thirteen bits, the three left over are zeros
		errf:  "IsInvalidPadding",
	}}

	for i, v := range vectors {
		for _, be := range backends {
			out := make([]byte, MaxDecodedLen(len(v.input)))
			n, err := be.decode(out, v.input)
			if v.errf != "" {
				if !errFuncs[v.errf](err) {
					t.Errorf("test %d (%s), %s decode error mismatch: got %v, want %s",
						i, v.desc, be.name, err, v.errf)
				}
				if n != 0 {
					t.Errorf("test %d (%s), %s decode returned %d bytes on error",
						i, v.desc, be.name, n)
				}
				if !errors.IsCorrupted(err) {
					t.Errorf("test %d (%s), %s decode error is not Corrupted", i, v.desc, be.name)
				}
			} else {
				if err != nil {
					t.Errorf("test %d (%s), unexpected %s decode error: %v", i, v.desc, be.name, err)
				} else if !bytes.Equal(out[:n], v.output) {
					t.Errorf("test %d (%s), %s decode mismatch:\ngot  %x\nwant %x",
						i, v.desc, be.name, out[:n], v.output)
				}
			}

			// Whatever the verdict, the reference implementation must
			// agree on whether the input is valid at all.
			_, refErr := hpack.HuffmanDecodeToString(v.input)
			if gotOK, refOK := err == nil, refErr == nil; gotOK != refOK {
				t.Errorf("test %d (%s), %s validity disagrees with x/net: got %v, ref %v",
					i, v.desc, be.name, err, refErr)
			}
		}
	}
}

func TestRandomStreams(t *testing.T) {
	rand := testutil.NewRand(20250806)
	for i := 0; i < 512; i++ {
		src := rand.Bytes(rand.Intn(256))
		enc := AppendEncode(nil, src)

		// The padding must fill the last byte with one bits.
		var nb int
		for _, b := range src {
			nb += int(encTable[b].Len)
		}
		if pad := len(enc)*8 - nb; pad < 0 || pad > 7 {
			t.Fatalf("test %d, padding of %d bits", i, pad)
		} else if pad > 0 && enc[len(enc)-1]&(1<<pad-1) != 1<<pad-1 {
			t.Fatalf("test %d, padding bits are not all ones", i)
		}
		if len(enc) < (len(src)*5+7)/8 || len(enc) > MaxEncodedLen(len(src)) {
			t.Fatalf("test %d, encoded size %d out of bounds", i, len(enc))
		}

		for _, be := range backends {
			out := make([]byte, MaxDecodedLen(len(enc)))
			n, err := be.decode(out, enc)
			if err != nil {
				t.Fatalf("test %d, unexpected %s decode error: %v", i, be.name, err)
			}
			if !bytes.Equal(out[:n], src) {
				t.Fatalf("test %d, %s round-trip mismatch", i, be.name)
			}
		}
	}
}

// TestRandomCorruption feeds random byte streams to both backends and to
// the x/net reference, expecting full agreement on validity and output.
func TestRandomCorruption(t *testing.T) {
	rand := testutil.NewRand(42)
	for i := 0; i < 2048; i++ {
		input := rand.Bytes(1 + rand.Intn(48))

		out := make([]byte, MaxDecodedLen(len(input)))
		n, err := decodeFullByte(out, input)
		nn, errNibble := decodeNibble(make([]byte, MaxDecodedLen(len(input))), input)
		if (err == nil) != (errNibble == nil) || (err == nil && n != nn) {
			t.Fatalf("test %d, backends disagree: %v vs %v", i, err, errNibble)
		}
		if err != nil && err != errNibble {
			t.Fatalf("test %d, backends report different kinds: %v vs %v", i, err, errNibble)
		}

		ref, refErr := hpack.HuffmanDecodeToString(input)
		if gotOK, refOK := err == nil, refErr == nil; gotOK != refOK {
			t.Fatalf("test %d, validity disagrees with x/net on %x: got %v, ref %v",
				i, input, err, refErr)
		}
		if err == nil && string(out[:n]) != ref {
			t.Fatalf("test %d, output disagrees with x/net on %x", i, input)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	data := testutil.ResizeData(testutil.MustLoadFile("../../testdata/headers.txt"), 1<<16)
	dst := make([]byte, MaxEncodedLen(len(data)))
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(dst, data); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkDecodeFullByte(b *testing.B) { benchmarkDecode(b, decodeFullByte) }
func BenchmarkDecodeNibble(b *testing.B)   { benchmarkDecode(b, decodeNibble) }

func benchmarkDecode(b *testing.B, decode func(dst, src []byte) (int, error)) {
	data := testutil.ResizeData(testutil.MustLoadFile("../../testdata/headers.txt"), 1<<16)
	enc := AppendEncode(nil, data)
	dst := make([]byte, MaxDecodedLen(len(enc)))
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decode(dst, enc); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
