// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package benchmark

import (
	"bytes"

	"github.com/lwdjohari/h2v/hpack/huffman"
	"golang.org/x/net/http2/hpack"
)

func init() {
	Register("h2v", Codec{
		Encode: func(b []byte) ([]byte, error) {
			return huffman.AppendEncode(nil, b), nil
		},
		Decode: func(b []byte) ([]byte, error) {
			return huffman.AppendDecode(nil, b)
		},
	})

	Register("xnet", Codec{
		Encode: func(b []byte) ([]byte, error) {
			return hpack.AppendHuffmanString(nil, string(b)), nil
		},
		Decode: func(b []byte) ([]byte, error) {
			var buf bytes.Buffer
			if _, err := hpack.HuffmanDecode(&buf, b); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	})
}
