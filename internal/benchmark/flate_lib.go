// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package benchmark

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

func init() {
	Register("fl", Codec{
		Encode: func(b []byte) ([]byte, error) {
			var buf bytes.Buffer
			zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
			if err != nil {
				return nil, err
			}
			if _, err := zw.Write(b); err != nil {
				return nil, err
			}
			if err := zw.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		Decode: func(b []byte) ([]byte, error) {
			zr := flate.NewReader(bytes.NewReader(b))
			defer zr.Close()
			return io.ReadAll(zr)
		},
	})
}
