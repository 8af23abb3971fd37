// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package benchmark

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwdjohari/h2v/internal/testutil"
)

func TestCodecs(t *testing.T) {
	data := testutil.ResizeData(testutil.MustLoadFile("../../testdata/headers.txt"), 1<<14)

	for _, name := range []string{"h2v", "xnet", "fl", "xz"} {
		c, ok := Codecs[name]
		if !assert.True(t, ok, "codec %s is registered", name) {
			continue
		}
		enc, err := c.Encode(data)
		assert.Nil(t, err, "codec %s encode", name)
		dec, err := c.Decode(enc)
		assert.Nil(t, err, "codec %s decode", name)
		assert.True(t, bytes.Equal(dec, data), "codec %s round-trip", name)
	}
}

// TestHuffmanAgainstReference checks that the two registered HPACK codecs
// produce identical wire bytes on the corpus.
func TestHuffmanAgainstReference(t *testing.T) {
	data := testutil.MustLoadFile("../../testdata/headers.txt")
	for _, line := range bytes.Split(data, []byte("\n")) {
		enc1, err1 := Codecs["h2v"].Encode(line)
		enc2, err2 := Codecs["xnet"].Encode(line)
		assert.Nil(t, err1)
		assert.Nil(t, err2)
		assert.True(t, bytes.Equal(enc1, enc2), "wire mismatch on %q", line)
	}
}

func TestRatio(t *testing.T) {
	data := testutil.MustLoadFile("../../testdata/headers.txt")
	r, err := Ratio(data, Codecs["h2v"])
	assert.Nil(t, err)

	// Header text is mostly lowercase ASCII, which the HPACK code maps to
	// five to seven bit codewords.
	assert.True(t, r > 1.0 && r < 1.6, "unlikely huffman ratio %v", r)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "-", FormatRate(testing.BenchmarkResult{}))
}
