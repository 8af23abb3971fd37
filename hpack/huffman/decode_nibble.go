// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "github.com/lwdjohari/h2v/internal/prefix"

// decodeNibble consumes two packed table words per input octet. The table
// is roughly 16x smaller than the full-byte one at the cost of the second
// lookup; both walks of a byte visit the same states, so the tail check
// is shared with the full-byte backend.
func decodeNibble(dst, src []byte) (int, error) {
	var state uint32
	var pos int
	for _, b := range src {
		w := nibbleTable[state<<4|uint32(b>>4)]
		if w&prefix.NibbleError != 0 {
			return 0, ErrInvalidPrefix
		}
		if cnt := w >> prefix.NibbleEmitShift & prefix.NibbleEmitMask; cnt > 0 {
			if pos+int(cnt) > len(dst) {
				return 0, ErrOutputTooSmall
			}
			dst[pos] = uint8(w >> prefix.NibbleSym0Shift)
			if cnt == 2 {
				dst[pos+1] = uint8(w >> prefix.NibbleSym1Shift)
			}
			pos += int(cnt)
		}
		state = w >> prefix.NibbleStateShift & prefix.NibbleStateMask

		w = nibbleTable[state<<4|uint32(b&0x0F)]
		if w&prefix.NibbleError != 0 {
			return 0, ErrInvalidPrefix
		}
		if cnt := w >> prefix.NibbleEmitShift & prefix.NibbleEmitMask; cnt > 0 {
			if pos+int(cnt) > len(dst) {
				return 0, ErrOutputTooSmall
			}
			dst[pos] = uint8(w >> prefix.NibbleSym0Shift)
			if cnt == 2 {
				dst[pos+1] = uint8(w >> prefix.NibbleSym1Shift)
			}
			pos += int(cnt)
		}
		state = w >> prefix.NibbleStateShift & prefix.NibbleStateMask
	}
	if err := checkTail(uint16(state)); err != nil {
		return 0, err
	}
	return pos, nil
}
