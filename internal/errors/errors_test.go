// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package errors

import (
	"io"
	"testing"
)

func TestErrors(t *testing.T) {
	errCorrupt := Error{Code: Corrupted, Pkg: "huffman", Msg: "stream is corrupted"}
	errPlain := Error{Code: Invalid}

	if got, want := errCorrupt.Error(), "huffman: stream is corrupted"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := errPlain.Error(), "invalid argument"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !IsCorrupted(errCorrupt) || IsInvalid(errCorrupt) {
		t.Errorf("misclassified %v", errCorrupt)
	}
	if IsCorrupted(io.EOF) || IsInvalid(io.EOF) || IsInternal(io.EOF) {
		t.Errorf("misclassified foreign error")
	}
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		Panic(Error{Code: Internal, Pkg: "prefix", Msg: "boom"})
		return nil
	}
	if err := fail(); !IsInternal(err) {
		t.Errorf("recovered %v, want an internal error", err)
	}

	// Foreign panic values must pass through.
	defer func() {
		if recover() == nil {
			t.Errorf("foreign panic was swallowed")
		}
	}()
	func() (err error) {
		defer Recover(&err)
		panic("not an error")
	}()
}
