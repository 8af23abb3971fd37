// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build debug
// +build debug

package prefix

import (
	"fmt"
	"strings"
)

// String prints the trie states grouped by depth along with the accepting
// markers. Useful when eyeballing generator changes against RFC 7541.
func (t *Trie) String() string {
	depths := t.StateDepths()
	accepting := t.AcceptingBitmap()

	var ss []string
	ss = append(ss, "{")
	for st, n := range t.nodes {
		var mark string
		if accepting[st/64]>>(uint(st)%64)&1 != 0 {
			mark = " accept"
		}
		if n.leaf() {
			ss = append(ss, fmt.Sprintf("\tstate[%03d] depth:%02d leaf:%d%s",
				st, depths[st], n.sym, mark))
		} else if mark != "" || depths[st] == 0 {
			ss = append(ss, fmt.Sprintf("\tstate[%03d] depth:%02d%s",
				st, depths[st], mark))
		}
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

func (e ByteEntry) String() string {
	if e.Emit == EmitError {
		return "{ERR}"
	}
	return fmt.Sprintf("{next:%d emit:%d syms:%v}", e.Next, e.Emit, e.Syms[:e.Emit])
}
