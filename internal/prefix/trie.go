// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import "github.com/lwdjohari/h2v/internal/errors"

// The trie is built with pointers for convenience, but it is only an
// intermediate form. States are the trie nodes in breadth-first order
// (the root is state 0), and every derived table is a flat array indexed
// by that numbering. The runtime never sees a pointer.

type node struct {
	child [2]*node
	sym   int // 0..255 octet, EOS, or -1 for internal nodes
	state int // index in breadth-first order
}

func (n *node) leaf() bool { return n.sym >= 0 }

// Trie is the codeword trie of the HPACK Huffman code with its nodes
// numbered in breadth-first order.
type Trie struct {
	root  *node
	nodes []*node // nodes[i].state == i
}

// NewTrie builds the trie from the codebook. It panics with an internal
// error if the codebook is not a prefix code.
func NewTrie() *Trie {
	t := &Trie{root: &node{sym: -1}}
	for sym := 0; sym < NumSymbols; sym++ {
		code, length := Code(sym), Len(sym)
		n := t.root
		for i := int(length) - 1; i >= 0; i-- {
			if n.leaf() {
				panicCorruptTrie("codeword extends past a leaf")
			}
			bit := code >> uint(i) & 1
			if n.child[bit] == nil {
				n.child[bit] = &node{sym: -1}
			}
			n = n.child[bit]
		}
		if n.leaf() || n.child[0] != nil || n.child[1] != nil {
			panicCorruptTrie("codeword terminates on a non-empty node")
		}
		n.sym = sym
	}

	// Number the nodes in breadth-first order.
	queue := []*node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		n.state = len(t.nodes)
		t.nodes = append(t.nodes, n)
		for _, c := range n.child {
			if c != nil {
				queue = append(queue, c)
			}
		}
	}
	return t
}

// NumStates returns the total number of states, leaves included.
// Leaves never appear as a next state since emitting a symbol returns
// the machine to the root.
func (t *Trie) NumStates() int { return len(t.nodes) }

// step advances one bit from n, emitting the completed symbol (if any)
// and resetting to the root on emission. A nil node means the bit has no
// transition, which cannot happen for a complete code but is reported
// anyway so that Verify can reject a broken codebook.
func (t *Trie) step(n *node, bit uint32) (next *node, sym int, emitted bool) {
	c := n.child[bit]
	if c == nil {
		return nil, 0, false
	}
	if c.leaf() {
		return t.root, c.sym, true
	}
	return c, 0, false
}

func panicCorruptTrie(msg string) {
	errors.Panic(errors.Error{Code: errors.Internal, Pkg: "prefix", Msg: msg})
}
