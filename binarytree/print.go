// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree,
// right subtree at the top, returns the number of levels
func (tree *Tree[E]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree[E any](w io.Writer, tree *node[E], prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v\n", tree.element)
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
