// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

import (
	"github.com/bitmark-inc/treemap/fault"
)

// Rotate - move p above its parent
//
// for a left child:                 for a right child:
//
//	    y            p                 y                p
//	   / \          / \               / \              / \
//	  p   c   →    a   y             a   p      →     y   c
//	 / \              / \               / \          / \
//	a   b            b   c             b   c        a   b
//
// p takes the parent's place below the grandparent, or becomes the
// root; the subtree between them changes sides
func (tree *Tree[E]) Rotate(p Position[E]) error {
	x, err := tree.validate(p)
	if nil != err {
		return err
	}
	y := x.parent
	if nil == y {
		return fault.ErrNoParent
	}
	z := y.parent // grandparent, possibly nil

	tree.replaceChild(z, y, x)

	if x == y.left {
		relink(y, x.right, true)
		relink(x, y, false)
	} else {
		relink(y, x.left, false)
		relink(x, y, true)
	}
	return nil
}

// internal: make child the left or right child of parent, child may be nil
func relink[E any](parent *node[E], child *node[E], makeLeft bool) {
	if makeLeft {
		parent.left = child
	} else {
		parent.right = child
	}
	if nil != child {
		child.parent = parent
	}
}
