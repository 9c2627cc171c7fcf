// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

import (
	"iter"

	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/traversal"
)

// Preorder - every position, each before its children
func (tree *Tree[E]) Preorder() iter.Seq[Position[E]] {
	return traversal.Preorder[Position[E]](tree)
}

// Inorder - every position, between its left and right subtrees
func (tree *Tree[E]) Inorder() iter.Seq[Position[E]] {
	return traversal.Inorder[Position[E]](tree)
}

// Postorder - every position, each after its children
func (tree *Tree[E]) Postorder() iter.Seq[Position[E]] {
	return traversal.Postorder[Position[E]](tree)
}

// Height - height of the subtree rooted at p, a leaf is 0
func (tree *Tree[E]) Height(p Position[E]) (int, error) {
	return traversal.Height[Position[E]](tree, p)
}

// TreeHeight - height of the whole tree, -1 if it is empty
func (tree *Tree[E]) TreeHeight() int {
	if tree.IsEmpty() {
		return -1
	}
	h, err := tree.Height(tree.Root())
	fault.PanicIfError("binarytree: height of root", err)
	return h
}
