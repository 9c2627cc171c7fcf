// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal

import (
	"iter"

	"github.com/bitmark-inc/treemap/fault"
)

// Preorder - visit each position before its children
func Preorder[P Handle](tree Tree[P]) iter.Seq[P] {
	return func(yield func(P) bool) {
		if tree.IsEmpty() {
			return
		}
		preorder(tree, tree.Root(), yield)
	}
}

// Postorder - visit each position after its children
func Postorder[P Handle](tree Tree[P]) iter.Seq[P] {
	return func(yield func(P) bool) {
		if tree.IsEmpty() {
			return
		}
		postorder(tree, tree.Root(), yield)
	}
}

// Inorder - visit the left subtree, then the position, then the right subtree
func Inorder[P Handle](tree BinaryTree[P]) iter.Seq[P] {
	return func(yield func(P) bool) {
		if tree.IsEmpty() {
			return
		}
		inorder(tree, tree.Root(), yield)
	}
}

// all the positions handed to these come from the tree itself, so an
// error here means the tree was changed underneath the walk
func preorder[P Handle](tree Tree[P], p P, yield func(P) bool) bool {
	if !yield(p) {
		return false
	}
	children, err := tree.Children(p)
	fault.PanicIfError("preorder", err)
	for c := range children {
		if !preorder(tree, c, yield) {
			return false
		}
	}
	return true
}

func postorder[P Handle](tree Tree[P], p P, yield func(P) bool) bool {
	children, err := tree.Children(p)
	fault.PanicIfError("postorder", err)
	for c := range children {
		if !postorder(tree, c, yield) {
			return false
		}
	}
	return yield(p)
}

func inorder[P Handle](tree BinaryTree[P], p P, yield func(P) bool) bool {
	left, err := tree.Left(p)
	fault.PanicIfError("inorder", err)
	if !left.IsNil() {
		if !inorder(tree, left, yield) {
			return false
		}
	}
	if !yield(p) {
		return false
	}
	right, err := tree.Right(p)
	fault.PanicIfError("inorder", err)
	if !right.IsNil() {
		return inorder(tree, right, yield)
	}
	return true
}

// Height - 0 for a leaf, otherwise one more than the tallest child
//
// time is linear in the size of the subtree
func Height[P Handle](tree Tree[P], p P) (int, error) {
	leaf, err := tree.IsLeaf(p)
	if nil != err {
		return 0, err
	}
	if leaf {
		return 0, nil
	}
	children, err := tree.Children(p)
	if nil != err {
		return 0, err
	}
	h := 0
	for c := range children {
		ch, err := Height(tree, c)
		if nil != err {
			return 0, err
		}
		if ch > h {
			h = ch
		}
	}
	return 1 + h, nil
}
