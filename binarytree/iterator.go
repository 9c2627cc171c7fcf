// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

// First - the first position of an inorder walk
func (tree *Tree[E]) First() Position[E] {
	return tree.position(tree.root.first())
}

// Last - the last position of an inorder walk
func (tree *Tree[E]) Last() Position[E] {
	return tree.position(tree.root.last())
}

// After - the position visited after p by an inorder walk or nil
// position if p is the last one
func (tree *Tree[E]) After(p Position[E]) (Position[E], error) {
	n, err := tree.validate(p)
	if nil != err {
		return Position[E]{}, err
	}
	if nil != n.right {
		return tree.position(n.right.first()), nil
	}
	for nil != n.parent && n == n.parent.right {
		n = n.parent
	}
	return tree.position(n.parent), nil
}

// Before - the position visited before p by an inorder walk or nil
// position if p is the first one
func (tree *Tree[E]) Before(p Position[E]) (Position[E], error) {
	n, err := tree.validate(p)
	if nil != err {
		return Position[E]{}, err
	}
	if nil != n.left {
		return tree.position(n.left.last()), nil
	}
	for nil != n.parent && n == n.parent.left {
		n = n.parent
	}
	return tree.position(n.parent), nil
}
