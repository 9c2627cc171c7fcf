// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

// Tree - type to hold the root node of a tree
type Tree[E any] struct {
	root  *node[E]
	count int
}

// New - create an initially empty tree
func New[E any]() *Tree[E] {
	return &Tree[E]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[E]) IsEmpty() bool {
	return nil == tree.root
}

// Len - number of nodes currently in the tree
func (tree *Tree[E]) Len() int {
	return tree.count
}

// Root - position of the root, nil position if tree is empty
func (tree *Tree[E]) Root() Position[E] {
	return tree.position(tree.root)
}
