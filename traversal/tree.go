// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal

import (
	"iter"
)

// Handle - a position inside some tree, the zero value is "no position"
type Handle interface {
	IsNil() bool
}

// Tree - minimum a tree must provide for preorder, postorder and height
type Tree[P Handle] interface {
	IsEmpty() bool
	Root() P
	Children(p P) (iter.Seq[P], error)
	IsLeaf(p P) (bool, error)
}

// BinaryTree - an inorder walk also needs to separate left from right
type BinaryTree[P Handle] interface {
	Tree[P]
	Left(p P) (P, error)
	Right(p P) (P, error)
}
