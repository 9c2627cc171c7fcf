// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

import (
	"iter"
)

// Parent - position of the parent of p, nil position if p is the root
func (tree *Tree[E]) Parent(p Position[E]) (Position[E], error) {
	n, err := tree.validate(p)
	if nil != err {
		return Position[E]{}, err
	}
	return tree.position(n.parent), nil
}

// Left - position of the left child of p, nil position if none
func (tree *Tree[E]) Left(p Position[E]) (Position[E], error) {
	n, err := tree.validate(p)
	if nil != err {
		return Position[E]{}, err
	}
	return tree.position(n.left), nil
}

// Right - position of the right child of p, nil position if none
func (tree *Tree[E]) Right(p Position[E]) (Position[E], error) {
	n, err := tree.validate(p)
	if nil != err {
		return Position[E]{}, err
	}
	return tree.position(n.right), nil
}

// Sibling - the other child of the parent of p, nil position if none
func (tree *Tree[E]) Sibling(p Position[E]) (Position[E], error) {
	n, err := tree.validate(p)
	if nil != err {
		return Position[E]{}, err
	}
	if nil == n.parent {
		return Position[E]{}, nil
	}
	if n == n.parent.left {
		return tree.position(n.parent.right), nil
	}
	return tree.position(n.parent.left), nil
}

// Children - the children of p that exist, left before right
//
// the sequence reads the links when it is ranged over, so it can be
// restarted
func (tree *Tree[E]) Children(p Position[E]) (iter.Seq[Position[E]], error) {
	n, err := tree.validate(p)
	if nil != err {
		return nil, err
	}
	return func(yield func(Position[E]) bool) {
		if nil != n.left && !yield(tree.position(n.left)) {
			return
		}
		if nil != n.right {
			yield(tree.position(n.right))
		}
	}, nil
}

// Grandchildren - children of the children of p, in the order the
// children are visited
func (tree *Tree[E]) Grandchildren(p Position[E]) (iter.Seq[Position[E]], error) {
	n, err := tree.validate(p)
	if nil != err {
		return nil, err
	}
	return func(yield func(Position[E]) bool) {
		for _, c := range []*node[E]{n.left, n.right} {
			if nil == c {
				continue
			}
			if nil != c.left && !yield(tree.position(c.left)) {
				return
			}
			if nil != c.right && !yield(tree.position(c.right)) {
				return
			}
		}
	}, nil
}

// NumChildren - 0, 1 or 2
func (tree *Tree[E]) NumChildren(p Position[E]) (int, error) {
	n, err := tree.validate(p)
	if nil != err {
		return 0, err
	}
	count := 0
	if nil != n.left {
		count += 1
	}
	if nil != n.right {
		count += 1
	}
	return count, nil
}

// IsLeaf - true if p has no children
func (tree *Tree[E]) IsLeaf(p Position[E]) (bool, error) {
	count, err := tree.NumChildren(p)
	if nil != err {
		return false, err
	}
	return 0 == count, nil
}

// IsRoot - true if p is the root of this tree
func (tree *Tree[E]) IsRoot(p Position[E]) (bool, error) {
	n, err := tree.validate(p)
	if nil != err {
		return false, err
	}
	return n == tree.root, nil
}

// Depth - number of ancestors of p
func (tree *Tree[E]) Depth(p Position[E]) (int, error) {
	n, err := tree.validate(p)
	if nil != err {
		return 0, err
	}
	count := 0
	for parent := n.parent; nil != parent; parent = parent.parent {
		count += 1
	}
	return count, nil
}
