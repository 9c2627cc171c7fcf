// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

import (
	"github.com/bitmark-inc/treemap/fault"
)

// AddRoot - place element at the root of an empty tree
func (tree *Tree[E]) AddRoot(element E) (Position[E], error) {
	if nil != tree.root {
		return Position[E]{}, fault.ErrAlreadyRooted
	}
	tree.root = &node[E]{element: element}
	tree.count = 1
	return tree.position(tree.root), nil
}

// AddLeft - create a new left child of p holding element
func (tree *Tree[E]) AddLeft(p Position[E], element E) (Position[E], error) {
	n, err := tree.validate(p)
	if nil != err {
		return Position[E]{}, err
	}
	if nil != n.left {
		return Position[E]{}, fault.ErrChildExists
	}
	n.left = &node[E]{element: element, parent: n}
	tree.count += 1
	return tree.position(n.left), nil
}

// AddRight - create a new right child of p holding element
func (tree *Tree[E]) AddRight(p Position[E], element E) (Position[E], error) {
	n, err := tree.validate(p)
	if nil != err {
		return Position[E]{}, err
	}
	if nil != n.right {
		return Position[E]{}, fault.ErrChildExists
	}
	n.right = &node[E]{element: element, parent: n}
	tree.count += 1
	return tree.position(n.right), nil
}

// Replace - store a new element at p and return the previous one
func (tree *Tree[E]) Replace(p Position[E], element E) (E, error) {
	n, err := tree.validate(p)
	if nil != err {
		var zero E
		return zero, err
	}
	old := n.element
	n.element = element
	return old, nil
}

// Remove - delete the node at p and return its element
//
// a node with a single child is replaced by that child; a node with
// two children is replaced by its inorder predecessor, which is moved
// rather than copied so that every other position stays valid
func (tree *Tree[E]) Remove(p Position[E]) (E, error) {
	n, err := tree.validate(p)
	if nil != err {
		var zero E
		return zero, err
	}

	if nil != n.left && nil != n.right {
		r := n.left.last()
		tree.splice(r) // r has no right child
		r.left = n.left
		r.right = n.right
		if nil != r.left {
			r.left.parent = r
		}
		r.right.parent = r
		tree.replaceChild(n.parent, n, r)
	} else {
		tree.splice(n)
	}

	element := n.element
	n.deprecate()
	tree.count -= 1
	return element, nil
}

// internal: unlink a node that has at most one child by promoting the child
func (tree *Tree[E]) splice(n *node[E]) {
	child := n.left
	if nil == child {
		child = n.right
	}
	tree.replaceChild(n.parent, n, child)
}

// internal: make child take the place of old below parent
//
// a nil parent means old was the root
func (tree *Tree[E]) replaceChild(parent *node[E], old *node[E], child *node[E]) {
	if nil != child {
		child.parent = parent
	}
	switch {
	case nil == parent:
		tree.root = child
	case old == parent.left:
		parent.left = child
	default:
		parent.right = child
	}
}
