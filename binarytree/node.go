// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

// a node in the tree
type node[E any] struct {
	element E        // data stored at this position
	parent  *node[E] // points to parent node, nil for the root
	left    *node[E] // left sub-tree
	right   *node[E] // right sub-tree
}

// a removed node points to itself so old positions can be detected
func (n *node[E]) deprecate() {
	var zero E
	n.element = zero
	n.left = nil
	n.right = nil
	n.parent = n
}

func (n *node[E]) removed() bool {
	return n.parent == n
}

// internal: lowest node in a sub-tree
func (n *node[E]) first() *node[E] {
	if nil == n {
		return nil
	}
	for nil != n.left {
		n = n.left
	}
	return n
}

// internal: highest node in a sub-tree
func (n *node[E]) last() *node[E] {
	if nil == n {
		return nil
	}
	for nil != n.right {
		n = n.right
	}
	return n
}
