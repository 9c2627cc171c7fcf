// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

import (
	"github.com/bitmark-inc/treemap/fault"
)

// Position - the location of a single element within a specific tree
//
// the zero value means "no position" and is what navigation returns
// when there is no root, parent or child
type Position[E any] struct {
	tree *Tree[E]
	node *node[E]
}

// IsNil - true if this does not refer to any node
func (p Position[E]) IsNil() bool {
	return nil == p.node
}

// Element - the element stored at this position
//
// a nil position returns the zero element
func (p Position[E]) Element() E {
	if nil == p.node {
		var zero E
		return zero
	}
	return p.node.element
}

// return the node behind a position if it belongs to this tree
func (tree *Tree[E]) validate(p Position[E]) (*node[E], error) {
	if nil == p.node || p.tree != tree || p.node.removed() {
		return nil, fault.ErrInvalidPosition
	}
	return p.node, nil
}

// wrap a node, nil node gives the nil position
func (tree *Tree[E]) position(n *node[E]) Position[E] {
	if nil == n {
		return Position[E]{}
	}
	return Position[E]{tree: tree, node: n}
}
