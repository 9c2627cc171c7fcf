// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/bitmark-inc/treemap/binarytree"
	"github.com/bitmark-inc/treemap/fault"
)

// internal: walk from a new leaf towards the root restructuring any
// unbalanced node; stops once a restructure has reduced the height of
// the node it started from by one
func (m *Map[T]) rebalance(p binarytree.Position[Entry[T]]) {
	for !p.IsNil() {
		oldHeight := m.height(p)
		if !m.balanced(p) {
			top := m.restructure(m.highestGrandchild(p))
			if nil != m.log {
				m.log.Debugf("restructure at: %v  new subtree root: %v", p.Element(), top.Element())
			}
		}
		if oldHeight == m.height(p)+1 {
			return
		}
		p = m.parent(p)
	}
}

// internal: a node with two children is balanced if their heights
// differ by at most one
//
// a node with fewer children gives no verdict and counts as balanced
func (m *Map[T]) balanced(p binarytree.Position[Entry[T]]) bool {
	children, err := m.tree.Children(p)
	fault.PanicIfError("treemap: balanced", err)

	heights := make([]int, 0, 2)
	for c := range children {
		heights = append(heights, m.height(c)+1)
	}
	if len(heights) < 2 {
		return true
	}
	d := heights[1] - heights[0]
	return -1 <= d && d <= 1
}

// internal: tallest grandchild of p, on a tie the later one in
// left-to-right order
func (m *Map[T]) highestGrandchild(p binarytree.Position[Entry[T]]) binarytree.Position[Entry[T]] {
	grandchildren, err := m.tree.Grandchildren(p)
	fault.PanicIfError("treemap: grandchildren", err)

	highest := binarytree.Position[Entry[T]]{}
	highestHeight := -1
	for g := range grandchildren {
		if h := m.height(g); h >= highestHeight {
			highest = g
			highestHeight = h
		}
	}
	return highest
}

// internal: trinode restructure of x with its parent and grandparent,
// returns the new root of the three
func (m *Map[T]) restructure(x binarytree.Position[Entry[T]]) binarytree.Position[Entry[T]] {
	y := m.parent(x)
	z := m.parent(y)
	if (x == m.right(y)) == (y == m.right(z)) {
		// matching alignment: single rotation
		fault.PanicIfError("treemap: rotate", m.tree.Rotate(y))
		return y
	}
	// opposite alignment: double rotation
	fault.PanicIfError("treemap: rotate", m.tree.Rotate(x))
	fault.PanicIfError("treemap: rotate", m.tree.Rotate(x))
	return x
}
