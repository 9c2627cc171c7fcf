// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binarytree

// CheckUp - check the parent pointers for consistency with the child
// pointers and that the count matches the reachable nodes
func (tree *Tree[E]) CheckUp() bool {
	n, ok := checkup(tree.root, nil)
	return ok && n == tree.count
}

// internal: consistency checker, returns the number of nodes visited
func checkup[E any](p *node[E], up *node[E]) (int, bool) {
	if nil == p {
		return 0, true
	}
	if p.parent != up {
		return 0, false
	}
	nl, ok := checkup(p.left, p)
	if !ok {
		return 0, false
	}
	nr, ok := checkup(p.right, p)
	if !ok {
		return 0, false
	}
	return 1 + nl + nr, true
}
