// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"io"
)

// CheckUp - parent and child links agree and the count is right
func (m *Map[T]) CheckUp() bool {
	return m.tree.CheckUp()
}

// CheckOrder - an inorder walk never decreases in value
func (m *Map[T]) CheckOrder() bool {
	first := true
	var previous T
	for v := range m.Values() {
		if !first && v < previous {
			return false
		}
		previous = v
		first = false
	}
	return true
}

// Balanced - every node passes the same test used after insertion
func (m *Map[T]) Balanced() bool {
	for p := range m.tree.Preorder() {
		if !m.balanced(p) {
			return false
		}
	}
	return true
}

// Print - display an ASCII graphic representation of the tree,
// returns the number of levels
func (m *Map[T]) Print(w io.Writer) int {
	return m.tree.Print(w)
}
