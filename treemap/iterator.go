// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"iter"

	"github.com/bitmark-inc/treemap/binarytree"
)

// Keys - keys in ascending value order
func (m *Map[T]) Keys() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range m.tree.Inorder() {
			if !yield(p.Element().key) {
				return
			}
		}
	}
}

// Values - values in ascending order
func (m *Map[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range m.tree.Inorder() {
			if !yield(p.Element().value) {
				return
			}
		}
	}
}

// All - key/value pairs in ascending value order
func (m *Map[T]) All() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for p := range m.tree.Inorder() {
			e := p.Element()
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// First - position with the lowest value, nil position if empty
func (m *Map[T]) First() binarytree.Position[Entry[T]] {
	return m.tree.First()
}

// Last - position with the highest value, nil position if empty
func (m *Map[T]) Last() binarytree.Position[Entry[T]] {
	return m.tree.Last()
}

// After - next position in value order, nil position after the last
func (m *Map[T]) After(p binarytree.Position[Entry[T]]) (binarytree.Position[Entry[T]], error) {
	return m.tree.After(p)
}

// Before - previous position in value order, nil position before the first
func (m *Map[T]) Before(p binarytree.Position[Entry[T]]) (binarytree.Position[Entry[T]], error) {
	return m.tree.Before(p)
}
