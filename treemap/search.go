// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/bitmark-inc/treemap/binarytree"
	"github.com/bitmark-inc/treemap/fault"
)

// Get - find the position holding value
func (m *Map[T]) Get(value T) (binarytree.Position[Entry[T]], error) {
	if m.tree.IsEmpty() {
		return binarytree.Position[Entry[T]]{}, fault.ErrKeyNotFound
	}
	p := m.search(m.tree.Root(), value)
	if p.Element().value != value {
		return binarytree.Position[Entry[T]]{}, fault.ErrKeyNotFound
	}
	return p, nil
}

// Contains - true if some entry holds value
func (m *Map[T]) Contains(value T) bool {
	_, err := m.Get(value)
	return nil == err
}

// internal: descend from p towards value, stopping at an equal value
// or where the next child would be missing
func (m *Map[T]) search(p binarytree.Position[Entry[T]], value T) binarytree.Position[Entry[T]] {
	for {
		current := p.Element().value
		next := p
		switch {
		case value == current:
			return p
		case value < current:
			next = m.left(p)
		default:
			next = m.right(p)
		}
		if next.IsNil() {
			return p
		}
		p = next
	}
}
