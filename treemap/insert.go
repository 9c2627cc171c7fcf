// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/bitmark-inc/treemap/binarytree"
)

// Set - insert a new entry placed by its value and rebalance
//
// the descent is the one Get uses, so an equal value is placed to the
// right of the first match found; if that slot is taken the result is
// fault.ErrChildExists and the map is unchanged
func (m *Map[T]) Set(key T, value T) (binarytree.Position[Entry[T]], error) {
	item := Entry[T]{key: key, value: value}

	if m.tree.IsEmpty() {
		leaf, err := m.tree.AddRoot(item)
		if nil != err {
			return leaf, err
		}
		m.rebalance(leaf)
		return leaf, nil
	}

	p := m.search(m.tree.Root(), value)
	add := m.tree.AddRight
	if value < p.Element().value {
		add = m.tree.AddLeft
	}
	leaf, err := add(p, item)
	if nil != err {
		return leaf, err
	}
	m.rebalance(leaf)
	return leaf, nil
}
