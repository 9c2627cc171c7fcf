// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/bitmark-inc/treemap/binarytree"
	"github.com/bitmark-inc/treemap/fault"
)

// Delete - remove the entry with key and return its value
//
// the search runs with key as the target value, so this finds the
// entry whose key matches the value it is ordered by
func (m *Map[T]) Delete(key T) (T, error) {
	var zero T
	if m.tree.IsEmpty() {
		return zero, fault.ErrKeyNotFound
	}
	p := m.search(m.tree.Root(), key)
	if p.Element().key != key {
		return zero, fault.ErrKeyNotFound
	}
	item, err := m.DeletePosition(p)
	if nil != err {
		return zero, err
	}
	return item.value, nil
}

// DeletePosition - remove the entry at p
//
// no rebalancing is done after a removal
func (m *Map[T]) DeletePosition(p binarytree.Position[Entry[T]]) (Entry[T], error) {
	item, err := m.tree.Remove(p)
	if nil != err {
		return item, err
	}
	if nil != m.log {
		m.log.Debugf("deleted: %v  remaining: %d", item, m.tree.Len())
	}
	return item, nil
}

// DeleteValue - remove the first entry found holding value
func (m *Map[T]) DeleteValue(value T) (Entry[T], error) {
	p, err := m.Get(value)
	if nil != err {
		return Entry[T]{}, err
	}
	return m.DeletePosition(p)
}
