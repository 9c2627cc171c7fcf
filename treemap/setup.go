// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treemap/binarytree"
	"github.com/bitmark-inc/treemap/fault"
)

// Entry - the element stored at each position of the map
type Entry[T cmp.Ordered] struct {
	key   T
	value T
}

// Key - the key part of an entry
func (e Entry[T]) Key() T {
	return e.key
}

// Value - the value part of an entry, used for ordering
func (e Entry[T]) Value() T {
	return e.value
}

func (e Entry[T]) String() string {
	return fmt.Sprintf("%v → %v", e.key, e.value)
}

// Map - a value ordered tree of key/value entries
type Map[T cmp.Ordered] struct {
	tree *binarytree.Tree[Entry[T]]
	log  *logger.L
}

// New - create an empty map
func New[T cmp.Ordered]() *Map[T] {
	return &Map[T]{
		tree: binarytree.New[Entry[T]](),
	}
}

// SetLog - attach a logger channel for restructuring messages
func (m *Map[T]) SetLog(log *logger.L) {
	m.log = log
}

// IsEmpty - true if the map holds no entries
func (m *Map[T]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Len - number of entries
func (m *Map[T]) Len() int {
	return m.tree.Len()
}

// Root - position of the root entry, nil position if empty
func (m *Map[T]) Root() binarytree.Position[Entry[T]] {
	return m.tree.Root()
}

// Parent - see binarytree.Tree.Parent
func (m *Map[T]) Parent(p binarytree.Position[Entry[T]]) (binarytree.Position[Entry[T]], error) {
	return m.tree.Parent(p)
}

// Left - see binarytree.Tree.Left
func (m *Map[T]) Left(p binarytree.Position[Entry[T]]) (binarytree.Position[Entry[T]], error) {
	return m.tree.Left(p)
}

// Right - see binarytree.Tree.Right
func (m *Map[T]) Right(p binarytree.Position[Entry[T]]) (binarytree.Position[Entry[T]], error) {
	return m.tree.Right(p)
}

// Children - see binarytree.Tree.Children
func (m *Map[T]) Children(p binarytree.Position[Entry[T]]) (iter.Seq[binarytree.Position[Entry[T]]], error) {
	return m.tree.Children(p)
}

// Height - height of the subtree at p, a leaf is 0
func (m *Map[T]) Height(p binarytree.Position[Entry[T]]) (int, error) {
	return m.tree.Height(p)
}

// TreeHeight - height of the whole tree, -1 if empty
func (m *Map[T]) TreeHeight() int {
	return m.tree.TreeHeight()
}

// Preorder - every position, parents before children
func (m *Map[T]) Preorder() iter.Seq[binarytree.Position[Entry[T]]] {
	return m.tree.Preorder()
}

// Inorder - every position in ascending value order
func (m *Map[T]) Inorder() iter.Seq[binarytree.Position[Entry[T]]] {
	return m.tree.Inorder()
}

// Postorder - every position, children before parents
func (m *Map[T]) Postorder() iter.Seq[binarytree.Position[Entry[T]]] {
	return m.tree.Postorder()
}

// internal navigation on positions that came from this tree,
// failure means the tree is corrupt
func (m *Map[T]) parent(p binarytree.Position[Entry[T]]) binarytree.Position[Entry[T]] {
	parent, err := m.tree.Parent(p)
	fault.PanicIfError("treemap: parent", err)
	return parent
}

func (m *Map[T]) left(p binarytree.Position[Entry[T]]) binarytree.Position[Entry[T]] {
	left, err := m.tree.Left(p)
	fault.PanicIfError("treemap: left", err)
	return left
}

func (m *Map[T]) right(p binarytree.Position[Entry[T]]) binarytree.Position[Entry[T]] {
	right, err := m.tree.Right(p)
	fault.PanicIfError("treemap: right", err)
	return right
}

func (m *Map[T]) height(p binarytree.Position[Entry[T]]) int {
	h, err := m.tree.Height(p)
	fault.PanicIfError("treemap: height", err)
	return h
}
