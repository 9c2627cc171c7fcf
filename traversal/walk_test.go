// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/traversal"
	"github.com/bitmark-inc/treemap/traversal/mocks"
)

type handle string

func (h handle) IsNil() bool {
	return "" == h
}

// shape maps each position to its {left, right} children
type shape map[handle][2]handle

func mockTree(ctl *gomock.Controller, root handle, s shape) *mocks.MockBinaryTree[handle] {
	m := mocks.NewMockBinaryTree[handle](ctl)
	m.EXPECT().IsEmpty().Return(root.IsNil()).AnyTimes()
	m.EXPECT().Root().Return(root).AnyTimes()
	for p, lr := range s {
		children := []handle{}
		for _, c := range lr {
			if !c.IsNil() {
				children = append(children, c)
			}
		}
		m.EXPECT().Children(p).Return(slices.Values(children), nil).AnyTimes()
		m.EXPECT().IsLeaf(p).Return(0 == len(children), nil).AnyTimes()
		m.EXPECT().Left(p).Return(lr[0], nil).AnyTimes()
		m.EXPECT().Right(p).Return(lr[1], nil).AnyTimes()
	}
	return m
}

//        a
//      /   \
//     b     c
//    / \     \
//   d   e     f
//      /
//     g
var sample = shape{
	"a": {"b", "c"},
	"b": {"d", "e"},
	"c": {"", "f"},
	"d": {"", ""},
	"e": {"g", ""},
	"f": {"", ""},
	"g": {"", ""},
}

func collect(seq iter.Seq[handle]) string {
	s := ""
	for p := range seq {
		s += string(p)
	}
	return s
}

func TestWalks(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mockTree(ctl, "a", sample)

	assert.Equal(t, "abdegcf", collect(traversal.Preorder[handle](tree)), "preorder")
	assert.Equal(t, "dbgeacf", collect(traversal.Inorder[handle](tree)), "inorder")
	assert.Equal(t, "dgebfca", collect(traversal.Postorder[handle](tree)), "postorder")

	// sequences restart from the root each time they are ranged over
	seq := traversal.Preorder[handle](tree)
	assert.Equal(t, collect(seq), collect(seq), "restart")
}

func TestWalkEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mockTree(ctl, "", shape{})

	assert.Empty(t, collect(traversal.Preorder[handle](tree)))
	assert.Empty(t, collect(traversal.Inorder[handle](tree)))
	assert.Empty(t, collect(traversal.Postorder[handle](tree)))
}

func TestWalkStopsEarly(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mockTree(ctl, "a", sample)

	for name, seq := range map[string]iter.Seq[handle]{
		"preorder":  traversal.Preorder[handle](tree),
		"inorder":   traversal.Inorder[handle](tree),
		"postorder": traversal.Postorder[handle](tree),
	} {
		n := 0
		for range seq {
			n += 1
			if 3 == n {
				break
			}
		}
		assert.Equal(t, 3, n, name)
	}
}

func TestHeight(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mockTree(ctl, "a", sample)

	expected := map[handle]int{
		"a": 3, "b": 2, "c": 1, "d": 0, "e": 1, "f": 0, "g": 0,
	}
	for p, h := range expected {
		actual, err := traversal.Height[handle](tree, p)
		require.NoError(t, err, "height of %q", p)
		assert.Equal(t, h, actual, "height of %q", p)
	}
}

func TestHeightPropagatesError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mocks.NewMockBinaryTree[handle](ctl)
	tree.EXPECT().IsLeaf(handle("x")).Return(false, fault.ErrInvalidPosition).Times(1)

	_, err := traversal.Height[handle](tree, "x")
	assert.Equal(t, fault.ErrInvalidPosition, err)
}

func TestWalkPanicsOnBrokenTree(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := mocks.NewMockBinaryTree[handle](ctl)
	tree.EXPECT().IsEmpty().Return(false).AnyTimes()
	tree.EXPECT().Root().Return(handle("a")).AnyTimes()
	tree.EXPECT().Children(handle("a")).Return(nil, fault.ErrInvalidPosition).AnyTimes()

	assert.Panics(t, func() {
		collect(traversal.Preorder[handle](tree))
	})
}
