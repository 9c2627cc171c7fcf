// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles for the traversal interfaces
//
// mockgen v1.6 cannot generate mocks for generic interfaces, so this
// file is maintained by hand in the layout mockgen produces; keep it in
// step with traversal.BinaryTree
package mocks

import (
	"iter"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/treemap/traversal"
)

// MockBinaryTree is a mock of the traversal.BinaryTree interface
type MockBinaryTree[P traversal.Handle] struct {
	ctrl     *gomock.Controller
	recorder *MockBinaryTreeMockRecorder[P]
}

// MockBinaryTreeMockRecorder is the mock recorder for MockBinaryTree
type MockBinaryTreeMockRecorder[P traversal.Handle] struct {
	mock *MockBinaryTree[P]
}

// NewMockBinaryTree creates a new mock instance
func NewMockBinaryTree[P traversal.Handle](ctrl *gomock.Controller) *MockBinaryTree[P] {
	mock := &MockBinaryTree[P]{ctrl: ctrl}
	mock.recorder = &MockBinaryTreeMockRecorder[P]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockBinaryTree[P]) EXPECT() *MockBinaryTreeMockRecorder[P] {
	return m.recorder
}

// IsEmpty mocks base method
func (m *MockBinaryTree[P]) IsEmpty() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsEmpty")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsEmpty indicates an expected call of IsEmpty
func (mr *MockBinaryTreeMockRecorder[P]) IsEmpty() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsEmpty", reflect.TypeOf((*MockBinaryTree[P])(nil).IsEmpty))
}

// Root mocks base method
func (m *MockBinaryTree[P]) Root() P {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Root")
	ret0, _ := ret[0].(P)
	return ret0
}

// Root indicates an expected call of Root
func (mr *MockBinaryTreeMockRecorder[P]) Root() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Root", reflect.TypeOf((*MockBinaryTree[P])(nil).Root))
}

// Children mocks base method
func (m *MockBinaryTree[P]) Children(p P) (iter.Seq[P], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Children", p)
	ret0, _ := ret[0].(iter.Seq[P])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Children indicates an expected call of Children
func (mr *MockBinaryTreeMockRecorder[P]) Children(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Children", reflect.TypeOf((*MockBinaryTree[P])(nil).Children), p)
}

// IsLeaf mocks base method
func (m *MockBinaryTree[P]) IsLeaf(p P) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsLeaf", p)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsLeaf indicates an expected call of IsLeaf
func (mr *MockBinaryTreeMockRecorder[P]) IsLeaf(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsLeaf", reflect.TypeOf((*MockBinaryTree[P])(nil).IsLeaf), p)
}

// Left mocks base method
func (m *MockBinaryTree[P]) Left(p P) (P, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Left", p)
	ret0, _ := ret[0].(P)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Left indicates an expected call of Left
func (mr *MockBinaryTreeMockRecorder[P]) Left(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Left", reflect.TypeOf((*MockBinaryTree[P])(nil).Left), p)
}

// Right mocks base method
func (m *MockBinaryTree[P]) Right(p P) (P, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Right", p)
	ret0, _ := ret[0].(P)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Right indicates an expected call of Right
func (mr *MockBinaryTreeMockRecorder[P]) Right(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Right", reflect.TypeOf((*MockBinaryTree[P])(nil).Right), p)
}
