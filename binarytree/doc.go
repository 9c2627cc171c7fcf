// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package binarytree - a linked binary tree addressed through
// positions
//
// Each node holds an element and links to its parent and to its left
// and right children.  Callers never see nodes; they get a Position,
// which names one node of one particular tree.  Positions compare
// equal only if they name the same node, and a Position is rejected
// with fault.ErrInvalidPosition by any tree other than its own or
// after its node has been removed.
//
// Note: a tree is not thread safe, so either access it only in a
// single go routine or use a mutex to restrict access.
package binarytree
