// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treemap - a binary search tree map ordered by value
//
// Each entry is a key/value pair and entries are placed in the tree
// by comparing their values; the key is carried along and is what
// Delete and Keys deal in.  After every insertion the path from the
// new leaf to the root is checked and a trinode restructuring (single
// or double rotation) is applied at any node whose two subtrees differ
// in height by more than one.  Only nodes with two children are
// checked and deletion never rebalances.
//
// Positions handed out by the map stay valid through rebalancing and
// through the deletion of other entries, since nodes are relinked and
// never copied.
//
// Note: a map is not thread safe, so either access it only in a
// single go routine or use a mutex to restrict access.
package treemap
