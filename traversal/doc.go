// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package traversal - depth first walks and height computation for
// any tree that can report the children of a position
//
// The walks are lazy: nothing is visited until the returned sequence
// is ranged over, and ranging again restarts from the root.  Height is
// recomputed by full descent every time it is asked for.
//
// Note: the tree must not be modified while a walk is in progress.
package traversal
