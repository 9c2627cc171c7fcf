// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// treemap - load integers into a value ordered tree map and print its
// traversals
//
// input is a count N followed by N integers separated by white space;
// each integer is inserted with its zero based index as the key.  The
// values are then printed as preorder, inorder and postorder lines.
//
//   treemap [--config=FILE] [--input=FILE] [--verbose]
package main
