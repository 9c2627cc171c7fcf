// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/bitmark-inc/treemap/binarytree"
	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/treemap"
)

const maximumPreallocation = 1 << 16

// read a count followed by that many integers
func readValues(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); nil != err {
				return 0, err
			}
			return 0, fault.ErrMissingValue
		}
		return strconv.Atoi(scanner.Text())
	}

	n, err := next()
	if nil != err {
		return nil, err
	}
	if n < 0 {
		return nil, fault.ErrInvalidCount
	}

	// the count is unchecked input, so it only bounds the initial capacity
	values := make([]int, 0, min(n, maximumPreallocation))
	for i := 0; i < n; i += 1 {
		v, err := next()
		if nil != err {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// insert each value with its index as the key
func load(m *treemap.Map[int], values []int) error {
	for i, v := range values {
		if _, err := m.Set(i, v); nil != err {
			return err
		}
	}
	return nil
}

// one line of values per traversal
func printTraversals(w io.Writer, m *treemap.Map[int], traversals []string, separator string) error {
	for _, name := range traversals {
		var seq iter.Seq[binarytree.Position[treemap.Entry[int]]]
		switch name {
		case preorderName:
			seq = m.Preorder()
		case inorderName:
			seq = m.Inorder()
		case postorderName:
			seq = m.Postorder()
		default:
			return fault.InvalidError("unknown traversal: " + name)
		}

		s := make([]string, 0, m.Len())
		for p := range seq {
			s = append(s, strconv.Itoa(p.Element().Value()))
		}
		if _, err := fmt.Fprintln(w, strings.Join(s, separator)); nil != err {
			return err
		}
	}
	return nil
}
