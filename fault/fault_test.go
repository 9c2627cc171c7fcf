// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treemap/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
		{fault.ErrAlreadyRooted, true, false, false, false},
		{fault.ErrChildExists, true, false, false, false},
		{fault.ErrInvalidPosition, false, true, false, false},
		{fault.ErrNoParent, false, true, false, false},
		{fault.ErrKeyNotFound, false, false, true, false},
		{errors.New("plain"), false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("nothing", nil) })
	assert.PanicsWithValue(t, "walk failed with error: key not found", func() {
		fault.PanicIfError("walk", fault.ErrKeyNotFound)
	})
}

func TestInitialiseFinalise(t *testing.T) {
	err := fault.Initialise()
	assert.NoError(t, err, "first initialise")
	defer fault.Finalise()

	err = fault.Initialise()
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
	assert.True(t, fault.IsErrExists(err))

	assert.NotPanics(t, func() { fault.Criticalf("inconsistent tree  count: %d", 3) })

	fault.Finalise()
	assert.NotPanics(t, func() { fault.Criticalf("after finalise: %d", 4) })

	err = fault.Initialise()
	assert.NoError(t, err, "initialise after finalise")
}
