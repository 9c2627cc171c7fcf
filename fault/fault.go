// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAlreadyRooted        = ExistsError("tree already has a root")
	ErrChildExists          = ExistsError("child already exists")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidPosition      = InvalidError("position does not belong to this tree")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingValue         = NotFoundError("missing value")
	ErrNoParent             = InvalidError("position has no parent")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
