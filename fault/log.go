// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

const panicTag = "PANIC"

// hold a logger channel
var log *logger.L

// Initialise - open the log channel used for a last attempt to log
// something before a panic
//
// requires logger.Initialise to have been called
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and release the channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string with the caller's location
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// PanicWithError - final panic including the error text
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
