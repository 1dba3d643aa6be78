// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// tag of the last-resort logging channel
const panicTag = "PANIC"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for a last attempt to log something
// must be called after logger.Initialise
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

// Finalise - flush any data and detach the channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(callerPrefix(2)+format, arguments...)
}

// Panicf - panic with a formatted message, after logging it
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(callerPrefix(2)+format, arguments...)
	internalCriticalf("%s", message)
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panicf("%s failed with error: %v", message, err)
}

// "(file:line) " of the function skip levels above this one
func callerPrefix(skip int) string {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("(%q:%d) ", file, line)
	}
	return ""
}

// internal routine to handle an uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
