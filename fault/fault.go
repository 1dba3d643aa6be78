// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrDuplicateKey         = ExistsError("duplicate key")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidPosition      = InvalidError("invalid position")
	ErrInvalidRank          = InvalidError("invalid rank")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingConfiguration = InvalidError("configuration did not return a table")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrRateLimiting         = ProcessError("rate limiting")
	ErrTreeBalance          = ProcessError("tree is out of balance")
	ErrTreeCounts           = ProcessError("tree subtree sizes are inconsistent")
	ErrTreeExtremes         = ProcessError("tree minimum/maximum cache is inconsistent")
	ErrTreeHeights          = ProcessError("tree heights are inconsistent")
	ErrTreeLinks            = ProcessError("tree parent links are inconsistent")
	ErrTreeOrder            = ProcessError("tree keys are out of order")
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
