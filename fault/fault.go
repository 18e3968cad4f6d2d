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
	ErrBalanceCorrupt       = ProcessError("tree balance factor is corrupt")
	ErrCountMismatch        = ProcessError("tree element count mismatch")
	ErrDigestMismatch       = ProcessError("digest differs from earlier run")
	ErrEmptyCollection      = NotFoundError("empty collection")
	ErrHeightExceeded       = ProcessError("tree height exceeds AVL bound")
	ErrInvalidArgument      = InvalidError("invalid argument")
	ErrInvalidConfiguration = InvalidError("configuration did not return a table")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidDatabase      = InvalidError("incompatible database version")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidValue         = InvalidError("invalid value")
	ErrIteratorExhausted    = NotFoundError("exhausted iterator")
	ErrMissingValue         = NotFoundError("value is missing from tree")
	ErrNoRuns               = NotFoundError("no runs configured")
	ErrOrderCorrupt         = ProcessError("tree ordering is corrupt")
	ErrSequenceMismatch     = ProcessError("iteration sequence mismatch")
)

// Error - the error interface base method
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
