// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/avlset/fault"
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

		// the instances returned by the set
		{fault.ErrEmptyCollection, false, false, true, false},
		{fault.ErrIteratorExhausted, false, false, true, false},
		{fault.ErrInvalidArgument, false, true, false, false},
		{fault.ErrBalanceCorrupt, false, false, false, true},
		{fault.ErrOrderCorrupt, false, false, false, true},
		{fault.ErrCountMismatch, false, false, false, true},

		// tool errors
		{fault.ErrDigestMismatch, false, false, false, true},
		{fault.ErrInvalidDatabase, false, true, false, false},
		{fault.ErrNoRuns, false, false, true, false},
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

// the message text is the error string
func TestMessage(t *testing.T) {
	if "empty collection" != fault.ErrEmptyCollection.Error() {
		t.Errorf("unexpected message: %q", fault.ErrEmptyCollection.Error())
	}
	if "exhausted iterator" != fault.ErrIteratorExhausted.Error() {
		t.Errorf("unexpected message: %q", fault.ErrIteratorExhausted.Error())
	}
	if "generic" != fault.GenericError("generic").Error() {
		t.Errorf("unexpected generic message")
	}
}
