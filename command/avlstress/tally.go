// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync/atomic"
)

// Tally - count of set operations shared by all runs
type Tally uint64

// Increment - add 1 to the tally, returns new value
func (t *Tally) Increment() uint64 {
	return atomic.AddUint64((*uint64)(t), 1)
}

// Add - add n to the tally, returns new value
func (t *Tally) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(t), n)
}

// Uint64 - returns current value
func (t *Tally) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(t))
}
