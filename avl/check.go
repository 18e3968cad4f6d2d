// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Check - verify the ordering, balance factors and element count of
// the whole tree
func (set *Set[T]) Check() error {
	n, _, err := set.checkNode(set.root, nil, nil)
	if nil != err {
		return err
	}
	if n != set.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker
//
// lo and hi are the nearest ancestors the sub-tree must sort
// strictly between, returns the node count and height
func (set *Set[T]) checkNode(p *node[T], lo *T, hi *T) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != lo && set.compare(*lo, p.value) >= 0 {
		return 0, 0, fault.ErrOrderCorrupt
	}
	if nil != hi && set.compare(p.value, *hi) >= 0 {
		return 0, 0, fault.ErrOrderCorrupt
	}

	ln, lh, err := set.checkNode(p.left, lo, &p.value)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := set.checkNode(p.right, &p.value, hi)
	if nil != err {
		return 0, 0, err
	}

	if p.balance != rh-lh || p.balance < -1 || p.balance > 1 {
		return 0, 0, fault.ErrBalanceCorrupt
	}
	return 1 + ln + rn, 1 + max(lh, rh), nil
}
