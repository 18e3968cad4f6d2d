// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if an equal value is in the set
func (set *Set[T]) Contains(value T) bool {
	return nil != set.search(value)
}

// internal: find the node holding value, nil if absent
func (set *Set[T]) search(value T) *node[T] {
	p := set.root
	for nil != p {
		c := set.compare(value, p.value)
		switch {
		case c < 0: // value < p.value
			p = p.left
		case c > 0: // value > p.value
			p = p.right
		default:
			return p
		}
	}
	return nil
}
