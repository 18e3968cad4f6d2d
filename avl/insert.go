// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a new value into the set
// returns false, leaving the set unchanged, if an equal value is
// already present
func (set *Set[T]) Add(value T) bool {
	added := false
	set.root, added, _ = set.insert(value, set.root)
	if added {
		set.count += 1
	}
	return added
}

// internal routine for insert
//
// returns the possibly updated sub-tree root, whether a node was
// added and whether the height of the sub-tree has grown
func (set *Set[T]) insert(value T, p *node[T]) (*node[T], bool, bool) {
	if nil == p { // insert new node
		return set.pool.newNode(value), true, true
	}

	added := false
	h := false
	c := set.compare(value, p.value)
	switch {
	case c < 0: // value < p.value
		p.left, added, h = set.insert(value, p.left)
		if h {
			// left branch has grown
			p.balance -= 1
		}
	case c > 0: // value > p.value
		p.right, added, h = set.insert(value, p.right)
		if h {
			// right branch has grown
			p.balance += 1
		}
	default: // already present
		return p, false, false
	}

	if h {
		if 2 == p.balance || -2 == p.balance {
			p = rebalance(p)
		}
		// a zero balance means the extra level was absorbed here
		h = 0 != p.balance
	}
	return p, added, h
}
