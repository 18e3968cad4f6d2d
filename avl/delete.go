// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific value from the set
// returns false if the value was not present
func (set *Set[T]) Remove(value T) bool {
	removed := false
	set.root, removed, _ = set.delete(value, set.root)
	if removed {
		set.count -= 1
	}
	return removed
}

// internal delete routine
//
// returns the possibly updated sub-tree root, whether a node was
// removed and whether the height of the sub-tree has shrunk
func (set *Set[T]) delete(value T, p *node[T]) (*node[T], bool, bool) {
	if nil == p { // value not in set
		return nil, false, false
	}

	removed := false
	h := false
	c := set.compare(value, p.value)
	switch {
	case c < 0: // value < p.value
		p.left, removed, h = set.delete(value, p.left)
		if h {
			// left branch has shrunk
			p.balance += 1
			p, h = shrunk(p)
		}
	case c > 0: // value > p.value
		p.right, removed, h = set.delete(value, p.right)
		if h {
			// right branch has shrunk
			p.balance -= 1
			p, h = shrunk(p)
		}
	default: // found: delete p
		q := p
		if nil == q.left {
			p = q.right
			h = true
		} else if nil == q.right {
			p = q.left
			h = true
		} else {
			// splice the in-order successor into the place of q
			right, r, rh := deleteFirst(q.right)
			r.left = q.left
			r.right = right
			r.balance = q.balance
			p = r
			if rh {
				p.balance -= 1
				p, h = shrunk(p)
			}
		}
		set.pool.freeNode(q) // return deleted node to pool
		removed = true
	}
	return p, removed, h
}

// delete: unlink the lowest node of a non-empty sub-tree
//
// returns the updated sub-tree, the detached node and whether the
// height of the sub-tree has shrunk
func deleteFirst[T any](p *node[T]) (*node[T], *node[T], bool) {
	if nil == p.left {
		r := p.right
		p.right = nil
		return r, p, true
	}

	left, first, h := deleteFirst(p.left)
	p.left = left
	if h {
		p.balance += 1
		p, h = shrunk(p)
	}
	return p, first, h
}

// delete: tree balancer
//
// called after one branch has lost a level and the balance has been
// adjusted; the sub-tree itself has lost a level only when its root
// ends up perfectly balanced, a ±1 root means the height survived
func shrunk[T any](p *node[T]) (*node[T], bool) {
	if 2 == p.balance || -2 == p.balance {
		p = rebalance(p)
	}
	return p, 0 == p.balance
}
