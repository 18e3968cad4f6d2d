// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rebalance - restore a node whose balance has reached ±2
// returns the new sub-tree root, a node already in range is returned
// unchanged
func rebalance[T any](p *node[T]) *node[T] {
	switch p.balance {
	case -2:
		if p.left.balance <= 0 {
			return rotateRight(p)
		}
		return rotateLeftRight(p)
	case +2:
		if p.right.balance >= 0 {
			return rotateLeft(p)
		}
		return rotateRightLeft(p)
	}
	return p
}

// single LL rotation
func rotateRight[T any](p *node[T]) *node[T] {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	if -1 == p1.balance {
		p1.balance = 0
		p.balance = 0
	} else { // p1.balance == 0: only reachable from delete
		p1.balance = +1
		p.balance = -1
	}
	return p1
}

// single RR rotation
func rotateLeft[T any](p *node[T]) *node[T] {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	if +1 == p1.balance {
		p1.balance = 0
		p.balance = 0
	} else { // p1.balance == 0: only reachable from delete
		p1.balance = -1
		p.balance = +1
	}
	return p1
}

// double LR rotation
func rotateLeftRight[T any](p *node[T]) *node[T] {
	p1 := p.left
	p2 := p1.right
	p1.right = p2.left
	p2.left = p1
	p.left = p2.right
	p2.right = p

	switch p2.balance {
	case +1:
		p1.balance = -1
		p.balance = 0
	case -1:
		p1.balance = 0
		p.balance = +1
	default:
		p1.balance = 0
		p.balance = 0
	}
	p2.balance = 0
	return p2
}

// double RL rotation
func rotateRightLeft[T any](p *node[T]) *node[T] {
	p1 := p.right
	p2 := p1.left
	p1.left = p2.right
	p2.right = p1
	p.right = p2.left
	p2.left = p

	switch p2.balance {
	case -1:
		p.balance = 0
		p1.balance = +1
	case +1:
		p.balance = -1
		p1.balance = 0
	default:
		p.balance = 0
		p1.balance = 0
	}
	p2.balance = 0
	return p2
}
