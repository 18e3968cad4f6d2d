// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[T any] struct {
	left    *node[T] // left sub-tree
	right   *node[T] // right sub-tree
	value   T        // element for ordering
	balance int      // -1, 0, +1  (±2 only while rebalancing)
}

// maximum number of reclaimed nodes retained by a single set
const freeListSize = 32

// linked list of reclaimed nodes, chained through the right pointer
//
// each set has its own list so no locking is required
type freeList[T any] struct {
	head  *node[T]
	count int
}

// allocate a new node, reuses reclaimed nodes if any are available
func (f *freeList[T]) newNode(value T) *node[T] {
	p := f.head
	if nil == p {
		if 0 != f.count {
			panic("avl: free list corrupt")
		}
		return &node[T]{
			value:   value,
			balance: 0,
		}
	}
	f.head = p.right
	f.count -= 1

	p.right = nil // ensure free list pointer is cleared
	p.value = value
	return p
}

// reclaim a node and keep it in the pool
func (f *freeList[T]) freeNode(p *node[T]) {
	var zero T
	p.left = nil
	p.right = nil
	p.value = zero
	p.balance = 0

	if f.count >= freeListSize {
		return
	}
	p.right = f.head // use as free list pointer
	f.head = p
	f.count += 1
}
