// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Item - an element type that knows its own ordering
//
// Compare returns a negative number when the receiver sorts before
// the argument, zero when they are equal and a positive number
// otherwise
type Item[T any] interface {
	Compare(T) int
}

// Set - type to hold the root node of a tree
type Set[T any] struct {
	root    *node[T]
	count   int
	compare func(a T, b T) int
	pool    freeList[T]
}

// New - create an initially empty set ordered by the compare function
func New[T any](compare func(a T, b T) int) *Set[T] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Set[T]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// NewOrdered - create an empty set of a naturally ordered type
func NewOrdered[T cmp.Ordered]() *Set[T] {
	return New(cmp.Compare[T])
}

// NewItems - create an empty set of values that implement Item
func NewItems[T Item[T]]() *Set[T] {
	return New(func(a T, b T) int {
		return a.Compare(b)
	})
}

// From - create a set holding the given values
func From[T cmp.Ordered](values ...T) *Set[T] {
	set := NewOrdered[T]()
	set.AddAll(values...)
	return set
}

// IsEmpty - true if set contains no data
func (set *Set[T]) IsEmpty() bool {
	return nil == set.root
}

// Size - number of elements currently in the set
func (set *Set[T]) Size() int {
	return set.count
}

// Clear - discard all elements
func (set *Set[T]) Clear() {
	set.root = nil
	set.count = 0
}

// Height - number of levels in the tree, zero for an empty set
//
// this walks every node and is only intended for verification
func (set *Set[T]) Height() int {
	return height(set.root)
}

func height[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}
