// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlset/fault"
)

// First - return the lowest value
func (set *Set[T]) First() (T, error) {
	p := set.root.first()
	if nil == p {
		var zero T
		return zero, fault.ErrEmptyCollection
	}
	return p.value, nil
}

// internal: lowest node in a sub-tree
func (tree *node[T]) first() *node[T] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the highest value
func (set *Set[T]) Last() (T, error) {
	p := set.root.last()
	if nil == p {
		var zero T
		return zero, fault.ErrEmptyCollection
	}
	return p.value, nil
}

// internal: highest node in a sub-tree
func (tree *node[T]) last() *node[T] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Iterator - an ascending cursor over a set
//
// the cursor only reads; adding or removing values while a cursor is
// in use leaves the remainder of its sequence unspecified
type Iterator[T any] struct {
	stack []*node[T]
}

// Iterator - create an independent cursor positioned before the
// lowest value
func (set *Set[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{}
	it.pushLeft(set.root)
	return it
}

func (it *Iterator[T]) pushLeft(p *node[T]) {
	for nil != p {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// HasNext - true if Next will return a value
func (it *Iterator[T]) HasNext() bool {
	return len(it.stack) > 0
}

// Next - return the next value in ascending order
func (it *Iterator[T]) Next() (T, error) {
	n := len(it.stack)
	if 0 == n {
		var zero T
		return zero, fault.ErrIteratorExhausted
	}
	p := it.stack[n-1]
	it.stack[n-1] = nil
	it.stack = it.stack[:n-1]
	it.pushLeft(p.right)
	return p.value, nil
}

// All - the values in ascending order
func (set *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		ascend(set.root, yield)
	}
}

func ascend[T any](p *node[T], yield func(T) bool) bool {
	if nil == p {
		return true
	}
	return ascend(p.left, yield) && yield(p.value) && ascend(p.right, yield)
}

// Backward - the values in descending order
func (set *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		descend(set.root, yield)
	}
}

func descend[T any](p *node[T], yield func(T) bool) bool {
	if nil == p {
		return true
	}
	return descend(p.right, yield) && yield(p.value) && descend(p.left, yield)
}
