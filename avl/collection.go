// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// ToSlice - all values in ascending order
func (set *Set[T]) ToSlice() []T {
	result := make([]T, 0, set.count)
	for v := range set.All() {
		result = append(result, v)
	}
	return result
}

// CopyTo - copy the values in ascending order into dst
//
// if dst is too short a new slice is returned instead, otherwise the
// first Size() elements of dst are overwritten and dst is returned
func (set *Set[T]) CopyTo(dst []T) ([]T, error) {
	if nil == dst {
		return nil, fault.ErrInvalidArgument
	}
	if len(dst) < set.count {
		return set.ToSlice(), nil
	}
	i := 0
	for v := range set.All() {
		dst[i] = v
		i += 1
	}
	return dst, nil
}

// ContainsAll - true if every one of the values is in the set
func (set *Set[T]) ContainsAll(values ...T) bool {
	for _, v := range values {
		if !set.Contains(v) {
			return false
		}
	}
	return true
}

// AddAll - add each of the values
// returns true if the set changed
func (set *Set[T]) AddAll(values ...T) bool {
	changed := false
	for _, v := range values {
		if set.Add(v) {
			changed = true
		}
	}
	return changed
}

// RemoveAll - remove each of the values
// returns true if the set changed
func (set *Set[T]) RemoveAll(values ...T) bool {
	changed := false
	for _, v := range values {
		if set.Remove(v) {
			changed = true
		}
	}
	return changed
}

// RetainAll - remove every element that is not one of the values
// returns true if the set changed
func (set *Set[T]) RetainAll(values ...T) bool {
	keep := New(set.compare)
	keep.AddAll(values...)

	discard := make([]T, 0, set.count)
	for v := range set.All() {
		if !keep.Contains(v) {
			discard = append(discard, v)
		}
	}
	return set.RemoveAll(discard...)
}

// Clone - an independent copy with identical shape
func (set *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		root:    clone(set.root),
		count:   set.count,
		compare: set.compare,
	}
}

func clone[T any](p *node[T]) *node[T] {
	if nil == p {
		return nil
	}
	return &node[T]{
		left:    clone(p.left),
		right:   clone(p.right),
		value:   p.value,
		balance: p.balance,
	}
}

// Union - a new set of the values in either set
func (set *Set[T]) Union(other *Set[T]) *Set[T] {
	result := set.Clone()
	for v := range other.All() {
		result.Add(v)
	}
	return result
}

// Intersection - a new set of the values present in both sets
func (set *Set[T]) Intersection(other *Set[T]) *Set[T] {
	result := New(set.compare)
	for v := range set.All() {
		if other.Contains(v) {
			result.Add(v)
		}
	}
	return result
}

// Difference - a new set of the values in this set but not in other
func (set *Set[T]) Difference(other *Set[T]) *Set[T] {
	result := set.Clone()
	for v := range other.All() {
		result.Remove(v)
	}
	return result
}
