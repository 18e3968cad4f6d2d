// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Equal - true if both sets hold the same values
//
// values are matched with the receiver's ordering, the shape of the
// trees is not considered
func (set *Set[T]) Equal(other *Set[T]) bool {
	if set == other {
		return true
	}
	if nil == other || set.count != other.count {
		return false
	}
	a := set.Iterator()
	b := other.Iterator()
	for a.HasNext() {
		va, _ := a.Next()
		vb, err := b.Next()
		if nil != err || 0 != set.compare(va, vb) {
			return false
		}
	}
	return !b.HasNext()
}

// StructurallyEqual - true if both trees have the same shape, values
// and balance factors
//
// two sets built by different insertion orders can be Equal without
// being structurally equal
func (set *Set[T]) StructurallyEqual(other *Set[T]) bool {
	if set == other {
		return true
	}
	if nil == other || set.count != other.count {
		return false
	}
	return set.sameShape(set.root, other.root)
}

func (set *Set[T]) sameShape(p *node[T], q *node[T]) bool {
	if nil == p || nil == q {
		return p == q
	}
	if p.balance != q.balance || 0 != set.compare(p.value, q.value) {
		return false
	}
	return set.sameShape(p.left, q.left) && set.sameShape(p.right, q.right)
}
