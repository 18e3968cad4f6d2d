// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

func TestToSlice(t *testing.T) {
	set := avl.From(20, 5, 15, 10)
	assert.Equal(t, []int{5, 10, 15, 20}, set.ToSlice())
	assert.Equal(t, []int{}, avl.NewOrdered[int]().ToSlice())
}

func TestCopyTo(t *testing.T) {
	set := avl.From(3, 1, 2)

	_, err := set.CopyTo(nil)
	assert.Equal(t, fault.ErrInvalidArgument, err, "nil destination")
	assert.True(t, fault.IsErrInvalid(err))

	// too short: a new slice
	short := []int{}
	result, err := set.CopyTo(short)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, result)

	// long enough: filled in place, tail untouched
	long := []int{9, 9, 9, 9, 9}
	result, err = set.CopyTo(long)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 9, 9}, result)
	assert.Equal(t, &long[0], &result[0], "destination not reused")
}

func TestContainsAll(t *testing.T) {
	set := avl.From(1, 2, 3, 4)
	assert.True(t, set.ContainsAll())
	assert.True(t, set.ContainsAll(4, 1))
	assert.True(t, set.ContainsAll(2, 2, 2))
	assert.False(t, set.ContainsAll(1, 5))
}

func TestAddAll(t *testing.T) {
	values := []int{17, -4, 99, 23, 0, 8, 17}
	set := avl.NewOrdered[int]()

	assert.True(t, set.AddAll(values...), "first add")
	assert.False(t, set.AddAll(values...), "second add")
	assert.True(t, set.ContainsAll(values...))
	assert.Equal(t, 6, set.Size())

	assert.True(t, set.AddAll(17, 100), "partly new")
	assert.Equal(t, 7, set.Size())
	require.NoError(t, set.Check())
}

func TestRetainAll(t *testing.T) {
	set := avl.From(1, 2, 3, 4, 5, 6, 7, 8, 9)

	assert.True(t, set.RetainAll(2, 4, 6, 8, 10))
	assert.Equal(t, []int{2, 4, 6, 8}, set.ToSlice())
	assert.False(t, set.RetainAll(2, 4, 6, 8, 10), "nothing left to discard")
	require.NoError(t, set.Check())

	assert.True(t, set.RetainAll())
	assert.True(t, set.IsEmpty())
}

func TestRemoveAll(t *testing.T) {
	set := avl.From(1, 2, 3, 4, 5, 6, 7, 8, 9)

	assert.True(t, set.RemoveAll(1, 3, 5, 7, 9, 11))
	assert.False(t, set.RemoveAll(1, 3, 5, 7, 9, 11))
	assert.Equal(t, []int{2, 4, 6, 8}, set.ToSlice())
	assert.False(t, set.ContainsAll(1, 3))
	require.NoError(t, set.Check())
}

func TestSetAlgebra(t *testing.T) {
	a := avl.From(1, 2, 3, 4, 5)
	b := avl.From(4, 5, 6, 7)

	union := a.Union(b)
	intersection := a.Intersection(b)
	difference := a.Difference(b)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, union.ToSlice())
	assert.Equal(t, []int{4, 5}, intersection.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, difference.ToSlice())

	for _, s := range []*avl.Set[int]{union, intersection, difference} {
		require.NoError(t, s.Check())
	}

	// operands untouched
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.ToSlice())
	assert.Equal(t, []int{4, 5, 6, 7}, b.ToSlice())
}

func TestClone(t *testing.T) {
	set := avl.From(10, 20, 30, 40)
	c := set.Clone()
	assert.True(t, set.StructurallyEqual(c))

	c.Add(50)
	c.Remove(10)
	assert.Equal(t, []int{10, 20, 30, 40}, set.ToSlice(), "original changed")
	assert.Equal(t, []int{20, 30, 40, 50}, c.ToSlice())
	require.NoError(t, c.Check())
}
