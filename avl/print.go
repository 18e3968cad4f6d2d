// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (set *Set[T]) Print(w io.Writer, showBalance bool) int {
	return printTree(w, set.root, "", root, showBalance)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, tree *node[T], prefix string, br branch, showBalance bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, showBalance)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if showBalance {
		fmt.Fprintf(w, "%v %+2d\n", tree.value, tree.balance)
	} else {
		fmt.Fprintf(w, "%v\n", tree.value)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, showBalance)
	}
	return 1 + max(rd, ld)
}

// String - the values in ascending order as: [a, b, c]
func (set *Set[T]) String() string {
	var s strings.Builder
	s.WriteByte('[')
	n := 0
	for v := range set.All() {
		if n > 0 {
			s.WriteString(", ")
		}
		fmt.Fprintf(&s, "%v", v)
		n += 1
	}
	s.WriteByte(']')
	return s.String()
}
