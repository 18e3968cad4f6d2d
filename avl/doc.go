// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered set held in an AVL balanced tree
//
// Note: an individual set is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Each node carries a balance factor (height of right sub-tree minus
// height of left sub-tree) that is adjusted while the insert/delete
// recursion unwinds; sub-tree heights are never recomputed.  The
// recursion reports whether the height of the sub-tree changed so
// the adjustment stops at the first ancestor whose height is
// unaffected.
//
// There are no parent pointers, every node is owned by a single
// parent link (or the root slot), so iteration uses an explicit
// stack.
package avl
