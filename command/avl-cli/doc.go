// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - inspect an avl set built from the command line
//
// The integers following a command are inserted in order into a new
// set and the command is applied to it:
//
//   avl-cli print 5 3 9 12 4 16 18 25 13 39
//   avl-cli --verbose print 1 2 3 4 5 6 7
//   avl-cli check 3 12 5
//   avl-cli union --with=4,5,6 1 2 3
//   avl-cli remove --values=3,15 5 3 9
package main
