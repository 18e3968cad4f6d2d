// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlstress - randomised verification of the avl set
//
// Each configured run inserts pseudo random keys into a set and a
// reference map, deletes a prefix of them, and after each phase
// checks the tree invariants, the AVL height bound and that the
// ascending sequence matches the reference.  Runs proceed
// concurrently, each with its own set.  The digest of each seeded run
// is kept in a LevelDB database and compared on later invocations.
//
// usage: avlstress [--verbose] [--quiet] --config-file=FILE
//
// a sample configuration:
//
//   local M = {}
//   M.data_directory = "."
//   M.database = "avlstress.leveldb"
//   M.runs = {
//       { name = "short", seed = 1, total = 2200, delete = 2000 },
//       { name = "random", seed = 0, total = 5467, delete = 1234, modulus = 100000 },
//   }
//   M.logging = {
//       directory = "log",
//       file = "avlstress.log",
//       size = 1048576,
//       count = 10,
//       levels = { main = "info", run = "info", DEFAULT = "critical" },
//   }
//   return M
package main
