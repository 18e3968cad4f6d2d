// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/urfave/cli"
)

// fixed width encoding so equal values hash identically
func encodeValue(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// the AVL worst case height for n nodes
func maxHeight(n int) int {
	return int(math.Ceil(1.45 * math.Log2(float64(n+2))))
}

func runDigest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	set, err := makeSet(c.Args())
	if nil != err {
		return err
	}

	digest := set.Digest(encodeValue)
	if m.verbose {
		fmt.Fprintf(m.w, "%#v\n", digest)
	} else {
		fmt.Fprintf(m.w, "%s\n", digest)
	}

	return nil
}
