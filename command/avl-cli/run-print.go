// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	set, err := makeSet(c.Args())
	if nil != err {
		return err
	}

	depth := set.Print(m.w, m.verbose)

	if m.verbose {
		fmt.Fprintf(m.e, "size: %d  depth: %d\n", set.Size(), depth)
	}

	return nil
}
