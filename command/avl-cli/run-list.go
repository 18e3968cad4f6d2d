// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	set, err := makeSet(c.Args())
	if nil != err {
		return err
	}

	values := set.All()
	if c.Bool("reverse") {
		values = set.Backward()
	}

	for v := range values {
		fmt.Fprintf(m.w, "%d\n", v)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "size: %d\n", set.Size())
	}

	return nil
}
