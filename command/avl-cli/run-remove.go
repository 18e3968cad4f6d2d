// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	values, err := checkList(c.String("values"), ErrRequiredValues)
	if nil != err {
		return err
	}

	set, err := makeSet(c.Args())
	if nil != err {
		return err
	}

	for _, v := range values {
		removed := set.Remove(v)
		if m.verbose {
			fmt.Fprintf(m.e, "remove: %d  %t\n", v, removed)
		}
	}

	if err := set.Check(); nil != err {
		return err
	}

	set.Print(m.w, m.verbose)
	fmt.Fprintf(m.w, "%s\n", set)

	return nil
}
