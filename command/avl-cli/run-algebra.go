// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/avl"
)

type algebra func(a *avl.Set[int], b *avl.Set[int]) *avl.Set[int]

func union(a *avl.Set[int], b *avl.Set[int]) *avl.Set[int] {
	return a.Union(b)
}

func intersection(a *avl.Set[int], b *avl.Set[int]) *avl.Set[int] {
	return a.Intersection(b)
}

func difference(a *avl.Set[int], b *avl.Set[int]) *avl.Set[int] {
	return a.Difference(b)
}

// action applying a set operation to the arguments and the --with list
func runAlgebra(operation algebra) func(c *cli.Context) error {
	return func(c *cli.Context) error {

		m := c.App.Metadata["config"].(*metadata)

		with, err := checkList(c.String("with"), ErrRequiredWith)
		if nil != err {
			return err
		}

		set, err := makeSet(c.Args())
		if nil != err {
			return err
		}

		result := operation(set, avl.From(with...))

		if m.verbose {
			fmt.Fprintf(m.e, "a: %s\n", set)
			fmt.Fprintf(m.e, "b: %v\n", with)
			result.Print(m.e, true)
		}

		fmt.Fprintf(m.w, "%s\n", result)

		return nil
	}
}
