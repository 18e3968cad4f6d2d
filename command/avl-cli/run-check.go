// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/fault"
)

type checkResult struct {
	Size      int    `json:"size"`
	Height    int    `json:"height"`
	MaxHeight int    `json:"max_height"`
	First     *int   `json:"first,omitempty"`
	Last      *int   `json:"last,omitempty"`
	Digest    string `json:"digest"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	set, err := makeSet(c.Args())
	if nil != err {
		return err
	}

	err = set.Check()
	if nil != err {
		return err
	}

	result := checkResult{
		Size:      set.Size(),
		Height:    set.Height(),
		MaxHeight: maxHeight(set.Size()),
		Digest:    set.Digest(encodeValue).String(),
	}
	if result.Height > result.MaxHeight {
		return fault.ErrHeightExceeded
	}

	if first, err := set.First(); nil == err {
		result.First = &first
	}
	if last, err := set.Last(); nil == err {
		result.Last = &last
	}

	return printJson(m.w, result)
}
