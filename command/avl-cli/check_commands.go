// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

var (
	ErrRequiredValues = fault.InvalidError("values are required")
	ErrRequiredWith   = fault.InvalidError("second set is required")
)

// parse a single integer
func checkValue(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return 0, fmt.Errorf("%q: %w", s, fault.ErrInvalidValue)
	}
	return n, nil
}

// parse a list of integer arguments
func checkValues(arguments []string) ([]int, error) {
	values := make([]int, 0, len(arguments))
	for _, s := range arguments {
		n, err := checkValue(s)
		if nil != err {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}

// parse a comma separated list, which may not be blank
func checkList(list string, blank error) ([]int, error) {
	if "" == strings.TrimSpace(list) {
		return nil, blank
	}
	return checkValues(strings.Split(list, ","))
}

// build a set from the arguments in the order given
func makeSet(arguments []string) (*avl.Set[int], error) {
	values, err := checkValues(arguments)
	if nil != err {
		return nil, err
	}
	return avl.From(values...), nil
}
