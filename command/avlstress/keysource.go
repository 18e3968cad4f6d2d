// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"

	"github.com/bitmark-inc/avlset/fault"
)

//go:generate mockgen -source=keysource.go -destination=mocks/keysource.go -package=mocks

// KeySource - supplies the keys for a run
type KeySource interface {
	Next() uint32
}

// repeatable keys from a seeded generator
type seededSource struct {
	r *mathrand.Rand
}

// keys from the system random source
type secureSource struct{}

// NewKeySource - seed zero selects the system random source
func NewKeySource(seed int64) KeySource {
	if 0 == seed {
		return secureSource{}
	}
	return &seededSource{
		r: mathrand.New(mathrand.NewSource(seed)),
	}
}

// Next - next pseudo random key
func (s *seededSource) Next() uint32 {
	return s.r.Uint32()
}

// Next - next random key
func (secureSource) Next() uint32 {
	buffer := make([]byte, 4)
	_, err := rand.Read(buffer)
	fault.PanicIfError("secureSource.Next", err)
	return binary.BigEndian.Uint32(buffer)
}
