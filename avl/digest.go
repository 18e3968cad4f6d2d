// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// DigestLength - number of bytes in a digest
const DigestLength = 32

// Digest - SHA3-256 of the contents of a set
//
// sets that are Equal produce the same digest regardless of the
// shape of their trees
type Digest [DigestLength]byte

// Digest - hash the values in ascending order
//
// encode must produce the same bytes for values that compare equal;
// each encoding is length prefixed so adjacent values cannot run
// together
func (set *Set[T]) Digest(encode func(T) []byte) Digest {
	h := sha3.New256()

	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(set.count))
	h.Write(length[:])

	for v := range set.All() {
		b := encode(v)
		binary.BigEndian.PutUint32(length[:], uint32(len(b)))
		h.Write(length[:])
		h.Write(b)
	}

	var digest Digest
	copy(digest[:], h.Sum(nil))
	return digest
}

// String - hex digest for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - hex digest for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}
