// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

const (
	currentResultsVersion = 1
	digestPrefix          = 'D'
)

var versionKey = []byte("V")

// ResultStore - digests of earlier seeded runs
//
// a seeded run is repeatable so a changed digest means the set
// behaved differently from an earlier build
type ResultStore struct {
	db *leveldb.DB
}

// OpenResults - open or create the results database
func OpenResults(name string) (*ResultStore, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
		ReadOnly:       false,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		currentVersion := make([]byte, 4)
		binary.BigEndian.PutUint32(currentVersion, currentResultsVersion)
		if err := db.Put(versionKey, currentVersion, nil); nil != err {
			db.Close()
			return nil, err
		}
	} else if nil != err {
		db.Close()
		return nil, err
	} else if 4 != len(versionValue) || currentResultsVersion != binary.BigEndian.Uint32(versionValue) {
		db.Close()
		return nil, fault.ErrInvalidDatabase
	}

	return &ResultStore{db: db}, nil
}

// Close - flush and close the database
func (s *ResultStore) Close() error {
	return s.db.Close()
}

// key: prefix ++ seed ++ total ++ delete ++ modulus
func resultKey(run RunType) []byte {
	key := make([]byte, 1+8+4+4+4)
	key[0] = digestPrefix
	binary.BigEndian.PutUint64(key[1:], uint64(run.Seed))
	binary.BigEndian.PutUint32(key[9:], uint32(run.Total))
	binary.BigEndian.PutUint32(key[13:], uint32(run.Delete))
	binary.BigEndian.PutUint32(key[17:], run.Modulus)
	return key
}

// Record - compare a run digest with the stored one, storing it if new
//
// returns true if an earlier digest was found; unseeded runs are
// not repeatable and are never stored
func (s *ResultStore) Record(run RunType, digest avl.Digest) (bool, error) {
	if 0 == run.Seed {
		return false, nil
	}

	key := resultKey(run)
	stored, err := s.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return false, s.db.Put(key, digest[:], nil)
	} else if nil != err {
		return false, err
	}

	if !bytes.Equal(stored, digest[:]) {
		return true, fmt.Errorf("run: %q  stored: %x  actual: %s: %w", run.Name, stored, digest, fault.ErrDigestMismatch)
	}
	return true, nil
}
