// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// RunResult - outcome of a single run
type RunResult struct {
	Name    string
	Added   int
	Removed int
	Size    int
	Height  int
	Digest  avl.Digest
	Err     error
}

// the AVL worst case height for n nodes
func maxHeight(n int) int {
	return int(math.Ceil(1.45 * math.Log2(float64(n+2))))
}

func encodeKey(key uint32) []byte {
	return []byte{byte(key >> 24), byte(key >> 16), byte(key >> 8), byte(key)}
}

// executeRun - insert then delete keys, verifying the set after each phase
func executeRun(log *logger.L, run RunType, source KeySource, ops *Tally) RunResult {

	result := RunResult{
		Name: run.Name,
	}

	set := avl.NewOrdered[uint32]()
	reference := make(map[uint32]struct{}, run.Total)
	keys := make([]uint32, run.Total)

	modulus := run.Modulus
	if 0 == modulus {
		modulus = defaultModulus
	}

	for i := 0; i < run.Total; i += 1 {
		key := source.Next() % modulus
		keys[i] = key

		_, present := reference[key]
		added := set.Add(key)
		ops.Increment()
		if added == present {
			result.Err = fmt.Errorf("add: %d  added: %t  present: %t: %w", key, added, present, fault.ErrSequenceMismatch)
			return result
		}
		if added {
			reference[key] = struct{}{}
			result.Added += 1
		}
	}
	log.Debugf("%s: added: %d of: %d", run.Name, result.Added, run.Total)

	if err := verify(set, reference); nil != err {
		result.Err = fmt.Errorf("after insert: %w", err)
		return result
	}

	for _, key := range keys[:run.Delete] {
		_, present := reference[key]
		removed := set.Remove(key)
		ops.Increment()
		if removed != present {
			result.Err = fmt.Errorf("remove: %d  removed: %t  present: %t: %w", key, removed, present, fault.ErrSequenceMismatch)
			return result
		}
		if removed {
			delete(reference, key)
			result.Removed += 1
		}
	}
	log.Debugf("%s: removed: %d", run.Name, result.Removed)

	if err := verify(set, reference); nil != err {
		result.Err = fmt.Errorf("after delete: %w", err)
		return result
	}

	result.Size = set.Size()
	result.Height = set.Height()
	result.Digest = set.Digest(encodeKey)
	return result
}

// verify - check the set against the reference
func verify(set *avl.Set[uint32], reference map[uint32]struct{}) error {

	if err := set.Check(); nil != err {
		return err
	}

	if set.Size() != len(reference) {
		return fmt.Errorf("size: %d  expected: %d: %w", set.Size(), len(reference), fault.ErrCountMismatch)
	}

	if h, limit := set.Height(), maxHeight(set.Size()); h > limit {
		return fmt.Errorf("height: %d  limit: %d: %w", h, limit, fault.ErrHeightExceeded)
	}

	count := 0
	first := true
	previous := uint32(0)
	for key := range set.All() {
		if !first && key <= previous {
			return fmt.Errorf("key: %d after: %d: %w", key, previous, fault.ErrSequenceMismatch)
		}
		if _, ok := reference[key]; !ok {
			return fmt.Errorf("key: %d: %w", key, fault.ErrMissingValue)
		}
		first = false
		previous = key
		count += 1
	}
	if count != len(reference) {
		return fmt.Errorf("iterated: %d  expected: %d: %w", count, len(reference), fault.ErrCountMismatch)
	}

	for key := range reference {
		if !set.Contains(key) {
			return fmt.Errorf("key: %d: %w", key, fault.ErrMissingValue)
		}
	}
	return nil
}

// executeAll - run each configuration concurrently, one set per goroutine
func executeAll(log *logger.L, runs []RunType, newSource func(seed int64) KeySource, ops *Tally) []RunResult {

	results := make([]RunResult, len(runs))

	var wg sync.WaitGroup
	for i, run := range runs {
		wg.Add(1)
		go func(i int, run RunType) {
			defer wg.Done()
			log.Infof("start run: %s  seed: %d  total: %d  delete: %d", run.Name, run.Seed, run.Total, run.Delete)
			results[i] = executeRun(log, run, newSource(run.Seed), ops)
		}(i, run)
	}
	wg.Wait()

	return results
}
