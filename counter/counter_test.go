// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/arrayavl/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Add(3)

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	c1.Decrement()

	if 4 != c1.Uint64() {
		t.Errorf("counter is not 4 after decrementing: %d", c1.Uint64())
	}

	if old := c1.Reset(); 4 != old {
		t.Errorf("reset returned: %d  expected: 4", old)
	}

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}

	c1.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != c1.Uint64() {
		t.Errorf("counter did not underflow: %d", c1.Uint64())
	}
}

func TestConcurrentIncrement(t *testing.T) {
	const workers = 8
	const perWorker = 1000

	var c counter.Counter
	var wg sync.WaitGroup
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*perWorker != c.Uint64() {
		t.Errorf("counter: %d  expected: %d", c.Uint64(), workers*perWorker)
	}
}

func TestString(t *testing.T) {
	var c counter.Counter
	c.Add(1234)

	if s := c.String(); "1234" != s {
		t.Errorf("string: %q  expected: \"1234\"", s)
	}
}
