// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - 64 bit counters that are safe to bump from
// readers holding only a shared lock
package counter

import (
	"strconv"
	"sync/atomic"
)

// Counter - a running total, the zero value is ready to use and must
// not be copied after first use
type Counter struct {
	value atomic.Uint64
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return c.value.Add(1)
}

// Decrement - subtract 1, wraps below zero, returns new value
func (c *Counter) Decrement() uint64 {
	return c.value.Add(^uint64(0))
}

// Add - add n, returns new value
func (c *Counter) Add(n uint64) uint64 {
	return c.value.Add(n)
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.value.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.value.Load()
}

// Reset - set back to zero, returns the value before reset
func (c *Counter) Reset() uint64 {
	return c.value.Swap(0)
}

func (c *Counter) String() string {
	return strconv.FormatUint(c.value.Load(), 10)
}
