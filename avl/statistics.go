// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/arrayavl/counter"
)

// Statistics - running totals for a tree
//
// Lookups is bumped by Find/Contains which may run concurrently under
// the read lock of Synchronised, so all are atomic counters
type Statistics struct {
	Insertions  counter.Counter
	Rotations   counter.Counter
	Relocations counter.Counter
	Grows       counter.Counter
	Shrinks     counter.Counter
	Lookups     counter.Counter
}

// StatisticsSnapshot - plain copy of the counters
type StatisticsSnapshot struct {
	Insertions  uint64 `json:"insertions"`
	Rotations   uint64 `json:"rotations"`
	Relocations uint64 `json:"relocations"`
	Grows       uint64 `json:"grows"`
	Shrinks     uint64 `json:"shrinks"`
	Lookups     uint64 `json:"lookups"`
}

// Statistics - current totals
func (tree *Tree[T]) Statistics() StatisticsSnapshot {
	return StatisticsSnapshot{
		Insertions:  tree.stats.Insertions.Uint64(),
		Rotations:   tree.stats.Rotations.Uint64(),
		Relocations: tree.stats.Relocations.Uint64(),
		Grows:       tree.stats.Grows.Uint64(),
		Shrinks:     tree.stats.Shrinks.Uint64(),
		Lookups:     tree.stats.Lookups.Uint64(),
	}
}
