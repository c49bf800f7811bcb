// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/arrayavl/fault"
)

// Find - slot index of a value, fault.ErrNotFound if the search
// reaches an empty slot or runs off the end of the array
func (tree *Tree[T]) Find(value T) (int, error) {
	tree.stats.Lookups.Increment()

	index := 0
	for tree.occupied(index) {
		switch c := tree.compare(tree.slots[index], value); {
		case c > 0: // stored > value
			index = leftChild(index)
		case c < 0: // stored < value
			index = rightChild(index)
		default:
			return index, nil
		}
	}
	return -1, fault.ErrNotFound
}

// Contains - true if the value is in the tree
func (tree *Tree[T]) Contains(value T) bool {
	_, err := tree.Find(value)
	return nil == err
}
