// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"
)

// Tree - type to hold the slots of a tree
type Tree[T any] struct {
	slots    []T
	heights  []uint // subtree height of each slot, zero if empty
	capacity int    // always 2^height - 1
	height   uint   // levels allocated
	count    int
	compare  func(a T, b T) int
	log      *logger.L
	stats    Statistics
}

// New - create an initially empty tree for naturally ordered values
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc - create an initially empty tree ordered by compare which
// must return a negative number, zero or a positive number when a is
// less than, equal to or greater than b
func NewFunc[T any](compare func(a T, b T) int) *Tree[T] {
	return &Tree[T]{
		compare: compare,
	}
}

// SetLog - attach a logger channel for rotation and capacity
// tracing, nil turns tracing off
func (tree *Tree[T]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return 0 == tree.count
}

// Count - number of values currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Capacity - number of addressable slots
func (tree *Tree[T]) Capacity() int {
	return tree.capacity
}

// Height - number of levels allocated
func (tree *Tree[T]) Height() uint {
	return tree.height
}

// Slot - read the value held in a slot, false if the slot is empty
// or outside the array
func (tree *Tree[T]) Slot(index int) (T, bool) {
	if !tree.occupied(index) {
		var zero T
		return zero, false
	}
	return tree.slots[index], true
}

// Depth - level of a slot, the root is at depth zero
func Depth(index int) uint {
	return depth(index)
}

// Level - all values at a specific depth of the tree, left to right
func (tree *Tree[T]) Level(d uint) []T {
	values := []T{}
	if d >= tree.height {
		return values
	}
	first := capacityOf(d)
	last := capacityOf(d + 1)
	for index := first; index < last; index += 1 {
		if tree.occupied(index) {
			values = append(values, tree.slots[index])
		}
	}
	return values
}

// Clear - remove every value and release the array
func (tree *Tree[T]) Clear() {
	tree.clearFrom(0)
	tree.count = 0
	tree.compact()
}

// trace a message if a logger channel is attached
func (tree *Tree[T]) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}
