// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math/bits"
	"slices"

	"github.com/bitmark-inc/arrayavl/fault"
	"github.com/bitmark-inc/logger"
)

// deepest level whose slot count still fits an int
const maximumHeight = bits.UintSize - 2

// true if index addresses a slot that holds a value
func (tree *Tree[T]) occupied(index int) bool {
	return index >= 0 && index < tree.capacity && 0 != tree.heights[index]
}

// height of the subtree at index, zero for empty or out of range
func (tree *Tree[T]) heightAt(index int) uint {
	if index < 0 || index >= tree.capacity {
		return 0
	}
	return tree.heights[index]
}

// add levels to both arrays, new slots are empty
func (tree *Tree[T]) grow(levels uint) {
	if 0 == levels {
		return
	}
	if tree.height+levels > maximumHeight {
		logger.Panicf("avl: grow by: %d from height: %d error: %s", levels, tree.height, fault.ErrCapacityViolation)
	}

	tree.height += levels
	tree.capacity = capacityOf(tree.height)

	extra := tree.capacity - len(tree.slots)
	tree.slots = append(tree.slots, make([]T, extra)...)
	tree.heights = append(tree.heights, make([]uint, extra)...)

	tree.stats.Grows.Increment()
	tree.debugf("grow: height: %d  capacity: %d", tree.height, tree.capacity)
}

// make sure index is addressable, growing as many levels as needed
func (tree *Tree[T]) ensure(index int) {
	if index < tree.capacity {
		return
	}
	tree.grow(depth(index) + 1 - tree.height)
}

// remove levels from both arrays
//
// the caller must already have emptied every slot beyond the new
// capacity
func (tree *Tree[T]) shrink(levels uint) {
	if 0 == levels {
		return
	}
	if levels > tree.height {
		levels = tree.height
	}

	tree.height -= levels
	tree.capacity = capacityOf(tree.height)

	clear(tree.slots[tree.capacity:])
	tree.slots = slices.Clip(tree.slots[:tree.capacity])
	tree.heights = slices.Clip(tree.heights[:tree.capacity])

	tree.stats.Shrinks.Increment()
	tree.debugf("shrink: height: %d  capacity: %d", tree.height, tree.capacity)
}

// shrink to the levels actually used by the root
func (tree *Tree[T]) compact() {
	used := tree.heightAt(0)
	if tree.height > used {
		tree.shrink(tree.height - used)
	}
}

// empty the slot at index and every slot below it
func (tree *Tree[T]) clearFrom(index int) {
	if !tree.occupied(index) {
		return
	}

	var zero T
	queue := []int{index}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, child := range []int{leftChild(current), rightChild(current)} {
			if tree.occupied(child) {
				queue = append(queue, child)
			}
		}
		tree.slots[current] = zero
		tree.heights[current] = 0
	}
}
