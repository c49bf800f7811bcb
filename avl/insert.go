// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a value to the tree, an equal value already present is
// kept and the new one goes to its right
func (tree *Tree[T]) Insert(value T) {

	// descend to an empty slot, adding a level whenever the next
	// child lies outside the array
	index := 0
	for {
		if index >= tree.capacity {
			tree.grow(1)
		}
		if !tree.occupied(index) {
			break
		}
		if tree.compare(tree.slots[index], value) > 0 {
			index = leftChild(index)
		} else {
			index = rightChild(index)
		}
	}

	tree.slots[index] = value
	tree.heights[index] = 1
	tree.count += 1
	tree.stats.Insertions.Increment()

	// back up to the root restoring heights and balance
	for 0 != index {
		index = parent(index)
		tree.rebalance(index)
	}

	tree.compact()
}

// InsertMany - insert each value in order
func (tree *Tree[T]) InsertMany(values ...T) {
	for _, v := range values {
		tree.Insert(v)
	}
}

// recompute the height of a slot from its children
func (tree *Tree[T]) updateHeight(index int) {
	if !tree.occupied(index) {
		return
	}
	tree.heights[index] = 1 + max(tree.heightAt(leftChild(index)), tree.heightAt(rightChild(index)))
}

// left height minus right height
func (tree *Tree[T]) balance(index int) int {
	return int(tree.heightAt(leftChild(index))) - int(tree.heightAt(rightChild(index)))
}

// restore the height of one slot and rotate if its children now
// differ by more than one level
func (tree *Tree[T]) rebalance(index int) {
	tree.updateHeight(index)

	switch b := tree.balance(index); {
	case b > 1: // left branch too tall
		if l := leftChild(index); tree.balance(l) < 0 {
			// double LR rotation
			tree.rotate(l, leftward)
		}
		tree.rotate(index, rightward)

	case b < -1: // right branch too tall
		if r := rightChild(index); tree.balance(r) > 0 {
			// double RL rotation
			tree.rotate(r, rightward)
		}
		tree.rotate(index, leftward)
	}
}
