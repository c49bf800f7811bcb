// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - slot of the lowest value, -1 if the tree is empty
func (tree *Tree[T]) First() int {
	return tree.first(0)
}

// internal: lowest slot in a sub-tree
func (tree *Tree[T]) first(index int) int {
	if !tree.occupied(index) {
		return -1
	}
	for tree.occupied(leftChild(index)) {
		index = leftChild(index)
	}
	return index
}

// Last - slot of the highest value, -1 if the tree is empty
func (tree *Tree[T]) Last() int {
	return tree.last(0)
}

// internal: highest slot in a sub-tree
func (tree *Tree[T]) last(index int) int {
	if !tree.occupied(index) {
		return -1
	}
	for tree.occupied(rightChild(index)) {
		index = rightChild(index)
	}
	return index
}

// Next - given a slot, return the slot holding the next value in
// order or -1 if no more slots.
//
// slot numbers are only stable until the next Insert
func (tree *Tree[T]) Next(index int) int {
	if !tree.occupied(index) {
		return -1
	}
	if r := rightChild(index); tree.occupied(r) {
		return tree.first(r)
	}
	for 0 != index {
		if isLeftChild(index) {
			return parent(index)
		}
		index = parent(index)
	}
	return -1
}

// Prev - given a slot, return the slot holding the previous value in
// order or -1 if no more slots
func (tree *Tree[T]) Prev(index int) int {
	if !tree.occupied(index) {
		return -1
	}
	if l := leftChild(index); tree.occupied(l) {
		return tree.last(l)
	}
	for 0 != index {
		if !isLeftChild(index) {
			return parent(index)
		}
		index = parent(index)
	}
	return -1
}

// Min - the lowest value, false if the tree is empty
func (tree *Tree[T]) Min() (T, bool) {
	return tree.Slot(tree.First())
}

// Max - the highest value, false if the tree is empty
func (tree *Tree[T]) Max() (T, bool) {
	return tree.Slot(tree.Last())
}
