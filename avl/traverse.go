// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// PreOrder - node, left, right
func (tree *Tree[T]) PreOrder() []T {
	return tree.PreOrderFrom(0)
}

// PreOrderFrom - pre-order of the subtree at a slot
func (tree *Tree[T]) PreOrderFrom(index int) []T {
	return tree.preOrder(index, make([]T, 0, tree.count))
}

func (tree *Tree[T]) preOrder(index int, values []T) []T {
	if !tree.occupied(index) {
		return values
	}
	values = append(values, tree.slots[index])
	values = tree.preOrder(leftChild(index), values)
	return tree.preOrder(rightChild(index), values)
}

// InOrder - left, node, right: the values in ascending order
func (tree *Tree[T]) InOrder() []T {
	return tree.InOrderFrom(0)
}

// InOrderFrom - in-order of the subtree at a slot
func (tree *Tree[T]) InOrderFrom(index int) []T {
	return tree.inOrder(index, make([]T, 0, tree.count))
}

func (tree *Tree[T]) inOrder(index int, values []T) []T {
	if !tree.occupied(index) {
		return values
	}
	values = tree.inOrder(leftChild(index), values)
	values = append(values, tree.slots[index])
	return tree.inOrder(rightChild(index), values)
}

// PostOrder - left, right, node
func (tree *Tree[T]) PostOrder() []T {
	return tree.PostOrderFrom(0)
}

// PostOrderFrom - post-order of the subtree at a slot
func (tree *Tree[T]) PostOrderFrom(index int) []T {
	return tree.postOrder(index, make([]T, 0, tree.count))
}

func (tree *Tree[T]) postOrder(index int, values []T) []T {
	if !tree.occupied(index) {
		return values
	}
	values = tree.postOrder(leftChild(index), values)
	values = tree.postOrder(rightChild(index), values)
	return append(values, tree.slots[index])
}

// BreadthFirst - level by level, left to right
func (tree *Tree[T]) BreadthFirst() []T {
	return tree.BreadthFirstFrom(0)
}

// BreadthFirstFrom - breadth first order of the subtree at a slot
func (tree *Tree[T]) BreadthFirstFrom(index int) []T {
	values := make([]T, 0, tree.count)
	if !tree.occupied(index) {
		return values
	}

	queue := []int{index}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		values = append(values, tree.slots[current])
		if l := leftChild(current); tree.occupied(l) {
			queue = append(queue, l)
		}
		if r := rightChild(current); tree.occupied(r) {
			queue = append(queue, r)
		}
	}
	return values
}
