// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// one slot move of a relocation
type move struct {
	from int
	to   int
}

// move the whole subtree at from so that it is rooted at to, keeping
// its shape and the recorded heights
//
// the destination must not overlap anything outside the source
// subtree.  Sources are listed level by level; a move to a deeper
// level is applied bottom up and any other move top down, so each
// slot is read before something else is written over it and each node
// is moved exactly once.
func (tree *Tree[T]) relocate(from int, to int) {
	if from == to || !tree.occupied(from) {
		return
	}

	moves := []move{{from: from, to: to}}
	for n := 0; n < len(moves); n += 1 {
		m := moves[n]
		if l := leftChild(m.from); tree.occupied(l) {
			moves = append(moves, move{from: l, to: leftChild(m.to)})
		}
		if r := rightChild(m.from); tree.occupied(r) {
			moves = append(moves, move{from: r, to: rightChild(m.to)})
		}
	}

	tree.debugf("relocate: %d → %d  nodes: %d", from, to, len(moves))
	tree.stats.Relocations.Increment()

	if depth(to) > depth(from) {
		for i := len(moves) - 1; i >= 0; i -= 1 {
			tree.moveSlot(moves[i].from, moves[i].to)
		}
	} else {
		for _, m := range moves {
			tree.moveSlot(m.from, m.to)
		}
	}
}

// move one value and its height, leaving the source slot empty
func (tree *Tree[T]) moveSlot(from int, to int) {
	if from == to || !tree.occupied(from) {
		return
	}
	tree.ensure(to)

	var zero T
	tree.slots[to] = tree.slots[from]
	tree.heights[to] = tree.heights[from]
	tree.slots[from] = zero
	tree.heights[from] = 0
}
