// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotate the subtree at pivot, for a right rotation:
//
//	       P                L
//	      / \              / \
//	     L   R    →      LL   P
//	    / \                  / \
//	  LL   LR              LR   R
//
// every step is a single slot move or a whole subtree relocation, in
// an order that never writes to a slot still waiting to be read
func (tree *Tree[T]) rotate(pivot int, dir direction) {
	towards := dir.towards(pivot)
	against := dir.against(pivot)

	tree.debugf("rotate %s at: %d", dir, pivot)
	tree.stats.Rotations.Increment()

	// R goes one level down to be the far child of P's new slot
	if tree.occupied(towards) {
		tree.relocate(towards, dir.towards(towards))
	}

	// P goes down into the slot R vacated
	tree.moveSlot(pivot, towards)

	// with no L there is nothing to promote, the pivot is left empty
	if tree.occupied(against) {

		// LR crosses over to be P's near child
		tree.relocate(dir.towards(against), dir.against(towards))

		// L takes the pivot slot
		tree.moveSlot(against, pivot)

		// LL comes up one level into L's old slot
		tree.relocate(dir.against(against), against)
	}

	tree.updateHeight(towards)
	tree.updateHeight(pivot)
}
