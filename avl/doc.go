// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree stored in a flat array with no
// pointers: slot i has its children at 2i+1 and 2i+2 and its parent
// at (i-1)/2
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or wrap it in Synchronised.
//
// A rotation cannot just swap a few pointers as the slot index is the
// position in the tree, so every value below the pivot that changes
// position is physically moved to its new slot.  The array grows by
// one level whenever an insert or a move needs a deeper slot and is
// shrunk back to the height of the root after each insert.
//
// Equal values are kept: an insert of a value equal to a stored one
// goes to the right.
package avl
