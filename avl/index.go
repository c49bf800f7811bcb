// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math/bits"
)

func leftChild(index int) int {
	return 2*index + 1
}

func rightChild(index int) int {
	return 2*index + 2
}

// only valid for index > 0
func parent(index int) int {
	return (index - 1) / 2
}

func isLeftChild(index int) bool {
	return 1 == index%2
}

// the root is at depth 0, its children at depth 1, …
func depth(index int) uint {
	return uint(bits.Len(uint(index+1)) - 1)
}

// number of slots in a tree of the given levels
func capacityOf(height uint) int {
	return 1<<height - 1
}

// direction of a rotation: the pivot moves down on this side and the
// child on the other side moves up to replace it
type direction int

const (
	leftward direction = iota
	rightward
)

// child on the rotation side, the new slot of the pivot
func (d direction) towards(index int) int {
	if leftward == d {
		return leftChild(index)
	}
	return rightChild(index)
}

// child on the opposite side, the one that is promoted
func (d direction) against(index int) int {
	if leftward == d {
		return rightChild(index)
	}
	return leftChild(index)
}

func (d direction) String() string {
	switch d {
	case leftward:
		return "left"
	case rightward:
		return "right"
	default:
		return "unknown"
	}
}
