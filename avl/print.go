// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Layout - the array as space separated values, "_" for an empty slot
func (tree *Tree[T]) Layout() string {
	s := make([]string, tree.capacity)
	for index := range s {
		if tree.occupied(index) {
			s[index] = fmt.Sprint(tree.slots[index])
		} else {
			s[index] = "_"
		}
	}
	return strings.Join(s, " ")
}

// Print - display an ASCII graphic representation of the tree
// returns the depth of the tree
func (tree *Tree[T]) Print(w io.Writer) int {
	return tree.printTree(w, 0, "", rootBranch)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[T]) printTree(w io.Writer, index int, prefix string, br branch) int {
	if !tree.occupied(index) {
		return 0
	}
	rd := 0
	ld := 0
	if r := rightChild(index); tree.occupied(r) {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, r, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v @%d %+2d/%d\n", tree.slots[index], index, tree.balance(index), tree.heights[index])

	if l := leftChild(index); tree.occupied(l) {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, l, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
