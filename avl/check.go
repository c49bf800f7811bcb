// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/arrayavl/fault"
)

// Check - run all consistency checks
func (tree *Tree[T]) Check() error {
	if err := tree.CheckHeights(); nil != err {
		return err
	}
	return tree.CheckOrder()
}

// CheckHeights - verify the array shape: capacity, recorded heights,
// balance and that every occupied slot hangs from an occupied parent
func (tree *Tree[T]) CheckHeights() error {
	if tree.capacity != capacityOf(tree.height) ||
		len(tree.slots) != tree.capacity ||
		len(tree.heights) != tree.capacity {
		return fmt.Errorf("height: %d  capacity: %d  slots: %d: %w", tree.height, tree.capacity, len(tree.slots), fault.ErrCapacityMismatch)
	}
	if tree.height != tree.heightAt(0) {
		return fmt.Errorf("height: %d  root height: %d: %w", tree.height, tree.heightAt(0), fault.ErrCapacityMismatch)
	}

	count := 0
	for index := 0; index < tree.capacity; index += 1 {
		if !tree.occupied(index) {
			continue
		}
		count += 1

		if 0 != index && !tree.occupied(parent(index)) {
			return fmt.Errorf("slot[%d]: %w", index, fault.ErrOrphanNode)
		}

		expected := 1 + max(tree.heightAt(leftChild(index)), tree.heightAt(rightChild(index)))
		if expected != tree.heights[index] {
			return fmt.Errorf("slot[%d]: recorded: %d  actual: %d: %w", index, tree.heights[index], expected, fault.ErrHeightMismatch)
		}

		if b := tree.balance(index); b < -1 || b > 1 {
			return fmt.Errorf("slot[%d]: balance: %d: %w", index, b, fault.ErrUnbalanced)
		}
	}

	if count != tree.count {
		return fmt.Errorf("occupied: %d  count: %d: %w", count, tree.count, fault.ErrCapacityMismatch)
	}
	return nil
}

// CheckOrder - verify every left descendant is not greater and every
// right descendant not less than its ancestor
func (tree *Tree[T]) CheckOrder() error {
	return tree.checkOrder(0, nil, nil)
}

func (tree *Tree[T]) checkOrder(index int, low *T, high *T) error {
	if !tree.occupied(index) {
		return nil
	}
	v := tree.slots[index]
	if nil != low && tree.compare(v, *low) < 0 {
		return fmt.Errorf("slot[%d]: %v below %v: %w", index, v, *low, fault.ErrOrderViolation)
	}
	if nil != high && tree.compare(v, *high) > 0 {
		return fmt.Errorf("slot[%d]: %v above %v: %w", index, v, *high, fault.ErrOrderViolation)
	}
	if err := tree.checkOrder(leftChild(index), low, &v); nil != err {
		return err
	}
	return tree.checkOrder(rightChild(index), &v, high)
}
