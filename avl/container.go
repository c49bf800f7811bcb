// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Container - the operations shared by ordered containers
type Container[T any] interface {
	Insert(T)
	Contains(T) bool
	InOrder() []T
	Count() int
}

var (
	_ Container[int] = (*Tree[int])(nil)
	_ Container[int] = (*Synchronised[int])(nil)
)

// Synchronised - a tree behind a single read/write lock
//
// a rotation touches slots across the whole array, so there is
// nothing finer grained to lock
type Synchronised[T any] struct {
	sync.RWMutex
	tree *Tree[T]
}

// NewSynchronised - take ownership of a tree, it must not be used
// directly afterwards
func NewSynchronised[T any](tree *Tree[T]) *Synchronised[T] {
	return &Synchronised[T]{
		tree: tree,
	}
}

// Insert - add a value under the write lock
func (s *Synchronised[T]) Insert(value T) {
	s.Lock()
	defer s.Unlock()
	s.tree.Insert(value)
}

// InsertMany - add values under a single write lock
func (s *Synchronised[T]) InsertMany(values ...T) {
	s.Lock()
	defer s.Unlock()
	s.tree.InsertMany(values...)
}

// Contains - search under the read lock
func (s *Synchronised[T]) Contains(value T) bool {
	s.RLock()
	defer s.RUnlock()
	return s.tree.Contains(value)
}

// Find - search under the read lock
func (s *Synchronised[T]) Find(value T) (int, error) {
	s.RLock()
	defer s.RUnlock()
	return s.tree.Find(value)
}

// InOrder - ascending values under the read lock
func (s *Synchronised[T]) InOrder() []T {
	s.RLock()
	defer s.RUnlock()
	return s.tree.InOrder()
}

// Count - number of values under the read lock
func (s *Synchronised[T]) Count() int {
	s.RLock()
	defer s.RUnlock()
	return s.tree.Count()
}

// Check - consistency check under the read lock
func (s *Synchronised[T]) Check() error {
	s.RLock()
	defer s.RUnlock()
	return s.tree.Check()
}

// Statistics - counters under the read lock
func (s *Synchronised[T]) Statistics() StatisticsSnapshot {
	s.RLock()
	defer s.RUnlock()
	return s.tree.Statistics()
}
