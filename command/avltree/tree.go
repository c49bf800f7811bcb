// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/arrayavl/avl"
	"github.com/bitmark-inc/arrayavl/fault"
	"github.com/bitmark-inc/logger"
)

// value kinds accepted in the configuration and on the command line
const (
	kindString  = "string"
	kindInteger = "integer"
)

// valueTree - the operations the commands need, with values passed as
// text regardless of the kind stored
type valueTree interface {
	Insert(value string) error
	Find(value string) (int, error)
	Count() int
	Layout() string
	Print(w io.Writer) int
	PreOrder() []string
	InOrder() []string
	PostOrder() []string
	BreadthFirst() []string
	Check() error
	Statistics() avl.StatisticsSnapshot
}

// typedTree - a tree of T behind the text interface
type typedTree[T any] struct {
	*avl.Tree[T]
	parse func(s string) (T, error)
}

// create the tree for a kind, log may be nil
func newValueTree(kind string, log *logger.L) (valueTree, error) {
	switch strings.ToLower(kind) {
	case kindString:
		tree := &typedTree[string]{
			Tree: avl.New[string](),
			parse: func(s string) (string, error) {
				return s, nil
			},
		}
		tree.SetLog(log)
		return tree, nil

	case kindInteger:
		tree := &typedTree[int64]{
			Tree: avl.New[int64](),
			parse: func(s string) (int64, error) {
				return strconv.ParseInt(s, 10, 64)
			},
		}
		tree.SetLog(log)
		return tree, nil

	default:
		return nil, fmt.Errorf("kind: %q: %w", kind, fault.ErrUnknownKind)
	}
}

func (t *typedTree[T]) value(s string) (T, error) {
	v, err := t.parse(s)
	if nil != err {
		return v, fmt.Errorf("value: %q: %w", s, fault.ErrInvalidValue)
	}
	return v, nil
}

func (t *typedTree[T]) Insert(s string) error {
	v, err := t.value(s)
	if nil != err {
		return err
	}
	t.Tree.Insert(v)
	return nil
}

func (t *typedTree[T]) Find(s string) (int, error) {
	v, err := t.value(s)
	if nil != err {
		return -1, err
	}
	return t.Tree.Find(v)
}

func (t *typedTree[T]) PreOrder() []string {
	return toStrings(t.Tree.PreOrder())
}

func (t *typedTree[T]) InOrder() []string {
	return toStrings(t.Tree.InOrder())
}

func (t *typedTree[T]) PostOrder() []string {
	return toStrings(t.Tree.PostOrder())
}

func (t *typedTree[T]) BreadthFirst() []string {
	return toStrings(t.Tree.BreadthFirst())
}

func toStrings[T any](values []T) []string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprint(v)
	}
	return s
}
