// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/arrayavl/fault"
	"github.com/bitmark-inc/logger"
)

// command names
const (
	cmdLayout       = "layout"
	cmdPrint        = "print"
	cmdPreOrder     = "pre-order"
	cmdInOrder      = "in-order"
	cmdPostOrder    = "post-order"
	cmdBreadthFirst = "breadth-first"
	cmdFind         = "find"
	cmdCheck        = "check"
	cmdStats        = "stats"
)

// build a tree from the configured values and run one command
//
// for find the arguments are the values to look up, for every other
// command they are extra values to insert
func execute(w io.Writer, configuration *Configuration, command string, arguments []string, log *logger.L) error {

	tree, err := newValueTree(configuration.Kind, logger.New(treeLoggerPrefix))
	if nil != err {
		return err
	}

	values := configuration.Values
	if cmdFind != command {
		values = append(values[:len(values):len(values)], arguments...)
		arguments = nil
	}

	log.Debugf("kind: %s  values: %d  command: %s", configuration.Kind, len(values), command)

	if err := load(tree, values); nil != err {
		return err
	}

	return runCommand(w, tree, command, arguments)
}

// insert values in order stopping at the first one that cannot be
// parsed
func load(tree valueTree, values []string) error {
	for _, v := range values {
		if err := tree.Insert(v); nil != err {
			return err
		}
	}
	return nil
}

// dispatch a command against an already loaded tree
func runCommand(w io.Writer, tree valueTree, command string, arguments []string) error {

	switch command {

	case cmdLayout:
		fmt.Fprintln(w, tree.Layout())

	case cmdPrint:
		tree.Print(w)

	case cmdPreOrder:
		printValues(w, tree.PreOrder())

	case cmdInOrder:
		printValues(w, tree.InOrder())

	case cmdPostOrder:
		printValues(w, tree.PostOrder())

	case cmdBreadthFirst:
		printValues(w, tree.BreadthFirst())

	case cmdFind:
		if 0 == len(arguments) {
			return fmt.Errorf("%s: %w", command, fault.ErrMissingArgument)
		}
		for _, a := range arguments {
			index, err := tree.Find(a)
			switch {
			case fault.IsErrNotFound(err):
				fmt.Fprintf(w, "%s: not found\n", a)
			case nil != err:
				return err
			default:
				fmt.Fprintf(w, "%s: slot %d\n", a, index)
			}
		}

	case cmdCheck:
		if err := tree.Check(); nil != err {
			return err
		}
		fmt.Fprintf(w, "ok: %d values\n", tree.Count())

	case cmdStats:
		b, err := json.MarshalIndent(tree.Statistics(), "", "  ")
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%s\n", b)

	default:
		return fmt.Errorf("command: %q: %w", command, fault.ErrUnknownCommand)
	}

	return nil
}

func printValues(w io.Writer, values []string) {
	fmt.Fprintln(w, strings.Join(values, " "))
}
