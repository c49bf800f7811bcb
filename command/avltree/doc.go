// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltree - load values into an array backed AVL tree and show the
// result
//
// values come from the "values" table of an optional Lua
// configuration file followed by any values after the command.  With
// --watch the command is run again whenever the configuration file is
// written.
package main
